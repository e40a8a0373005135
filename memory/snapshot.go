package memory

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
)

// Snapshot is a contiguous memory image mapped at a fixed base address.
type Snapshot struct {
	base uint64
	data []byte
}

// NewSnapshot returns a snapshot serving reads from data mapped at base.
func NewSnapshot(base uint64, data []byte) *Snapshot {
	return &Snapshot{base: base, data: data}
}

// Base returns the lowest mapped address.
func (s *Snapshot) Base() uint64 {
	return s.base
}

// Len returns the mapped size in bytes.
func (s *Snapshot) Len() int {
	return len(s.data)
}

// ReadAt copies len(buf) bytes starting at addr.
func (s *Snapshot) ReadAt(addr uint64, buf []byte) error {
	offset, err := s.offset(addr, uint64(len(buf)))
	if err != nil {
		return err
	}
	copy(buf, s.data[offset:])
	return nil
}

// Put writes raw bytes at addr. Used by hosts assembling a snapshot before
// inspection begins, never during a render.
func (s *Snapshot) Put(addr uint64, data []byte) error {
	offset, err := s.offset(addr, uint64(len(data)))
	if err != nil {
		return err
	}
	copy(s.data[offset:], data)
	return nil
}

// PutUint64 writes a little-endian word at addr.
func (s *Snapshot) PutUint64(addr uint64, value uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], value)
	return s.Put(addr, buf[:])
}

// PutUint32 writes a little-endian 32-bit value at addr.
func (s *Snapshot) PutUint32(addr uint64, value uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], value)
	return s.Put(addr, buf[:])
}

func (s *Snapshot) offset(addr, size uint64) (uint64, error) {
	if addr < s.base {
		return 0, errors.Wrapf(ErrOutOfRange, "0x%x before base 0x%x", addr, s.base)
	}
	offset := addr - s.base
	if offset+size > uint64(len(s.data)) {
		return 0, errors.Wrapf(ErrOutOfRange, "0x%x+%d beyond mapped end", addr, size)
	}
	return offset, nil
}
