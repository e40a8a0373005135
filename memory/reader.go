// Package memory abstracts read-only access to the inspected process's
// address space. The host debugger supplies the Reader; Snapshot serves
// reads from a captured byte image mapped at a base address.
package memory

import (
	"github.com/cockroachdb/errors"
)

// Reader reads the inspected memory at absolute addresses. Implementations
// serve a snapshot: contents never change within one render invocation.
type Reader interface {
	ReadAt(addr uint64, buf []byte) error
}

// ErrOutOfRange reports a read outside the mapped region.
var ErrOutOfRange = errors.New("address out of mapped range")
