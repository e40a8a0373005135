package inspect

import (
	"github.com/korindev/inspect/value"
	"github.com/korindev/inspect/walk"
)

// Hint tells the host how to visually group rendered children.
type Hint int

const (
	HintNone Hint = iota
	HintArray
	HintMap
	HintString
)

func (h Hint) String() string {
	switch h {
	case HintArray:
		return "array"
	case HintMap:
		return "map"
	case HintString:
		return "string"
	}
	return ""
}

type (
	//Formatter renders one inspected value: a one-line summary, a display
	//hint and, for container shapes, a lazy child sequence. A formatter
	//lives for a single display request and is never reused.
	Formatter interface {
		Summary() (string, error)
		Hint() Hint
		//Children returns the lazy child sequence, or nil for scalar-like
		//formatters. The sequence is single-pass.
		Children() walk.Seq
	}

	//Constructor builds a formatter bound to a matched value
	Constructor func(v value.Value) (Formatter, error)
)
