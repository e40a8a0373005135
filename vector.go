package inspect

import (
	"fmt"
	"strings"

	"github.com/korindev/inspect/types"
	"github.com/korindev/inspect/value"
	"github.com/korindev/inspect/walk"
)

// vectorFormatter renders the small fixed-size vectors (Vec2, Vec3, Vec4):
// a scalar summary with the elements inline, no child sequence.
type vectorFormatter struct {
	array value.Value
	size  uint64
	elem  *types.Type
}

// NewVector builds the small-vector formatter.
func NewVector(v value.Value) (Formatter, error) {
	array, err := v.Field("array")
	if err != nil {
		return nil, err
	}
	size := array.Type().Count()
	elem, ok := v.Type().Arg(0)
	if !ok {
		elem = array.Type().Strip().Elem
	}
	return &vectorFormatter{array: array, size: size, elem: elem}, nil
}

func (f *vectorFormatter) Hint() Hint {
	return HintNone
}

func (f *vectorFormatter) Children() walk.Seq {
	return nil
}

func (f *vectorFormatter) Summary() (string, error) {
	elems := make([]string, 0, f.size)
	for i := uint64(0); i < f.size; i++ {
		elem, err := f.array.Elem(i)
		if err != nil {
			return "", err
		}
		text, ok, err := ScalarText(elem)
		if err != nil {
			return "", err
		}
		if !ok {
			text = elem.Type().String()
		}
		elems = append(elems, text)
	}
	return fmt.Sprintf("%s%d{%s}", f.elem, f.size, strings.Join(elems, ", ")), nil
}
