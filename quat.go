package inspect

import (
	"fmt"
	"math"

	"github.com/korindev/inspect/value"
	"github.com/korindev/inspect/walk"
)

// quatFormatter renders a quaternion as a rotation: an angle in radians
// around an axis.
type quatFormatter struct {
	angle float64
	axis  [3]float64
}

// NewQuat builds the quaternion formatter. A degenerate rotation (identity,
// or a w outside the unit range) reports angle 0 around a zero axis rather
// than dividing by zero.
func NewQuat(v value.Value) (Formatter, error) {
	w, err := fieldFloat(v, "w")
	if err != nil {
		return nil, err
	}
	x, err := fieldFloat(v, "x")
	if err != nil {
		return nil, err
	}
	y, err := fieldFloat(v, "y")
	if err != nil {
		return nil, err
	}
	z, err := fieldFloat(v, "z")
	if err != nil {
		return nil, err
	}
	f := &quatFormatter{}
	a := math.Acos(w)
	s := math.Sin(a)
	if s != 0 && !math.IsNaN(s) {
		f.angle = a * 2
		f.axis = [3]float64{x / s, y / s, z / s}
	}
	return f, nil
}

func (f *quatFormatter) Hint() Hint {
	return HintNone
}

func (f *quatFormatter) Children() walk.Seq {
	return nil
}

func (f *quatFormatter) Summary() (string, error) {
	return fmt.Sprintf("quat<%g rad around {%g, %g, %g}>",
		f.angle, f.axis[0], f.axis[1], f.axis[2]), nil
}

func fieldFloat(v value.Value, name string) (float64, error) {
	field, err := v.Field(name)
	if err != nil {
		return 0, err
	}
	return field.Float()
}
