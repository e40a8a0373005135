package inspect

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/korindev/inspect/value"
	"github.com/korindev/inspect/walk"
)

// tupleFormatter renders the recursive Tuple container. Each level of the
// tuple holds the next level as its first member plus one payload member;
// the last level holds only a payload.
type tupleFormatter struct {
	value value.Value
}

// NewTuple builds the Tuple formatter.
func NewTuple(v value.Value) (Formatter, error) {
	if v.Type().NumFields() == 0 {
		return nil, errors.Errorf("%v has no tuple levels", v.Type())
	}
	return &tupleFormatter{value: v}, nil
}

func (f *tupleFormatter) Hint() Hint {
	return HintArray
}

func (f *tupleFormatter) Children() walk.Seq {
	return func(yield func(string, value.Value) (bool, error)) error {
		level, err := f.value.FieldAt(0)
		if err != nil {
			return err
		}
		for idx := 0; ; idx++ {
			last := level.Type().NumFields() < 2
			itemPos := 1
			if last {
				itemPos = 0
			}
			item, err := level.FieldAt(itemPos)
			if err != nil {
				return err
			}
			cont, err := yield(fmt.Sprintf("[%d]", idx), item)
			if err != nil || !cont {
				return err
			}
			if last {
				return nil
			}
			if level, err = level.FieldAt(0); err != nil {
				return err
			}
		}
	}
}

func (f *tupleFormatter) Summary() (string, error) {
	args, err := f.argNames()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Tuple <%s>[%d]", strings.Join(args, ", "), len(args)), nil
}

// argNames lists the template arguments, falling back to the payload types
// gathered structurally when the descriptor carries no argument slots.
func (f *tupleFormatter) argNames() ([]string, error) {
	var result []string
	for i := 0; ; i++ {
		arg, ok := f.value.Type().Arg(i)
		if !ok {
			break
		}
		result = append(result, arg.String())
	}
	if len(result) > 0 {
		return result, nil
	}
	err := f.Children()(func(_ string, item value.Value) (bool, error) {
		result = append(result, item.Type().String())
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
