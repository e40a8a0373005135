package inspect

import (
	"fmt"
	"strconv"

	"github.com/korindev/inspect/types"
	"github.com/korindev/inspect/value"
)

// ScalarText renders a fundamental value as literal text. ok is false for
// non-scalar kinds, which the host renders through a formatter or as an
// opaque reference instead.
func ScalarText(v value.Value) (string, bool, error) {
	s := v.Type().Strip()
	if s == nil {
		return "", false, nil
	}
	switch s.Kind {
	case types.Int:
		n, err := v.Int()
		if err != nil {
			return "", false, err
		}
		return strconv.FormatInt(n, 10), true, nil
	case types.Uint:
		n, err := v.Uint()
		if err != nil {
			return "", false, err
		}
		return strconv.FormatUint(n, 10), true, nil
	case types.Float:
		f, err := v.Float()
		if err != nil {
			return "", false, err
		}
		return strconv.FormatFloat(f, 'g', -1, 64), true, nil
	case types.Char:
		n, err := v.Uint()
		if err != nil {
			return "", false, err
		}
		return strconv.QuoteRune(rune(n)), true, nil
	case types.Bool:
		b, err := v.Bool()
		if err != nil {
			return "", false, err
		}
		return strconv.FormatBool(b), true, nil
	case types.Pointer:
		ptr, err := v.Pointer()
		if err != nil {
			return "", false, err
		}
		return fmt.Sprintf("0x%x", ptr.Target()), true, nil
	}
	return "", false, nil
}
