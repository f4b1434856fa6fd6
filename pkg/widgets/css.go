package widgets

import (
	"fmt"
	"regexp"
	"strconv"
)

// cssLengthPattern accepts the CSS length grammar: keywords, calc()
// expressions, and a number with a length unit.
var cssLengthPattern = regexp.MustCompile(
	`^(auto|inherit|initial|fit-content|calc\(.+\)|-?(\d+\.?\d*|\.\d+)(%|in|cm|mm|ch|em|ex|rem|pt|pc|px|vh|vw|vmin|vmax))$`)

// NormalizeCSSLength converts a width hint into a CSS length string.
// Numeric values are interpreted as pixels. Strings must already be valid
// CSS lengths; a bare numeric string has no unit and is rejected with
// ErrInvalidArgument. A nil value yields the empty string.
func NormalizeCSSLength(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case int:
		return strconv.Itoa(v) + "px", nil
	case int64:
		return strconv.FormatInt(v, 10) + "px", nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64) + "px", nil
	case string:
		if v == "" {
			return "", nil
		}
		if !cssLengthPattern.MatchString(v) {
			return "", fmt.Errorf("%w: %q is not a valid CSS length", ErrInvalidArgument, v)
		}
		return v, nil
	default:
		return "", fmt.Errorf("%w: CSS length must be a number or string, got %T", ErrInvalidArgument, value)
	}
}
