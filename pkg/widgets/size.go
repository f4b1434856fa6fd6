package widgets

import "fmt"

// GroupSizeClass maps a size token to the input-group layout class.
// The empty token means no sizing class. Only "sm" and "lg" are valid;
// anything else fails with ErrInvalidArgument.
func GroupSizeClass(size string) (string, error) {
	switch size {
	case "":
		return "", nil
	case "sm", "lg":
		return "input-group-" + size, nil
	default:
		return "", fmt.Errorf(`%w: size must be one of "sm" or "lg", got %q`, ErrInvalidArgument, size)
	}
}
