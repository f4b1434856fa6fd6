package widgets

import "strconv"

// Restorer resolves a previously submitted client value for an input id.
// It is the session-resume collaborator: when a client reconnects with the
// values of an earlier session, the restored value for an id overrides the
// default the builder was given. *server.Session implements Restorer.
type Restorer interface {
	RestoreValue(id string, def any) any
}

// restoreString resolves a string default through an optional restorer.
func restoreString(r Restorer, id, def string) string {
	if r == nil {
		return def
	}
	switch v := r.RestoreValue(id, def).(type) {
	case nil:
		return def
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return def
	}
}

// restoreNumber resolves a numeric default through an optional restorer.
// JSON-decoded values arrive as float64; numeric strings are parsed.
func restoreNumber(r Restorer, id string, def float64) float64 {
	if r == nil {
		return def
	}
	switch v := r.RestoreValue(id, def).(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		return def
	default:
		return def
	}
}

// formatNumber renders a numeric attribute without a trailing exponent or
// superfluous zeros, matching how the client echoes values back.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
