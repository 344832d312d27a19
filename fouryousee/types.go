package fouryousee

import "strconv"

// Record is a single API object. Its shape is defined by the remote API.
type Record map[string]any

// ID returns the record id rendered as a string, or "" when it has none
func (r Record) ID() string {
	return FormatID(r["id"])
}

// Result is what a GET endpoint answered: either a list of records or a
// single bare object.
type Result struct {
	Records []Record
	Object  Record
}

// Empty reports whether the result carries no record at all
func (r Result) Empty() bool {
	return r.Object == nil && len(r.Records) == 0
}

// Single returns the bare object, or the only record of a one-element list
func (r Result) Single() (Record, bool) {
	if r.Object != nil {
		return r.Object, true
	}
	if len(r.Records) == 1 {
		return r.Records[0], true
	}
	return nil, false
}

// Account holds the metadata of the account a token belongs to
type Account struct {
	Name    string
	Account string
	Type    string
}

// FormatID renders a JSON id value so ids decoded as numbers compare
// equal to ids given as strings. An object stands for its own id, as in
// the category lists of a media.
func FormatID(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case int:
		return strconv.Itoa(id)
	case int64:
		return strconv.FormatInt(id, 10)
	case Record:
		return FormatID(id["id"])
	case map[string]any:
		return FormatID(id["id"])
	default:
		return ""
	}
}

// intValue reads a JSON number as an int, zero when absent or not a number
func intValue(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}

// String returns a pointer to s, for the optional fields of update structs
func String(s string) *string { return &s }

// Int returns a pointer to i
func Int(i int) *int { return &i }

// Bool returns a pointer to b
func Bool(b bool) *bool { return &b }
