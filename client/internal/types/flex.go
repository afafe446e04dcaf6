package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// The admin backend is loose about scalar types: ids arrive as numbers on
// some tables and strings on others, prices come back as DECIMAL strings and
// several profile fields are JSON documents stored in text columns. The
// types below decode every observed variant into one Go shape.

var jsonNull = []byte("null")

// ID is a server-assigned identifier.
type ID string

// UnmarshalJSON accepts a JSON number or string.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, jsonNull) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("id: %w", err)
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON writes numeric ids as numbers so the backend sees the type it sent.
func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return jsonNull, nil
	}
	// Only canonical integers go out bare; "007" or "+5" are not valid JSON numbers.
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// String implements fmt.Stringer.
func (id ID) String() string { return string(id) }

// Text is a string field that tolerates numbers and booleans on the wire.
type Text string

// UnmarshalJSON accepts any JSON scalar. Objects and arrays are kept as raw JSON.
func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, jsonNull) {
		*t = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("text: %w", err)
		}
		*t = Text(s)
		return nil
	}
	*t = Text(b)
	return nil
}

// String implements fmt.Stringer.
func (t Text) String() string { return string(t) }

// Flag is a boolean that also decodes 0/1 and "true"/"false" strings (MySQL TINYINT).
type Flag bool

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flag) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	s := strings.Trim(string(b), `"`)
	switch strings.ToLower(s) {
	case "true", "1", "yes":
		*f = true
	default:
		*f = false
	}
	return nil
}

// Amount is a monetary value sent as a number or a numeric string.
// Unparseable values decode to zero.
type Amount float64

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	s := strings.TrimSpace(strings.Trim(string(b), `"`))
	if s == "" || s == "null" {
		*a = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*a = 0
		return nil
	}
	*a = Amount(v)
	return nil
}

// Float returns the amount as float64.
func (a Amount) Float() float64 { return float64(a) }

// StringList is a list of strings that may arrive as a JSON array, a JSON
// array encoded inside a string, or a comma-separated string.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, jsonNull) {
		*l = nil
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("string list: %w", err)
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*l = nil
			return nil
		}
		if strings.HasPrefix(s, "[") {
			if err := l.UnmarshalJSON([]byte(s)); err != nil {
				*l = nil
			}
			return nil
		}
		var out []string
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		*l = out
		return nil
	}
	if b[0] != '[' {
		*l = nil
		return nil
	}
	var raw []Text
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("string list: %w", err)
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		out = append(out, string(v))
	}
	*l = out
	return nil
}

// decodeDocument decodes b into v when b is either a JSON object or a string
// holding one. Anything else leaves v at its zero value.
func decodeDocument(b []byte, v any) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, jsonNull) {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		s = strings.TrimSpace(s)
		if !strings.HasPrefix(s, "{") {
			return nil
		}
		b = []byte(s)
	}
	if b[0] != '{' {
		return nil
	}
	// A malformed document leaves v partially filled; the record still decodes.
	_ = json.Unmarshal(b, v)
	return nil
}

// decodeList decodes b into v when b is either a JSON array or a string
// holding one. Empty and null input leave v untouched.
func decodeList(b []byte, v any) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, jsonNull) {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		b = []byte(s)
	}
	if b[0] != '[' {
		return fmt.Errorf("list: unexpected %q", b[0])
	}
	return json.Unmarshal(b, v)
}
