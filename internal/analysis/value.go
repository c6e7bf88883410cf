package analysis

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindNumber
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	default:
		return "null"
	}
}

// Value is a single raw cell. Text cells are parsed once at construction so
// consumers never re-parse.
type Value struct {
	kind    Kind
	text    string
	num     float64
	numeric bool
}

// Null is the value of an absent or null cell.
var Null = Value{}

// NumberValue wraps a numeric cell. Non-finite numbers never count as parseable.
func NumberValue(f float64) Value {
	return Value{kind: KindNumber, num: f, numeric: isFinite(f)}
}

// TextValue wraps a string cell and records whether it parses as a number.
func TextValue(s string) Value {
	f, ok := parseNumber(s)
	return Value{kind: KindText, text: s, num: f, numeric: ok}
}

// Kind reports the variant.
func (v Value) Kind() Kind { return v.kind }

// Missing reports whether the cell counts as missing for classification:
// null or the empty string.
func (v Value) Missing() bool {
	return v.kind == KindNull || (v.kind == KindText && v.text == "")
}

// Float returns the parsed numeric value.
func (v Value) Float() (float64, bool) {
	if !v.numeric {
		return 0, false
	}
	return v.num, true
}

// String stringifies the cell. Null renders as the empty string.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return formatNumber(v.num)
	case KindText:
		return v.text
	default:
		return ""
	}
}

// MarshalJSON writes numbers as JSON numbers, text as strings and null as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		if !isFinite(v.num) {
			return []byte("null"), nil
		}
		return []byte(formatNumber(v.num)), nil
	case KindText:
		return json.Marshal(v.text)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts a JSON number, string, or null. Nested values are rejected.
func (v *Value) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*v = Null
		return nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("decode text cell: %w", err)
		}
		*v = TextValue(s)
		return nil
	case '{', '[':
		return fmt.Errorf("cell must be a number, string or null, got %s", b)
	case 't', 'f':
		var bv bool
		if err := json.Unmarshal(b, &bv); err != nil {
			return fmt.Errorf("decode cell: %w", err)
		}
		*v = TextValue(strconv.FormatBool(bv))
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("decode numeric cell: %w", err)
	}
	*v = NumberValue(f)
	return nil
}

// parseNumber reads the longest decimal prefix of s after leading
// whitespace, so "90 min" is 90 and "3 Seasons" is 3. Hex, infinities and
// NaN are not numbers.
func parseNumber(s string) (float64, bool) {
	raw := numericPrefix(strings.TrimLeftFunc(s, isLeadingSpace))
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || !isFinite(f) {
		return 0, false
	}
	return f, true
}

func isLeadingSpace(r rune) bool {
	return r == '\uFEFF' || unicode.IsSpace(r)
}

// numericPrefix returns [sign] digits [. digits] [e [sign] digits] from the
// start of s, or "" when no digit is found before the exponent.
func numericPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	intDigits := countDigits(s[i:])
	i += intDigits
	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		fracDigits = countDigits(s[i+1:])
		if intDigits > 0 || fracDigits > 0 {
			i += 1 + fracDigits
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return ""
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if n := countDigits(s[j:]); n > 0 {
			i = j + n
		}
	}
	return s[:i]
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
