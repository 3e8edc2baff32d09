package masks

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Amount is a numeric Masks API field. The API is not schema-checked: numbers
// and numeric strings are numbers, null and absent are zero, and any other
// value is kept verbatim for display.
type Amount struct {
	value float64
	// text holds the raw value when it is not a number.
	text string
}

// Number returns a numeric Amount.
func Number(v float64) Amount {
	return Amount{value: v}
}

// UnmarshalJSON implements json.Unmarshaler. It only sees well-formed tokens,
// so it never fails; syntax errors are reported by the decoder.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*a = Amount{}
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = parseAmount(strings.TrimSpace(s))
	default:
		if f, err := strconv.ParseFloat(string(data), 64); err == nil {
			*a = Amount{value: f}
			return nil
		}
		// true, false, objects and arrays.
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return err
		}
		*a = Amount{text: buf.String()}
	}
	return nil
}

func parseAmount(s string) Amount {
	if s == "" {
		return Amount{}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Amount{value: f}
	}
	return Amount{text: s}
}

// Float64 returns the numeric value. ok is false when the API sent something
// that is not a number.
func (a Amount) Float64() (v float64, ok bool) {
	return a.value, a.text == ""
}

// Text returns the raw value of a non-numeric amount and "" otherwise.
func (a Amount) Text() string {
	return a.text
}
