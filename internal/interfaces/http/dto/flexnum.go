package dto

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FlexibleDecimal accepts a JSON number or a numeric string and coerces
// anything unparseable to zero instead of failing the request. Admin
// forms submit prices as strings; legacy clients sent garbage there.
type FlexibleDecimal struct {
	decimal.Decimal
}

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexibleDecimal) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(bytes.Trim(bytes.TrimSpace(data), `"`)))
	if s == "" || s == "null" {
		f.Decimal = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		f.Decimal = decimal.Zero
		return nil
	}
	f.Decimal = d
	return nil
}

// FlexibleInt accepts a JSON number or a numeric string, coercing
// unparseable input to zero. Fractional input is truncated.
type FlexibleInt int

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(bytes.Trim(bytes.TrimSpace(data), `"`)))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		*f = FlexibleInt(n)
		return nil
	}
	if d, err := decimal.NewFromString(s); err == nil {
		*f = FlexibleInt(d.IntPart())
		return nil
	}
	*f = 0
	return nil
}

// Int returns the plain int value
func (f FlexibleInt) Int() int {
	return int(f)
}
