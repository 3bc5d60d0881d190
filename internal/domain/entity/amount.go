package entity

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// Amount is a monetary value. The API serialises decimals as strings
// ("12.50") but numbers are accepted as well.
type Amount float64

// UnmarshalJSON accepts a JSON number, a numeric string, or null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = 0

		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.WithStack(err)
		}
		if s == "" {
			*a = 0

			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid amount %q", s)
		}
		*a = Amount(v)

		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return errors.WithStack(err)
	}
	*a = Amount(v)

	return nil
}

// Float64 returns the raw value.
func (a Amount) Float64() float64 {
	return float64(a)
}

// String formats with two decimals, the way prices are sent back.
func (a Amount) String() string {
	return strconv.FormatFloat(float64(a), 'f', 2, 64)
}
