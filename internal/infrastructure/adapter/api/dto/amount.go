package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	domainerr "github.com/amirhossein-jamali/payment-api/internal/domain/error"
)

// Amount is a decimal amount sent either as a JSON number or as a numeric string.
// The literal text is kept so no precision is lost before conversion to cents.
type Amount string

// UnmarshalJSON implements json.Unmarshaler
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: %s", domainerr.ErrInvalidAmount, data)
	}
	*a = Amount(n.String())
	return nil
}

// String returns the literal amount
func (a Amount) String() string {
	return string(a)
}

func amountPtr(a *Amount) *string {
	if a == nil {
		return nil
	}
	s := a.String()
	return &s
}
