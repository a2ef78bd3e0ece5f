package entity

import (
	"strconv"
	"strings"

	errs "github.com/amirhossein-jamali/payment-api/internal/domain/error"
)

// Identifier addresses a record either by numeric id or by email
type Identifier struct {
	ID    uint64
	Email string
}

// ParseIdentifier accepts a positive integer or an email address
func ParseIdentifier(raw string) (Identifier, error) {
	raw = strings.TrimSpace(raw)
	if id, err := strconv.ParseUint(raw, 10, 64); err == nil && id > 0 {
		return Identifier{ID: id}, nil
	}
	if IsValidEmail(raw) {
		return Identifier{Email: raw}, nil
	}
	return Identifier{}, errs.ErrInvalidIdentifier
}

// ParseID accepts only a positive integer
func ParseID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, errs.ErrInvalidIdentifier
	}
	return id, nil
}

// IsEmail reports whether the identifier addresses a record by email
func (i Identifier) IsEmail() bool {
	return i.Email != ""
}

func (i Identifier) String() string {
	if i.IsEmail() {
		return i.Email
	}
	return strconv.FormatUint(i.ID, 10)
}
