package entity

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/amirhossein-jamali/payment-api/internal/domain/error"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// ValidateAndConvertAmount parses a decimal amount such as "10", "10.5" or "10.50"
// into cents. Negative values, more than two decimals and anything that is not
// plain digits are rejected.
func ValidateAndConvertAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}
	if strings.HasPrefix(amount, "-") {
		return 0, errs.ErrNegativeAmount
	}

	whole, fraction, hasPoint := strings.Cut(amount, ".")
	if hasPoint && strings.Contains(fraction, ".") {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}
	if len(fraction) > MaxDecimalPlaces {
		return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}
	if whole == "" && fraction == "" {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}
	if !isDigits(whole) || !isDigits(fraction) {
		return 0, fmt.Errorf("%w: %q is not a number", errs.ErrInvalidAmount, amount)
	}

	digits := whole + fraction + strings.Repeat("0", MaxDecimalPlaces-len(fraction))
	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return 0, errs.ErrAmountOverflow
		}
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	return value, nil
}

// AmountInCentsToString converts integer amount to a decimal string
// For example:
// - 1015 becomes "10.15"
// - 1000 becomes "10.00"
func AmountInCentsToString(amountInCents int64) string {
	sign := ""
	if amountInCents < 0 {
		sign = "-"
		amountInCents = -amountInCents
	}
	return fmt.Sprintf("%s%d.%02d", sign, amountInCents/100, amountInCents%100)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
