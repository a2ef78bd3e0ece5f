package entity

import (
	"html"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// SanitizeText trims surrounding whitespace and HTML-escapes user supplied text
func SanitizeText(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}

// IsValidEmail reports whether email is a syntactically valid address
func IsValidEmail(email string) bool {
	return validate.Var(strings.TrimSpace(email), "required,email") == nil
}
