package core

// TokenClaims are the identity claims carried by a customer token
type TokenClaims struct {
	Email string
	Name  string
}

// TokenIssuer signs and verifies customer tokens
type TokenIssuer interface {
	// Issue signs a token carrying claims
	Issue(claims TokenClaims) (string, error)
	// Verify checks the signature of token and returns its claims
	Verify(token string) (*TokenClaims, error)
}
