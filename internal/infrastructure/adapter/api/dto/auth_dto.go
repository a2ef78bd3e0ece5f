package dto

// RegisterUserRequest is the body of POST /auth/register
type RegisterUserRequest struct {
	Email string `json:"email"`
}

// RegisterUserResponse returns the API key of a new consumer
type RegisterUserResponse struct {
	Message string `json:"message"`
	APIKey  string `json:"apiKey"`
}
