package models

// MessageResponse is the generic JSON body of the auth endpoints.
type MessageResponse struct {
	Email   string `json:"email,omitempty"`
	Message string `json:"message"`
}

// ProfileResponse is returned by the profile endpoint.
type ProfileResponse struct {
	Email string `json:"email"`
}

// ResetTokenResponse is returned when a password reset token is issued.
type ResetTokenResponse struct {
	Email      string `json:"email"`
	ResetToken string `json:"reset_token"`
}

// ErrorResponse is returned by the /api/v1 endpoints on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is returned by the status endpoint.
type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
