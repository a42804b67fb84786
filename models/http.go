package models

// RegisterRequest is the JSON body accepted by POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	// Name is accepted as an alias used by older clients that send the
	// display name instead of a username.
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the JSON body accepted by POST /api/auth/login.
// Identifier carries either the username or the email; the legacy
// field names "username" and "email" are accepted as fallbacks.
type LoginRequest struct {
	Identifier string `json:"identifier,omitempty"`
	Username   string `json:"username,omitempty"`
	Email      string `json:"email,omitempty"`
	Password   string `json:"password"`
}

// LoginResponse is the JSON body returned by a successful login.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// MessageResponse is the generic JSON envelope for endpoints that only
// return a human-readable outcome (registration, logout, rejections).
type MessageResponse struct {
	Message string `json:"message"`
}

// UploadResponse is returned by a successful document upload.
type UploadResponse struct {
	Message  string   `json:"message"`
	Document Document `json:"document"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status string `json:"status"`
}
