package models

// Envelope is the standard JSON response wrapper returned by every API
// endpoint, success and failure alike.
type Envelope struct {
	// Success reports whether the request was handled without error.
	Success bool `json:"success"`

	// Message is a short human-readable description of the outcome.
	Message string `json:"message"`

	// Data carries the payload on success. Omitted when there is none.
	Data any `json:"data,omitempty"`

	// Errors lists individual problem descriptions (e.g. per-field
	// validation failures). Omitted when empty.
	Errors []string `json:"errors,omitempty"`
}

// LoginResponse is the payload returned by POST /api/auth/login.
type LoginResponse struct {
	// Token is the signed bearer token to present on owner-scoped routes.
	Token string `json:"token"`

	// User is the public projection of the authenticated account.
	User User `json:"user"`
}

// ServerInfo is the payload returned by GET /info.
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
