package types

// Credentials authenticate requests against the Helix API.
type Credentials struct {
	// ClientID is sent in the Client-Id header.
	ClientID string

	// Token is the OAuth access token sent as a bearer token.
	Token string
}

// HelixConfig holds the transport settings for the Helix client. None of
// these change the search query, which is fixed at build time.
type HelixConfig struct {
	// UserAgent is the User-Agent header sent with each request.
	UserAgent string `json:"user_agent"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `json:"log_level"`
}
