// Package common contains constants and small helpers shared by the
// jiraclone client packages.
package common

const (
	// AuthorizationHeaderName carries the bearer token on outbound requests.
	AuthorizationHeaderName = "Authorization"
	// BearerScheme prefixes the session token in the authorization header.
	BearerScheme = "Bearer"
	// RequestIDHeaderName correlates a request with client log lines.
	RequestIDHeaderName = "X-Request-ID"

	ContentTypeHeaderName = "Content-Type"
	ContentTypeJSON       = "application/json"

	// TokenStorageKey is the metadata key holding the session token.
	TokenStorageKey = "token"

	// DefaultBaseURL is used when no base URL is configured.
	DefaultBaseURL = "http://localhost:8082/api"
)
