// Package common contains shared constants and sentinel errors used across
// the portfolio client, console and development API.
package common

const (
	// AuthHeaderName carries the bearer token on privileged requests.
	AuthHeaderName = "Authorization"

	// BearerPrefix precedes the token inside AuthHeaderName.
	BearerPrefix = "Bearer "

	// RequestIDHeaderName correlates client and server log lines.
	RequestIDHeaderName = "X-Request-ID"

	// SessionTokenKey is the storage key of the persisted bearer token.
	SessionTokenKey = "authToken"

	// SessionUserKey is the storage key of the logged-in username.
	SessionUserKey = "authUser"
)
