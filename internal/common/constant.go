// Package common contains shared constants and the error taxonomy used across
// the gophjournal client and server.
package common

const (
	// AuthorizationHeaderName carries the bearer credential on entry requests.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix precedes the token inside the Authorization header.
	BearerPrefix = "Bearer "

	// MaxContentLength is the upper bound, in characters, of an entry body.
	MaxContentLength = 1000
)
