// Package api is the client side of the journal HTTP API: authentication
// and owner-scoped entry CRUD. Responses are translated into the error
// classes of package common so callers never look at status codes.
package api
