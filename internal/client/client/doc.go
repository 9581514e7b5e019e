// Package client talks to the portfolio REST backend.
//
// # Overview
//
// Client is the transport-agnostic contract with one method per backend
// capability: login, the public reads (home, about, projects), the contact
// form and the admin CRUD calls. HTTPClient implements it over JSON/HTTP.
//
// # Results
//
// Every method returns its typed value or an error. Failures are always a
// *Error whose Kind tells callers what happened (transport, no session,
// unauthorized, not found, rejected, server, decode) and whose Detail carries
// the server's "error" text when there is one. The HTTP status is checked on
// every call, reads included. Sentinels ErrUnavailable, ErrUnauthorized,
// ErrNoSession and ErrNotFound match through errors.Is.
//
// # Authentication
//
// Privileged calls take the bearer token from a TokenSource (the session
// holder). With no token the call fails with KindNoSession and no request
// is sent.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. Every request is bound to the
// caller's context, so cancelling it (for example when a view goes away)
// aborts the request.
package client
