// Package cli provides the interactive portfolio console.
//
// It wires configuration, the local session database, the REST client and
// the screens (public views, contact form, admin dashboard) into a REPL.
// Public commands work for everyone. Admin commands need the admin area,
// entered with "open /admin", "open #admin", a start location or "login".
//
// The REPL is started via App.Run(ctx, location), which blocks until the
// user exits.
package cli
