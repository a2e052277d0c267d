// Package cli is the interactive terminal front end of the journal.
//
// It wires configuration, the local database, the API client and the
// journal state, then runs a line-oriented REPL. Every command maps to one
// journal handler and prints the notification the handler returns. The
// loop handles one command at a time, so a request is never submitted
// twice while another is in flight.
//
// The REPL is started with App.Run(ctx), which blocks until the user exits
// or input ends.
package cli
