// Package cli provides the interactive banking command-line client.
//
// It wires configuration, the local session store, the API adapter and the
// session manager into a REPL. On start it restores a saved session and
// checks it against the server; afterwards the user drives everything with
// commands.
//
// Key features:
//   - Register / Login / Logout / Verify
//   - Dashboard, balance, transactions, investments, cards
//   - Profile and preferences
//   - Notifications (toasts) listed, dismissed or cleared
//   - Route navigation guarded by the saved session
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
