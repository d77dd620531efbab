// Package session owns the authenticated-user state of the client process.
//
// A single Manager is created at startup and handed to every consumer. It
// moves between four states:
//
//	Anonymous -> Authenticating -> Authenticated
//	Authenticated -> VerificationFailed -> Anonymous
//
// Public operations never return transport errors; failures are folded
// into a Result carrying an internal code and one human-readable message,
// and the user sees exactly one notification per failed attempt.
package session
