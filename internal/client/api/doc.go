// Package api is the HTTP adapter between the client and the banking API.
//
// Every call goes through Client.Do, which:
//
//  1. attaches "Authorization: Bearer <token>" when a session token is stored;
//  2. decodes 2xx bodies into the caller's value (usually an Envelope);
//  3. turns everything else into an *Error carrying status, code and a
//     human-readable message, classified by sentinel errors
//     (ErrUnauthorized, ErrRejected, ErrServer, ErrUnavailable, ErrRequest);
//  4. reacts to global failures exactly once per failing call: a 401 clears
//     the stored session and sends the user to the login route, 5xx and
//     network failures raise a notification.
//
// Error.Notified tells callers whether the user was already notified, so that
// a failure never produces two notifications.
package api
