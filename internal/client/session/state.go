package session

import "github.com/dmitrijs2005/bankfront/internal/client/models"

type State int

const (
	Anonymous State = iota
	Authenticating
	Authenticated
	VerificationFailed
)

func (s State) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	case VerificationFailed:
		return "verification_failed"
	default:
		return "unknown"
	}
}

// Code classifies a failed operation.
type Code string

const (
	CodeValidation   Code = "validation"
	CodeAuthRejected Code = "auth_rejected"
	CodeUnauthorized Code = "unauthorized"
	CodeServerError  Code = "server_error"
	CodeUnavailable  Code = "unavailable"
	CodeUnknown      Code = "unknown"
)

// Result is the outcome of Login and Register.
type Result struct {
	OK      bool
	Profile *models.UserProfile
	// Reason is the message shown to the user when OK is false.
	Reason string
	Code   Code
	// Fields holds per-field messages for CodeValidation.
	Fields map[string]string
}

// Session is a point-in-time copy of the manager's state.
type Session struct {
	User      *models.UserProfile
	Token     string
	LastError string
	IsLoading bool
	State     State
}

const (
	defaultUserName    = "User"
	defaultUserAccount = "00000000-0"
)
