package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/bankfront/internal/client/api"
	"github.com/dmitrijs2005/bankfront/internal/client/models"
	"github.com/dmitrijs2005/bankfront/internal/client/validation"
	"github.com/dmitrijs2005/bankfront/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

const (
	pathLogin    = "/auth/login"
	pathRegister = "/auth/register"
	pathLogout   = "/auth/logout"
	pathVerify   = "/auth/verify"
)

// API is the subset of *api.Client the manager calls.
type API interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
}

// Store persists the session record. *storage.SessionStore implements it.
type Store interface {
	Token(ctx context.Context) (string, error)
	User(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, token string, user []byte) error
	SaveUser(ctx context.Context, user []byte) error
	ClearSession(ctx context.Context) error
}

// Notifier shows toasts. *toast.Store implements it.
type Notifier interface {
	Success(title, message string, d time.Duration) int
	Error(title, message string, d time.Duration) int
	Warning(title, message string, d time.Duration) int
}

// Manager is safe for concurrent use. Concurrent Login or Register calls
// are not serialised: whichever response arrives last decides the state.
type Manager struct {
	api      API
	store    Store
	notifier Notifier
	log      logging.Logger

	mu       sync.RWMutex
	state    State
	user     *models.UserProfile
	token    string
	lastErr  string
	inflight int
}

func NewManager(client API, store Store, notifier Notifier, log logging.Logger) *Manager {
	if log == nil {
		log = logging.Discard()
	}
	return &Manager{
		api:      client,
		store:    store,
		notifier: notifier,
		log:      log.With("component", "session"),
	}
}

// attempt describes one authentication call.
type attempt struct {
	path         string
	body         any
	failTitle    string
	fallback     string
	successTitle string
}

// Login validates creds, authenticates against the API and persists the
// resulting session.
func (m *Manager) Login(ctx context.Context, creds models.LoginCredentials) Result {
	a := attempt{
		path:         pathLogin,
		failTitle:    "Login failed",
		fallback:     "Could not log in",
		successTitle: "Welcome back",
	}
	if err := validation.ValidateLogin(creds); err != nil {
		return m.invalid(ctx, a, err)
	}
	a.body = validation.NormalizeLogin(creds)
	return m.authenticate(ctx, a)
}

// Register validates the registration form, creates the account and
// persists the resulting session.
func (m *Manager) Register(ctx context.Context, data models.RegisterData) Result {
	a := attempt{
		path:         pathRegister,
		failTitle:    "Registration failed",
		fallback:     "Could not complete registration",
		successTitle: "Account created",
	}
	if err := validation.ValidateRegister(data); err != nil {
		return m.invalid(ctx, a, err)
	}
	a.body = validation.NormalizeRegister(data)
	return m.authenticate(ctx, a)
}

func (m *Manager) invalid(ctx context.Context, a attempt, err error) Result {
	reason := validation.FirstMessage(err)
	m.mu.Lock()
	m.lastErr = reason
	m.mu.Unlock()

	m.log.Debug(ctx, "form rejected", "path", a.path, "error", err)
	m.notifier.Error(a.failTitle, reason, 0)
	return Result{Reason: reason, Code: CodeValidation, Fields: validation.FieldErrors(err)}
}

func (m *Manager) authenticate(ctx context.Context, a attempt) Result {
	m.begin()

	var env api.Envelope[models.AuthResponse]
	if err := m.api.Post(ctx, a.path, a.body, &env); err != nil {
		code, reason, notified := classify(err, a.fallback)
		if code == CodeUnauthorized {
			code = CodeAuthRejected
		}
		return m.fail(ctx, a, code, reason, notified, err)
	}

	if !env.OK() || env.Data.User == nil || env.Data.Token == "" {
		return m.fail(ctx, a, CodeAuthRejected, env.ErrorMessage(a.fallback), false, nil)
	}

	user, err := json.Marshal(env.Data.User)
	if err == nil {
		err = m.store.Save(ctx, env.Data.Token, user)
	}
	if err != nil {
		return m.fail(ctx, a, CodeUnknown, "Could not save the session on this device", false, err)
	}

	profile := *env.Data.User
	m.mu.Lock()
	m.user = &profile
	m.token = env.Data.Token
	m.state = Authenticated
	m.lastErr = ""
	m.inflight--
	m.mu.Unlock()

	m.log.Info(ctx, "authenticated", "path", a.path, "user_id", profile.ID)
	m.notifier.Success(a.successTitle, "Hello, "+nameOr(profile.Name), 0)

	p := profile
	return Result{OK: true, Profile: &p}
}

func (m *Manager) begin() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = Authenticating
	m.lastErr = ""
	m.inflight++
}

// fail ends an attempt in the Anonymous state with an empty session.
func (m *Manager) fail(ctx context.Context, a attempt, code Code, reason string, notified bool, cause error) Result {
	if err := m.store.ClearSession(ctx); err != nil {
		m.log.Error(ctx, "cannot clear stored session", "error", err)
	}

	m.mu.Lock()
	m.user = nil
	m.token = ""
	m.state = Anonymous
	m.lastErr = reason
	m.inflight--
	m.mu.Unlock()

	m.log.Warn(ctx, "authentication failed", "path", a.path, "code", string(code), "reason", reason, "error", cause)
	if !notified {
		m.notifier.Error(a.failTitle, reason, 0)
	}
	return Result{Reason: reason, Code: code}
}

// classify maps an adapter error to a code and a message fit for display.
// notified reports whether the adapter already told the user.
func classify(err error, fallback string) (code Code, reason string, notified bool) {
	apiErr, ok := api.AsError(err)
	if !ok {
		return CodeUnknown, fallback, false
	}

	switch {
	case errors.Is(err, api.ErrUnauthorized):
		code, reason = CodeUnauthorized, apiErr.Message
	case errors.Is(err, api.ErrRejected):
		code, reason = CodeAuthRejected, apiErr.Message
	case errors.Is(err, api.ErrUnavailable):
		code, reason = CodeUnavailable, "The service is unavailable. Try again later."
	case errors.Is(err, api.ErrServer):
		code, reason = CodeServerError, "The server could not complete the request."
	default:
		code, reason = CodeUnknown, fallback
	}
	if reason == "" {
		reason = fallback
	}
	return code, reason, apiErr.Notified
}

// Logout tells the API the session is over, then clears memory and the
// persisted record no matter how the call went.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.api.Post(ctx, pathLogout, nil, nil); err != nil {
		m.log.Warn(ctx, "remote logout failed", "error", err)
	}
	m.clear(ctx)
	m.log.Info(ctx, "logged out")
}

// Expire drops the in-memory session after the API rejected its token. The
// persisted record is cleared as well; doing it twice is harmless.
func (m *Manager) Expire(ctx context.Context) {
	m.mu.RLock()
	had := m.token != ""
	m.mu.RUnlock()

	m.clear(ctx)
	if had {
		m.log.Info(ctx, "session expired")
	}
}

func (m *Manager) clear(ctx context.Context) {
	if err := m.store.ClearSession(ctx); err != nil {
		m.log.Error(ctx, "cannot clear stored session", "error", err)
	}
	m.mu.Lock()
	m.user = nil
	m.token = ""
	m.state = Anonymous
	m.mu.Unlock()
}

// VerifyToken asks the API whether the persisted token is still valid. It
// returns false without a remote call when no token is stored. Any failure
// ends the session.
func (m *Manager) VerifyToken(ctx context.Context) bool {
	token, err := m.store.Token(ctx)
	if err != nil {
		m.log.Error(ctx, "cannot read stored token", "error", err)
		return false
	}
	if token == "" {
		return false
	}

	var env api.Envelope[models.AuthResponse]
	err = m.api.Get(ctx, pathVerify, nil, &env)
	if err == nil && env.OK() && env.Data.User != nil {
		if env.Data.Token != "" {
			token = env.Data.Token
		}
		if err := m.persist(ctx, env.Data.Token, env.Data.User); err != nil {
			m.log.Error(ctx, "cannot save verified profile", "error", err)
		}
		profile := *env.Data.User
		m.mu.Lock()
		m.user = &profile
		m.token = token
		m.state = Authenticated
		m.mu.Unlock()
		return true
	}

	m.mu.Lock()
	m.state = VerificationFailed
	m.mu.Unlock()

	notified := false
	if apiErr, ok := api.AsError(err); ok {
		notified = apiErr.Notified
	}
	m.log.Warn(ctx, "token verification failed", "error", err, "message", env.ErrorMessage(""))
	if !notified {
		m.notifier.Warning("Session expired", "Please log in again to continue.", 0)
	}

	// Local clear only; the token is already unusable remotely.
	m.clear(ctx)
	return false
}

// persist stores the profile, and the token with it when one was issued.
func (m *Manager) persist(ctx context.Context, token string, user *models.UserProfile) error {
	b, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if token == "" {
		return m.store.SaveUser(ctx, b)
	}
	return m.store.Save(ctx, token, b)
}

// InitializeFromStorage restores a persisted session. It reports whether a
// session was restored. Partial or undecodable records are wiped.
func (m *Manager) InitializeFromStorage(ctx context.Context) bool {
	token, terr := m.store.Token(ctx)
	raw, uerr := m.store.User(ctx)
	if terr != nil || uerr != nil {
		m.log.Error(ctx, "cannot read stored session", "error", errors.Join(terr, uerr))
		m.clear(ctx)
		return false
	}

	if token == "" && len(raw) == 0 {
		return false
	}

	var user *models.UserProfile
	if err := json.Unmarshal(raw, &user); err != nil || user == nil || token == "" {
		m.log.Warn(ctx, "discarding stored session", "error", err, "has_token", token != "")
		m.clear(ctx)
		return false
	}

	m.mu.Lock()
	m.user = user
	m.token = token
	m.state = Authenticated
	m.lastErr = ""
	m.mu.Unlock()

	m.log.Debug(ctx, "session restored", "user", user.Name)
	return true
}

func (m *Manager) Snapshot() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := Session{
		Token:     m.token,
		LastError: m.lastErr,
		IsLoading: m.inflight > 0,
		State:     m.state,
	}
	if m.user != nil {
		u := *m.user
		s.User = &u
	}
	return s
}

func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token != ""
}

func (m *Manager) UserName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return defaultUserName
	}
	return nameOr(m.user.Name)
}

func (m *Manager) UserAccount() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil || m.user.AccountNumber == "" {
		return defaultUserAccount
	}
	return m.user.AccountNumber
}

// UserInitials returns up to two upper-case initials of the user's name.
func (m *Manager) UserInitials() string {
	var b strings.Builder
	for _, part := range strings.Fields(m.UserName()) {
		r, _ := utf8.DecodeRuneInString(part)
		b.WriteRune(r)
		if utf8.RuneCountInString(b.String()) == 2 {
			break
		}
	}
	return strings.ToUpper(b.String())
}

// TokenExpiry reads the exp claim of the current token without verifying
// its signature. ok is false for opaque tokens or tokens without exp.
func (m *Manager) TokenExpiry() (exp time.Time, ok bool) {
	m.mu.RLock()
	token := m.token
	m.mu.RUnlock()
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	t, err := claims.GetExpirationTime()
	if err != nil || t == nil {
		return time.Time{}, false
	}
	return t.Time, true
}

func nameOr(name string) string {
	if strings.TrimSpace(name) == "" {
		return defaultUserName
	}
	return name
}
