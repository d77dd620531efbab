// Package models defines the client-side data shapes exchanged with the
// banking API and kept in the local store.
package models

// UserProfile is the account holder as returned by the API. It is kept in
// the local store as JSON under the "user" key.
type UserProfile struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name"`
	Email         string `json:"email,omitempty"`
	CPF           string `json:"cpf,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Country       string `json:"country,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	Branch        string `json:"branch,omitempty"`
	ClientSince   string `json:"clientSince,omitempty"`
	Tier          string `json:"tier,omitempty"`
	HasAdvisor    bool   `json:"hasAdvisor,omitempty"`
	AdvisorName   string `json:"advisorName,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`
}

// LoginCredentials is the login form. CPF is the national id; it is sent
// with non-digits stripped.
type LoginCredentials struct {
	CPF      string `json:"cpf"`
	Password string `json:"password"`
}

// RegisterData is the registration form.
type RegisterData struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	CPF         string `json:"cpf"`
	Phone       string `json:"phone"`
	Country     string `json:"country"`
	Password    string `json:"password"`
	HasAdvisor  bool   `json:"hasAdvisor"`
	AdvisorName string `json:"advisorName,omitempty"`
}

// AuthResponse is the payload of a successful login, register or verify
// call. Verify may omit the token.
type AuthResponse struct {
	User    *UserProfile `json:"user"`
	Token   string       `json:"token,omitempty"`
	Message string       `json:"message,omitempty"`
}

// Preferences are free-form user settings.
type Preferences map[string]any
