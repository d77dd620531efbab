package validation

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/bankfront/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegister() models.RegisterData {
	return models.RegisterData{
		Name:     "Ana Souza",
		Email:    "ana@example.com",
		CPF:      "123.456.789-01",
		Phone:    "(11) 98765-4321",
		Country:  "BR",
		Password: "abc123",
	}
}

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name       string
		creds      models.LoginCredentials
		wantFields []string
	}{
		{name: "ok formatted", creds: models.LoginCredentials{CPF: "123.456.789-01", Password: "x"}},
		{name: "ok digits", creds: models.LoginCredentials{CPF: "12345678901", Password: "x"}},
		{name: "short cpf", creds: models.LoginCredentials{CPF: "123.456", Password: "x"}, wantFields: []string{"cpf"}},
		{name: "long cpf", creds: models.LoginCredentials{CPF: "123456789012", Password: "x"}, wantFields: []string{"cpf"}},
		{name: "empty", creds: models.LoginCredentials{}, wantFields: []string{"cpf", "password"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLogin(tt.creds)
			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			fields := FieldErrors(err)
			assert.Len(t, fields, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.NotEmpty(t, fields[f], f)
			}
		})
	}
}

func TestValidateLogin_ShortCPFAlwaysHasMessage(t *testing.T) {
	for _, cpf := range []string{"1", "1234567890", "123.456.789-0", "abc"} {
		err := ValidateLogin(models.LoginCredentials{CPF: cpf, Password: "secret"})
		require.Error(t, err, cpf)
		assert.NotEmpty(t, FieldErrors(err)["cpf"], cpf)
		assert.NotEmpty(t, FirstMessage(err), cpf)
	}
}

func TestValidateRegister(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.RegisterData)
		wantField string
	}{
		{name: "valid", mutate: func(*models.RegisterData) {}},
		{name: "blank name", mutate: func(d *models.RegisterData) { d.Name = "  " }, wantField: "name"},
		{name: "bad email", mutate: func(d *models.RegisterData) { d.Email = "ana@" }, wantField: "email"},
		{name: "short cpf", mutate: func(d *models.RegisterData) { d.CPF = "123" }, wantField: "cpf"},
		{name: "short phone", mutate: func(d *models.RegisterData) { d.Phone = "1198765432" }, wantField: "phone"},
		{name: "unknown country", mutate: func(d *models.RegisterData) { d.Country = "XX" }, wantField: "country"},
		{name: "password too short", mutate: func(d *models.RegisterData) { d.Password = "abc" }, wantField: "password"},
		{name: "password too long", mutate: func(d *models.RegisterData) { d.Password = "abcdefghi" }, wantField: "password"},
		{name: "advisor missing", mutate: func(d *models.RegisterData) { d.HasAdvisor = true }, wantField: "advisorName"},
		{name: "advisor given", mutate: func(d *models.RegisterData) { d.HasAdvisor = true; d.AdvisorName = "Carlos" }},
		{name: "foreign phone skips BR check", mutate: func(d *models.RegisterData) { d.Country = "US"; d.Phone = "00000000000" }},
		{name: "invalid BR phone", mutate: func(d *models.RegisterData) { d.Phone = "00000000000" }, wantField: "phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validRegister()
			tt.mutate(&d)
			err := ValidateRegister(d)
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			fields := FieldErrors(err)
			assert.Len(t, fields, 1, fields)
			assert.NotEmpty(t, fields[tt.wantField])
		})
	}
}

func TestNormalize(t *testing.T) {
	c := NormalizeLogin(models.LoginCredentials{CPF: "123.456.789-01", Password: " p "})
	assert.Equal(t, "12345678901", c.CPF)
	assert.Equal(t, " p ", c.Password)

	d := validRegister()
	d.Country = " br "
	d.AdvisorName = "ignored"
	d = NormalizeRegister(d)
	assert.Equal(t, "12345678901", d.CPF)
	assert.Equal(t, "11987654321", d.Phone)
	assert.Equal(t, "BR", d.Country)
	assert.Empty(t, d.AdvisorName)
}

func TestFirstMessage(t *testing.T) {
	assert.Empty(t, FirstMessage(nil))

	err := ValidateLogin(models.LoginCredentials{})
	assert.Equal(t, "cpf: "+msgRequired, FirstMessage(err))
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "12345678901", OnlyDigits("123.456.789-01"))
	assert.Equal(t, "123.456.789-01", FormatCPF("12345678901"))
	assert.Equal(t, "123", FormatCPF("123"))
	assert.Equal(t, "", FormatCPF(""))

	assert.Equal(t, "(11) 98765-4321", FormatPhone("11987654321"))
	assert.Equal(t, "(11) 3456-7890", FormatPhone("1134567890"))
	assert.Equal(t, "12", FormatPhone("12"))

	assert.Equal(t, "+55 11 98765-4321", InternationalPhone("11987654321", "BR"))
	assert.Equal(t, "", InternationalPhone("", "BR"))
}

func TestHelpers(t *testing.T) {
	assert.True(t, Email("a@b.co"))
	assert.False(t, Email("a b@c"))
	assert.False(t, Email(""))

	assert.True(t, Phone("(11) 3456-7890"))
	assert.True(t, Phone("11987654321"))
	assert.False(t, Phone("123456789"))

	assert.True(t, Required(" x "))
	assert.False(t, Required("   "))

	assert.True(t, MinLength(" abc ", 3))
	assert.False(t, MinLength("ab", 3))
	assert.True(t, MaxLength("çãé", 3))
	assert.False(t, MaxLength("abcd", 3))

	assert.True(t, Date("2000-02-29"))
	assert.True(t, Date("29/02/2000"))
	assert.False(t, Date("2001-02-29"))
	assert.False(t, Date("tomorrow"))
}

func TestMinAge(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.True(t, MinAge(time.Date(2006, 6, 15, 0, 0, 0, 0, time.UTC), now, 18))
	assert.False(t, MinAge(time.Date(2006, 6, 16, 0, 0, 0, 0, time.UTC), now, 18))
	assert.False(t, MinAge(time.Date(2006, 7, 1, 0, 0, 0, 0, time.UTC), now, 18))
	assert.True(t, MinAge(time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), now, 18))
}
