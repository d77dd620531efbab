// Package validation holds the form schemas used before any credentials
// leave the client, plus the display formatters for CPF and phone numbers.
package validation

import (
	"strings"

	"github.com/dmitrijs2005/bankfront/internal/client/models"
	ozzo "github.com/go-ozzo/ozzo-validation"
)

const (
	CPFDigits   = 11
	PhoneDigits = 11

	PasswordMin = 6
	PasswordMax = 8
)

// Countries accepted by the registration form.
var Countries = []string{"BR", "US", "PT", "AR", "CL", "UY", "ES", "FR", "DE", "OTHER"}

const msgRequired = "this field is required"

// NormalizeLogin strips formatting from the CPF so the value sent to the API
// is digits only.
func NormalizeLogin(c models.LoginCredentials) models.LoginCredentials {
	c.CPF = OnlyDigits(c.CPF)
	return c
}

// NormalizeRegister strips formatting from CPF and phone and trims the
// free-text fields.
func NormalizeRegister(d models.RegisterData) models.RegisterData {
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.TrimSpace(d.Email)
	d.CPF = OnlyDigits(d.CPF)
	d.Phone = OnlyDigits(d.Phone)
	d.Country = strings.ToUpper(strings.TrimSpace(d.Country))
	d.AdvisorName = strings.TrimSpace(d.AdvisorName)
	if !d.HasAdvisor {
		d.AdvisorName = ""
	}
	return d
}

// ValidateLogin checks the login form. The returned error, when not nil, is
// an ozzo Errors map keyed by JSON field name.
func ValidateLogin(c models.LoginCredentials) error {
	return ozzo.ValidateStruct(&c,
		ozzo.Field(&c.CPF,
			ozzo.Required.Error(msgRequired),
			digitCount(CPFDigits, CPFDigits, "CPF must have 11 digits"),
		),
		ozzo.Field(&c.Password,
			ozzo.Required.Error(msgRequired),
		),
	)
}

// ValidateRegister checks the registration form.
func ValidateRegister(d models.RegisterData) error {
	countries := make([]interface{}, len(Countries))
	for i, c := range Countries {
		countries[i] = c
	}

	phone := []ozzo.Rule{
		ozzo.Required.Error(msgRequired),
		digitCount(PhoneDigits, PhoneDigits, "phone must have 11 digits"),
	}
	if strings.EqualFold(strings.TrimSpace(d.Country), "BR") {
		phone = append(phone, validPhoneIn("BR"))
	}

	var advisor []ozzo.Rule
	if d.HasAdvisor {
		advisor = append(advisor, ozzo.Required.Error("enter the advisor's name"))
	}

	return ozzo.ValidateStruct(&d,
		ozzo.Field(&d.Name, ozzo.Required.Error(msgRequired), notBlank),
		ozzo.Field(&d.Email,
			ozzo.Required.Error(msgRequired),
			emailFormat,
		),
		ozzo.Field(&d.CPF,
			ozzo.Required.Error(msgRequired),
			digitCount(CPFDigits, CPFDigits, "CPF must have 11 digits"),
		),
		ozzo.Field(&d.Phone, phone...),
		ozzo.Field(&d.Country,
			ozzo.Required.Error("select a country"),
			ozzo.In(countries...).Error("invalid country"),
		),
		ozzo.Field(&d.Password,
			ozzo.Required.Error(msgRequired),
			ozzo.RuneLength(PasswordMin, PasswordMax).Error("password must have 6 to 8 characters"),
		),
		ozzo.Field(&d.AdvisorName, advisor...),
	)
}
