package validation

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/asaskevich/govalidator"
	ozzo "github.com/go-ozzo/ozzo-validation"
	"github.com/nyaruka/phonenumbers"
)

// emailFormat checks syntax only; no DNS lookups.
var emailFormat = ozzo.NewStringRule(govalidator.IsEmail, "invalid email")

var notBlank = ozzo.By(func(value interface{}) error {
	s, _ := value.(string)
	if s != "" && strings.TrimSpace(s) == "" {
		return errors.New(msgRequired)
	}
	return nil
})

// digitCount accepts strings whose digit count, ignoring any formatting,
// lies in [min, max].
func digitCount(min, max int, message string) ozzo.Rule {
	return ozzo.By(func(value interface{}) error {
		s, _ := value.(string)
		n := len(OnlyDigits(s))
		if n < min || n > max {
			return errors.New(message)
		}
		return nil
	})
}

func validPhoneIn(region string) ozzo.Rule {
	return ozzo.By(func(value interface{}) error {
		s, _ := value.(string)
		if !ValidPhoneNumber(s, region) {
			return errors.New("invalid phone number")
		}
		return nil
	})
}

// ValidPhoneNumber reports whether phone is a dialable number in region.
func ValidPhoneNumber(phone, region string) bool {
	num, err := phonenumbers.Parse(OnlyDigits(phone), region)
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumberForRegion(num, region)
}

// Email reports whether s looks like an email address.
func Email(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && govalidator.IsEmail(s)
}

// Phone accepts 10 or 11 digits, ignoring formatting.
func Phone(s string) bool {
	n := len(OnlyDigits(s))
	return n >= 10 && n <= 11
}

func Required(s string) bool {
	return strings.TrimSpace(s) != ""
}

func MinLength(s string, min int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) >= min
}

func MaxLength(s string, max int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) <= max
}

// DateLayouts are the formats Date accepts, tried in order.
var DateLayouts = []string{"2006-01-02", time.RFC3339, "02/01/2006"}

// ParseDate parses s with the first matching layout in DateLayouts.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range DateLayouts {
		if ozzo.Date(layout).Validate(s) != nil {
			continue
		}
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func Date(s string) bool {
	_, ok := ParseDate(s)
	return ok
}

// MinAge reports whether someone born on birth is at least minAge years old
// on the date now.
func MinAge(birth, now time.Time, minAge int) bool {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age >= minAge
}
