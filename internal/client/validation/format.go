package validation

import (
	"strings"
	"unicode"

	"github.com/nyaruka/phonenumbers"
)

func OnlyDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// FormatCPF renders 11 digits as 000.000.000-00. Anything else is returned
// unchanged.
func FormatCPF(cpf string) string {
	d := OnlyDigits(cpf)
	if len(d) != CPFDigits {
		return cpf
	}
	return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
}

// FormatPhone renders a Brazilian number as (00) 00000-0000, or
// (00) 0000-0000 for landlines. Anything else is returned unchanged.
func FormatPhone(phone string) string {
	d := OnlyDigits(phone)
	switch len(d) {
	case 11:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	case 10:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	default:
		return phone
	}
}

// InternationalPhone formats phone in international notation for region,
// falling back to FormatPhone when it cannot be parsed.
func InternationalPhone(phone, region string) string {
	if strings.IndexFunc(phone, unicode.IsDigit) < 0 {
		return phone
	}
	num, err := phonenumbers.Parse(OnlyDigits(phone), region)
	if err != nil {
		return FormatPhone(phone)
	}
	return phonenumbers.Format(num, phonenumbers.INTERNATIONAL)
}
