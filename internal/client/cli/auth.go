package cli

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/dmitrijs2005/bankfront/internal/client/models"
	"github.com/dmitrijs2005/bankfront/internal/client/navigation"
	"github.com/dmitrijs2005/bankfront/internal/client/session"
	"github.com/dmitrijs2005/bankfront/internal/client/validation"
)

// getSimpleText, getTextOr, getYesNo and getPassword are indirections used
// to facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getTextOr     = GetTextOr
	getYesNo      = GetYesNo
	getPassword   = GetPassword
)

// Register walks the user through the registration form and, on success,
// moves to the home route. The outcome itself is reported by a toast;
// field-level problems are listed below it.
func (a *App) Register(ctx context.Context) error {
	a.goTo(ctx, navigation.PathRegister)

	var d models.RegisterData
	var err error
	if d.Name, err = getSimpleText(a.reader, "Full name", a.out); err != nil {
		return err
	}
	if d.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if d.CPF, err = getSimpleText(a.reader, "CPF", a.out); err != nil {
		return err
	}
	if d.Phone, err = getSimpleText(a.reader, "Mobile phone", a.out); err != nil {
		return err
	}
	if d.Country, err = getTextOr(a.reader, "Country", "BR", a.out); err != nil {
		return err
	}
	if d.HasAdvisor, err = getYesNo(a.reader, "Do you have an investment advisor?", a.out); err != nil {
		return err
	}
	if d.HasAdvisor {
		if d.AdvisorName, err = getSimpleText(a.reader, "Advisor name", a.out); err != nil {
			return err
		}
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)
	d.Password = string(password)

	res := a.session.Register(ctx, d)
	return a.afterAuth(ctx, res)
}

// Login prompts for CPF and password and authenticates.
func (a *App) Login(ctx context.Context) error {
	a.goTo(ctx, navigation.PathLogin)

	cpf, err := getSimpleText(a.reader, "Enter CPF", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	res := a.session.Login(ctx, models.LoginCredentials{CPF: cpf, Password: string(password)})
	return a.afterAuth(ctx, res)
}

func (a *App) afterAuth(ctx context.Context, res session.Result) error {
	if !res.OK {
		a.printFieldErrors(res.Fields)
		return fmt.Errorf("%s: %s", res.Code, res.Reason)
	}
	a.goTo(ctx, navigation.PathHome)
	return nil
}

func (a *App) printFieldErrors(fields map[string]string) {
	if len(fields) < 2 {
		return
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(a.out, "  %s: %s\n", k, fields[k])
	}
}

// Logout ends the session locally and remotely and drops cached data.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.dashboard.Clear()
	a.goTo(ctx, navigation.PathLogin)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Verify checks the saved token against the server.
func (a *App) Verify(ctx context.Context) error {
	if a.session.VerifyToken(ctx) {
		fmt.Fprintln(a.out, "Session is valid.")
		return nil
	}
	a.dashboard.Clear()
	a.goTo(ctx, navigation.PathLogin)
	fmt.Fprintln(a.out, "No valid session.")
	return nil
}

// WhoAmI prints the signed-in user.
func (a *App) WhoAmI(ctx context.Context) error {
	s := a.session.Snapshot()
	if s.User == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	region := s.User.Country
	if region == "" || region == "OTHER" {
		region = "BR"
	}

	fmt.Fprintf(a.out, "%s (%s)\n", a.session.UserName(), a.session.UserInitials())
	fmt.Fprintf(a.out, "Account: %s", a.session.UserAccount())
	if s.User.Branch != "" {
		fmt.Fprintf(a.out, "  Branch: %s", s.User.Branch)
	}
	fmt.Fprintln(a.out)
	if s.User.CPF != "" {
		fmt.Fprintln(a.out, "CPF:", validation.FormatCPF(s.User.CPF))
	}
	if s.User.Phone != "" {
		fmt.Fprintln(a.out, "Phone:", validation.InternationalPhone(s.User.Phone, region))
	}
	if s.User.Tier != "" {
		fmt.Fprintln(a.out, "Tier:", s.User.Tier)
	}
	if exp, ok := a.session.TokenExpiry(); ok {
		fmt.Fprintf(a.out, "Session expires: %s\n", exp.Local().Format(time.RFC1123))
	}
	return nil
}
