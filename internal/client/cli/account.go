package cli

import (
	"context"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/dmitrijs2005/bankfront/internal/client/models"
	"github.com/dmitrijs2005/bankfront/internal/client/navigation"
	"github.com/dustin/go-humanize"
)

const defaultCurrency = "BRL"

func money(currency string, v float64) string {
	if currency == "" {
		currency = defaultCurrency
	}
	return currency + " " + humanize.FormatFloat("#,###.##", v)
}

// requireRoute enters a protected route, telling the user when the guard
// sent them to the login screen instead.
func (a *App) requireRoute(ctx context.Context, path string) bool {
	if a.goTo(ctx, path) {
		return true
	}
	fmt.Fprintln(a.out, "Please log in first.")
	return false
}

// Dashboard loads summary, balance and recent transactions and prints them.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.requireRoute(ctx, navigation.PathDashboard) {
		return nil
	}
	if err := a.dashboard.Fetch(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not load the dashboard.")
		return err
	}

	currency := defaultCurrency
	if b := a.dashboard.Balance(); b != nil && b.Currency != "" {
		currency = b.Currency
	}

	fmt.Fprintf(a.out, "Hello, %s\n", a.session.UserName())
	fmt.Fprintln(a.out, "Total balance:    ", money(currency, a.dashboard.TotalBalance()))
	fmt.Fprintln(a.out, "Available balance:", money(currency, a.dashboard.AvailableBalance()))
	if a.dashboard.HasNotifications() {
		fmt.Fprintf(a.out, "You have %d new notification(s).\n", a.dashboard.NotificationCount())
	}
	a.printTransactions(currency, a.dashboard.Transactions())
	return nil
}

func (a *App) Balance(ctx context.Context) error {
	if !a.requireRoute(ctx, navigation.PathHome) {
		return nil
	}
	if err := a.dashboard.Fetch(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not load the balance.")
		return err
	}
	b := a.dashboard.Balance()
	if b == nil {
		fmt.Fprintln(a.out, "No balance information.")
		return nil
	}
	fmt.Fprintln(a.out, "Checking available:", money(b.Currency, b.Checking.Available))
	if b.Checking.Blocked != 0 {
		fmt.Fprintln(a.out, "Checking blocked:  ", money(b.Currency, b.Checking.Blocked))
	}
	if b.Savings != nil {
		fmt.Fprintln(a.out, "Savings available: ", money(b.Currency, b.Savings.Available))
	}
	return nil
}

// Transactions lists the latest movements; limit <= 0 uses the service
// default.
func (a *App) Transactions(ctx context.Context, limit int) error {
	if !a.requireRoute(ctx, navigation.PathHome) {
		return nil
	}
	txs, err := a.dashSvc.RecentTransactions(ctx, limit)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load transactions.")
		return err
	}
	a.printTransactions(defaultCurrency, txs)
	return nil
}

func (a *App) printTransactions(currency string, txs []models.Transaction) {
	if len(txs) == 0 {
		fmt.Fprintln(a.out, "No recent transactions.")
		return
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tDESCRIPTION\tCATEGORY\tAMOUNT")
	for _, t := range txs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.Date, t.Description, t.Category, money(currency, t.Amount))
	}
	_ = tw.Flush()
}

func (a *App) Investments(ctx context.Context) error {
	if !a.requireRoute(ctx, navigation.PathHome) {
		return nil
	}
	if err := a.dashboard.FetchInvestments(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not load investments.")
		return err
	}
	inv := a.dashboard.Investments()
	if len(inv) == 0 {
		fmt.Fprintln(a.out, "No investments.")
		return nil
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTYPE\tAMOUNT\tYIELD")
	for _, i := range inv {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f%%\n", i.Name, i.Type, money(defaultCurrency, i.Amount), i.Yield)
	}
	return tw.Flush()
}

func (a *App) Cards(ctx context.Context) error {
	if !a.requireRoute(ctx, navigation.PathHome) {
		return nil
	}
	cards := a.dashboard.FetchCreditCards(ctx)
	if len(cards) == 0 {
		fmt.Fprintln(a.out, "No credit cards.")
		return nil
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CARD\tLIMIT\tAVAILABLE\tDUE")
	for _, c := range cards {
		fmt.Fprintf(tw, "%s **** %s\t%s\t%s\t%s\n", c.Brand, c.Last4, money(defaultCurrency, c.Limit), money(defaultCurrency, c.Available), c.DueDate)
	}
	return tw.Flush()
}

// Profile prints the profile as the server currently has it.
func (a *App) Profile(ctx context.Context) error {
	if !a.requireRoute(ctx, navigation.PathHome) {
		return nil
	}
	p, err := a.users.Profile(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load the profile.")
		return err
	}
	if p == nil {
		fmt.Fprintln(a.out, "No profile data.")
		return nil
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, row := range [][2]string{
		{"Name", p.Name},
		{"Email", p.Email},
		{"Country", p.Country},
		{"Account", p.AccountNumber},
		{"Branch", p.Branch},
		{"Client since", p.ClientSince},
		{"Tier", p.Tier},
		{"Advisor", p.AdvisorName},
	} {
		if row[1] != "" {
			fmt.Fprintf(tw, "%s:\t%s\n", row[0], row[1])
		}
	}
	return tw.Flush()
}

func (a *App) Preferences(ctx context.Context) error {
	if !a.requireRoute(ctx, navigation.PathHome) {
		return nil
	}
	prefs, err := a.users.Preferences(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load preferences.")
		return err
	}
	if len(prefs) == 0 {
		fmt.Fprintln(a.out, "No preferences set.")
		return nil
	}
	keys := make([]string, 0, len(prefs))
	for k := range prefs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(a.out, "%s = %v\n", k, prefs[k])
	}
	return nil
}
