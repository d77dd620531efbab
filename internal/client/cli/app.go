package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/dmitrijs2005/bankfront/internal/client/api"
	"github.com/dmitrijs2005/bankfront/internal/client/config"
	"github.com/dmitrijs2005/bankfront/internal/client/dashboard"
	"github.com/dmitrijs2005/bankfront/internal/client/navigation"
	"github.com/dmitrijs2005/bankfront/internal/client/services"
	"github.com/dmitrijs2005/bankfront/internal/client/session"
	"github.com/dmitrijs2005/bankfront/internal/client/storage"
	"github.com/dmitrijs2005/bankfront/internal/client/toast"
	"github.com/dmitrijs2005/bankfront/internal/filex"
	"github.com/dmitrijs2005/bankfront/internal/logging"
)

type App struct {
	config    *config.Config
	log       logging.Logger
	db        *sql.DB
	session   *session.Manager
	dashboard *dashboard.Store
	dashSvc   services.DashboardService
	users     services.UserService
	toasts    *toast.Store
	nav       *navigation.Navigator
	reader    *bufio.Reader
	out       io.Writer
}

// NewApp opens the local data file and wires every component.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	path, err := filex.EnsureParentDir(c.DataFile)
	if err != nil {
		return nil, fmt.Errorf("error preparing data file: %w", err)
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}
	return newApp(c, log, db, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, log logging.Logger, db *sql.DB, in io.Reader, out io.Writer) *App {
	sessions := storage.NewSessionStore(storage.NewSQLiteRepository(db))
	toasts := toast.NewStore(toast.WithDefaultDuration(c.ToastDuration))
	nav := navigation.NewNavigator(navigation.DefaultRoutes(), sessions)

	var a *App
	client := api.NewClient(c.APIBaseURL, c.RequestTimeout,
		api.WithSessionStore(sessions),
		api.WithNotifier(toasts),
		api.WithRedirector(nav),
		api.WithLogger(log),
		api.WithUnauthorizedHook(func(ctx context.Context) { a.expire(ctx) }),
	)

	dashSvc := services.NewDashboardService(client)

	a = &App{
		config:    c,
		log:       log,
		db:        db,
		session:   session.NewManager(client, sessions, toasts, log),
		dashboard: dashboard.NewStore(dashSvc, log),
		dashSvc:   dashSvc,
		users:     services.NewUserService(client),
		toasts:    toasts,
		nav:       nav,
		reader:    bufio.NewReader(in),
		out:       &syncWriter{w: out},
	}

	toasts.Subscribe(a.renderToast)
	nav.OnChange(func(from, to string) {
		log.Debug(context.Background(), "route changed", "from", from, "to", to)
	})
	return a
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) Close() error {
	return a.db.Close()
}

// Root restores a saved session, if any, and runs the REPL until exit.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the banking CLI (type 'help' for commands)")

	if a.session.InitializeFromStorage(ctx) {
		if a.session.VerifyToken(ctx) {
			a.goTo(ctx, navigation.PathHome)
			fmt.Fprintf(a.out, "Welcome back, %s\n", a.session.UserName())
		}
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

// expire forgets the signed-in user and every figure loaded for them.
func (a *App) expire(ctx context.Context) {
	a.session.Expire(ctx)
	a.dashboard.Clear()
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	s := a.nav.Current()
	if a.isLoggedIn() {
		s = a.session.UserName() + " " + s
	}
	return fmt.Sprintf("(%s)", s)
}

// goTo navigates and reports whether path itself was reached.
func (a *App) goTo(ctx context.Context, path string) bool {
	reached, err := a.nav.Push(ctx, path)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return false
	}
	return reached == path
}

// Go is the "go <route>" command.
func (a *App) Go(ctx context.Context, target string) error {
	reached, err := a.nav.Push(ctx, target)
	if err != nil {
		fmt.Fprintln(a.out, "Unknown route:", target)
		return err
	}
	r, _ := a.nav.Lookup(target)
	if reached != r.Path {
		fmt.Fprintln(a.out, "Please log in first.")
		return nil
	}
	fmt.Fprintln(a.out, "Now at", reached)
	return nil
}

func (a *App) renderToast(t toast.Toast) {
	line := fmt.Sprintf("[%s #%d] %s", strings.ToUpper(string(t.Type)), t.ID, t.Title)
	if t.Message != "" {
		line += ": " + t.Message
	}
	fmt.Fprintln(a.out, line)
}

// syncWriter serialises writes; toasts can be rendered from concurrent
// requests.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
