package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/Rohitwaghmare7/veltro-console/internal/api"
	"github.com/Rohitwaghmare7/veltro-console/internal/auth"
	"github.com/Rohitwaghmare7/veltro-console/internal/automations"
	"github.com/Rohitwaghmare7/veltro-console/internal/bookings"
	"github.com/Rohitwaghmare7/veltro-console/internal/boot"
	"github.com/Rohitwaghmare7/veltro-console/internal/config"
	"github.com/Rohitwaghmare7/veltro-console/internal/integrations"
	"github.com/Rohitwaghmare7/veltro-console/internal/inventory"
	"github.com/Rohitwaghmare7/veltro-console/internal/leads"
	"github.com/Rohitwaghmare7/veltro-console/internal/localstate"
	"github.com/Rohitwaghmare7/veltro-console/internal/logger"
	"github.com/Rohitwaghmare7/veltro-console/internal/rbac"
	"github.com/Rohitwaghmare7/veltro-console/internal/session"
	"github.com/Rohitwaghmare7/veltro-console/internal/staff"
	"github.com/Rohitwaghmare7/veltro-console/internal/version"
	"github.com/Rohitwaghmare7/veltro-console/internal/voice"
)

type cliOptions struct {
	configPath  string
	email       string
	password    string
	token       string
	apiBaseURL  string
	timeout     time.Duration
	showVersion bool
}

func main() {
	opts := parseFlags()
	if opts.showVersion {
		fmt.Printf("Veltro CLI %s\n", version.GetInfo())
		return
	}
	ctx := context.Background()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	rt, err := boot.ProvideRuntimeConfig(cfg)
	if err != nil {
		logger.Error("runtime config", slog.Any("error", err))
		os.Exit(1)
	}
	if strings.TrimSpace(opts.apiBaseURL) != "" {
		rt.APIBaseURL = strings.TrimRight(opts.apiBaseURL, "/")
	}

	sessions := session.NewStore()
	client, err := api.NewClient(logger.L, rt.APIBaseURL, opts.timeout, sessions)
	if err != nil {
		logger.Error("api client", slog.Any("error", err))
		os.Exit(1)
	}
	local, err := localstate.Open(logger.L, rt.StatePath)
	if err != nil {
		logger.Error("local state", slog.Any("error", err))
		os.Exit(1)
	}
	authService := auth.NewService(logger.L, client, sessions, local)

	if strings.TrimSpace(opts.token) != "" {
		sessions.Set(opts.token, session.User{})
	} else if !authService.Restore() {
		if opts.email == "" {
			logger.Error("no cached session; pass -email and -password or -token")
			os.Exit(1)
		}
		password := opts.password
		if password == "" {
			password = os.Getenv("VELTRO_PASSWORD")
		}
		if _, err := authService.Login(ctx, opts.email, password); err != nil {
			logger.Error("login failed", slog.Any("error", err))
			os.Exit(1)
		}
	}

	command := "bookings"
	if args := flag.Args(); len(args) > 0 {
		command = args[0]
	}

	guard := rbac.NewGuard(logger.L, sessions, staff.NewService(client))

	switch command {
	case "bookings":
		err = listBookings(ctx, client, guard)
	case "leads":
		err = listLeads(ctx, client, guard)
	case "inventory":
		err = listInventory(ctx, client, guard)
	case "staff":
		err = listStaff(ctx, client, guard)
	case "automations":
		err = listAutomations(ctx, client, guard)
	case "integrations":
		err = listIntegrations(ctx, client)
	case "onboard":
		err = runOnboarding(ctx, client, rt.SpeechGuard)
	case "logout":
		authService.Logout(ctx)
	default:
		err = fmt.Errorf("unknown command %q", command)
	}
	if err != nil {
		logger.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func parseFlags() cliOptions {
	var opts cliOptions
	defaultConfig := os.Getenv("CONFIG_PATH")
	if strings.TrimSpace(defaultConfig) == "" {
		defaultConfig = config.DefaultConfigPath
	}

	flag.StringVar(&opts.configPath, "config", defaultConfig, "Path to config.toml")
	flag.StringVar(&opts.email, "email", "", "Email for login")
	flag.StringVar(&opts.password, "password", "", "Password for login (or set VELTRO_PASSWORD)")
	flag.StringVar(&opts.token, "token", "", "Bearer token (skips login)")
	flag.StringVar(&opts.apiBaseURL, "api-url", "", "Backend API base URL")
	flag.DurationVar(&opts.timeout, "timeout", 30*time.Second, "Request timeout")
	flag.BoolVar(&opts.showVersion, "version", false, "Show version information")
	flag.Parse()

	return opts
}

// requireAccess runs the access guard the way a dashboard page would
// before rendering.
func requireAccess(ctx context.Context, guard *rbac.Guard, perms ...staff.Permission) error {
	decision := guard.Check(ctx, perms)
	switch decision.Outcome {
	case rbac.OutcomeAuthorized:
		return nil
	case rbac.OutcomeRedirectLogin:
		return fmt.Errorf("not signed in")
	default:
		return fmt.Errorf("%s", decision.Message)
	}
}

func listBookings(ctx context.Context, client *api.Client, guard *rbac.Guard) error {
	if err := requireAccess(ctx, guard, staff.PermViewBookings, staff.PermManageBookings); err != nil {
		return err
	}
	store := bookings.NewStore(logger.L, bookings.NewService(client))
	if err := store.Fetch(ctx); err != nil {
		return err
	}
	items := store.Bookings()
	if len(items) == 0 {
		fmt.Println("No bookings.")
		return nil
	}
	for _, b := range items {
		fmt.Printf("%-24s %-20s %-12s %s %s\n", b.ID, b.ClientName, b.Status, b.Date, b.TimeSlot)
	}
	return nil
}

func listLeads(ctx context.Context, client *api.Client, guard *rbac.Guard) error {
	if err := requireAccess(ctx, guard, staff.PermViewLeads, staff.PermManageLeads); err != nil {
		return err
	}
	store := leads.NewStore(logger.L, leads.NewService(client))
	if err := store.Fetch(ctx); err != nil {
		return err
	}
	items := store.Leads()
	if len(items) == 0 {
		fmt.Println("No leads.")
		return nil
	}
	for _, l := range items {
		fmt.Printf("%-24s %-20s %-10s %-10s due %s\n",
			l.ID, l.Name, l.Status, l.Decoration.Priority, l.Decoration.DueDate.Format("2006-01-02"))
	}
	return nil
}

func listInventory(ctx context.Context, client *api.Client, guard *rbac.Guard) error {
	if err := requireAccess(ctx, guard, staff.PermViewInventory, staff.PermManageInventory); err != nil {
		return err
	}
	store := inventory.NewStore(logger.L, inventory.NewService(client))
	if err := store.Fetch(ctx); err != nil {
		return err
	}
	items := store.Items()
	if len(items) == 0 {
		fmt.Println("No inventory.")
		return nil
	}
	for _, item := range items {
		fmt.Printf("%-24s %-24s qty %d\n", item.ID, item.Name, item.Quantity)
	}
	return nil
}

func listStaff(ctx context.Context, client *api.Client, guard *rbac.Guard) error {
	if err := requireAccess(ctx, guard, staff.PermManageTeam); err != nil {
		return err
	}
	store := staff.NewStore(logger.L, staff.NewService(client))
	if err := store.Fetch(ctx); err != nil {
		return err
	}
	members := store.Members()
	if len(members) == 0 {
		fmt.Println("No team members.")
		return nil
	}
	for _, m := range members {
		fmt.Printf("%-24s %-20s %-8s %s\n", m.ID, m.Name, m.Role, m.Status)
	}
	return nil
}

func listAutomations(ctx context.Context, client *api.Client, guard *rbac.Guard) error {
	if err := requireAccess(ctx, guard, staff.PermManageAutomations); err != nil {
		return err
	}
	store := automations.NewStore(logger.L, automations.NewService(client))
	if err := store.Fetch(ctx); err != nil {
		return err
	}
	items := store.Items()
	if len(items) == 0 {
		fmt.Println("No automations.")
		return nil
	}
	for _, a := range items {
		d := automations.DescriptorFor(a.Type)
		enabled := "off"
		if a.Enabled {
			enabled = "on"
		}
		fmt.Printf("%-24s %-20s [%s] runs %d\n", a.ID, d.Label, enabled, a.RunCount)
	}
	return nil
}

func listIntegrations(ctx context.Context, client *api.Client) error {
	store := integrations.NewStore(logger.L, integrations.NewService(client))
	if err := store.Fetch(ctx); err != nil {
		return err
	}
	for _, status := range store.Statuses() {
		line := fmt.Sprintf("%-12s %s", status.Provider, status.State)
		if status.LastSync != nil {
			line += " (synced " + status.LastSync.Format(time.RFC3339) + ")"
		}
		if status.LastError != "" {
			line += " error: " + status.LastError
		}
		fmt.Println(line)
	}
	return nil
}

// runOnboarding drives the voice setup steps with the terminal standing in
// for the speech devices: prompts are printed, answers are typed.
func runOnboarding(ctx context.Context, client *api.Client, guardDelay time.Duration) error {
	reader := bufio.NewReader(os.Stdin)
	extractor := voice.NewAPIExtractor(client)

	for _, step := range voice.DefaultSteps() {
		done := make(chan struct{})
		hook := voice.NewHook(logger.L, step,
			&consoleSynth{},
			&consoleRecognizer{reader: reader},
			extractor,
			guardDelay,
			func(s voice.StepConfig, extracted map[string]string) {
				for field, value := range extracted {
					fmt.Printf("  %s = %s\n", field, value)
				}
				close(done)
			},
		)
		if err := hook.Start(ctx); err != nil {
			return err
		}
		deadline := time.After(2 * time.Minute)
	wait:
		for {
			select {
			case <-done:
				break wait
			case <-deadline:
				hook.Reset()
				return fmt.Errorf("step %s timed out", step.ID)
			case <-time.After(50 * time.Millisecond):
				if hook.State() == voice.StateError {
					return fmt.Errorf("step %s: %s", step.ID, hook.LastError())
				}
			}
		}
	}
	fmt.Println("Setup complete.")
	return nil
}

type consoleSynth struct{}

func (s *consoleSynth) Supported() bool { return true }

func (s *consoleSynth) Speak(_ context.Context, text string, done func()) error {
	fmt.Println(text)
	done()
	return nil
}

func (s *consoleSynth) Stop() {}

type consoleRecognizer struct {
	reader *bufio.Reader
}

func (r *consoleRecognizer) Supported() bool { return true }

func (r *consoleRecognizer) Start(_ context.Context, onTranscript func(string), onStopped func()) error {
	go func() {
		line, _ := r.reader.ReadString('\n')
		onTranscript(strings.TrimSpace(line))
		onStopped()
	}()
	return nil
}

func (r *consoleRecognizer) Stop() {}
