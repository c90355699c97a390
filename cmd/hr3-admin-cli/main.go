package main

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hr3-suite/hr3-admin/config"
	"github.com/hr3-suite/hr3-admin/internal/bootstrap"
	"github.com/hr3-suite/hr3-admin/internal/core"
	"github.com/hr3-suite/hr3-admin/internal/data"
	"github.com/hr3-suite/hr3-admin/internal/devseed"
	domainauth "github.com/hr3-suite/hr3-admin/internal/domain/auth"
	"github.com/hr3-suite/hr3-admin/internal/domain/model"
	"github.com/hr3-suite/hr3-admin/internal/integration"
	"github.com/hr3-suite/hr3-admin/internal/listview"
	"github.com/hr3-suite/hr3-admin/internal/util"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Config config.AppConfig
}

const (
	defaultCommandTimeout = 5 * time.Minute
	sessionKeyPrefix      = "hr3:session:"
)

func main() {
	logger := bootstrap.InitLogger()

	if len(os.Args) < 2 {
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when no command is provided
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			logger.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when command is unknown
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logger.ErrorContext(context.Background(), "load config", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal configuration load failure to shell scripts
	}

	cmdCtx := &commandContext{
		Ctx:    context.Background(),
		Logger: logger,
		Config: cfg,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.ErrorContext(cmdCtx.Ctx, "command failed", "command", cmdName, "error", runErr)
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}

func commands() map[string]command {
	return map[string]command{
		"migrate": {
			name:        "migrate",
			description: "Run database migrations",
			run:         runMigrationsCmd,
		},
		"db-reset": {
			name:        "db-reset",
			description: "Drop the database schema, run migrations, and optionally seed data",
			run:         runDBReset,
		},
		"db-seed": {
			name:        "db-seed",
			description: "Run database migrations and seed development data",
			run:         runDBSeed,
		},
		"import-benefits": {
			name:        "import-benefits",
			description: "Import benefit plans from an external HR system list endpoint",
			run:         runImportBenefits,
		},
		"create-user": {
			name:        "create-user",
			description: "Create a login account on the configured HR instance",
			run:         runCreateUser,
		},
		"list-users": {
			name:        "list-users",
			description: "List login accounts",
			run:         runListUsers,
		},
		"list-sessions": {
			name:        "list-sessions",
			description: "Inspect active sessions in Redis",
			run:         runListSessions,
		},
		"clear-sessions": {
			name:        "clear-sessions",
			description: "Delete all active sessions from Redis, forcing re-login",
			run:         runClearSessions,
		},
	}
}

func printUsage() error {
	if err := writef(os.Stdout, "Usage: hr3-admin-cli <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(os.Stdout, "Available commands:\n"); err != nil {
		return err
	}
	names := make([]string, 0, len(commands()))
	for name := range commands() {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c := commands()[name]
		if err := writef(os.Stdout, "  %-16s %s\n", c.name, c.description); err != nil {
			return err
		}
	}
	return nil
}

type migrateOptions struct {
	Timeout time.Duration
}

type dbResetOptions struct {
	Timeout     time.Duration
	Yes         bool
	Seed        bool
	AllowRemote bool
}

type dbSeedOptions struct {
	Timeout     time.Duration
	AllowRemote bool
}

type importBenefitsOptions struct {
	Timeout  time.Duration
	URL      string
	Path     string
	ListPath string
	DryRun   bool
}

type createUserOptions struct {
	Timeout   time.Duration
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
	Hr        string
}

type listUsersOptions struct {
	Page     int
	PageSize int
}

type clearSessionsOptions struct {
	Yes bool
}

func runMigrationsCmd(cmdCtx *commandContext, args []string) error {
	opts, err := parseMigrateFlags(args)
	if err != nil {
		return err
	}

	return withDatabase(cmdCtx, opts.Timeout, func(ctx context.Context, db *sql.DB) error {
		cmdCtx.Logger.Info("running database migrations")
		if migrateErr := bootstrap.RunMigrations(ctx, db, cmdCtx.Logger); migrateErr != nil {
			return fmt.Errorf("run migrations: %w", migrateErr)
		}
		cmdCtx.Logger.Info("migrations completed successfully")
		return nil
	})
}

func runDBReset(cmdCtx *commandContext, args []string) error {
	opts, err := parseDBResetFlags(args)
	if err != nil {
		return err
	}

	target := fmt.Sprintf(
		"database %q on %s:%d",
		cmdCtx.Config.Postgres.Name,
		cmdCtx.Config.Postgres.Host,
		cmdCtx.Config.Postgres.Port,
	)

	remote, err := guardRemoteHost(cmdCtx, opts.AllowRemote)
	if err != nil {
		return err
	}
	yes := opts.Yes && !remote
	warning := "WARNING: this will drop and recreate the public schema for " + target + "."
	if confirmErr := confirmAction(yes, warning); confirmErr != nil {
		return confirmErr
	}

	return withDatabase(cmdCtx, opts.Timeout, func(ctx context.Context, db *sql.DB) error {
		cmdCtx.Logger.Info("dropping public schema", "database", cmdCtx.Config.Postgres.Name)
		if resetErr := resetDatabase(ctx, db, &cmdCtx.Config.Postgres); resetErr != nil {
			return resetErr
		}

		cmdCtx.Logger.Info("re-running database migrations")
		if migrateErr := bootstrap.RunMigrations(ctx, db, cmdCtx.Logger); migrateErr != nil {
			return fmt.Errorf("run migrations: %w", migrateErr)
		}

		if opts.Seed {
			cmdCtx.Logger.Info("seeding development data after reset")
			if seedErr := devseed.Run(ctx, devseed.NewServices(db), cmdCtx.Logger); seedErr != nil {
				return fmt.Errorf("seed data: %w", seedErr)
			}
		}

		cmdCtx.Logger.Info("database reset completed successfully")
		return nil
	})
}

func runDBSeed(cmdCtx *commandContext, args []string) error {
	opts, err := parseDBSeedFlags(args)
	if err != nil {
		return err
	}

	if _, guardErr := guardRemoteHost(cmdCtx, opts.AllowRemote); guardErr != nil {
		return guardErr
	}

	return withDatabase(cmdCtx, opts.Timeout, func(ctx context.Context, db *sql.DB) error {
		cmdCtx.Logger.Info("ensuring database migrations are current")
		if migrateErr := bootstrap.RunMigrations(ctx, db, cmdCtx.Logger); migrateErr != nil {
			return fmt.Errorf("run migrations: %w", migrateErr)
		}

		cmdCtx.Logger.Info("seeding development data")
		if seedErr := devseed.Run(ctx, devseed.NewServices(db), cmdCtx.Logger); seedErr != nil {
			return fmt.Errorf("seed data: %w", seedErr)
		}

		cmdCtx.Logger.Info("database seeding completed successfully")
		return nil
	})
}

func runImportBenefits(cmdCtx *commandContext, args []string) error {
	opts, err := parseImportBenefitsFlags(args)
	if err != nil {
		return err
	}

	client, err := integration.NewClient(integration.ClientOptions{
		BaseURL: opts.URL,
		Logger:  cmdCtx.Logger,
	})
	if err != nil {
		return err
	}

	return withDatabase(cmdCtx, opts.Timeout, func(ctx context.Context, db *sql.DB) error {
		summary, importErr := importBenefits(ctx, importBenefitsParams{
			Fetch: func(ctx context.Context) ([]model.CreateBenefitRequest, error) {
				return integration.FetchListAs[model.CreateBenefitRequest](ctx, client, integration.FetchListParams{
					Path: opts.Path,
					Expr: opts.ListPath,
				})
			},
			Repo:   data.NewBenefitRepo(db),
			Logger: cmdCtx.Logger,
			DryRun: opts.DryRun,
		})
		if importErr != nil {
			return importErr
		}

		cmdCtx.Logger.Info("benefit import finished",
			"imported", summary.Imported,
			"skipped", summary.Skipped,
			"failed", summary.Failed,
			"dry_run", opts.DryRun,
		)
		if summary.Failed > 0 {
			return fmt.Errorf("%d benefit(s) failed to import; check logs", summary.Failed)
		}
		return nil
	})
}

type importBenefitsParams struct {
	Fetch  func(context.Context) ([]model.CreateBenefitRequest, error)
	Repo   core.BenefitRepository
	Logger *slog.Logger
	DryRun bool
}

type importSummary struct {
	Imported int
	Skipped  int
	Failed   int
}

// importBenefits creates every fetched plan that does not already exist by
// name. Invalid records are counted and logged rather than aborting the run.
func importBenefits(ctx context.Context, p importBenefitsParams) (importSummary, error) {
	var summary importSummary

	items, err := p.Fetch(ctx)
	if err != nil {
		return summary, fmt.Errorf("fetch benefits: %w", err)
	}

	existing, err := p.Repo.List(ctx)
	if err != nil {
		return summary, fmt.Errorf("list current benefits: %w", err)
	}
	known := make(map[string]struct{}, len(existing))
	for _, b := range existing {
		known[b.Name] = struct{}{}
	}

	for _, req := range items {
		if _, ok := known[req.Name]; ok {
			summary.Skipped++
			continue
		}
		if validateErr := req.Validate(); validateErr != nil {
			p.Logger.Warn("skipping invalid benefit", "name", req.Name, "error", validateErr)
			summary.Failed++
			continue
		}
		if p.DryRun {
			p.Logger.Info("would import benefit", "name", req.Name, "type", req.Type, "amount", req.Amount)
			summary.Imported++
			continue
		}
		created, createErr := p.Repo.Create(ctx, req)
		if createErr != nil {
			p.Logger.Error("import benefit failed", "name", req.Name, "error", createErr)
			summary.Failed++
			continue
		}
		known[created.Name] = struct{}{}
		summary.Imported++
	}
	return summary, nil
}

func runCreateUser(cmdCtx *commandContext, args []string) error {
	opts, err := parseCreateUserFlags(args)
	if err != nil {
		return err
	}

	req := model.CreateUserRequest{
		Email:     opts.Email,
		Password:  opts.Password,
		FirstName: opts.FirstName,
		LastName:  opts.LastName,
		Role:      domainauth.Role(opts.Role),
		Hr:        domainauth.HrTag(opts.Hr),
	}
	if validateErr := req.Validate(); validateErr != nil {
		return fmt.Errorf("invalid user: %w", validateErr)
	}

	return withDatabase(cmdCtx, opts.Timeout, func(ctx context.Context, db *sql.DB) error {
		user, createErr := data.NewUserRepo(db).Create(ctx, req)
		if createErr != nil {
			if errors.Is(createErr, data.ErrUserEmailExists) {
				return fmt.Errorf("account %q already exists", req.Email)
			}
			return fmt.Errorf("create user: %w", createErr)
		}
		cmdCtx.Logger.Info("created user", "id", user.ID, "email", user.Email, "role", user.Role, "hr", user.Hr)
		return nil
	})
}

func runListUsers(cmdCtx *commandContext, args []string) error {
	opts, err := parseListUsersFlags(args)
	if err != nil {
		return err
	}

	return withDatabase(cmdCtx, defaultCommandTimeout, func(ctx context.Context, db *sql.DB) error {
		repo := data.NewUserRepo(db)
		page, pageErr := listview.New(listview.Config[model.User]{
			Fetch:    repo.List,
			Delete:   func(ctx context.Context, id string) error { _, derr := repo.Delete(ctx, id); return derr },
			ID:       func(u model.User) string { return u.ID },
			PageSize: opts.PageSize,
		})
		if pageErr != nil {
			return pageErr
		}
		if loadErr := page.Load(ctx); loadErr != nil {
			return fmt.Errorf("list users: %w", loadErr)
		}
		page.SetPage(opts.Page)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		if _, werr := fmt.Fprintln(w, "EMAIL\tNAME\tROLE\tHR\tCREATED"); werr != nil {
			return fmt.Errorf("write header: %w", werr)
		}
		for _, u := range page.Slice() {
			_, werr := fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\t%s\n",
				u.Email, u.FirstName, u.LastName, u.Role, u.Hr, u.CreatedAt.Format(time.RFC3339))
			if werr != nil {
				return fmt.Errorf("write row: %w", werr)
			}
		}
		if flushErr := w.Flush(); flushErr != nil {
			return fmt.Errorf("flush output: %w", flushErr)
		}
		return writef(os.Stdout, "\npage %d/%d, %d account(s) total\n", page.Page(), page.TotalPages(), page.Len())
	})
}

func runListSessions(cmdCtx *commandContext, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("list-sessions takes no arguments, got %q", strings.Join(args, " "))
	}

	return withRedis(cmdCtx, func(ctx context.Context, client redis.UniversalClient) error {
		keys, scanErr := scanSessionKeys(ctx, client)
		if scanErr != nil {
			return scanErr
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		if _, werr := fmt.Fprintln(w, "SESSION\tTTL"); werr != nil {
			return fmt.Errorf("write header: %w", werr)
		}
		for _, key := range keys {
			ttl, ttlErr := client.TTL(ctx, key).Result()
			if ttlErr != nil {
				return fmt.Errorf("ttl %q: %w", key, ttlErr)
			}
			id := strings.TrimPrefix(key, sessionKeyPrefix)
			if _, werr := fmt.Fprintf(w, "%s\t%s\n", id, util.FormatDuration(ttl)); werr != nil {
				return fmt.Errorf("write row: %w", werr)
			}
		}
		if flushErr := w.Flush(); flushErr != nil {
			return fmt.Errorf("flush output: %w", flushErr)
		}
		return writef(os.Stdout, "\n%d active session(s)\n", len(keys))
	})
}

func runClearSessions(cmdCtx *commandContext, args []string) error {
	opts, err := parseClearSessionsFlags(args)
	if err != nil {
		return err
	}

	warning := "WARNING: this will delete every active session and force all users to log in again."
	if confirmErr := confirmAction(opts.Yes, warning); confirmErr != nil {
		return confirmErr
	}

	return withRedis(cmdCtx, func(ctx context.Context, client redis.UniversalClient) error {
		keys, scanErr := scanSessionKeys(ctx, client)
		if scanErr != nil {
			return scanErr
		}
		if len(keys) == 0 {
			return writef(os.Stdout, "No active sessions found\n")
		}
		if delErr := client.Del(ctx, keys...).Err(); delErr != nil {
			return fmt.Errorf("delete sessions: %w", delErr)
		}
		cmdCtx.Logger.Info("cleared sessions", "count", len(keys))
		return nil
	})
}

func scanSessionKeys(ctx context.Context, client redis.UniversalClient) ([]string, error) {
	var keys []string
	iter := client.Scan(ctx, 0, sessionKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan session keys: %w", err)
	}
	sort.Strings(keys)
	return keys, nil
}

func parseMigrateFlags(args []string) (migrateOptions, error) {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := migrateOptions{Timeout: defaultCommandTimeout}
	fs.DurationVar(&opts.Timeout, "timeout", defaultCommandTimeout, "Maximum duration to wait for migrations to complete")

	if err := fs.Parse(args); err != nil {
		return migrateOptions{}, err
	}
	if opts.Timeout <= 0 {
		return migrateOptions{}, errors.New("--timeout must be greater than zero")
	}
	return opts, nil
}

func parseDBResetFlags(args []string) (dbResetOptions, error) {
	fs := flag.NewFlagSet("db-reset", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := dbResetOptions{Timeout: defaultCommandTimeout}
	fs.DurationVar(&opts.Timeout, "timeout", defaultCommandTimeout, "Maximum duration to wait for reset operations to complete")
	fs.BoolVar(&opts.Yes, "yes", false, "Skip confirmation prompt")
	fs.BoolVar(&opts.Seed, "seed", false, "Run database seeding after reset completes")
	fs.BoolVar(&opts.AllowRemote, "allow-remote", false, "Permit running against database hosts that do not look local")

	if err := fs.Parse(args); err != nil {
		return dbResetOptions{}, err
	}
	if opts.Timeout <= 0 {
		return dbResetOptions{}, errors.New("--timeout must be greater than zero")
	}
	return opts, nil
}

func parseDBSeedFlags(args []string) (dbSeedOptions, error) {
	fs := flag.NewFlagSet("db-seed", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := dbSeedOptions{Timeout: defaultCommandTimeout}
	fs.DurationVar(&opts.Timeout, "timeout", defaultCommandTimeout, "Maximum duration to wait for seeding to complete")
	fs.BoolVar(&opts.AllowRemote, "allow-remote", false, "Permit running against database hosts that do not look local")

	if err := fs.Parse(args); err != nil {
		return dbSeedOptions{}, err
	}
	if opts.Timeout <= 0 {
		return dbSeedOptions{}, errors.New("--timeout must be greater than zero")
	}
	return opts, nil
}

func parseImportBenefitsFlags(args []string) (importBenefitsOptions, error) {
	fs := flag.NewFlagSet("import-benefits", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := importBenefitsOptions{Timeout: defaultCommandTimeout}
	fs.DurationVar(&opts.Timeout, "timeout", defaultCommandTimeout, "Maximum duration to wait for the import to complete")
	fs.StringVar(&opts.URL, "url", "", "Base URL of the external HR system (required)")
	fs.StringVar(&opts.Path, "path", "benefits", "List endpoint path relative to the base URL")
	fs.StringVar(&opts.ListPath, "list-path", "", "JMESPath expression selecting the collection in keyed responses")
	fs.BoolVar(&opts.DryRun, "dry-run", false, "Report what would be imported without writing anything")

	if err := fs.Parse(args); err != nil {
		return importBenefitsOptions{}, err
	}
	if opts.URL == "" {
		return importBenefitsOptions{}, errors.New("--url is required")
	}
	if opts.Timeout <= 0 {
		return importBenefitsOptions{}, errors.New("--timeout must be greater than zero")
	}
	return opts, nil
}

func parseCreateUserFlags(args []string) (createUserOptions, error) {
	fs := flag.NewFlagSet("create-user", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := createUserOptions{Timeout: defaultCommandTimeout}
	fs.DurationVar(&opts.Timeout, "timeout", defaultCommandTimeout, "Maximum duration to wait for the operation to complete")
	fs.StringVar(&opts.Email, "email", "", "Account email (required)")
	fs.StringVar(&opts.Password, "password", "", "Account password, minimum 8 characters (required)")
	fs.StringVar(&opts.FirstName, "first-name", "", "First name")
	fs.StringVar(&opts.LastName, "last-name", "", "Last name")
	fs.StringVar(&opts.Role, "role", string(domainauth.RoleEmployee), "Account role: Admin or Employee")
	fs.StringVar(&opts.Hr, "hr", string(domainauth.HrOne), "Regional HR instance tag: 1, 2, 3, or 4")

	if err := fs.Parse(args); err != nil {
		return createUserOptions{}, err
	}
	if opts.Timeout <= 0 {
		return createUserOptions{}, errors.New("--timeout must be greater than zero")
	}
	return opts, nil
}

func parseListUsersFlags(args []string) (listUsersOptions, error) {
	fs := flag.NewFlagSet("list-users", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := listUsersOptions{Page: 1, PageSize: 10}
	fs.IntVar(&opts.Page, "page", 1, "Page number to display")
	fs.IntVar(&opts.PageSize, "page-size", 10, "Accounts per page")

	if err := fs.Parse(args); err != nil {
		return listUsersOptions{}, err
	}
	if opts.PageSize <= 0 {
		return listUsersOptions{}, errors.New("--page-size must be greater than zero")
	}
	return opts, nil
}

func parseClearSessionsFlags(args []string) (clearSessionsOptions, error) {
	fs := flag.NewFlagSet("clear-sessions", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts clearSessionsOptions
	fs.BoolVar(&opts.Yes, "yes", false, "Skip confirmation prompt")

	if err := fs.Parse(args); err != nil {
		return clearSessionsOptions{}, err
	}
	return opts, nil
}

func withDatabase(
	cmdCtx *commandContext,
	timeout time.Duration,
	f func(context.Context, *sql.DB) error,
) error {
	ctx, stop := signal.NotifyContext(cmdCtx.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	db, err := bootstrap.ConnectDB(bootstrap.DatabaseConfig{
		DBConfig: cmdCtx.Config.Postgres,
		Logger:   cmdCtx.Logger,
	})
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			cmdCtx.Logger.Warn("db close failed", "error", cerr)
		}
	}()

	return f(ctx, db)
}

func withRedis(
	cmdCtx *commandContext,
	f func(context.Context, redis.UniversalClient) error,
) error {
	ctx, stop := signal.NotifyContext(cmdCtx.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, defaultCommandTimeout)
	defer cancel()

	client, err := bootstrap.ConnectRedis(bootstrap.DatabaseConfig{
		RedisConfig: cmdCtx.Config.Redis,
		Logger:      cmdCtx.Logger,
	})
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer func() {
		if cerr := client.Close(); cerr != nil {
			cmdCtx.Logger.Warn("redis close failed", "error", cerr)
		}
	}()

	return f(ctx, client)
}

func guardRemoteHost(cmdCtx *commandContext, allow bool) (bool, error) {
	remote := isLikelyRemoteHost(cmdCtx.Config.Postgres.Host)
	if !remote {
		return false, nil
	}
	if !allow {
		return true, fmt.Errorf(
			"refusing to run against potentially remote database host %q; re-run with --allow-remote if this is intentional",
			cmdCtx.Config.Postgres.Host,
		)
	}
	return true, nil
}

func resetDatabase(ctx context.Context, db *sql.DB, cfg *config.DBConfig) error {
	statements := []string{
		"DROP SCHEMA public CASCADE",
		"CREATE SCHEMA public",
		"GRANT ALL ON SCHEMA public TO public",
	}
	if user := strings.TrimSpace(cfg.User); user != "" && !strings.EqualFold(user, "public") {
		statements = append(statements, "GRANT ALL ON SCHEMA public TO "+quoteIdentifier(user))
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt, err)
		}
	}
	return nil
}

func quoteIdentifier(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func isLikelyRemoteHost(host string) bool {
	h := strings.ToLower(strings.TrimSpace(host))
	if h == "" {
		return false
	}
	if h == "localhost" || h == "127.0.0.1" || h == "::1" {
		return false
	}
	if strings.HasSuffix(h, ".local") {
		return false
	}
	if ip := net.ParseIP(host); ip != nil {
		return !ip.IsLoopback()
	}
	return true
}

func confirmAction(yes bool, warning string) error {
	if yes {
		return nil
	}

	if err := writef(os.Stdout, "%s\nContinue? [y/N]: ", warning); err != nil {
		return fmt.Errorf("print confirmation prompt: %w", err)
	}
	reader := bufio.NewReader(os.Stdin)
	resp, err := reader.ReadString('\n')
	if err != nil {
		return errors.New("aborted by user")
	}
	resp = strings.ToLower(strings.TrimSpace(resp))
	if resp == "y" || resp == "yes" {
		return nil
	}
	return errors.New("aborted by user")
}

func writef(w io.Writer, format string, args ...any) error {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
