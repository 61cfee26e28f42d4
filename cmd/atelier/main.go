package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/atelier"
	atetree "github.com/fwojciec/atelier/etree"
	"github.com/fwojciec/atelier/fs"
	atgjson "github.com/fwojciec/atelier/gjson"
	"github.com/fwojciec/atelier/goquery"
	"github.com/fwojciec/atelier/htmltomarkdown"
	athttp "github.com/fwojciec/atelier/http"
	"github.com/fwojciec/atelier/site"
	atslog "github.com/fwojciec/atelier/slog"
	"github.com/fwojciec/atelier/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config file path. Set before calling Run().
	ConfigPath string

	// SQLite database holding the stored credentials.
	DB *sqlite.DB

	// API replaces the HTTP backend for end-to-end testing. No database is
	// opened when set.
	API atelier.API
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: defaultConfigPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("atelier"),
		kong.Description("Browse and manage the studio website from the terminal"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'atelier --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	configPath := m.ConfigPath
	if cli.Config != "" {
		configPath = cli.Config
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Set ATELIER_CONFIG to use a different config file")
		return fmt.Errorf("failed to load config %q: %w", configPath, err)
	}
	cfg.Override(cli.Globals)

	level := slog.LevelError
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	api := m.API
	if api == nil {
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
		m.DB = sqlite.NewDB(cfg.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set ATELIER_DB to use a different database path")
			return fmt.Errorf("failed to open database at %q: %w", cfg.DBPath, err)
		}
		defer m.Close()

		creds := sqlite.NewCredentialStore(m.DB, cfg.APIURL)
		client := athttp.NewClient(cfg.APIURL, creds,
			athttp.WithTimeout(cfg.Timeout),
			athttp.WithRateLimit(cfg.RateLimit),
		)
		api = athttp.NewAPI(atslog.NewLoggingClient(client, logger), creds)
	}

	conv := htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(cfg.SiteURL))

	deps.Config = cfg
	deps.Logger = logger
	deps.API = api
	deps.Loader = &site.Loader{
		API:       api,
		Transform: atgjson.NewTransformer(goquery.NewTextExtractor()),
		Logger:    logger,
		Retry:     cfg.Retry,
	}
	deps.Converter = conv
	deps.Sitemap = atetree.NewSitemapEncoder(2)
	deps.Exporter = func(dir, source string) atelier.PostWriter {
		dir = filepath.Clean(dir)
		w := fs.NewWriter(filepath.Dir(dir), filepath.Base(dir), conv)
		w.SetSource(source)
		return w
	}

	return kongCtx.Run(deps)
}

func defaultConfigPath() string {
	if path := os.Getenv("ATELIER_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "atelier.yaml"
	}
	return filepath.Join(home, ".atelier", "config.yaml")
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "atelier.db"
	}
	return filepath.Join(home, ".atelier", "atelier.db")
}
