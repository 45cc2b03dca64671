package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/five82/showcase/internal/cms"
	"github.com/five82/showcase/internal/config"
	"github.com/five82/showcase/internal/content"
	"github.com/five82/showcase/internal/credentials"
	"github.com/five82/showcase/internal/logging"
	"github.com/five82/showcase/internal/menu"
	"github.com/five82/showcase/internal/prefs"
	"github.com/five82/showcase/internal/state"
	"github.com/five82/showcase/internal/ui"
)

// Options configure the showcase application. Nil overrides keep the
// config file's value.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses ~/.config/showcase/prefs.toml
	Preview    *bool
	PageQuery  *string
	LogLevel   string
}

// Deps are the objects shared by the UI and the CLI subcommands.
type Deps struct {
	Config      config.Config
	Logger      *zap.Logger
	Credentials *credentials.Store
	Client      *cms.Client
	Content     *content.Service
}

// LoadConfig reads the config file and applies the command line overrides.
func LoadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if opts.Preview != nil {
		cfg.Preview = *opts.Preview
	}
	if opts.PageQuery != nil {
		cfg.PageQuery = *opts.PageQuery
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	return cfg, nil
}

// Build constructs the credential store, CMS client and content service.
func Build(cfg config.Config, logger *zap.Logger) (*Deps, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	creds, err := credentials.NewStore(cfg.CredentialsPath)
	if err != nil {
		return nil, err
	}
	client, err := cms.NewClient(cms.Options{
		BaseURL: cfg.APIBase,
		Timeout: cfg.Timeout,
		Tokens:  creds,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("init cms client: %w", err)
	}
	svc := content.NewService(client, cfg.Preview, content.ParsePageQuery(cfg.PageQuery))
	return &Deps{
		Config:      cfg,
		Logger:      logger,
		Credentials: creds,
		Client:      client,
		Content:     svc,
	}, nil
}

// Run boots the showcase TUI until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Dir: cfg.LogDir})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	deps, err := Build(cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("showcase starting",
		zap.String("api_base", deps.Client.BaseURL()),
		zap.Bool("preview", cfg.Preview),
		zap.String("page_query", cfg.PageQuery),
	)

	userPrefs := prefs.Load(opts.PrefsPath)
	store := &state.Store{}

	ctx, cancel := context.WithCancel(ctx)
	poller := StartPoller(ctx, store, deps.Content, cfg.PollInterval, logger)
	defer func() {
		cancel()
		poller.Wait()
	}()

	menuStore := menu.NewStore()
	unsubscribe := menuStore.Subscribe(func(st menu.State) {
		logger.Debug("menu selection changed", zap.Int("index", st.SelectedIndex))
	})
	defer unsubscribe()

	return ui.Run(ui.Options{
		Context:   ctx,
		Store:     store,
		Menu:      menuStore,
		Config:    cfg,
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
		Refresh:   poller.Refresh,
		Logger:    logger,
	})
}
