package app

import (
	"context"
	"net/http"
	"path/filepath"

	"github.com/tifan9/termfolio/internal/application/ask"
	"github.com/tifan9/termfolio/internal/application/contact"
	"github.com/tifan9/termfolio/internal/application/doctor"
	"github.com/tifan9/termfolio/internal/application/portfolio"
	"github.com/tifan9/termfolio/internal/domain"
	"github.com/tifan9/termfolio/internal/infrastructure/ai"
	"github.com/tifan9/termfolio/internal/infrastructure/apiclient"
	"github.com/tifan9/termfolio/internal/infrastructure/cache"
	"github.com/tifan9/termfolio/internal/infrastructure/config"
	"github.com/tifan9/termfolio/internal/infrastructure/mail"
	"github.com/tifan9/termfolio/internal/infrastructure/storage"
	"github.com/tifan9/termfolio/internal/pkg/filesystem"
	"github.com/tifan9/termfolio/internal/pkg/logger"
	"github.com/tifan9/termfolio/internal/ports"
)

// Options tune container construction.
type Options struct {
	Verbose    bool
	ConfigPath string
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config           domain.Config
	ConfigProvider   ports.ConfigProvider
	ConfigLoader     *config.FileLoader
	Logger           *logger.ZapLogger
	Store            storage.Store
	Mailer           ports.Mailer
	Answerer         ports.Answerer
	PortfolioService *portfolio.Service
	ContactService   *contact.Service
	AskService       *ask.Service
	DoctorService    *doctor.Service
}

// BuildContainer constructs the dependency graph. A database that cannot be
// opened degrades to the in-memory store with a warning.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	cfgLoader := config.NewFileLoader(opts.ConfigPath)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewZap(opts.Verbose, cfg.Logging.Level)

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		log.Warn("database unavailable, using in-memory store", map[string]interface{}{
			"path":  cfg.Storage.Path,
			"error": err.Error(),
		})
	}

	httpClient := &http.Client{Timeout: domain.DefaultHTTPClientTimeout}
	mailer := mail.New(cfg.Mail, httpClient)

	portfolioService := &portfolio.Service{Repository: store, Seeder: store, Logger: log}

	rules := ai.NewStoredRuleAnswerer(store.AnswerRules, config.DefaultPortfolio().Answers)
	answerer := ai.SelectAnswerer(cfg, ai.NewFactoryWithClient(httpClient), rules, portfolioService.CV, log)
	if _, usesRules := answerer.(*ai.RuleAnswerer); !usesRules {
		answers := cache.NewFileCache(filepath.Join(filesystem.AppDir(), "cache", "answers"), domain.DefaultAnswerCacheTTL, domain.DefaultAnswerCacheEntries)
		answerer = ai.NewCachingAnswerer(answerer, answers, cache.Key, log)
	}

	contactService := &contact.Service{
		Repository: store,
		Mailer:     mailer,
		Recipient:  cfg.Mail.To,
		Compose:    mail.ContactMessage,
		Logger:     log,
	}

	doctorService := &doctor.Service{
		ConfigProvider: cfgLoader,
		Repository:     store,
		Mailer:         mailer,
		StoragePath:    store.Path,
		Answerer:       answerer,
	}

	return &Container{
		Config:           cfg,
		ConfigProvider:   cfgLoader,
		ConfigLoader:     cfgLoader,
		Logger:           log,
		Store:            store,
		Mailer:           mailer,
		Answerer:         answerer,
		PortfolioService: portfolioService,
		ContactService:   contactService,
		AskService:       &ask.Service{Answerer: answerer, Logger: log},
		DoctorService:    doctorService,
	}, nil
}

// RemoteAPI returns a client for a running server. An empty baseURL uses
// the configured terminal.api_url.
func (c *Container) RemoteAPI(baseURL string) ports.PortfolioAPI {
	if baseURL == "" {
		baseURL = c.Config.Terminal.APIURL
	}
	return apiclient.New(baseURL, nil)
}

// LocalAPI serves the terminal straight from this process's services.
func (c *Container) LocalAPI() ports.PortfolioAPI {
	return &LocalAPI{Portfolio: c.PortfolioService, Contacts: c.ContactService, Asker: c.AskService}
}

// Close releases the store and flushes the logger.
func (c *Container) Close() error {
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}
	if c.Store == nil {
		return nil
	}
	return c.Store.Close()
}
