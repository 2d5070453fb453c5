package bootstrap

import (
	"fmt"

	"github.com/kbukum/faultkit/boundary"
	"github.com/kbukum/faultkit/catalog"
	"github.com/kbukum/faultkit/code"
	"github.com/kbukum/faultkit/config"
	"github.com/kbukum/faultkit/logger"
)

// App holds the wired faultkit components for one process.
type App struct {
	Settings *config.Settings
	Logger   *logger.Logger
	Catalog  *catalog.Catalog
	Handler  *boundary.Handler
}

// Setup builds the application from validated settings: it initializes the
// logger, loads the message catalog, verifies that every code in reg
// resolves in every configured locale, and constructs the boundary handler.
// A non-nil error means startup must abort.
func Setup(settings *config.Settings, reg *code.Registry) (*App, error) {
	settings.ApplyDefaults()
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("bootstrap: invalid settings: %w", err)
	}

	logger.Init(&settings.Logging)
	log := logger.GetGlobalLogger().WithComponent(settings.Name)

	cat, err := config.LoadCatalog(settings.CatalogDir, settings.DefaultLocale)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: loading catalog: %w", err)
	}

	if missing := cat.Validate(reg, settings.Locales...); len(missing) > 0 {
		return nil, fmt.Errorf("bootstrap: catalog incomplete, refusing to serve: missing %v", missing)
	}

	log.Info("catalog validated", logger.Fields(
		"codes", len(reg.All()),
		"locales", cat.Locales(),
	))

	return &App{
		Settings: settings,
		Logger:   log,
		Catalog:  cat,
		Handler:  boundary.NewHandler(cat, boundary.WithLogger(log.WithComponent("boundary"))),
	}, nil
}

// SetupFromFile loads settings from the YAML file at path and calls Setup.
func SetupFromFile(path string, reg *code.Registry, opts ...config.LoaderOption) (*App, error) {
	settings, err := config.LoadSettings(path, opts...)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	return Setup(settings, reg)
}
