package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tifan9/termfolio/assets"
	"github.com/tifan9/termfolio/internal/domain"
	"github.com/tifan9/termfolio/internal/pkg/filesystem"
	"github.com/tifan9/termfolio/internal/ports"
)

// FileLoader loads YAML configuration from ~/.termfolio/config.yaml (overridable via TERMFOLIO_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader. An empty path uses the default location.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.Path()
	if err := ensureConfigDir(path); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg, err := DefaultConfig()
			if err != nil {
				return domain.Config{}, err
			}
			if err := writeDefault(path); err != nil {
				return domain.Config{}, err
			}
			return applyEnv(cfg), nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return applyEnv(hydrateDefaults(cfg)), nil
}

// Save writes cfg back to the config path.
func (l *FileLoader) Save(cfg domain.Config) error {
	path := l.Path()
	if err := ensureConfigDir(path); err != nil {
		return err
	}
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, domain.SecureFilePermissions)
}

// Path resolves the config file location.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return filesystem.ExpandPath(l.overridePath)
	}
	if custom := os.Getenv("TERMFOLIO_CONFIG"); custom != "" {
		return filesystem.ExpandPath(custom)
	}
	return filepath.Join(filesystem.AppDir(), "config.yaml")
}

// DefaultConfig parses the embedded default configuration.
func DefaultConfig() (domain.Config, error) {
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse embedded config: %w", err)
	}
	return hydrateDefaults(cfg), nil
}

func ensureConfigDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
}

func writeDefault(path string) error {
	return os.WriteFile(path, assets.DefaultConfigYAML, domain.SecureFilePermissions)
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = domain.DefaultServerAddr
	}
	if cfg.Server.AskRatePerMinute == 0 {
		cfg.Server.AskRatePerMinute = domain.DefaultAskRatePerMinute
	}
	if cfg.Server.ContactRatePerMinute == 0 {
		cfg.Server.ContactRatePerMinute = domain.DefaultContactRatePerMinute
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = filepath.Join(filesystem.AppDir(), "portfolio.db")
	}
	if cfg.Assistant.TimeoutSeconds == 0 {
		cfg.Assistant.TimeoutSeconds = int(domain.DefaultAssistantTimeout.Seconds())
	}
	if cfg.Terminal.APIURL == "" {
		cfg.Terminal.APIURL = domain.DefaultAPIURL
	}
	if cfg.Terminal.SessionLabel == "" {
		cfg.Terminal.SessionLabel = domain.DefaultSessionLabel
	}
	if cfg.Terminal.TypewriterDelayMS == 0 {
		cfg.Terminal.TypewriterDelayMS = int(domain.DefaultTypewriterDelay.Milliseconds())
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	return cfg
}

func applyEnv(cfg domain.Config) domain.Config {
	if v := os.Getenv("TERMFOLIO_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("TERMFOLIO_API_URL"); v != "" {
		cfg.Terminal.APIURL = v
	}
	if v := os.Getenv("TERMFOLIO_DB"); v != "" {
		cfg.Storage.Path = v
	}
	cfg.Storage.Path = filesystem.ExpandPath(cfg.Storage.Path)
	return cfg
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
