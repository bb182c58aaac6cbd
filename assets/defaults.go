package assets

import (
	_ "embed"
)

// DefaultConfigYAML contains the embedded default configuration.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte

// DefaultPortfolioYAML contains the embedded seed portfolio (CV, journal,
// profiles and fallback answer rules).
//
//go:embed defaults/portfolio.yaml
var DefaultPortfolioYAML []byte
