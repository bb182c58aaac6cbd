package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tifan9/termfolio/assets"
	"github.com/tifan9/termfolio/internal/domain"
	"github.com/tifan9/termfolio/internal/pkg/filesystem"
)

const journalDateLayout = "2006-01-02"

// LoadPortfolio reads a portfolio seed file, or the embedded default when path is empty.
func LoadPortfolio(path string) (domain.Portfolio, error) {
	raw := assets.DefaultPortfolioYAML
	if path != "" {
		data, err := os.ReadFile(filesystem.ExpandPath(path))
		if err != nil {
			return domain.Portfolio{}, fmt.Errorf("read portfolio: %w", err)
		}
		raw = data
	}

	var portfolio domain.Portfolio
	if err := yaml.Unmarshal(raw, &portfolio); err != nil {
		return domain.Portfolio{}, fmt.Errorf("parse portfolio: %w", err)
	}

	for i, entry := range portfolio.Journal {
		if entry.CreatedAt.IsZero() {
			if t, err := time.Parse(journalDateLayout, entry.Date); err == nil {
				portfolio.Journal[i].CreatedAt = t.UTC()
			}
		}
	}
	return portfolio, nil
}

// DefaultPortfolio returns the embedded portfolio. It panics only if the
// embedded asset is malformed, which the asset tests rule out.
func DefaultPortfolio() domain.Portfolio {
	portfolio, err := LoadPortfolio("")
	if err != nil {
		panic(err)
	}
	return portfolio
}
