package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Layout holds dashboard layout configuration
type Layout struct {
	Path string
}

// Flags returns CLI flags for Layout configuration
func (l *Layout) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "layout",
			Usage:       "YAML file overriding the dashboard title and launch sites",
			Category:    "Dashboard",
			Sources:     cli.EnvVars("LAUNCHDASH_LAYOUT"),
			Destination: &l.Path,
		},
	}
}

// Configure returns the layout configuration, the built-in one when no file is set
func (l *Layout) Configure() (*model.LayoutConfig, error) {
	if l.Path == "" {
		return model.DefaultLayoutConfig(), nil
	}
	return LoadLayoutFromFile(l.Path)
}

// LogValue returns structured log value
func (l Layout) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", l.Path),
	)
}

// LoadLayoutFromFile loads the layout configuration from a YAML file. A missing
// title falls back to the built-in one.
func LoadLayoutFromFile(path string) (*model.LayoutConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "layout file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read layout file",
			goerr.V("path", path))
	}

	var cfg model.LayoutConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML layout",
			goerr.V("path", path))
	}
	if cfg.Title == "" {
		cfg.Title = model.DefaultDashboardTitle
	}

	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid layout",
			goerr.V("path", path))
	}

	return &cfg, nil
}
