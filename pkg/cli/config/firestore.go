package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/launchdash/pkg/domain/interfaces"
	"github.com/secmon-lab/launchdash/pkg/repository"
	"github.com/urfave/cli/v3"
)

// Firestore holds configuration of the dataset snapshot store
type Firestore struct {
	ProjectID  string
	DatabaseID string
}

// Flags returns CLI flags for Firestore configuration
func (f *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project",
			Usage:       "GCP project ID for storing dataset snapshots in Firestore",
			Category:    "Firestore",
			Sources:     cli.EnvVars("LAUNCHDASH_FIRESTORE_PROJECT"),
			Destination: &f.ProjectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database",
			Usage:       "Firestore database ID",
			Category:    "Firestore",
			Value:       "(default)",
			Sources:     cli.EnvVars("LAUNCHDASH_FIRESTORE_DATABASE"),
			Destination: &f.DatabaseID,
		},
	}
}

// Configure creates the snapshot repository. Without a project the snapshots
// live in memory only.
func (f *Firestore) Configure(ctx context.Context) (interfaces.Repository, error) {
	if !f.IsConfigured() {
		ctxlog.From(ctx).Debug("Firestore is not configured, keeping dataset snapshots in memory")
		return repository.NewMemory(), nil
	}

	repo, err := repository.NewFirestore(ctx, f.ProjectID, f.DatabaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to init firestore",
			goerr.V("project", f.ProjectID),
			goerr.V("database", f.DatabaseID),
		)
	}

	return repo, nil
}

// IsConfigured checks if Firestore is properly configured
func (f *Firestore) IsConfigured() bool {
	return f.ProjectID != ""
}

// LogValue returns structured log value
func (f Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("project", f.ProjectID),
		slog.String("database", f.DatabaseID),
	)
}
