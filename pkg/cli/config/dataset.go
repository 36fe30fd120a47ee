package config

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/launchdash/pkg/domain/interfaces"
	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
	"github.com/secmon-lab/launchdash/pkg/service/dataset"
	"github.com/urfave/cli/v3"
)

// Dataset source modes
const (
	SourceURL        = "url"
	SourceRepository = "repository"
)

// Dataset holds launch dataset configuration
type Dataset struct {
	Source       string
	Mode         string
	SnapshotID   string
	FetchTimeout time.Duration
}

// Flags returns CLI flags for Dataset configuration
func (d *Dataset) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "dataset",
			Usage:       "URL or file path of the launch dataset CSV",
			Category:    "Dataset",
			Value:       dataset.DefaultSourceURL,
			Sources:     cli.EnvVars("LAUNCHDASH_DATASET"),
			Destination: &d.Source,
		},
		&cli.StringFlag{
			Name:        "dataset-mode",
			Usage:       "Where serve reads the dataset from (url, repository)",
			Category:    "Dataset",
			Value:       SourceURL,
			Sources:     cli.EnvVars("LAUNCHDASH_DATASET_MODE"),
			Destination: &d.Mode,
		},
		&cli.StringFlag{
			Name:        "dataset-id",
			Usage:       "Snapshot ID to serve in repository mode (default: latest snapshot)",
			Category:    "Dataset",
			Sources:     cli.EnvVars("LAUNCHDASH_DATASET_ID"),
			Destination: &d.SnapshotID,
		},
		&cli.DurationFlag{
			Name:        "dataset-fetch-timeout",
			Usage:       "Timeout for fetching a remote dataset",
			Category:    "Dataset",
			Value:       30 * time.Second,
			Sources:     cli.EnvVars("LAUNCHDASH_DATASET_FETCH_TIMEOUT"),
			Destination: &d.FetchTimeout,
		},
	}
}

// Validate validates the dataset configuration against the snapshot store.
// Repository mode needs a persistent store since the in-memory one starts empty.
func (d *Dataset) Validate(storeConfigured bool) error {
	if err := d.validateMode(); err != nil {
		return err
	}
	if d.Mode == SourceRepository && !storeConfigured {
		return goerr.New("dataset mode repository requires a Firestore project, set --firestore-project")
	}
	return nil
}

func (d *Dataset) validateMode() error {
	if d.Mode != SourceURL && d.Mode != SourceRepository {
		return goerr.New("invalid dataset mode", goerr.V("mode", d.Mode))
	}
	if d.Mode == SourceURL && d.Source == "" {
		return goerr.New("dataset source is required")
	}
	if d.Mode == SourceURL && d.SnapshotID != "" {
		return goerr.New("--dataset-id is only used with --dataset-mode=repository",
			goerr.V("dataset_id", d.SnapshotID))
	}
	return nil
}

// Loader returns a dataset loader using the configured fetch timeout
func (d *Dataset) Loader() *dataset.Loader {
	return dataset.NewLoader(dataset.WithHTTPClient(&http.Client{Timeout: d.FetchTimeout}))
}

// Configure loads the dataset from the configured source. In repository mode the
// snapshot given by SnapshotID is used, or the latest one when it is empty.
func (d *Dataset) Configure(ctx context.Context, repo interfaces.Repository) (*model.Dataset, error) {
	if err := d.validateMode(); err != nil {
		return nil, err
	}

	if d.Mode == SourceRepository {
		ds, err := d.snapshot(ctx, repo)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to load dataset from repository",
				goerr.V("dataset_id", d.SnapshotID))
		}
		ctxlog.From(ctx).Info("Using stored dataset snapshot",
			"id", ds.ID(),
			"source", ds.Source(),
			"loaded_at", ds.LoadedAt(),
		)
		return ds, nil
	}

	return d.Loader().Load(ctx, d.Source)
}

func (d *Dataset) snapshot(ctx context.Context, repo interfaces.Repository) (*model.Dataset, error) {
	if d.SnapshotID != "" {
		return repo.GetDataset(ctx, types.DatasetID(d.SnapshotID))
	}
	return repo.GetLatestDataset(ctx)
}

// LogValue returns structured log value
func (d Dataset) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("source", d.Source),
		slog.String("mode", d.Mode),
		slog.String("dataset_id", d.SnapshotID),
		slog.Duration("fetch_timeout", d.FetchTimeout),
	)
}
