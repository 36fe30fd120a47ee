package interfaces

import (
	"context"

	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
)

// Repository defines the interface for dataset snapshot persistence
type Repository interface {
	// PutDataset stores a loaded dataset snapshot with all of its records
	PutDataset(ctx context.Context, ds *model.Dataset) error

	// GetDataset retrieves a snapshot by ID
	GetDataset(ctx context.Context, id types.DatasetID) (*model.Dataset, error)

	// GetLatestDataset retrieves the most recently loaded snapshot
	GetLatestDataset(ctx context.Context) (*model.Dataset, error)

	// ListDatasets lists snapshot summaries, newest first
	ListDatasets(ctx context.Context, limit int) ([]*model.DatasetSummary, error)

	// Close closes the repository connection
	Close() error
}
