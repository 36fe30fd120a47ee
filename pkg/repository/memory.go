package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/launchdash/pkg/domain/interfaces"
	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
)

// Memory implements Repository interface with in-memory storage
type Memory struct {
	mu       sync.RWMutex
	datasets map[types.DatasetID]*model.Dataset
}

// NewMemory creates a new memory repository
func NewMemory() interfaces.Repository {
	return &Memory{
		datasets: make(map[types.DatasetID]*model.Dataset),
	}
}

// PutDataset saves a dataset snapshot to memory. Datasets are immutable so the
// pointer is stored as is.
func (m *Memory) PutDataset(ctx context.Context, ds *model.Dataset) error {
	if ds == nil {
		return goerr.New("dataset is nil")
	}
	if ds.ID() == "" {
		return goerr.New("dataset ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.datasets[ds.ID()] = ds
	return nil
}

// GetDataset retrieves a dataset snapshot by ID
func (m *Memory) GetDataset(ctx context.Context, id types.DatasetID) (*model.Dataset, error) {
	if id == "" {
		return nil, goerr.New("dataset ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	ds, exists := m.datasets[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrDatasetNotFound, "no dataset with ID", goerr.V("id", id))
	}
	return ds, nil
}

// GetLatestDataset retrieves the most recently loaded dataset snapshot
func (m *Memory) GetLatestDataset(ctx context.Context) (*model.Dataset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var latest *model.Dataset
	for _, ds := range m.datasets {
		if latest == nil || ds.LoadedAt().After(latest.LoadedAt()) {
			latest = ds
		}
	}
	if latest == nil {
		return nil, goerr.Wrap(model.ErrDatasetNotFound, "repository has no dataset")
	}
	return latest, nil
}

// ListDatasets lists dataset summaries, newest first
func (m *Memory) ListDatasets(ctx context.Context, limit int) ([]*model.DatasetSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	summaries := make([]*model.DatasetSummary, 0, len(m.datasets))
	for _, ds := range m.datasets {
		summary := ds.Summary()
		summaries = append(summaries, &summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].LoadedAt.After(summaries[j].LoadedAt)
	})

	if limit > 0 && len(summaries) > limit {
		summaries = summaries[:limit]
	}
	return summaries, nil
}

// Close closes the memory repository (no-op)
func (m *Memory) Close() error {
	return nil
}
