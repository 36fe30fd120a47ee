package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/launchdash/pkg/domain/interfaces"
	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// Collection names
	datasetsCollection = "datasets"
	recordsCollection  = "records"

	// Field names
	fieldLoadedAt = "loaded_at"
	fieldIndex    = "index"
)

// datasetDoc is the Firestore document describing one snapshot
type datasetDoc struct {
	ID          string    `firestore:"id"`
	Source      string    `firestore:"source"`
	LoadedAt    time.Time `firestore:"loaded_at"`
	RecordCount int       `firestore:"record_count"`
	MinPayload  float64   `firestore:"min_payload"`
	MaxPayload  float64   `firestore:"max_payload"`
}

// recordDoc is one launch record stored under its snapshot. Index keeps the
// dataset order.
type recordDoc struct {
	Index  int                `firestore:"index"`
	Record model.LaunchRecord `firestore:"record"`
}

// Firestore implements Repository interface with Firestore
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on invalid project or missing permission; an empty collection is fine
	_, err = client.Collection(datasetsCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore repository initialized successfully",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{
		client: client,
	}, nil
}

// PutDataset saves a snapshot document and its records
func (f *Firestore) PutDataset(ctx context.Context, ds *model.Dataset) error {
	if ds == nil {
		return goerr.New("dataset is nil")
	}
	if ds.ID() == "" {
		return goerr.New("dataset ID is empty")
	}

	docRef := f.client.Collection(datasetsCollection).Doc(ds.ID().String())

	bw := f.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, ds.Len())
	for i, r := range ds.Records() {
		job, err := bw.Set(docRef.Collection(recordsCollection).Doc(fmt.Sprintf("%06d", i)), &recordDoc{
			Index:  i,
			Record: r,
		})
		if err != nil {
			bw.End()
			return goerr.Wrap(err, "failed to enqueue launch record", goerr.V("index", i))
		}
		jobs = append(jobs, job)
	}
	bw.End()

	for i, job := range jobs {
		if _, err := job.Results(); err != nil {
			return goerr.Wrap(err, "failed to save launch record to firestore",
				goerr.V("dataset", ds.ID()),
				goerr.V("index", i))
		}
	}

	// The snapshot document is written last so a partially stored dataset is never listed
	doc := &datasetDoc{
		ID:          ds.ID().String(),
		Source:      ds.Source(),
		LoadedAt:    ds.LoadedAt(),
		RecordCount: ds.Len(),
		MinPayload:  ds.MinPayload(),
		MaxPayload:  ds.MaxPayload(),
	}
	if _, err := docRef.Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to save dataset to firestore", goerr.V("dataset", ds.ID()))
	}

	return nil
}

// GetDataset retrieves a snapshot by ID
func (f *Firestore) GetDataset(ctx context.Context, id types.DatasetID) (*model.Dataset, error) {
	if id == "" {
		return nil, goerr.New("dataset ID is empty")
	}

	snap, err := f.client.Collection(datasetsCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrDatasetNotFound, "no dataset with ID", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get dataset from firestore", goerr.V("id", id))
	}

	return f.decodeDataset(ctx, snap)
}

// GetLatestDataset retrieves the most recently loaded snapshot
func (f *Firestore) GetLatestDataset(ctx context.Context) (*model.Dataset, error) {
	iter := f.client.Collection(datasetsCollection).
		OrderBy(fieldLoadedAt, firestore.Desc).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, goerr.Wrap(model.ErrDatasetNotFound, "repository has no dataset")
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query latest dataset")
	}

	return f.decodeDataset(ctx, snap)
}

// ListDatasets lists snapshot summaries, newest first
func (f *Firestore) ListDatasets(ctx context.Context, limit int) ([]*model.DatasetSummary, error) {
	query := f.client.Collection(datasetsCollection).OrderBy(fieldLoadedAt, firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var summaries []*model.DatasetSummary
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate datasets")
		}

		var doc datasetDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode dataset", goerr.V("doc", snap.Ref.ID))
		}
		summaries = append(summaries, &model.DatasetSummary{
			ID:          types.DatasetID(doc.ID),
			Source:      doc.Source,
			LoadedAt:    doc.LoadedAt,
			RecordCount: doc.RecordCount,
			MinPayload:  doc.MinPayload,
			MaxPayload:  doc.MaxPayload,
		})
	}

	return summaries, nil
}

func (f *Firestore) decodeDataset(ctx context.Context, snap *firestore.DocumentSnapshot) (*model.Dataset, error) {
	var doc datasetDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode dataset", goerr.V("doc", snap.Ref.ID))
	}

	iter := snap.Ref.Collection(recordsCollection).OrderBy(fieldIndex, firestore.Asc).Documents(ctx)
	defer iter.Stop()

	records := make([]model.LaunchRecord, 0, doc.RecordCount)
	for {
		recSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate launch records", goerr.V("dataset", doc.ID))
		}

		var rec recordDoc
		if err := recSnap.DataTo(&rec); err != nil {
			return nil, goerr.Wrap(err, "failed to decode launch record",
				goerr.V("dataset", doc.ID),
				goerr.V("doc", recSnap.Ref.ID))
		}
		records = append(records, rec.Record)
	}

	if len(records) != doc.RecordCount {
		return nil, goerr.New("stored dataset is incomplete",
			goerr.V("dataset", doc.ID),
			goerr.V("expected", doc.RecordCount),
			goerr.V("actual", len(records)))
	}

	ds, err := model.NewDataset(types.DatasetID(doc.ID), doc.Source, doc.LoadedAt, records, doc.MinPayload, doc.MaxPayload)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to rebuild dataset", goerr.V("dataset", doc.ID))
	}
	return ds, nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	return f.client.Close()
}
