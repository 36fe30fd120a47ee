package dataset

import (
	"context"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/montanaflynn/stats"
	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
)

// DefaultSourceURL is the public SpaceX launch dataset
const DefaultSourceURL = "https://cf-courses-data.s3.us.cloud-object-storage.appdomain.cloud/IBM-DS0321EN-SkillsNetwork/datasets/spacex_launch_dash.csv"

// Loader reads the launch dataset from a URL or a local file
type Loader struct {
	client *http.Client
	now    func() time.Time
}

// Option configures a Loader
type Option func(*Loader)

// WithHTTPClient sets the HTTP client used for remote sources
func WithHTTPClient(client *http.Client) Option {
	return func(l *Loader) {
		l.client = client
	}
}

// WithClock sets the clock used to stamp loaded datasets
func WithClock(now func() time.Time) Option {
	return func(l *Loader) {
		l.now = now
	}
}

// NewLoader creates a new dataset loader
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		client: &http.Client{Timeout: 30 * time.Second},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads and parses the dataset at source. Sources starting with http:// or
// https:// are fetched over HTTP, anything else is read as a file path.
func (l *Loader) Load(ctx context.Context, source string) (*model.Dataset, error) {
	if source == "" {
		return nil, goerr.New("dataset source is empty")
	}

	logger := ctxlog.From(ctx)
	logger.Info("Loading launch dataset", "source", source)

	body, err := l.open(ctx, source)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	records, err := ParseCSV(body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse dataset", goerr.V("source", source))
	}

	ds, err := Build(types.NewDatasetID(), source, l.now(), records)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build dataset", goerr.V("source", source))
	}

	logger.Info("Launch dataset loaded",
		"id", ds.ID(),
		"records", ds.Len(),
		"min_payload", ds.MinPayload(),
		"max_payload", ds.MaxPayload(),
	)
	return ds, nil
}

func (l *Loader) open(ctx context.Context, source string) (io.ReadCloser, error) {
	if !isRemote(source) {
		f, err := os.Open(source)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to open dataset file", goerr.V("path", source))
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create dataset request", goerr.V("url", source))
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch dataset", goerr.V("url", source))
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, goerr.New("unexpected dataset response status",
			goerr.V("url", source),
			goerr.V("status", resp.StatusCode))
	}
	return resp.Body, nil
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Build constructs a dataset from parsed records and computes the payload
// bounds used to seed the range control. An empty record set is rejected.
func Build(id types.DatasetID, source string, loadedAt time.Time, records []model.LaunchRecord) (*model.Dataset, error) {
	minPayload, maxPayload, err := PayloadBounds(records)
	if err != nil {
		return nil, err
	}
	return model.NewDataset(id, source, loadedAt, records, minPayload, maxPayload)
}

// PayloadBounds returns the minimum and maximum payload mass of records
func PayloadBounds(records []model.LaunchRecord) (float64, float64, error) {
	masses := make(stats.Float64Data, 0, len(records))
	for _, r := range records {
		masses = append(masses, r.PayloadMass)
	}

	minPayload, err := stats.Min(masses)
	if err != nil {
		return 0, 0, goerr.Wrap(err, "failed to compute minimum payload", goerr.V("records", len(records)))
	}
	maxPayload, err := stats.Max(masses)
	if err != nil {
		return 0, 0, goerr.Wrap(err, "failed to compute maximum payload", goerr.V("records", len(records)))
	}
	return minPayload, maxPayload, nil
}
