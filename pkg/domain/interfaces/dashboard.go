package interfaces

import (
	"context"

	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
)

// Dashboard serves the launch dashboard page and its reactive updates
type Dashboard interface {
	// Layout returns the page description with controls at their initial values
	Layout(ctx context.Context) *model.Layout

	// Update recomputes the outputs bound to the changed controls
	Update(ctx context.Context, changed []types.ControlID, sel model.Selection) (map[types.OutputID]model.Figure, error)

	// Dataset returns a summary of the loaded dataset
	Dataset(ctx context.Context) model.DatasetSummary

	// Export returns the scatter selection as an xlsx workbook
	Export(ctx context.Context, sel model.Selection) ([]byte, error)
}
