package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/launchdash/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func cmdImport() *cli.Command {
	var (
		datasetCfg   config.Dataset
		firestoreCfg config.Firestore
	)

	return &cli.Command{
		Name:  "import",
		Usage: "Load the launch dataset and store it as a snapshot in Firestore",
		Flags: joinFlags(
			datasetCfg.Flags(),
			firestoreCfg.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if !firestoreCfg.IsConfigured() {
				return goerr.New("import requires a Firestore project, set --firestore-project")
			}

			repo, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			ds, err := datasetCfg.Loader().Load(ctx, datasetCfg.Source)
			if err != nil {
				return goerr.Wrap(err, "failed to load launch dataset")
			}

			if err := repo.PutDataset(ctx, ds); err != nil {
				return goerr.Wrap(err, "failed to store dataset snapshot")
			}

			logger.Info("Dataset snapshot imported",
				slog.String("id", ds.ID().String()),
				slog.Int("records", ds.Len()),
				slog.Any("firestore", firestoreCfg),
			)
			return nil
		},
	}
}
