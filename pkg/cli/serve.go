package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/launchdash/pkg/cli/config"
	controller "github.com/secmon-lab/launchdash/pkg/controller/http"
	"github.com/secmon-lab/launchdash/pkg/usecase"
	"github.com/secmon-lab/launchdash/pkg/utils/async"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		datasetCfg   config.Dataset
		layoutCfg    config.Layout
		firestoreCfg config.Firestore
	)

	flags := joinFlags(
		serverCfg.Flags(),
		datasetCfg.Flags(),
		layoutCfg.Flags(),
		firestoreCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Load the launch dataset and start the dashboard HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting launchdash server",
				slog.Any("server", serverCfg),
				slog.Any("dataset", datasetCfg),
				slog.Any("layout", layoutCfg),
				slog.Any("firestore", firestoreCfg),
			)

			if err := datasetCfg.Validate(firestoreCfg.IsConfigured()); err != nil {
				return err
			}

			repo, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			// The dataset is loaded exactly once; a failure here is fatal
			ds, err := datasetCfg.Configure(ctx, repo)
			if err != nil {
				return goerr.Wrap(err, "failed to load launch dataset")
			}

			// Freshly fetched datasets are stored as snapshots so /api/datasets lists them
			if datasetCfg.Mode == config.SourceURL {
				archived := async.Dispatch(ctx, func(ctx context.Context) error {
					if err := repo.PutDataset(ctx, ds); err != nil {
						return goerr.Wrap(err, "failed to archive dataset snapshot", goerr.V("id", ds.ID()))
					}
					ctxlog.From(ctx).Info("Dataset snapshot archived", "id", ds.ID())
					return nil
				})
				defer func() { <-archived }()
			}

			layout, err := layoutCfg.Configure()
			if err != nil {
				return err
			}

			dashboard, err := usecase.NewDashboard(ds, usecase.WithLayoutConfig(layout))
			if err != nil {
				return goerr.Wrap(err, "failed to create dashboard")
			}

			server, err := controller.NewServer(ctx, serverCfg.Addr, dashboard, controller.WithRepository(repo))
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			eg, egCtx := errgroup.WithContext(sigCtx)
			eg.Go(func() error {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return goerr.Wrap(err, "HTTP server error", goerr.V("addr", serverCfg.Addr))
				}
				return nil
			})
			eg.Go(func() error {
				<-egCtx.Done()
				logger.Info("Shutting down...")

				shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), serverCfg.ShutdownTimeout)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}
				return nil
			})

			if err := eg.Wait(); err != nil {
				return err
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
