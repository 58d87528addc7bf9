package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/pastor/internal/application/usecase"
	"github.com/bnema/pastor/internal/domain/entity"
	perrors "github.com/bnema/pastor/internal/errors"
	"github.com/bnema/pastor/internal/infrastructure/config"
	"github.com/bnema/pastor/internal/logging"
)

// storageReportInterval is how often the watcher logs the history file size.
const storageReportInterval = time.Hour

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Record clipboard changes until interrupted",
	Long: `Poll the system clipboard and record every new text into the history.

The watcher holds the history lock while it runs, so commands that change
the history (add, remove, clear, reset) are refused until it stops.
'pastor copy' still works: the watcher picks the copied text up and moves
it to the top.

Changes to history.max_items in config.toml apply without a restart.

Examples:
  pastor watch                        # Run in the foreground
  PASTOR_LOG_LEVEL=debug pastor watch # See every observed change`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	app, err := lockedApp()
	if err != nil {
		return err
	}

	if app.Config.Logging.EnableFileLog {
		if err := app.EnableFileLog(); err != nil {
			logging.FromContext(app.Ctx()).Warn().Err(err).Msg("file logging unavailable")
		}
	}

	ctx, stop := signal.NotifyContext(logging.WithComponent(app.Ctx(), "watch"), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := logging.FromContext(ctx)

	history, err := app.History()
	if err != nil {
		log.Warn().Err(err).Str("code", string(perrors.CodeOf(err))).Msg("history load failed")
		fmt.Fprintln(cmd.ErrOrStderr(), app.Theme.WarningMessage("history could not be loaded, starting empty: "+err.Error()))
	}
	app.Store.LogSize(ctx)
	history.OnChange(func(entries []entity.ClipEntry) {
		log.Debug().Int("entries", len(entries)).Msg("history changed")
	})

	poller := usecase.NewClipboardPoller(app.Clipboard, history, app.Config.Clipboard.PollInterval())
	if err := poller.Start(ctx); err != nil {
		return fmt.Errorf("start clipboard poller: %w", err)
	}
	defer poller.Stop()

	watchConfig(ctx, app.ConfigMgr, poller, history)

	log.Info().
		Str("backend", app.Clipboard.Backend()).
		Dur("interval", poller.Interval()).
		Int("max_items", history.MaxItems()).
		Int("entries", history.Len()).
		Msg("watching clipboard")
	fmt.Fprintln(cmd.OutOrStdout(), app.Theme.SuccessMessage("Watching the clipboard, press Ctrl+C to stop"))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("stopping clipboard watcher")
		poller.Stop()
		return nil
	})
	g.Go(func() error {
		ticker := time.NewTicker(storageReportInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				app.Store.LogSize(gctx)
			}
		}
	})
	return g.Wait()
}

// watchConfig hot-reloads history.max_items. Reloads arrive on viper's
// watcher goroutine and are handed to the poller so the history keeps a
// single owner.
func watchConfig(ctx context.Context, mgr *config.Manager, poller *usecase.ClipboardPoller, history *usecase.HistoryManager) {
	log := logging.FromContext(ctx)
	if mgr == nil {
		return
	}

	interval := poller.Interval()
	mgr.OnConfigChange(func(cfg *config.Config) {
		n := config.ClampMaxItems(cfg.History.MaxItems)
		err := poller.Do(ctx, func(ctx context.Context) error {
			return history.SetMaxItems(ctx, n)
		})
		if err != nil {
			log.Error().Err(err).Int("max_items", n).Msg("failed to apply max_items")
		} else {
			log.Info().Int("max_items", n).Msg("config reloaded")
		}

		if cfg.Clipboard.PollInterval() != interval {
			log.Warn().Dur("interval", cfg.Clipboard.PollInterval()).Msg("poll interval change applies after restart")
		}
	})

	if err := mgr.Watch(); err != nil {
		log.Warn().Err(err).Msg("config hot reload disabled")
	}
}
