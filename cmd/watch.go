package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/openwin/internal/adapters/watch"
	"github.com/spf13/cobra"
)

func newWatchCmd(app *app) *cobra.Command {
	flags := &resolveFlags{}

	cmd := &cobra.Command{
		Use:   "watch [path]",
		Short: "Re-resolve a path every time the window snapshot changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(flags.output); err != nil {
				return err
			}

			var filePath string
			if len(args) == 1 {
				filePath = args[0]
			}

			request, err := flags.command(filePath)
			if err != nil {
				return err
			}

			svc, err := app.service(flags.casePolicy)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			changes, err := watch.New(app.windowRepo.Path(), watch.DefaultDebounce, app.logger).Watch(ctx)
			if err != nil {
				return err
			}

			resolve := func(ctx context.Context) error {
				decision, err := svc.Resolve(ctx, request)
				if err != nil {
					return fmt.Errorf("resolve window: %w", err)
				}
				return writeDecisionOutput(cmd, app, decision, flags.output)
			}

			if err := resolve(ctx); err != nil {
				return err
			}

			for range changes {
				if err := resolve(ctx); err != nil {
					if ctx.Err() != nil {
						return nil
					}
					app.logger.Warn("re-resolve failed", slog.String("error", err.Error()))
				}
			}

			return nil
		},
	}
	flags.bind(cmd)

	return cmd
}
