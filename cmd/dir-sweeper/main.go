package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jkomar/dir-sweeper/internal/config"
	"github.com/jkomar/dir-sweeper/internal/fs"
	"github.com/jkomar/dir-sweeper/internal/logging"
	"github.com/jkomar/dir-sweeper/internal/schedule"
	"github.com/jkomar/dir-sweeper/internal/sweep"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath string
		dryRun  bool
	)

	root := &cobra.Command{
		Use:           "dir-sweeper",
		Short:         "Deletes stale subdirectories under configured search roots",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(cmd.Context(), cfgPath, dryRun)
		},
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "path to configuration file")
	root.Flags().BoolVar(&dryRun, "dry-run", false, "plan only, delete nothing")

	daemon := &cobra.Command{
		Use:   "daemon",
		Short: "Run sweeps on the configured cron schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDaemon(cmd.Context(), cfgPath)
		},
	}
	root.AddCommand(daemon)

	return root
}

// setup loads configuration and builds the sweeper. Any error here is
// a fatal configuration problem: nothing has been deleted yet.
func setup(cfgPath string, dryRun bool) (*sweep.Sweeper, *config.Config, logging.Logger, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, nil, err
	}

	rules, err := sweep.BuildRules(cfg.Rules)
	if err != nil {
		return nil, nil, nil, err
	}

	logg := logging.New(cfg.Logging)
	sw := sweep.New(rules, logg, fs.New(), sweep.Options{DryRun: dryRun})
	return sw, cfg, logg, nil
}

func runSweep(ctx context.Context, cfgPath string, dryRun bool) error {
	sw, _, _, err := setup(cfgPath, dryRun)
	if err != nil {
		return err
	}

	report := sw.Run(ctx)
	printReport(os.Stdout, report)

	if report.AllRulesFailed() {
		return errors.New("all rules failed")
	}
	return nil
}

func runDaemon(ctx context.Context, cfgPath string) error {
	sw, cfg, logg, err := setup(cfgPath, false)
	if err != nil {
		return err
	}

	d, err := schedule.New(cfg.Schedule, logg, func(ctx context.Context) {
		sw.Run(ctx)
	})
	if err != nil {
		return err
	}

	return d.Start(ctx)
}
