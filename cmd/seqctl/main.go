package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-collections/internal/console"
	"github.com/huynhanx03/go-collections/pkg/logger"
	"github.com/huynhanx03/go-collections/pkg/settings"
)

type options struct {
	configPath string
	kind       string
	capacity   int
	scriptPath string
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "seqctl",
		Short: "Drive a CircVector or LinkedList with line-oriented commands",
		Long: `seqctl reads commands such as "push_back 3", "at 0" or "print" from a
script (or stdin) and applies them to the selected container.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a config file (yaml, json, toml)")
	flags.StringVarP(&opts.kind, "kind", "k", "", "container kind: circvector or linkedlist")
	flags.IntVar(&opts.capacity, "capacity", 0, "initial CircVector capacity")
	flags.StringVarP(&opts.scriptPath, "script", "s", "", "script file to execute (default stdin)")
	return cmd
}

func run(ctx context.Context, cmd *cobra.Command, opts options) error {
	cfg, err := settings.Load(opts.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("kind") {
		cfg.Sequence.Kind = opts.kind
	}
	if cmd.Flags().Changed("capacity") {
		cfg.Sequence.Capacity = opts.capacity
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	seq, err := console.NewSequence(cfg.Sequence)
	if err != nil {
		return err
	}

	in, closeIn, err := openScript(opts.scriptPath, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer closeIn()

	log.Info("session started",
		zap.String("kind", cfg.Sequence.Kind),
		zap.Int("capacity", cfg.Sequence.Capacity),
		zap.String("script", opts.scriptPath),
	)
	return console.NewSession(seq, log).Run(ctx, in, cmd.OutOrStdout())
}

// openScript returns the script reader; an empty path reads from stdin.
func openScript(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to open script %s", path)
	}
	return f, func() { _ = f.Close() }, nil
}
