package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/csknk/fizzbuzz-no-modulus-operator/internal/config"
	"github.com/csknk/fizzbuzz-no-modulus-operator/internal/input"
	"github.com/csknk/fizzbuzz-no-modulus-operator/internal/logger"
	"github.com/csknk/fizzbuzz-no-modulus-operator/internal/runner"
)

type options struct {
	configPath string
	prompt     string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "fizzbuzz [bound]",
		Short: "Print FizzBuzz from 1 to bound without the modulus operator",
		Long: `Prints, for every n from 1 to bound, "n: Fizz" when n is divisible by 3,
"n: Buzz" when divisible by 5, "n: FizzBuzz" when divisible by both and the
bare number otherwise. Divisibility is computed with bit counting and
subtraction.

Without an argument the bound is read from standard input after a prompt.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	cmd.Flags().StringVar(&opts.prompt, "prompt", "", "prompt printed before reading the bound")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	cfg := config.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if opts.prompt != "" {
		cfg.Prompt = opts.prompt
	}
	if opts.verbose {
		cfg.Logging.Level = "debug"
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Close() }()

	bound, err := acquireBound(cmd, args, cfg.Prompt)
	if err != nil {
		return err
	}
	log.Debug("bound acquired", zap.Int32("bound", bound), zap.Bool("from_args", len(args) == 1))

	if _, err := runner.New(log).Run(cmd.OutOrStdout(), bound); err != nil {
		return err
	}
	return nil
}

// acquireBound takes the bound from args when given, otherwise prompts on
// stdout and reads stdin.
func acquireBound(cmd *cobra.Command, args []string, prompt string) (int32, error) {
	if len(args) == 1 {
		return input.ParseBound(args[0])
	}

	if err := input.Prompt(cmd.OutOrStdout(), prompt); err != nil {
		return 0, err
	}
	return input.ReadBound(cmd.InOrStdin())
}
