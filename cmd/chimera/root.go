package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zoobzio/chimera"
)

// newRootCmd builds the chimera command with its own viper instance.
func newRootCmd() *cobra.Command {
	v := newViper()

	cmd := &cobra.Command{
		Use:   "chimera <encode|e|decode|d> <pattern> <text...>",
		Short: "Reversible pattern-driven text obfuscation",
		Long: `Chimera encodes and decodes text by applying the transforms named in a pattern.

Each pattern letter selects a transform; trailing digits set the shift used by C.
Text is upper-cased and filtered to the alphabet before encoding, so spaces and
punctuation are dropped. Decoding with the same pattern restores the filtered text.

Selectors:
  A reverse          E swap halves        J atbash
  B ROT13 (A-Z)      H rotate right 1     S shift by index of S
  C shift by digits  I rotate left 2      other: unchanged
  D shift by -5

Configuration Sources (in order of precedence):
1. Command line flags
2. Environment variables (CHIMERA_ALPHABET, CHIMERA_VERBOSE)
3. Configuration file (CHIMERA_CONFIG, ./chimera.yaml, ~/.chimera/chimera.yaml)

Examples:
  chimera encode A hello          # OLLEH
  chimera e C3 abc                # DEF
  chimera d C3 DEF                # ABC
  chimera -a "abc xyz" e AJ "a b"`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return v.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
			defer func() { _ = logger.Sync() }()

			return run(cmd, logger, cfg, args)
		},
	}

	// Flags stop at the first positional argument so text may start with "-".
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringP("alphabet", "a", chimera.DefaultSymbols, "Symbols available to index-based transforms")
	cmd.Flags().BoolP("verbose", "v", false, "Log pattern and alphabet details to stderr")

	return cmd
}

// run splits positional arguments and hands them to the engine.
func run(cmd *cobra.Command, logger *zap.Logger, cfg config, args []string) error {
	engine, err := chimera.NewEngine(chimera.WithSymbols(cfg.Alphabet))
	if err != nil {
		return err
	}

	var mode, pattern string
	var text []string
	if len(args) > 0 {
		mode = args[0]
	}
	if len(args) > 1 {
		pattern = args[1]
	}
	if len(args) > 2 {
		text = args[2:]
	}

	logger.Debug("running",
		zap.String("mode", mode),
		zap.String("pattern", pattern),
		zap.Int("text_parts", len(text)),
		zap.Int("alphabet_size", engine.Alphabet().Size()),
	)

	out, err := engine.Run(cmd.Context(), mode, pattern, text...)
	if err != nil {
		logger.Debug("rejected", zap.Error(err))
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
