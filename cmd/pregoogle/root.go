package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string

	ctx := newCommandContext(&configFlag, &logLevelFlag)
	legacy := &titleOptions{}

	rootCmd := &cobra.Command{
		Use:   "pregoogle [filename [exiftool] [simulate]]",
		Short: "Write photo titles composed from IPTC metadata",
		Long: "pregoogle builds a title from a photo's caption, keywords, headline, location and date\n" +
			"and stores it in XMP:Description with exiftool.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !legacy.recursive {
				return cmd.Help()
			}
			opts, err := parseLegacyArgs(args, *legacy)
			if err != nil {
				return err
			}
			return runTitle(cmd, ctx, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Override logging.level (debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&legacy.recursive, "recursive", "r", false, "Process matching files below the working directory")

	rootCmd.AddCommand(newTitleCommand(ctx))
	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newDepsCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
