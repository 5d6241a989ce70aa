package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pregoogle/internal/deps"
	"pregoogle/internal/preflight"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check that exiftool and the state directories are usable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			missing := 0
			for _, status := range deps.CheckBinaries([]deps.Requirement{deps.ExifTool(cfg.ExifToolBinary())}) {
				kind, message := statusOK, status.Resolved
				if status.Available {
					if check := preflight.CheckExecutable(status.Name, status.Resolved); !check.Passed {
						kind, message = statusError, check.Detail
						missing++
					}
				} else {
					kind, message = statusError, status.Detail
					if status.Optional {
						kind = statusWarn
					} else {
						missing++
					}
				}
				fmt.Fprintln(out, renderStatusLine(status.Name, kind, message, colorize))
			}
			for _, result := range preflight.CheckPaths(cfg) {
				kind := statusOK
				if !result.Passed {
					kind = statusError
					missing++
				}
				fmt.Fprintln(out, renderStatusLine(result.Name, kind, result.Detail, colorize))
			}
			if missing > 0 {
				return errors.New("dependency check failed")
			}
			return nil
		},
	}
}
