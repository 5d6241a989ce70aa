package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pregoogle/internal/metadata"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var showFields bool

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print the title a photo would get, without writing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			proc, closeFn, err := buildProcessor(cfg, logger, true, false)
			if err != nil {
				return err
			}
			defer closeFn()

			fields, composed, err := proc.Inspect(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if showFields {
				fmt.Fprintln(out, renderTable([]string{"Field", "Value"}, fieldRows(fields)))
			}
			if strings.TrimSpace(composed) == "" {
				fmt.Fprintln(out, "(no title: no usable metadata)")
				return nil
			}
			fmt.Fprintln(out, composed)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showFields, "fields", false, "Also print the metadata fields the title is built from")
	return cmd
}

func fieldRows(fields metadata.Fields) [][]string {
	return [][]string{
		{"Caption", fields.Caption},
		{"Object name", fields.ObjectName},
		{"Keywords", strings.Join(fields.Keywords, "; ")},
		{"Headline", fields.Headline},
		{"Sub-location", fields.SubLocation},
		{"City", fields.City},
		{"Province/State", fields.Province},
		{"Country", fields.PrimaryLocationName},
		{"Created", fields.DateCreated},
		{"By-line", fields.ByLine},
	}
}
