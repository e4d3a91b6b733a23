package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newOptionsCmd(load func() (appConfig, error)) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "options",
		Short: "Print the active query type options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			options, err := cfg.queryTypes()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "table":
				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "VALUE\tLABEL")
				for _, o := range options {
					fmt.Fprintf(w, "%s\t%s\n", o.Value, o.Label)
				}
				return w.Flush()
			case "yaml":
				enc := yaml.NewEncoder(out)
				defer enc.Close()
				return enc.Encode(map[string]any{"query_types": options})
			default:
				return fmt.Errorf("unsupported format %q (use table or yaml)", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table or yaml")
	return cmd
}
