package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"parking_sms/internal/config"
	"parking_sms/internal/models"

	"github.com/spf13/cobra"
)

func newTariffsCmd(cfgPath *string) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "tariffs",
		Short: "Print the configured tariff table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(config.New(*cfgPath))
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(cfg.Tariffs)
			}
			return printTariffs(cmd.OutOrStdout(), cfg.Tariffs)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func printTariffs(w io.Writer, table models.TariffTable) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ZONE\tLABEL\tVALUE\tPRICE\tCODE\tMINUTES")
	for _, z := range table.Zones {
		for _, o := range z.Options {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\n", z.Zone, o.Label, o.Value, o.Price, o.Code, o.Minutes)
		}
	}
	return tw.Flush()
}
