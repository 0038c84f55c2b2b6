package main

import (
	"fmt"
	"io"

	"parking_sms/internal/config"
	"parking_sms/internal/models"
	"parking_sms/internal/parking"

	"github.com/spf13/cobra"
)

type composeInput struct {
	Zone     string
	Duration string
	Plate    string
	Platform string
}

func newComposeCmd(cfgPath *string) *cobra.Command {
	var in composeInput
	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Print the price, message and sms: link for a zone, duration and plate",
		Example: `  parking-sms compose --zone I --duration 30m --plate "cj-12 abc"
  parking-sms compose --zone II --duration 4h --plate B123XYZ --platform ios`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := config.New(*cfgPath)
			if err := v.BindPFlag("sms.destination", cmd.Flags().Lookup("destination")); err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return compose(cmd.OutOrStdout(), cfg.Tariffs, cfg.SMS.Destination, in)
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Zone, "zone", "", "tariff zone (default: first configured zone)")
	f.StringVar(&in.Duration, "duration", "", "duration value, e.g. 30m (default: first option of the zone)")
	f.StringVar(&in.Plate, "plate", "", "license plate; anything but letters and digits is dropped")
	f.StringVar(&in.Platform, "platform", string(parking.PlatformAndroid), "sms: link form (ios|android)")
	f.String("destination", "", "override sms.destination")
	_ = cmd.MarkFlagRequired("plate")
	return cmd
}

// compose runs the same reducer steps as the UI and prints the result.
func compose(w io.Writer, table models.TariffTable, destination string, in composeInput) error {
	platform, ok := parking.ParsePlatform(in.Platform)
	if !ok {
		return fmt.Errorf("unknown platform %q (want ios or android)", in.Platform)
	}

	st := parking.DefaultState(table)
	if in.Zone != "" {
		if err := parking.SetZone(&st, table, in.Zone); err != nil {
			return err
		}
	}
	if in.Duration != "" {
		if err := parking.SetDuration(&st, table, in.Duration); err != nil {
			return err
		}
	}
	parking.SetPlate(&st, in.Plate)
	if !parking.IsSendEnabled(st.Plate) {
		return fmt.Errorf("plate %q: %w", st.Plate, parking.ErrSendDisabled)
	}

	v, err := parking.Render(st, table, parking.RenderOptions{Platform: platform, Destination: destination})
	if err != nil {
		return err
	}
	opt := parking.MustResolveTariff(table, st.Zone, st.DurationValue)

	fmt.Fprintf(w, "zone:     %s\n", v.Zone)
	fmt.Fprintf(w, "duration: %s (%s)\n", opt.Label, opt.Value)
	fmt.Fprintf(w, "price:    %d lei\n", v.Price)
	fmt.Fprintf(w, "code:     %d\n", v.Code)
	fmt.Fprintf(w, "message:  %s\n", parking.ComposeMessage(opt, st.Plate))
	fmt.Fprintf(w, "sms uri:  %s\n", v.SMSURI)
	return nil
}
