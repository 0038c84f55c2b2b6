package parking

import (
	"errors"
	"fmt"
	"time"

	"parking_sms/internal/models"
)

var (
	// ErrTariffNotFound means a (zone, duration) pair that should always exist
	// does not. Reaching it is a programming error.
	ErrTariffNotFound = errors.New("tariff not found")

	ErrUnknownZone     = errors.New("unknown zone")
	ErrUnknownDuration = errors.New("unknown duration for zone")
	ErrSendDisabled    = errors.New("plate must have at least 4 letters or digits")
	ErrInvalidTable    = errors.New("invalid tariff table")
)

// ResolveTariff looks up value within zone's options.
func ResolveTariff(table models.TariffTable, zone, value string) (models.TariffOption, error) {
	opts, ok := table.Options(zone)
	if !ok {
		return models.TariffOption{}, fmt.Errorf("zone %q: %w", zone, ErrTariffNotFound)
	}
	for _, o := range opts {
		if o.Value == value {
			return o, nil
		}
	}
	return models.TariffOption{}, fmt.Errorf("zone %q duration %q: %w", zone, value, ErrTariffNotFound)
}

// MustResolveTariff is ResolveTariff for callers that already guarantee the
// pair exists. It panics otherwise.
func MustResolveTariff(table models.TariffTable, zone, value string) models.TariffOption {
	o, err := ResolveTariff(table, zone, value)
	if err != nil {
		panic(err)
	}
	return o
}

func hasDuration(table models.TariffTable, zone, value string) bool {
	_, err := ResolveTariff(table, zone, value)
	return err == nil
}

func firstOption(table models.TariffTable, zone string) (models.TariffOption, bool) {
	opts, ok := table.Options(zone)
	if !ok || len(opts) == 0 {
		return models.TariffOption{}, false
	}
	return opts[0], true
}

// OptionMinutes returns the session length bought by o. An explicit Minutes
// wins; otherwise Value is read as a Go duration ("30m", "2h").
func OptionMinutes(o models.TariffOption) (int, error) {
	if o.Minutes > 0 {
		return o.Minutes, nil
	}
	d, err := time.ParseDuration(o.Value)
	if err != nil {
		return 0, fmt.Errorf("duration value %q: %w", o.Value, err)
	}
	if d <= 0 || d%time.Minute != 0 {
		return 0, fmt.Errorf("duration value %q is not a positive whole number of minutes", o.Value)
	}
	return int(d / time.Minute), nil
}

// ValidateTable checks the table invariants and fills in option minutes.
// The returned table is a copy; the input is not modified.
func ValidateTable(table models.TariffTable) (models.TariffTable, error) {
	if len(table.Zones) == 0 {
		return models.TariffTable{}, fmt.Errorf("%w: no zones", ErrInvalidTable)
	}
	out := models.TariffTable{Zones: make([]models.TariffZone, 0, len(table.Zones))}
	zones := make(map[string]struct{}, len(table.Zones))
	for _, z := range table.Zones {
		if z.Zone == "" {
			return models.TariffTable{}, fmt.Errorf("%w: empty zone id", ErrInvalidTable)
		}
		if _, dup := zones[z.Zone]; dup {
			return models.TariffTable{}, fmt.Errorf("%w: zone %q listed twice", ErrInvalidTable, z.Zone)
		}
		zones[z.Zone] = struct{}{}
		if len(z.Options) == 0 {
			return models.TariffTable{}, fmt.Errorf("%w: zone %q has no options", ErrInvalidTable, z.Zone)
		}

		opts := make([]models.TariffOption, 0, len(z.Options))
		values := make(map[string]struct{}, len(z.Options))
		for _, o := range z.Options {
			if o.Value == "" {
				return models.TariffTable{}, fmt.Errorf("%w: zone %q has an option without value", ErrInvalidTable, z.Zone)
			}
			if _, dup := values[o.Value]; dup {
				return models.TariffTable{}, fmt.Errorf("%w: zone %q duration %q listed twice", ErrInvalidTable, z.Zone, o.Value)
			}
			values[o.Value] = struct{}{}
			if o.Code <= 0 {
				return models.TariffTable{}, fmt.Errorf("%w: zone %q duration %q has no dispatch code", ErrInvalidTable, z.Zone, o.Value)
			}
			mins, err := OptionMinutes(o)
			if err != nil {
				return models.TariffTable{}, fmt.Errorf("%w: zone %q: %v", ErrInvalidTable, z.Zone, err)
			}
			if mins > MaxSessionMinutes {
				return models.TariffTable{}, fmt.Errorf("%w: zone %q duration %q is longer than %d minutes", ErrInvalidTable, z.Zone, o.Value, MaxSessionMinutes)
			}
			o.Minutes = mins
			if o.Label == "" {
				o.Label = o.Value
			}
			opts = append(opts, o)
		}
		out.Zones = append(out.Zones, models.TariffZone{Zone: z.Zone, Options: opts})
	}
	return out, nil
}
