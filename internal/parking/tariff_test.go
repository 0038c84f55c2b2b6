package parking

import (
	"errors"
	"strings"
	"testing"

	parking_sms "parking_sms"
	"parking_sms/internal/models"
)

func TestResolveTariff_EveryStoredOption(t *testing.T) {
	table := parking_sms.DefaultTariffs()
	for _, z := range table.Zones {
		for _, o := range z.Options {
			got, err := ResolveTariff(table, z.Zone, o.Value)
			if err != nil {
				t.Fatalf("ResolveTariff(%q,%q): %v", z.Zone, o.Value, err)
			}
			if got.Price != o.Price || got.Code != o.Code {
				t.Fatalf("ResolveTariff(%q,%q) = %+v, want %+v", z.Zone, o.Value, got, o)
			}
		}
	}
}

func TestResolveTariff_KnownValues(t *testing.T) {
	table := parking_sms.DefaultTariffs()
	cases := []struct {
		zone, value string
		price, code int
	}{
		{"I", "30m", 4, 403},
		{"I", "2h", 16, 405},
		{"II", "1h", 3, 407},
		{"II", "4h", 12, 409},
	}
	for _, tc := range cases {
		got, err := ResolveTariff(table, tc.zone, tc.value)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Price != tc.price || got.Code != tc.code {
			t.Fatalf("%s/%s: got price=%d code=%d", tc.zone, tc.value, got.Price, got.Code)
		}
	}
}

func TestResolveTariff_NotFound(t *testing.T) {
	table := parking_sms.DefaultTariffs()
	for _, tc := range [][2]string{{"III", "1h"}, {"I", "4h"}, {"II", "30m"}, {"", ""}} {
		_, err := ResolveTariff(table, tc[0], tc[1])
		if !errors.Is(err, ErrTariffNotFound) {
			t.Fatalf("ResolveTariff(%q,%q) err=%v, want ErrTariffNotFound", tc[0], tc[1], err)
		}
	}
}

func TestMustResolveTariff_Panics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrTariffNotFound) {
			t.Fatalf("unexpected panic value: %v", r)
		}
	}()
	MustResolveTariff(parking_sms.DefaultTariffs(), "II", "30m")
}

func TestOptionMinutes(t *testing.T) {
	cases := []struct {
		opt     models.TariffOption
		want    int
		wantErr bool
	}{
		{models.TariffOption{Value: "30m"}, 30, false},
		{models.TariffOption{Value: "4h"}, 240, false},
		{models.TariffOption{Value: "1h30m"}, 90, false},
		{models.TariffOption{Value: "day", Minutes: 720}, 720, false},
		{models.TariffOption{Value: "day"}, 0, true},
		{models.TariffOption{Value: "90s"}, 0, true},
		{models.TariffOption{Value: "-1h"}, 0, true},
	}
	for _, tc := range cases {
		got, err := OptionMinutes(tc.opt)
		if (err != nil) != tc.wantErr {
			t.Fatalf("OptionMinutes(%+v) err=%v, wantErr=%v", tc.opt, err, tc.wantErr)
		}
		if got != tc.want {
			t.Fatalf("OptionMinutes(%+v) = %d, want %d", tc.opt, got, tc.want)
		}
	}
}

func TestValidateTable(t *testing.T) {
	valid := models.TariffTable{Zones: []models.TariffZone{{
		Zone:    "A",
		Options: []models.TariffOption{{Value: "15m", Price: 1, Code: 100}},
	}}}
	got, err := ValidateTable(valid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o := got.Zones[0].Options[0]; o.Minutes != 15 || o.Label != "15m" {
		t.Fatalf("expected derived minutes and label, got %+v", o)
	}
	if valid.Zones[0].Options[0].Minutes != 0 {
		t.Fatalf("input table was modified")
	}

	bad := map[string]models.TariffTable{
		"no zones":   {},
		"empty zone": {Zones: []models.TariffZone{{Zone: "", Options: valid.Zones[0].Options}}},
		"dup zone":   {Zones: []models.TariffZone{valid.Zones[0], valid.Zones[0]}},
		"no options": {Zones: []models.TariffZone{{Zone: "A"}}},
		"dup value": {Zones: []models.TariffZone{{Zone: "A", Options: []models.TariffOption{
			{Value: "1h", Code: 1}, {Value: "1h", Code: 2},
		}}}},
		"no code":     {Zones: []models.TariffZone{{Zone: "A", Options: []models.TariffOption{{Value: "1h"}}}}},
		"bad minutes": {Zones: []models.TariffZone{{Zone: "A", Options: []models.TariffOption{{Value: "soon", Code: 1}}}}},
		"too long":    {Zones: []models.TariffZone{{Zone: "A", Options: []models.TariffOption{{Value: "25h", Code: 1}}}}},
	}
	for name, table := range bad {
		t.Run(name, func(t *testing.T) {
			_, err := ValidateTable(table)
			if !errors.Is(err, ErrInvalidTable) {
				t.Fatalf("expected ErrInvalidTable, got %v", err)
			}
			if !strings.Contains(err.Error(), "invalid tariff table") {
				t.Fatalf("unexpected message: %v", err)
			}
		})
	}
}

func TestValidateTable_DefaultTariffsPass(t *testing.T) {
	if _, err := ValidateTable(parking_sms.DefaultTariffs()); err != nil {
		t.Fatalf("built-in table rejected: %v", err)
	}
}
