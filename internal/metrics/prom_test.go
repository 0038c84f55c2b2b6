package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestProm_MessageComposed(t *testing.T) {
	reg := prometheus.NewRegistry()
	p, err := NewProm(reg)
	if err != nil {
		t.Fatalf("NewProm: %v", err)
	}
	p.MessageComposed("I", "30m", "ios")
	p.MessageComposed("I", "30m", "ios")
	p.MessageComposed("II", "4h", "android")

	expected := `
# HELP parking_sms_composed_total Total number of confirmed SMS sends
# TYPE parking_sms_composed_total counter
parking_sms_composed_total{duration="30m",platform="ios",zone="I"} 2
parking_sms_composed_total{duration="4h",platform="android",zone="II"} 1
`
	if err := testutil.CollectAndCompare(p.composed, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
}

func TestProm_Counters(t *testing.T) {
	p, err := NewProm(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("NewProm: %v", err)
	}
	p.SnapshotFallback()
	p.SessionExpired()
	p.SessionExpired()

	if got := testutil.ToFloat64(p.fallbacks); got != 1 {
		t.Fatalf("fallbacks = %v, want 1", got)
	}
	if got := testutil.ToFloat64(p.expired); got != 2 {
		t.Fatalf("expired = %v, want 2", got)
	}
}

func TestNewProm_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewProm(reg)
	if err != nil {
		t.Fatalf("first NewProm: %v", err)
	}
	second, err := NewProm(reg)
	if err != nil {
		t.Fatalf("second NewProm: %v", err)
	}
	first.SnapshotFallback()
	if got := testutil.ToFloat64(second.fallbacks); got != 1 {
		t.Fatalf("collectors not shared, got %v", got)
	}
}
