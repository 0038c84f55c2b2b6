package service

import (
	"context"
	"sort"
	"sync"
	"time"

	parking_sms "parking_sms"
	"parking_sms/internal/models"
)

// memSnapshots is an in-memory repository.SnapshotRepo.
type memSnapshots struct {
	mu      sync.Mutex
	bodies  map[int][]byte
	loadErr error
	saveErr error
	saves   int
}

func newMemSnapshots() *memSnapshots { return &memSnapshots{bodies: map[int][]byte{}} }

func (m *memSnapshots) Load(_ context.Context, ownerID int) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	b, ok := m.bodies[ownerID]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), b...), nil
}

func (m *memSnapshots) Save(_ context.Context, ownerID int, body []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.bodies[ownerID] = append([]byte(nil), body...)
	return nil
}

func (m *memSnapshots) Owners(_ context.Context) ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	out := make([]int, 0, len(m.bodies))
	for id := range m.bodies {
		out = append(out, id)
	}
	sort.Ints(out)
	return out, nil
}

// memEvents is an in-memory repository.EventRepo that also records List calls.
type memEvents struct {
	mu        sync.Mutex
	appended  []models.ParkingEvent
	appendErr error

	listed  []models.ParkingEvent
	listErr error
	calls   int
	gotArgs struct {
		owner    int
		from, to time.Time
		typ      string
	}
}

func (m *memEvents) Append(_ context.Context, e models.ParkingEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.appendErr != nil {
		return m.appendErr
	}
	m.appended = append(m.appended, e)
	return nil
}

func (m *memEvents) List(_ context.Context, ownerID int, from, to time.Time, typ string) ([]models.ParkingEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.gotArgs.owner, m.gotArgs.from, m.gotArgs.to, m.gotArgs.typ = ownerID, from, to, typ
	return m.listed, m.listErr
}

func (m *memEvents) types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.appended))
	for _, e := range m.appended {
		out = append(out, e.Type)
	}
	return out
}

// countingMetrics is a metrics.Recorder that counts calls.
type countingMetrics struct {
	mu        sync.Mutex
	composed  []string
	fallbacks int
	expired   int
}

func (c *countingMetrics) MessageComposed(zone, duration, platform string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.composed = append(c.composed, zone+"/"+duration+"/"+platform)
}

func (c *countingMetrics) SnapshotFallback() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fallbacks++
}

func (c *countingMetrics) SessionExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expired++
}

func testDeps(rec *countingMetrics) Deps {
	return Deps{
		Tariffs:     parking_sms.DefaultTariffs(),
		Destination: parking_sms.DestinationNumber,
		SigningKey:  testSigningKey,
		TokenTTL:    time.Hour,
		Metrics:     rec,
	}
}
