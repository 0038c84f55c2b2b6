package handlers

import (
	"context"
	"net/http"
	"sync"

	parking_sms "parking_sms"
	"parking_sms/internal/models"
	"parking_sms/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

// parkingCall records one invocation of mockParking.
type parkingCall struct {
	method string
	owner  int
	arg    string
	params service.ViewParams
}

// mockParking returns view for every call, or err when set.
type mockParking struct {
	mu    sync.Mutex
	view  models.View
	err   error
	calls []parkingCall
}

func (m *mockParking) record(method string, owner int, arg string, p service.ViewParams) (models.View, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, parkingCall{method: method, owner: owner, arg: arg, params: p})
	return m.view, m.err
}

func (m *mockParking) last() parkingCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.calls) == 0 {
		return parkingCall{}
	}
	return m.calls[len(m.calls)-1]
}

func (m *mockParking) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func (m *mockParking) View(_ context.Context, owner int, p service.ViewParams) (models.View, error) {
	return m.record("View", owner, "", p)
}
func (m *mockParking) SetZone(_ context.Context, owner int, zone string, p service.ViewParams) (models.View, error) {
	return m.record("SetZone", owner, zone, p)
}
func (m *mockParking) SetDuration(_ context.Context, owner int, value string, p service.ViewParams) (models.View, error) {
	return m.record("SetDuration", owner, value, p)
}
func (m *mockParking) SetPlate(_ context.Context, owner int, raw string, p service.ViewParams) (models.View, error) {
	return m.record("SetPlate", owner, raw, p)
}
func (m *mockParking) SavePlate(_ context.Context, owner int, p service.ViewParams) (models.View, error) {
	return m.record("SavePlate", owner, "", p)
}
func (m *mockParking) PickPlate(_ context.Context, owner int, plate string, p service.ViewParams) (models.View, error) {
	return m.record("PickPlate", owner, plate, p)
}
func (m *mockParking) DeletePlate(_ context.Context, owner int, plate string, p service.ViewParams) (models.View, error) {
	return m.record("DeletePlate", owner, plate, p)
}
func (m *mockParking) Send(_ context.Context, owner int, p service.ViewParams) (models.View, error) {
	return m.record("Send", owner, "", p)
}
func (m *mockParking) Tariffs() models.TariffTable { return parking_sms.DefaultTariffs() }

type mockEventLog struct {
	resp       []models.ParkingEvent
	err        error
	lastFilter service.LogFilter
}

func (m *mockEventLog) List(_ context.Context, f service.LogFilter) ([]models.ParkingEvent, error) {
	m.lastFilter = f
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
