package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"temperature_converter/internal/converter"
	"temperature_converter/internal/models"
	"temperature_converter/internal/repository"
	"temperature_converter/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockConverter struct {
	conv       service.Conversion
	err        error
	lastParams service.ConvertParams
	calls      int

	// Record and RejectInput run on the session goroutine.
	mu        sync.Mutex
	recordErr error
	recorded  []converter.Result
	rejected  int
}

func (m *mockConverter) Convert(ctx context.Context, p service.ConvertParams) (service.Conversion, error) {
	m.calls++
	m.lastParams = p
	return m.conv, m.err
}

func (m *mockConverter) Record(ctx context.Context, res converter.Result) (service.Conversion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.recordErr != nil {
		return service.Conversion{}, m.recordErr
	}
	m.recorded = append(m.recorded, res)
	rec := res.Record
	rec.ID = fmt.Sprintf("conv-%d", len(m.recorded))
	rec.CreatedAt = time.Now().UTC()
	return service.Conversion{Record: rec, Display: res.Display}, nil
}

func (m *mockConverter) RejectInput() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rejected++
}

func (m *mockConverter) bookings() ([]converter.Result, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]converter.Result(nil), m.recorded...), m.rejected
}

func (m *mockConverter) Classify(value float64, to models.Scale) models.Label {
	return converter.Classify(value, to)
}

type mockHistory struct {
	records   []models.ConversionRecord
	appendErr error
	allErr    error
}

func (m *mockHistory) Append(ctx context.Context, r models.ConversionRecord) (models.ConversionRecord, error) {
	if m.appendErr != nil {
		return models.ConversionRecord{}, m.appendErr
	}
	r.ID = fmt.Sprintf("rec-%d", len(m.records)+1)
	m.records = append(m.records, r)
	return r, nil
}

func (m *mockHistory) All(ctx context.Context) ([]models.ConversionRecord, error) {
	if m.allErr != nil {
		return nil, m.allErr
	}
	return append([]models.ConversionRecord(nil), m.records...), nil
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

// newMemoryService wires the real services over the in-process history.
func newMemoryService() *service.Service {
	return service.NewService(repository.NewRepository(nil))
}

func doJSON(t *testing.T, r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}
