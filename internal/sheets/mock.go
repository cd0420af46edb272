package sheets

import (
	"context"
	"sync"

	"github.com/atlasfreight/exportdesk/internal/model"
	"github.com/atlasfreight/exportdesk/internal/service"
)

// MockWriter is a mock implementation of service.ReportWriter for testing.
type MockWriter struct {
	WriteFunc      func(ctx context.Context, shipment *model.Shipment, checklist []model.RequiredDocument, statuses map[string]model.DocumentStatus) error
	LastShipment   *model.Shipment
	LastChecklist  []model.RequiredDocument
	WriteCallCount int
	mu             sync.Mutex
}

var _ service.ReportWriter = (*MockWriter)(nil)

// NewMockWriter creates a new mock writer.
func NewMockWriter() *MockWriter {
	return &MockWriter{}
}

// Write implements the ReportWriter interface.
func (m *MockWriter) Write(ctx context.Context, shipment *model.Shipment, checklist []model.RequiredDocument, statuses map[string]model.DocumentStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.WriteCallCount++
	m.LastShipment = shipment
	m.LastChecklist = checklist

	if m.WriteFunc != nil {
		return m.WriteFunc(ctx, shipment, checklist, statuses)
	}

	return nil
}

// Reset clears all recorded calls.
func (m *MockWriter) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.WriteCallCount = 0
	m.LastShipment = nil
	m.LastChecklist = nil
}

// SetWriteError configures the mock to return an error on Write calls.
func (m *MockWriter) SetWriteError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.WriteFunc = func(_ context.Context, _ *model.Shipment, _ []model.RequiredDocument, _ map[string]model.DocumentStatus) error {
		return err
	}
}
