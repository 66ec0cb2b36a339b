package mcp

import (
	"context"
	"testing"

	yamlparser "github.com/custodia-labs/ycard/internal/adapters/driven/parser/yaml"
	"github.com/custodia-labs/ycard/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/ycard/internal/core/domain"
	"github.com/custodia-labs/ycard/internal/core/services"
)

// mockRecordService is a mock implementation of driving.RecordService.
type mockRecordService struct {
	record *domain.PersistedRecord
	err    error
}

func (m *mockRecordService) Load(_ context.Context) (*domain.PersistedRecord, error) {
	return m.record, m.err
}

// newTestPorts wires real services over an in-memory store.
func newTestPorts(t *testing.T) (*Ports, *services.PersistenceService) {
	t.Helper()
	persist := services.NewPersistenceService(memory.NewRecordStore(), nil)
	return &Ports{
		Sessions: services.NewSessionManager(yamlparser.NewParser(), persist),
		Records:  persist,
	}, persist
}
