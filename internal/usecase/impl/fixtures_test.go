package impl

import (
	"io"
	"log/slog"
	"testing"

	"backoffice/config"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"
	"backoffice/internal/infra/persistence/memory"
	"backoffice/internal/infra/session"
	mockService "backoffice/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

const testOwner = "session-1"

// apiFixtures wires a mocked API behind a factory and a real in-memory
// token store for one session.
type apiFixtures struct {
	factory *mockService.MockAdminAPIFactory
	api     *mockService.MockAdminAPI
	tokens  service.TokenStore
}

func newAPIFixtures(t *testing.T) apiFixtures {
	t.Helper()

	factory := mockService.NewMockAdminAPIFactory(t)
	api := mockService.NewMockAdminAPI(t)
	factory.EXPECT().Open(mock.Anything).Return(api).Maybe()

	store := memory.NewStore()
	registry := session.NewRegistry(memory.NewSessionRepository(store), memory.NewTransactionManager(store))

	return apiFixtures{
		factory: factory,
		api:     api,
		tokens:  registry.For(testOwner),
	}
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Pagination.PageSize = 10

	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func unauthorized() error {
	return &domainerrors.APIError{StatusCode: 401, Payload: []byte(`{"detail":"token not valid"}`)}
}

// sessionCleared is the gateway error after a rejected refresh purged the tokens.
func sessionCleared() error {
	return errors.Join(domainerrors.ErrSessionCleared, unauthorized())
}
