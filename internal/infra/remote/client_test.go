package remote

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"backoffice/config"
	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

// memoryTokens is a minimal service.TokenStore for client tests.
type memoryTokens struct {
	mu       sync.Mutex
	pair     entity.TokenPair
	loggedIn bool
	cleared  int
}

func (m *memoryTokens) Tokens(context.Context) (entity.TokenPair, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.pair, nil
}

func (m *memoryTokens) SetTokens(_ context.Context, pair entity.TokenPair) error {
	if err := pair.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pair = pair

	return nil
}

func (m *memoryTokens) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pair = entity.TokenPair{}
	m.loggedIn = false
	m.cleared++

	return nil
}

func (m *memoryTokens) LoggedIn(context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.loggedIn, nil
}

func (m *memoryTokens) SetLoggedIn(_ context.Context, loggedIn bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loggedIn = loggedIn

	return nil
}

// fakeAPI is an httptest back office API with a swappable products handler.
type fakeAPI struct {
	server          *httptest.Server
	refreshCalls    atomic.Int32
	productCalls    atomic.Int32
	refreshResponse func(w http.ResponseWriter, refresh string)
	login           func(w http.ResponseWriter, r *http.Request)
	products        func(w http.ResponseWriter, r *http.Request)
	authHeaders     []string
	requestIDs      []string
	mu              sync.Mutex
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()

	api := &fakeAPI{}
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/account/admin-login/", func(w http.ResponseWriter, r *http.Request) {
		if api.login != nil {
			api.login(w, r)

			return
		}
		var creds entity.Credentials
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"No active account found with the given credentials"}`))

			return
		}
		_, _ = w.Write([]byte(`{"access":"access-1","refresh":"refresh-1"}`))
	})

	mux.HandleFunc("POST /api/account/token/refresh/", func(w http.ResponseWriter, r *http.Request) {
		api.refreshCalls.Add(1)
		var body struct {
			Refresh string `json:"refresh"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if api.refreshResponse != nil {
			api.refreshResponse(w, body.Refresh)

			return
		}
		_, _ = w.Write([]byte(`{"access":"access-2","refresh":"refresh-2"}`))
	})

	mux.HandleFunc("GET /api/inventory/products/", func(w http.ResponseWriter, r *http.Request) {
		api.productCalls.Add(1)
		api.mu.Lock()
		api.authHeaders = append(api.authHeaders, r.Header.Get("Authorization"))
		api.requestIDs = append(api.requestIDs, r.Header.Get(deliverycontext.HeaderXRequestID))
		api.mu.Unlock()
		if api.products != nil {
			api.products(w, r)

			return
		}
		_, _ = w.Write([]byte(`[{"id":1,"name":"Lamp","price":"12.50","category":"Home","stock":3,"status":"active"}]`))
	})

	api.server = httptest.NewServer(mux)
	t.Cleanup(api.server.Close)

	return api
}

func (a *fakeAPI) headers() []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	return append([]string(nil), a.authHeaders...)
}

func newTestFactory(t *testing.T, api *fakeAPI, previews service.PreviewStore) *Factory {
	t.Helper()

	cfg := &config.Config{}
	cfg.Remote.BaseURL = api.server.URL + "/api/"
	cfg.Remote.Timeout = 5 * time.Second

	factory, err := NewFactory(FactoryParams{
		Config:        cfg,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		Previews:      previews,
		MeterProvider: noop.NewMeterProvider(),
		HTTPClient:    api.server.Client(),
	})
	require.NoError(t, err)

	return factory
}

// unauthorizedFor answers 401 while the request carries the given token.
func unauthorizedFor(token string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "Bearer "+token {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Given token not valid for any token type"}`))

			return
		}
		_, _ = w.Write([]byte(`[]`))
	}
}

func TestClient_LoginThenListCarriesBearerToken(t *testing.T) {
	api := newFakeAPI(t)
	tokens := &memoryTokens{}
	gw := newTestFactory(t, api, nil).Open(tokens)
	ctx := context.Background()

	pair, err := gw.Login(ctx, entity.Credentials{Email: "admin@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, entity.TokenPair{Access: "access-1", Refresh: "refresh-1"}, pair)
	assert.Equal(t, pair, tokens.pair)

	products, err := gw.ListProducts(ctx, entity.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.InDelta(t, 12.5, products[0].Price.Float64(), 0.0001)
	assert.Equal(t, []string{"Bearer access-1"}, api.headers())
}

func TestClient_LoginWithHalfPairStoresNothing(t *testing.T) {
	api := newFakeAPI(t)
	api.login = func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"access":"only-access"}`))
	}

	tokens := &memoryTokens{}
	_, err := newTestFactory(t, api, nil).Open(tokens).Login(context.Background(), entity.Credentials{Email: "a@b.co", Password: "x"})
	require.NoError(t, err)
	assert.True(t, tokens.pair.Empty())
}

func TestClient_RefreshesOnceAndRetriesWithNewToken(t *testing.T) {
	api := newFakeAPI(t)
	api.products = unauthorizedFor("access-1")
	tokens := &memoryTokens{pair: entity.TokenPair{Access: "access-1", Refresh: "refresh-1"}}
	gw := newTestFactory(t, api, nil).Open(tokens)

	_, err := gw.ListProducts(context.Background(), entity.ProductFilter{})
	require.NoError(t, err)

	assert.Equal(t, int32(1), api.refreshCalls.Load())
	assert.Equal(t, []string{"Bearer access-1", "Bearer access-2"}, api.headers())
	assert.Equal(t, entity.TokenPair{Access: "access-2", Refresh: "refresh-2"}, tokens.pair)
}

func TestClient_RefreshKeepsRefreshTokenWhenNotRotated(t *testing.T) {
	api := newFakeAPI(t)
	api.products = unauthorizedFor("access-1")
	api.refreshResponse = func(w http.ResponseWriter, _ string) {
		_, _ = w.Write([]byte(`{"access":"access-2"}`))
	}
	tokens := &memoryTokens{pair: entity.TokenPair{Access: "access-1", Refresh: "refresh-1"}}

	_, err := newTestFactory(t, api, nil).Open(tokens).ListProducts(context.Background(), entity.ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, entity.TokenPair{Access: "access-2", Refresh: "refresh-1"}, tokens.pair)
}

func TestClient_RefreshFailureClearsTokensAndReturnsOriginalError(t *testing.T) {
	tests := []struct {
		name            string
		refreshToken    string
		refreshResponse func(w http.ResponseWriter, refresh string)
		wantRefreshHits int32
	}{
		{
			name:         "refresh rejected",
			refreshToken: "refresh-1",
			refreshResponse: func(w http.ResponseWriter, _ string) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"detail":"Token is blacklisted"}`))
			},
			wantRefreshHits: 1,
		},
		{
			name:         "refresh without access token",
			refreshToken: "refresh-1",
			refreshResponse: func(w http.ResponseWriter, _ string) {
				_, _ = w.Write([]byte(`{}`))
			},
			wantRefreshHits: 1,
		},
		{
			name:            "no refresh token stored",
			refreshToken:    "",
			wantRefreshHits: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeAPI(t)
			api.products = unauthorizedFor("access-1")
			api.refreshResponse = tt.refreshResponse

			tokens := &memoryTokens{pair: entity.TokenPair{Access: "access-1", Refresh: tt.refreshToken}, loggedIn: true}
			_, err := newTestFactory(t, api, nil).Open(tokens).ListProducts(context.Background(), entity.ProductFilter{})
			require.Error(t, err)

			apiErr, ok := errors.AsType[*APIError](err)
			require.True(t, ok)
			assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
			assert.JSONEq(t, `{"detail":"Given token not valid for any token type"}`, string(apiErr.Payload))
			assert.True(t, errors.Is(err, ErrSessionCleared))

			assert.True(t, tokens.pair.Empty())
			assert.False(t, tokens.loggedIn)
			assert.Equal(t, 1, tokens.cleared)
			assert.Equal(t, tt.wantRefreshHits, api.refreshCalls.Load())
			assert.Equal(t, int32(1), api.productCalls.Load())
		})
	}
}

func TestClient_RetriedRequestIsNotRetriedAgain(t *testing.T) {
	api := newFakeAPI(t)
	api.products = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"nope"}`))
	}
	tokens := &memoryTokens{pair: entity.TokenPair{Access: "access-1", Refresh: "refresh-1"}}

	_, err := newTestFactory(t, api, nil).Open(tokens).ListProducts(context.Background(), entity.ProductFilter{})
	require.Error(t, err)

	assert.Equal(t, int32(1), api.refreshCalls.Load())
	assert.Equal(t, int32(2), api.productCalls.Load())
	assert.Equal(t, entity.TokenPair{Access: "access-2", Refresh: "refresh-2"}, tokens.pair)
	assert.False(t, errors.Is(err, ErrSessionCleared))
	assert.Zero(t, tokens.cleared)
}

// rotatingRefresh accepts only refresh-1, the way a server with token
// rotation rejects a refresh token that was already exchanged.
func rotatingRefresh(w http.ResponseWriter, refresh string) {
	if refresh != "refresh-1" {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Token is blacklisted"}`))

		return
	}
	_, _ = w.Write([]byte(`{"access":"access-2","refresh":"refresh-2"}`))
}

func TestClient_LateUnauthorizedReusesFinishedRefresh(t *testing.T) {
	api := newFakeAPI(t)
	api.refreshResponse = rotatingRefresh

	held := make(chan struct{})
	release := make(chan struct{})
	var arrivals atomic.Int32
	api.products = func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer access-1" {
			_, _ = w.Write([]byte(`[]`))

			return
		}
		if arrivals.Add(1) == 1 {
			close(held)
			<-release
		}
		w.WriteHeader(http.StatusUnauthorized)
	}

	tokens := &memoryTokens{pair: entity.TokenPair{Access: "access-1", Refresh: "refresh-1"}, loggedIn: true}
	gw := newTestFactory(t, api, nil).Open(tokens)

	late := make(chan error, 1)
	go func() {
		_, err := gw.ListProducts(context.Background(), entity.ProductFilter{})
		late <- err
	}()
	<-held

	_, err := gw.ListProducts(context.Background(), entity.ProductFilter{})
	require.NoError(t, err)

	close(release)
	require.NoError(t, <-late)

	assert.Equal(t, int32(1), api.refreshCalls.Load())
	assert.Equal(t, entity.TokenPair{Access: "access-2", Refresh: "refresh-2"}, tokens.pair)
	assert.True(t, tokens.loggedIn)
	assert.Zero(t, tokens.cleared)
}

func TestClient_ConcurrentUnauthorizedShareOneRefresh(t *testing.T) {
	api := newFakeAPI(t)
	api.products = unauthorizedFor("access-1")
	api.refreshResponse = rotatingRefresh

	tokens := &memoryTokens{pair: entity.TokenPair{Access: "access-1", Refresh: "refresh-1"}, loggedIn: true}
	gw := newTestFactory(t, api, nil).Open(tokens)

	const callers = 8
	errs := make(chan error, callers)
	var wg sync.WaitGroup
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := gw.ListProducts(context.Background(), entity.ProductFilter{})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), api.refreshCalls.Load())
	assert.Equal(t, entity.TokenPair{Access: "access-2", Refresh: "refresh-2"}, tokens.pair)
	assert.Zero(t, tokens.cleared)
}

func TestClient_CancelledCallerDoesNotAbortRefresh(t *testing.T) {
	api := newFakeAPI(t)
	api.products = unauthorizedFor("access-1")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	api.refreshResponse = func(w http.ResponseWriter, refresh string) {
		cancel()
		rotatingRefresh(w, refresh)
	}

	tokens := &memoryTokens{pair: entity.TokenPair{Access: "access-1", Refresh: "refresh-1"}, loggedIn: true}
	_, err := newTestFactory(t, api, nil).Open(tokens).ListProducts(ctx, entity.ProductFilter{})
	require.Error(t, err)

	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, errors.Is(err, ErrSessionCleared))
	assert.Equal(t, entity.TokenPair{Access: "access-2", Refresh: "refresh-2"}, tokens.pair)
	assert.True(t, tokens.loggedIn)
	assert.Zero(t, tokens.cleared)
}

func TestClient_ErrorPayloads(t *testing.T) {
	t.Run("json payload is surfaced", func(t *testing.T) {
		api := newFakeAPI(t)
		api.products = func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"name":["This field is required."]}`))
		}

		_, err := newTestFactory(t, api, nil).Open(&memoryTokens{}).ListProducts(context.Background(), entity.ProductFilter{})

		apiErr, ok := errors.AsType[*APIError](err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "name: This field is required.", apiErr.PayloadMessage())
		assert.False(t, errors.Is(err, ErrGeneric))
	})

	t.Run("missing payload is the generic marker", func(t *testing.T) {
		api := newFakeAPI(t)
		api.products = func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}

		_, err := newTestFactory(t, api, nil).Open(&memoryTokens{}).ListProducts(context.Background(), entity.ProductFilter{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrGeneric))
	})

	t.Run("transport failure is the generic marker", func(t *testing.T) {
		api := newFakeAPI(t)
		factory := newTestFactory(t, api, nil)
		api.server.Close()

		_, err := factory.Open(&memoryTokens{}).ListProducts(context.Background(), entity.ProductFilter{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrGeneric))
	})
}

func TestClient_ListAcceptsResultsEnvelopeAndFilters(t *testing.T) {
	api := newFakeAPI(t)
	var query string
	api.products = func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"count":1,"results":[{"id":7,"name":"Dune","category":"Books","price":9}]}`))
	}

	products, err := newTestFactory(t, api, nil).Open(&memoryTokens{}).ListProducts(context.Background(), entity.ProductFilter{
		Category: entity.CategoryBooks,
		Status:   entity.ProductActive,
		Name:     "dune",
	})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(7), products[0].ID)
	assert.Equal(t, "category=Books&name=dune&status=active", query)
}

func TestClient_PropagatesRequestIDAndEmptyBearer(t *testing.T) {
	api := newFakeAPI(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-123")

	_, err := newTestFactory(t, api, nil).Open(&memoryTokens{}).ListProducts(ctx, entity.ProductFilter{})
	require.NoError(t, err)

	assert.Equal(t, []string{"req-123"}, api.requestIDs)
	assert.Equal(t, []string{"Bearer"}, trimmed(api.headers()))
}

func TestRouteOf(t *testing.T) {
	assert.Equal(t, "inventory/products/update/:id", routeOf("inventory/products/update/42/"))
	assert.Equal(t, "account/userDetails", routeOf("account/userDetails/"))
}

func trimmed(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.TrimSpace(v)
	}

	return out
}
