package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"backoffice/config"
	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/delivery/http/response"
	"backoffice/internal/domain/service"
	"backoffice/internal/infra/persistence/memory"
	"backoffice/internal/infra/session"
	mockService "backoffice/internal/mocks/service"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testOwner = "session-1"

// recordingRenderer keeps the last rendered view instead of executing templates.
type recordingRenderer struct {
	name string
	page response.Page
}

func (r *recordingRenderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	r.name = name
	r.page, _ = data.(response.Page)
	_, err := io.WriteString(w, name)

	return err
}

type fixture struct {
	echo     *echo.Echo
	renderer *recordingRenderer
	factory  *mockService.MockAdminAPIFactory
	api      *mockService.MockAdminAPI
	tokens   service.TokenStore
	cookies  *sessions.CookieStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	factory := mockService.NewMockAdminAPIFactory(t)
	api := mockService.NewMockAdminAPI(t)
	factory.EXPECT().Open(mock.Anything).Return(api).Maybe()

	store := memory.NewStore()
	registry := session.NewRegistry(memory.NewSessionRepository(store), memory.NewTransactionManager(store))

	e := echo.New()
	renderer := &recordingRenderer{}
	e.Renderer = renderer

	return &fixture{
		echo:     e,
		renderer: renderer,
		factory:  factory,
		api:      api,
		tokens:   registry.For(testOwner),
		cookies:  sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef")),
	}
}

// context builds a request context already bound to the test session.
func (f *fixture) context(t *testing.T, req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	rec := httptest.NewRecorder()
	c := f.echo.NewContext(req, rec)

	sess, err := f.cookies.New(req, "console")
	require.NoError(t, err)
	deliverycontext.SetSession(c, sess, testOwner, f.tokens)

	return c, rec
}

func (f *fixture) get(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	return f.context(t, httptest.NewRequest(http.MethodGet, target, nil))
}

func (f *fixture) postForm(t *testing.T, target string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	return f.context(t, req)
}

func withID(c echo.Context, id string) {
	c.SetParamNames("id")
	c.SetParamValues(id)
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Pagination.PageSize = 10
	cfg.Previews.TTL = 30 * time.Minute
	cfg.Previews.MaxUploadSize = 1 << 20
	cfg.Previews.ThumbnailWidth = 64

	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
