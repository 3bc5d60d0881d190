package remote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPreviews serves staged files from memory.
type stubPreviews struct {
	files map[string]string
	opens int
}

func (s *stubPreviews) Stage(context.Context, string, service.StagedFile) (entity.PendingUpload, error) {
	return entity.PendingUpload{}, errors.New("not implemented")
}

func (s *stubPreviews) Open(_ context.Context, id string) (io.ReadCloser, entity.PendingUpload, error) {
	content, ok := s.files[id]
	if !ok {
		return nil, entity.PendingUpload{}, errors.New("missing preview")
	}
	s.opens++

	return io.NopCloser(strings.NewReader(content)), entity.PendingUpload{PreviewID: id}, nil
}

func (s *stubPreviews) OpenThumbnail(ctx context.Context, id string) (io.ReadCloser, string, error) {
	rc, _, err := s.Open(ctx, id)

	return rc, "image/png", err
}

func (s *stubPreviews) Release(context.Context, string, string) error { return nil }

func (s *stubPreviews) ReleaseAll(context.Context, string) (int, error) { return 0, nil }

func (s *stubPreviews) Pending(context.Context, string) ([]entity.PendingUpload, error) {
	return nil, nil
}

func (s *stubPreviews) Sweep(context.Context, time.Time) (int, error) { return 0, nil }

// fakeAPIWith serves the given routes instead of the default fake API.
func fakeAPIWith(t *testing.T, mux *http.ServeMux) *fakeAPI {
	t.Helper()

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return &fakeAPI{server: server}
}

func TestGateway_AddProductSendsMultipart(t *testing.T) {
	previews := &stubPreviews{files: map[string]string{"p-1": "PNGDATA"}}

	type received struct {
		fields   map[string][]string
		filename string
		content  string
		ctype    string
	}
	got := make(chan received, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/inventory/productAdd/", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("media_files")
		require.NoError(t, err)
		body, _ := io.ReadAll(file)
		got <- received{
			fields:   r.MultipartForm.Value,
			filename: header.Filename,
			content:  string(body),
			ctype:    header.Header.Get("Content-Type"),
		}
		w.WriteHeader(http.StatusCreated)
	})
	api := fakeAPIWith(t, mux)

	form := entity.ProductForm{
		Name:     "Dune",
		Price:    9.5,
		Category: entity.CategoryBooks,
		Stock:    4,
		Status:   entity.ProductActive,
		Rating:   4.5,
		Author:   "Frank Herbert",
		Genre:    "Science Fiction",
		Media: []entity.MediaItem{
			entity.PersistedMedia{ID: 11, URL: "https://cdn.example.com/11.png", Type: "image"},
			entity.PendingUpload{PreviewID: "p-1", Filename: "cover.png", ContentType: "image/png", Size: 7},
		},
	}

	err := newTestFactory(t, api, previews).Open(&memoryTokens{}).AddProduct(context.Background(), form)
	require.NoError(t, err)

	r := <-got
	assert.Equal(t, []string{"Dune"}, r.fields["name"])
	assert.Equal(t, []string{"9.50"}, r.fields["price"])
	assert.Equal(t, []string{"Books"}, r.fields["category"])
	assert.Equal(t, []string{"4"}, r.fields["stock"])
	assert.Equal(t, []string{"4.5"}, r.fields["rating"])
	assert.Equal(t, []string{"Frank Herbert"}, r.fields["author"])
	assert.Equal(t, []string{"11"}, r.fields["existing_media_ids"])
	assert.Equal(t, "cover.png", r.filename)
	assert.Equal(t, "PNGDATA", r.content)
	assert.Equal(t, "image/png", r.ctype)
	assert.Equal(t, 1, previews.opens)
}

func TestGateway_MultipartIsRebuiltOnRetry(t *testing.T) {
	previews := &stubPreviews{files: map[string]string{"p-1": "PNGDATA"}}

	var contents []string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/account/token/refresh/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"access":"access-2","refresh":"refresh-2"}`))
	})
	mux.HandleFunc("PUT /api/inventory/products/update/5/", func(w http.ResponseWriter, r *http.Request) {
		file, _, err := r.FormFile("media_files")
		require.NoError(t, err)
		body, _ := io.ReadAll(file)
		contents = append(contents, string(body))
		if r.Header.Get("Authorization") == "Bearer access-1" {
			w.WriteHeader(http.StatusUnauthorized)

			return
		}
		w.WriteHeader(http.StatusOK)
	})
	api := fakeAPIWith(t, mux)

	tokens := &memoryTokens{pair: entity.TokenPair{Access: "access-1", Refresh: "refresh-1"}}
	form := entity.NewProductForm()
	form.Name = "Lamp"
	form.Media = []entity.MediaItem{entity.PendingUpload{PreviewID: "p-1", Filename: "lamp.png"}}

	err := newTestFactory(t, api, previews).Open(tokens).UpdateProduct(context.Background(), 5, form)
	require.NoError(t, err)
	assert.Equal(t, []string{"PNGDATA", "PNGDATA"}, contents)
}

func TestGateway_UnknownMediaItemFailsBeforeNetwork(t *testing.T) {
	var hits int
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(http.ResponseWriter, *http.Request) { hits++ })
	api := fakeAPIWith(t, mux)

	form := entity.NewProductForm()
	form.Name = "Broken"
	form.Media = []entity.MediaItem{nil}

	err := newTestFactory(t, api, nil).Open(&memoryTokens{}).AddProduct(context.Background(), form)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported media item")
	assert.Zero(t, hits)
}

func TestGateway_OrdersAndCustomers(t *testing.T) {
	var statusBody map[string]string
	var deleted string

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/inventory/adminorders/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id":3,"user":9,"status":"pending","total":"40.00","created_at":"2024-05-01T10:00:00Z"}]`))
	})
	mux.HandleFunc("PUT /api/inventory/orders/3/update-status/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&statusBody)
		_, _ = w.Write([]byte(`{"status":"completed"}`))
	})
	mux.HandleFunc("GET /api/account/userDetails/9/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":9,"name":"Ada Lovelace","email":"ada@example.com","phone":"555-0101"}`))
	})
	mux.HandleFunc("DELETE /api/inventory/products/delete/{id}/", func(w http.ResponseWriter, r *http.Request) {
		deleted = r.PathValue("id")
		w.WriteHeader(http.StatusNoContent)
	})
	api := fakeAPIWith(t, mux)

	gw := newTestFactory(t, api, nil).Open(&memoryTokens{})
	ctx := context.Background()

	orders, err := gw.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.InDelta(t, 40.0, orders[0].Total.Float64(), 0.0001)

	require.NoError(t, gw.UpdateOrderStatus(ctx, 3, entity.OrderCompleted))
	assert.Equal(t, map[string]string{"status": "completed"}, statusBody)

	customer, err := gw.GetCustomer(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", customer.Name)

	require.NoError(t, gw.DeleteProduct(ctx, 12))
	assert.Equal(t, "12", deleted)
}
