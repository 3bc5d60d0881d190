package preview

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"backoffice/config"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewStore(bucket, config.PreviewConfig{
		MaxUploadSize:  1 << 20,
		ThumbnailWidth: 320,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := range width {
		img.Set(x, height/2, color.RGBA{R: 200, A: 255})
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func stagePNG(t *testing.T, store *Store, owner, name string) string {
	t.Helper()

	upload, err := store.Stage(context.Background(), owner, service.StagedFile{
		Filename: name,
		Content:  bytes.NewReader(pngBytes(t, 40, 20)),
	})
	require.NoError(t, err)

	return upload.PreviewID
}

func TestStore_StageImageCreatesThumbnail(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	content := pngBytes(t, 800, 400)

	upload, err := store.Stage(ctx, "session-a", service.StagedFile{
		Filename: "../cover art.png",
		Content:  bytes.NewReader(content),
	})
	require.NoError(t, err)
	assert.Equal(t, "cover art.png", upload.Filename)
	assert.Equal(t, "image/png", upload.ContentType)
	assert.Equal(t, int64(len(content)), upload.Size)
	assert.Equal(t, "/previews/"+upload.PreviewID, upload.PreviewURL)

	original, described, err := store.Open(ctx, upload.PreviewID)
	require.NoError(t, err)
	got, err := io.ReadAll(original)
	require.NoError(t, err)
	require.NoError(t, original.Close())
	assert.Equal(t, content, got)
	assert.Equal(t, "cover art.png", described.Filename)

	thumb, contentType, err := store.OpenThumbnail(ctx, upload.PreviewID)
	require.NoError(t, err)
	defer thumb.Close()
	assert.Equal(t, "image/png", contentType)

	cfg, err := png.DecodeConfig(thumb)
	require.NoError(t, err)
	assert.Equal(t, 320, cfg.Width)
	assert.Equal(t, 160, cfg.Height)
}

func TestStore_VideoServesOriginalAsPreview(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	upload, err := store.Stage(ctx, "session-a", service.StagedFile{
		Filename:    "clip.mp4",
		ContentType: "video/mp4",
		Content:     strings.NewReader("not really a video"),
	})
	require.NoError(t, err)

	reader, contentType, err := store.OpenThumbnail(ctx, upload.PreviewID)
	require.NoError(t, err)
	defer reader.Close()
	assert.Equal(t, "video/mp4", contentType)
}

func TestStore_StageRejects(t *testing.T) {
	store := newTestStore(t)

	tests := []struct {
		name    string
		file    service.StagedFile
		wantErr error
	}{
		{
			name:    "plain text",
			file:    service.StagedFile{Filename: "notes.txt", Content: strings.NewReader("hello there")},
			wantErr: domainerrors.ErrUnsupportedMedia,
		},
		{
			name: "declared svg",
			file: service.StagedFile{
				Filename:    "logo.svg",
				ContentType: "image/svg+xml",
				Content:     strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`),
			},
			wantErr: domainerrors.ErrUnsupportedMedia,
		},
		{
			name:    "too large",
			file:    service.StagedFile{Filename: "huge.png", ContentType: "image/png", Content: bytes.NewReader(make([]byte, 2<<20))},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "empty",
			file:    service.StagedFile{Filename: "empty.png", ContentType: "image/png", Content: strings.NewReader("")},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Stage(context.Background(), "session-a", tt.file)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStore_ReleaseOneKeepsTheRest(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	ids := make([]string, 0, 4)
	for _, name := range []string{"a.png", "b.png", "c.png", "d.png"} {
		ids = append(ids, stagePNG(t, store, "session-a", name))
	}

	require.NoError(t, store.Release(ctx, "session-a", ids[1]))

	pending, err := store.Pending(ctx, "session-a")
	require.NoError(t, err)
	require.Len(t, pending, 3)

	remaining := make([]string, 0, len(pending))
	for _, p := range pending {
		remaining = append(remaining, p.PreviewID)
	}
	assert.ElementsMatch(t, []string{ids[0], ids[2], ids[3]}, remaining)

	_, _, err = store.Open(ctx, ids[1])
	require.ErrorIs(t, err, domainerrors.ErrPreviewNotFound)

	// Releasing again or releasing garbage is harmless.
	require.NoError(t, store.Release(ctx, "session-a", ids[1]))
	require.NoError(t, store.Release(ctx, "session-a", "not-a-handle"))
}

func TestStore_ReleaseIgnoresOtherSessions(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	id := stagePNG(t, store, "session-a", "a.png")

	require.NoError(t, store.Release(ctx, "session-b", id))

	pending, err := store.Pending(ctx, "session-a")
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestStore_ReleaseAll(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	stagePNG(t, store, "session-a", "a.png")
	stagePNG(t, store, "session-a", "b.png")
	other := stagePNG(t, store, "session-b", "c.png")

	released, err := store.ReleaseAll(ctx, "session-a")
	require.NoError(t, err)
	assert.Equal(t, 2, released)

	pending, err := store.Pending(ctx, "session-a")
	require.NoError(t, err)
	assert.Empty(t, pending)

	_, _, err = store.Open(ctx, other)
	require.NoError(t, err)
}

func TestStore_Sweep(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	stagePNG(t, store, "session-a", "a.png")
	stagePNG(t, store, "session-b", "b.png")

	swept, err := store.Sweep(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, swept)

	swept, err = store.Sweep(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, swept)

	for _, owner := range []string{"session-a", "session-b"} {
		pending, err := store.Pending(ctx, owner)
		require.NoError(t, err)
		assert.Empty(t, pending)
	}
}

func TestSweeper_SweepOnce(t *testing.T) {
	store := newTestStore(t)
	stagePNG(t, store, "session-a", "a.png")

	sweeper := &Sweeper{
		previews: store,
		ttl:      time.Minute,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:      func() time.Time { return time.Now().Add(2 * time.Minute) },
	}

	assert.Equal(t, 1, sweeper.SweepOnce(context.Background()))
	assert.Zero(t, sweeper.SweepOnce(context.Background()))
}
