// Package preview stages media picked in the product dialog in a gocloud
// bucket until the form is submitted or discarded.
package preview

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"backoffice/config"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/lifecycle"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"
	"backoffice/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// previews
	_ "gocloud.dev/blob/memblob"  // mem:// previews
	_ "gocloud.dev/blob/s3blob"   // s3:// previews
	"gocloud.dev/gcerrors"
)

const (
	previewPrefix = "previews/"
	ownerPrefix   = "owners/"
	originalName  = "original"
	thumbnailName = "thumbnail"

	metaOwner    = "owner"
	metaFilename = "filename"
	metaSize     = "size"

	// URLPrefix is where the console serves staged previews.
	URLPrefix = "/previews/"
)

var _ service.PreviewStore = (*Store)(nil)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Store implements service.PreviewStore on a blob bucket. Content lives at
// previews/<id>/original with an optional previews/<id>/thumbnail; an empty
// owners/<owner>/<id> marker indexes the handles of each session.
type Store struct {
	bucket         *blob.Bucket
	maxUploadSize  int64
	thumbnailWidth uint
	logger         *slog.Logger
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, params.Config.Previews.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open preview bucket %s", params.Config.Previews.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return NewStore(bucket, params.Config.Previews, params.Logger), nil
}

// NewStore wraps an open bucket.
func NewStore(bucket *blob.Bucket, cfg config.PreviewConfig, logger *slog.Logger) *Store {
	return &Store{
		bucket:         bucket,
		maxUploadSize:  cfg.MaxUploadSize,
		thumbnailWidth: cfg.ThumbnailWidth,
		logger:         logger,
	}
}

// AsPreviewStore exposes the store as the domain interface.
func AsPreviewStore(s *Store) service.PreviewStore {
	return s
}

func (s *Store) Stage(ctx context.Context, owner string, file service.StagedFile) (entity.PendingUpload, error) {
	if owner == "" {
		return entity.PendingUpload{}, errors.New("preview owner is required")
	}

	content, err := io.ReadAll(io.LimitReader(file.Content, s.maxUploadSize+1))
	if err != nil {
		return entity.PendingUpload{}, errors.Wrap(err, "read upload")
	}
	if int64(len(content)) > s.maxUploadSize {
		return entity.PendingUpload{}, domainerrors.ErrValidationFailed.WithDetails(
			"file " + file.Filename + " exceeds " + util.FormatBytes(s.maxUploadSize))
	}
	if len(content) == 0 {
		return entity.PendingUpload{}, domainerrors.ErrValidationFailed.WithDetails("file " + file.Filename + " is empty")
	}

	contentType := mediaType(file.ContentType, content)
	if !isSupported(contentType) {
		return entity.PendingUpload{}, domainerrors.ErrUnsupportedMedia.WithDetails(contentType)
	}

	upload := entity.PendingUpload{
		PreviewID:   uuid.NewString(),
		Filename:    path.Base(file.Filename),
		ContentType: contentType,
		Size:        int64(len(content)),
	}
	upload.PreviewURL = URLPrefix + upload.PreviewID

	metadata := map[string]string{
		metaOwner:    owner,
		metaFilename: url.QueryEscape(upload.Filename),
		metaSize:     strconv.FormatInt(upload.Size, 10),
	}
	if err := s.bucket.WriteAll(ctx, originalKey(upload.PreviewID), content, &blob.WriterOptions{
		ContentType: contentType,
		Metadata:    metadata,
	}); err != nil {
		return entity.PendingUpload{}, errors.Wrap(err, "write preview")
	}

	if strings.HasPrefix(contentType, "image/") {
		s.writeThumbnail(ctx, upload.PreviewID, content)
	}

	if err := s.bucket.WriteAll(ctx, markerKey(owner, upload.PreviewID), nil, nil); err != nil {
		_ = s.delete(ctx, upload.PreviewID)

		return entity.PendingUpload{}, errors.Wrap(err, "index preview")
	}

	s.logger.DebugContext(ctx, "Preview staged",
		slog.String("previewID", upload.PreviewID),
		slog.String("contentType", contentType),
		slog.String("size", util.FormatBytes(upload.Size)),
	)

	return upload, nil
}

// writeThumbnail is best effort: a file that cannot be decoded is served as is.
func (s *Store) writeThumbnail(ctx context.Context, id string, content []byte) {
	thumbnail, err := Thumbnail(bytes.NewReader(content), s.thumbnailWidth)
	if err != nil {
		s.logger.DebugContext(ctx, "Preview thumbnail skipped", slog.String("previewID", id), slog.Any("error", err))

		return
	}

	if err := s.bucket.WriteAll(ctx, thumbnailKey(id), thumbnail, &blob.WriterOptions{ContentType: thumbnailType}); err != nil {
		s.logger.WarnContext(ctx, "Failed to store preview thumbnail", slog.String("previewID", id), slog.Any("error", err))
	}
}

func (s *Store) Open(ctx context.Context, id string) (io.ReadCloser, entity.PendingUpload, error) {
	upload, _, err := s.describe(ctx, id)
	if err != nil {
		return nil, entity.PendingUpload{}, err
	}

	reader, err := s.bucket.NewReader(ctx, originalKey(id), nil)
	if err != nil {
		return nil, entity.PendingUpload{}, s.notFound(err, id)
	}

	return reader, upload, nil
}

func (s *Store) OpenThumbnail(ctx context.Context, id string) (io.ReadCloser, string, error) {
	reader, err := s.bucket.NewReader(ctx, thumbnailKey(id), nil)
	if err == nil {
		return reader, reader.ContentType(), nil
	}
	if gcerrors.Code(err) != gcerrors.NotFound {
		return nil, "", errors.Wrap(err, "open thumbnail")
	}

	original, upload, err := s.Open(ctx, id)
	if err != nil {
		return nil, "", err
	}

	return original, upload.ContentType, nil
}

func (s *Store) Release(ctx context.Context, owner, id string) error {
	_, stagedBy, err := s.describe(ctx, id)
	if errors.Is(err, domainerrors.ErrPreviewNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	// Another session's handle is left alone.
	if stagedBy != owner {
		return nil
	}

	return s.releaseOwned(ctx, owner, id)
}

func (s *Store) ReleaseAll(ctx context.Context, owner string) (int, error) {
	ids, err := s.ownedIDs(ctx, owner)
	if err != nil {
		return 0, err
	}

	released := 0
	for _, id := range ids {
		if err := s.releaseOwned(ctx, owner, id); err != nil {
			return released, err
		}
		released++
	}

	return released, nil
}

func (s *Store) Pending(ctx context.Context, owner string) ([]entity.PendingUpload, error) {
	ids, err := s.ownedIDs(ctx, owner)
	if err != nil {
		return nil, err
	}

	uploads := make([]entity.PendingUpload, 0, len(ids))
	for _, id := range ids {
		upload, _, err := s.describe(ctx, id)
		if errors.Is(err, domainerrors.ErrPreviewNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, upload)
	}

	return uploads, nil
}

func (s *Store) Sweep(ctx context.Context, cutoff time.Time) (int, error) {
	iter := s.bucket.List(&blob.ListOptions{Prefix: previewPrefix})

	var expired []string
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, errors.Wrap(err, "list previews")
		}
		if path.Base(obj.Key) != originalName || !obj.ModTime.Before(cutoff) {
			continue
		}
		expired = append(expired, path.Base(path.Dir(obj.Key)))
	}

	swept := 0
	for _, id := range expired {
		_, owner, err := s.describe(ctx, id)
		if errors.Is(err, domainerrors.ErrPreviewNotFound) {
			continue
		}
		if err != nil {
			return swept, err
		}
		if err := s.releaseOwned(ctx, owner, id); err != nil {
			return swept, err
		}
		swept++
	}

	return swept, nil
}

// describe reads the handle and its owner from the object metadata.
func (s *Store) describe(ctx context.Context, id string) (entity.PendingUpload, string, error) {
	if _, err := uuid.Parse(id); err != nil {
		return entity.PendingUpload{}, "", domainerrors.ErrPreviewNotFound
	}

	attrs, err := s.bucket.Attributes(ctx, originalKey(id))
	if err != nil {
		return entity.PendingUpload{}, "", s.notFound(err, id)
	}

	filename, err := url.QueryUnescape(attrs.Metadata[metaFilename])
	if err != nil {
		filename = attrs.Metadata[metaFilename]
	}

	return entity.PendingUpload{
		PreviewID:   id,
		Filename:    filename,
		ContentType: attrs.ContentType,
		Size:        attrs.Size,
		PreviewURL:  URLPrefix + id,
	}, attrs.Metadata[metaOwner], nil
}

func (s *Store) ownedIDs(ctx context.Context, owner string) ([]string, error) {
	iter := s.bucket.List(&blob.ListOptions{Prefix: ownerPrefix + owner + "/"})

	var ids []string
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			return ids, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "list session previews")
		}
		ids = append(ids, path.Base(obj.Key))
	}
}

func (s *Store) releaseOwned(ctx context.Context, owner, id string) error {
	if err := s.delete(ctx, id); err != nil {
		return err
	}

	return ignoreNotFound(s.bucket.Delete(ctx, markerKey(owner, id)))
}

func (s *Store) delete(ctx context.Context, id string) error {
	if err := ignoreNotFound(s.bucket.Delete(ctx, thumbnailKey(id))); err != nil {
		return errors.Wrap(err, "delete thumbnail")
	}

	return errors.Wrap(ignoreNotFound(s.bucket.Delete(ctx, originalKey(id))), "delete preview")
}

func (s *Store) notFound(err error, id string) error {
	if gcerrors.Code(err) == gcerrors.NotFound {
		return domainerrors.ErrPreviewNotFound.WithDetails(id)
	}

	return errors.Wrapf(err, "read preview %s", id)
}

func ignoreNotFound(err error) error {
	if err != nil && gcerrors.Code(err) == gcerrors.NotFound {
		return nil
	}

	return err
}

func originalKey(id string) string  { return previewPrefix + id + "/" + originalName }
func thumbnailKey(id string) string { return previewPrefix + id + "/" + thumbnailName }

func markerKey(owner, id string) string { return ownerPrefix + owner + "/" + id }

// mediaType trusts a declared image or video type, else sniffs the content.
func mediaType(declared string, content []byte) string {
	if declared != "" && isSupported(declared) {
		return declared
	}

	sniffed, _, _ := strings.Cut(http.DetectContentType(content), ";")

	return sniffed
}

// isSupported admits raster images and videos. SVG can carry script and is
// never staged.
func isSupported(contentType string) bool {
	if strings.HasPrefix(contentType, "image/svg") {
		return false
	}

	return strings.HasPrefix(contentType, "image/") || strings.HasPrefix(contentType, "video/")
}
