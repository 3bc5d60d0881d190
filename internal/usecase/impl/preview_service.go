package impl

import (
	"context"
	"io"
	"log/slog"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"
)

type previewService struct {
	previews service.PreviewStore
	logger   *slog.Logger
}

// NewPreviewService is the constructor for previewService.
func NewPreviewService(previews service.PreviewStore, logger *slog.Logger) usecase.PreviewUsecase {
	return &previewService{previews: previews, logger: logger}
}

func (srv *previewService) Stage(ctx context.Context, owner string, file service.StagedFile) (entity.PendingUpload, error) {
	upload, err := srv.previews.Stage(ctx, owner, file)
	if err != nil {
		return entity.PendingUpload{}, errors.Wrap(err, "stage preview")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Preview staged",
		slog.String("preview_id", upload.PreviewID),
		slog.String("content_type", upload.ContentType),
		slog.Int64("size", upload.Size),
	)

	return upload, nil
}

// Thumbnail only serves handles the session still holds.
func (srv *previewService) Thumbnail(ctx context.Context, owner, previewID string) (io.ReadCloser, string, error) {
	pending, err := srv.previews.Pending(ctx, owner)
	if err != nil {
		return nil, "", errors.Wrap(err, "list previews")
	}

	held := false
	for _, p := range pending {
		if p.PreviewID == previewID {
			held = true

			break
		}
	}
	if !held {
		return nil, "", domainerrors.ErrPreviewNotFound
	}

	return srv.previews.OpenThumbnail(ctx, previewID)
}

func (srv *previewService) Release(ctx context.Context, owner, previewID string) error {
	return errors.Wrap(srv.previews.Release(ctx, owner, previewID), "release preview")
}

func (srv *previewService) Discard(ctx context.Context, owner string) (int, error) {
	released, err := srv.previews.ReleaseAll(ctx, owner)
	if err != nil {
		return released, errors.Wrap(err, "discard previews")
	}

	return released, nil
}

func (srv *previewService) Pending(ctx context.Context, owner string) ([]entity.PendingUpload, error) {
	pending, err := srv.previews.Pending(ctx, owner)

	return pending, errors.Wrap(err, "list previews")
}
