package usecase

import (
	"context"
	"io"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"
)

// PreviewUsecase manages the files staged in the product dialog of one session.
type PreviewUsecase interface {
	Stage(ctx context.Context, owner string, file service.StagedFile) (entity.PendingUpload, error)

	// Thumbnail opens the preview image of a handle held by the session.
	Thumbnail(ctx context.Context, owner, previewID string) (io.ReadCloser, string, error)

	Release(ctx context.Context, owner, previewID string) error

	// Discard releases every handle of the session, used when the dialog closes.
	Discard(ctx context.Context, owner string) (int, error)

	Pending(ctx context.Context, owner string) ([]entity.PendingUpload, error)
}
