package service

import (
	"context"
	"io"
	"time"

	"backoffice/internal/domain/entity"
)

// StagedFile is a file received from the browser before it is staged.
type StagedFile struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// PreviewStore holds files picked in the product dialog until the form is
// submitted or discarded. Every staged file is owned by one session.
type PreviewStore interface {
	// Stage stores the file and returns its preview handle.
	Stage(ctx context.Context, owner string, file StagedFile) (entity.PendingUpload, error)

	// Open returns the staged content for submission.
	Open(ctx context.Context, previewID string) (io.ReadCloser, entity.PendingUpload, error)

	// OpenThumbnail returns the preview image shown in the dialog. Non-image
	// files return the original content.
	OpenThumbnail(ctx context.Context, previewID string) (io.ReadCloser, string, error)

	// Release frees one handle. Releasing an unknown handle is not an error.
	Release(ctx context.Context, owner, previewID string) error

	// ReleaseAll frees every handle owned by the session.
	ReleaseAll(ctx context.Context, owner string) (int, error)

	// Pending lists the handles the session still holds.
	Pending(ctx context.Context, owner string) ([]entity.PendingUpload, error)

	// Sweep frees handles staged before the cutoff.
	Sweep(ctx context.Context, cutoff time.Time) (int, error)
}
