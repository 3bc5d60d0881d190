package handler

import (
	"net/http"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/delivery/http/response"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const fieldPreviewFile = "file"

// PreviewHandlerParams holds dependencies for PreviewHandler, injected by Fx.
type PreviewHandlerParams struct {
	fx.In

	PreviewUC usecase.PreviewUsecase
}

// PreviewHandler stages and serves the files picked in the product dialog.
type PreviewHandler struct {
	previewUC usecase.PreviewUsecase
}

// NewPreviewHandler is the constructor for PreviewHandler
func NewPreviewHandler(params PreviewHandlerParams) *PreviewHandler {
	return &PreviewHandler{previewUC: params.PreviewUC}
}

// Stage stores an uploaded file and answers its preview handle.
func (h *PreviewHandler) Stage(c echo.Context) error {
	header, err := c.FormFile(fieldPreviewFile)
	if err != nil {
		return errors.Join(domainerrors.ErrValidationFailed.WithDetails("file: is required"), err)
	}

	file, err := header.Open()
	if err != nil {
		return errors.Wrap(err, "open upload")
	}
	defer file.Close()

	upload, err := h.previewUC.Stage(c.Request().Context(), deliverycontext.GetSessionID(c), service.StagedFile{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Content:     file,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, upload)
}

// Serve streams the preview image of a handle the session holds.
func (h *PreviewHandler) Serve(c echo.Context) error {
	reader, contentType, err := h.previewUC.Thumbnail(c.Request().Context(), deliverycontext.GetSessionID(c), c.Param("id"))
	if err != nil {
		return err
	}
	defer reader.Close()

	header := c.Response().Header()
	header.Set("Cache-Control", "private, no-store")
	header.Set(echo.HeaderXContentTypeOptions, "nosniff")
	header.Set(echo.HeaderContentDisposition, "inline")
	header.Set(echo.HeaderContentSecurityPolicy, "sandbox")

	return c.Stream(http.StatusOK, contentType, reader)
}

// Release frees one handle.
func (h *PreviewHandler) Release(c echo.Context) error {
	if err := h.previewUC.Release(c.Request().Context(), deliverycontext.GetSessionID(c), c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Discard frees every handle of the session, sent when the dialog closes.
func (h *PreviewHandler) Discard(c echo.Context) error {
	released, err := h.previewUC.Discard(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]int{"released": released})
}
