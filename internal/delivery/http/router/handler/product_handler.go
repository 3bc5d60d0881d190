package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"backoffice/config"
	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/delivery/http/response"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/usecase"
	"backoffice/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	productsPath    = "/products"
	fieldKeepMedia  = "keep_media"
	fieldPreviewIDs = "preview_ids"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	PreviewUC usecase.PreviewUsecase
	Config    *config.Config
}

// ProductHandler serves the products screen and the product dialog.
type ProductHandler struct {
	productUC  usecase.ProductUsecase
	previewUC  usecase.PreviewUsecase
	previewTTL time.Duration
	maxUpload  int64
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC:  params.ProductUC,
		previewUC:  params.PreviewUC,
		previewTTL: params.Config.Previews.TTL,
		maxUpload:  params.Config.Previews.MaxUploadSize,
	}
}

// ProductsView is the model of the products screen.
type ProductsView struct {
	List       *usecase.ProductList
	Categories []entity.Category
	Statuses   []entity.ProductStatus
	Pager      response.Pager
}

// ProductFormView is the model of the product dialog.
type ProductFormView struct {
	Form       entity.ProductForm
	Categories []entity.Category
	Statuses   []entity.ProductStatus
	Persisted  []entity.PersistedMedia
	Pending    []entity.PendingUpload
	PreviewTTL string
	MaxUpload  string
}

// List renders the products screen; filters go to the API.
func (h *ProductHandler) List(c echo.Context) error {
	var query usecase.ProductQuery
	if err := c.Bind(&query); err != nil {
		return bindError(err)
	}

	list, err := h.productUC.List(c.Request().Context(), deliverycontext.GetTokens(c), query)
	if err != nil {
		if failErr := response.Fail(c, err); failErr != nil {
			return failErr
		}
		list = &usecase.ProductList{Query: query, Page: util.Paginate([]entity.Product{}, 0, 1)}
	}

	params := url.Values{}
	params.Set("q", list.Query.Search)
	params.Set("category", string(list.Query.Category))
	params.Set("status", string(list.Query.Status))

	return response.Render(c, http.StatusOK, "products", response.Page{
		Title:  "Products",
		Active: "products",
		Data: ProductsView{
			List:       list,
			Categories: entity.Categories,
			Statuses:   []entity.ProductStatus{entity.ProductActive, entity.ProductInactive},
			Pager:      response.NewPager(productsPath, params, list.Page),
		},
	})
}

// New opens the dialog with a fresh form. Previews left from an abandoned
// dialog are released first.
func (h *ProductHandler) New(c echo.Context) error {
	if _, err := h.previewUC.Discard(c.Request().Context(), deliverycontext.GetSessionID(c)); err != nil {
		return err
	}

	return h.renderForm(c, http.StatusOK, entity.NewProductForm(), "")
}

// Edit opens the dialog seeded from an existing product.
func (h *ProductHandler) Edit(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.previewUC.Discard(ctx, deliverycontext.GetSessionID(c)); err != nil {
		return err
	}

	form, err := h.productUC.EditForm(ctx, deliverycontext.GetTokens(c), id)
	if err != nil {
		return err
	}

	return h.renderForm(c, http.StatusOK, form, "")
}

// Create submits a new product.
func (h *ProductHandler) Create(c echo.Context) error {
	return h.save(c, 0)
}

// Update submits changes to an existing product.
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	return h.save(c, id)
}

func (h *ProductHandler) save(c echo.Context, id int64) error {
	var form entity.ProductForm
	if err := c.Bind(&form); err != nil {
		return bindError(err)
	}
	form.ID = id

	params, err := c.FormParams()
	if err != nil {
		return bindError(err)
	}

	keep, err := parseIDs(params[fieldKeepMedia])
	if err != nil {
		return bindError(err)
	}

	submission := usecase.ProductSubmission{
		Form:         form,
		KeepMediaIDs: keep,
		PreviewIDs:   params[fieldPreviewIDs],
	}

	err = h.productUC.Save(c.Request().Context(), deliverycontext.GetTokens(c), deliverycontext.GetSessionID(c), submission)
	if err != nil {
		if response.SessionLost(err) {
			return err
		}

		form.Media = h.keptMedia(c, id, keep)

		return h.renderForm(c, formStatus(err), form, response.UserMessage(err))
	}

	message := "Product created"
	if id != 0 {
		message = "Product updated"
	}

	return response.RedirectWithFlash(c, productsPath, deliverycontext.FlashSuccess, message)
}

// keptMedia rebuilds the kept items of a rejected submission from the stored
// product so the Media tab keeps its thumbnails. Items the product no longer
// lists, or all of them when the lookup fails, keep only their id.
func (h *ProductHandler) keptMedia(c echo.Context, id int64, keep []int64) []entity.MediaItem {
	if len(keep) == 0 {
		return nil
	}

	stored := make(map[int64]entity.PersistedMedia)
	if id != 0 {
		current, err := h.productUC.EditForm(c.Request().Context(), deliverycontext.GetTokens(c), id)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), slog.Default()).
				Warn("Failed to reload product media", slog.Int64("product_id", id), slog.Any("error", err))
		}
		for _, item := range current.Media {
			if m, ok := item.(entity.PersistedMedia); ok {
				stored[m.ID] = m
			}
		}
	}

	media := make([]entity.MediaItem, 0, len(keep))
	for _, mediaID := range keep {
		if m, ok := stored[mediaID]; ok {
			media = append(media, m)

			continue
		}
		media = append(media, entity.PersistedMedia{ID: mediaID})
	}

	return media
}

// Delete removes a product.
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.productUC.Delete(c.Request().Context(), deliverycontext.GetTokens(c), id); err != nil {
		if response.SessionLost(err) {
			return err
		}

		return response.RedirectWithFlash(c, productsPath, deliverycontext.FlashError, response.UserMessage(err))
	}

	return response.RedirectWithFlash(c, productsPath, deliverycontext.FlashSuccess, "Product deleted")
}

// renderForm shows the dialog with the session's staged previews.
func (h *ProductHandler) renderForm(c echo.Context, status int, form entity.ProductForm, formError string) error {
	pending, err := h.previewUC.Pending(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return err
	}

	view := ProductFormView{
		Form:       form,
		Categories: entity.Categories,
		Statuses:   []entity.ProductStatus{entity.ProductActive, entity.ProductInactive},
		Pending:    pending,
		PreviewTTL: util.FormatDuration(h.previewTTL),
		MaxUpload:  util.FormatBytes(h.maxUpload),
	}
	for _, item := range form.Media {
		switch m := item.(type) {
		case entity.PersistedMedia:
			view.Persisted = append(view.Persisted, m)
		case entity.PendingUpload:
			// Staged files are listed from the preview store.
		}
	}

	title := "Add Product"
	if !form.IsNew() {
		title = "Edit Product"
	}

	return response.Render(c, status, "product_form", response.Page{
		Title:     title,
		Active:    "products",
		FormError: formError,
		Data:      view,
	})
}

func parseIDs(raw []string) ([]int64, error) {
	ids := make([]int64, 0, len(raw))
	for _, s := range raw {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("media: invalid id " + strconv.Quote(s))
		}
		ids = append(ids, id)
	}

	return ids, nil
}
