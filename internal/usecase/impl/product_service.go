package impl

import (
	"context"
	"log/slog"

	"backoffice/config"
	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"
	"backoffice/internal/util"

	"github.com/go-playground/validator/v10"
)

type productService struct {
	apis     service.AdminAPIFactory
	previews service.PreviewStore
	validate *validator.Validate
	pageSize int
	logger   *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	apis service.AdminAPIFactory,
	previews service.PreviewStore,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		apis:     apis,
		previews: previews,
		validate: newValidator(),
		pageSize: cfg.Pagination.PageSize,
		logger:   logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productService) List(ctx context.Context, tokens service.TokenStore, query usecase.ProductQuery) (*usecase.ProductList, error) {
	products, err := srv.apis.Open(tokens).ListProducts(ctx, query.Filter())
	if err != nil {
		return nil, remoteError(err, "list products")
	}

	page := util.Paginate(products, srv.pageSize, query.Page)
	query.Page = page.Page

	return &usecase.ProductList{Query: query, Page: page}, nil
}

// EditForm looks the product up in the list; the API has no single-product read.
func (srv *productService) EditForm(ctx context.Context, tokens service.TokenStore, id int64) (entity.ProductForm, error) {
	products, err := srv.apis.Open(tokens).ListProducts(ctx, entity.ProductFilter{})
	if err != nil {
		return entity.ProductForm{}, remoteError(err, "list products")
	}

	for _, p := range products {
		if p.ID == id {
			return entity.FormFromProduct(p), nil
		}
	}

	return entity.ProductForm{}, errors.Wrapf(domainerrors.ErrNotFound, "product %d", id)
}

func (srv *productService) Save(ctx context.Context, tokens service.TokenStore, owner string, submission usecase.ProductSubmission) error {
	form := submission.Form
	if err := validateInput(srv.validate, form); err != nil {
		return err
	}

	media, err := srv.resolveMedia(ctx, owner, submission)
	if err != nil {
		return err
	}
	form.Media = media

	api := srv.apis.Open(tokens)
	if form.IsNew() {
		err = api.AddProduct(ctx, form)
	} else {
		err = api.UpdateProduct(ctx, form.ID, form)
	}
	if err != nil {
		return remoteError(err, "save product")
	}

	for _, id := range entity.PendingPreviewIDs(media) {
		if err := srv.previews.Release(ctx, owner, id); err != nil {
			srv.log(ctx).Warn("Failed to release consumed preview",
				slog.String("preview_id", id),
				slog.Any("error", err),
			)
		}
	}

	srv.log(ctx).Info("Product saved",
		slog.Int64("product_id", form.ID),
		slog.Bool("created", form.IsNew()),
		slog.Int("media", len(media)),
	)

	return nil
}

// resolveMedia rebuilds the media list from the kept persisted ids followed
// by the session's staged previews, in submission order.
func (srv *productService) resolveMedia(ctx context.Context, owner string, submission usecase.ProductSubmission) ([]entity.MediaItem, error) {
	media := make([]entity.MediaItem, 0, len(submission.KeepMediaIDs)+len(submission.PreviewIDs))
	for _, id := range submission.KeepMediaIDs {
		media = append(media, entity.PersistedMedia{ID: id})
	}

	if len(submission.PreviewIDs) == 0 {
		return media, nil
	}

	pending, err := srv.previews.Pending(ctx, owner)
	if err != nil {
		return nil, errors.Wrap(err, "list previews")
	}

	held := make(map[string]entity.PendingUpload, len(pending))
	for _, p := range pending {
		held[p.PreviewID] = p
	}

	for _, id := range submission.PreviewIDs {
		upload, ok := held[id]
		if !ok {
			return nil, domainerrors.ErrPreviewNotFound.WithDetails(id)
		}
		media = append(media, upload)
	}

	return media, nil
}

func (srv *productService) Delete(ctx context.Context, tokens service.TokenStore, id int64) error {
	if err := srv.apis.Open(tokens).DeleteProduct(ctx, id); err != nil {
		return remoteError(err, "delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Int64("product_id", id))

	return nil
}
