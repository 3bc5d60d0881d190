package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"
)

// Resource paths relative to the API base address.
const (
	pathLogin          = "account/admin-login/"
	pathRegister       = "auth/register/"
	pathProductAdd     = "inventory/productAdd/"
	pathProducts       = "inventory/products/"
	pathProductUpdate  = "inventory/products/update/%d/"
	pathProductDelete  = "inventory/products/delete/%d/"
	pathCustomers      = "account/userDetails/"
	pathCustomer       = "account/userDetails/%d/"
	pathAdminOrders    = "inventory/adminorders/"
	pathOrderStatus    = "inventory/orders/%d/update-status/"
	fieldMediaFiles    = "media_files"
	fieldExistingMedia = "existing_media_ids"
)

// gateway implements service.AdminAPI on top of the authenticated client.
type gateway struct {
	client   *Client
	previews service.PreviewStore
}

func (g *gateway) Login(ctx context.Context, creds entity.Credentials) (entity.TokenPair, error) {
	resp, err := g.client.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   pathLogin,
		Body:   creds,
	})
	if err != nil {
		return entity.TokenPair{}, errors.Wrap(err, "admin login")
	}

	var pair entity.TokenPair
	if err := resp.Decode(&pair); err != nil {
		return entity.TokenPair{}, err
	}

	// Only a complete pair is persisted; a half pair leaves storage untouched.
	if pair.Complete() {
		if err := g.client.Tokens().SetTokens(ctx, pair); err != nil {
			return entity.TokenPair{}, errors.Wrap(err, "store tokens")
		}
	}

	return pair, nil
}

func (g *gateway) Register(ctx context.Context, input entity.RegisterInput) error {
	_, err := g.client.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   pathRegister,
		Body:   input,
	})

	return errors.Wrap(err, "register customer")
}

func (g *gateway) AddProduct(ctx context.Context, form entity.ProductForm) error {
	body, err := g.productMultipart(form)
	if err != nil {
		return err
	}

	_, err = g.client.Do(ctx, &Request{
		Method:    http.MethodPost,
		Path:      pathProductAdd,
		Multipart: body,
	})

	return errors.Wrap(err, "add product")
}

func (g *gateway) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error) {
	query := url.Values{}
	if filter.Category != "" {
		query.Set("category", string(filter.Category))
	}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	if filter.Name != "" {
		query.Set("name", filter.Name)
	}

	resp, err := g.client.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   pathProducts,
		Query:  query,
	})
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}

	return DecodeList[entity.Product](resp)
}

func (g *gateway) UpdateProduct(ctx context.Context, id int64, form entity.ProductForm) error {
	body, err := g.productMultipart(form)
	if err != nil {
		return err
	}

	_, err = g.client.Do(ctx, &Request{
		Method:    http.MethodPut,
		Path:      pathf(pathProductUpdate, id),
		Multipart: body,
	})

	return errors.Wrapf(err, "update product %d", id)
}

func (g *gateway) DeleteProduct(ctx context.Context, id int64) error {
	_, err := g.client.Do(ctx, &Request{
		Method: http.MethodDelete,
		Path:   pathf(pathProductDelete, id),
	})

	return errors.Wrapf(err, "delete product %d", id)
}

func (g *gateway) ListCustomers(ctx context.Context) ([]entity.Customer, error) {
	resp, err := g.client.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   pathCustomers,
	})
	if err != nil {
		return nil, errors.Wrap(err, "list customers")
	}

	return DecodeList[entity.Customer](resp)
}

func (g *gateway) GetCustomer(ctx context.Context, id int64) (*entity.Customer, error) {
	resp, err := g.client.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   pathf(pathCustomer, id),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "get customer %d", id)
	}

	var customer entity.Customer
	if err := resp.Decode(&customer); err != nil {
		return nil, err
	}

	return &customer, nil
}

func (g *gateway) ListOrders(ctx context.Context) ([]entity.Order, error) {
	resp, err := g.client.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   pathAdminOrders,
	})
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}

	return DecodeList[entity.Order](resp)
}

func (g *gateway) UpdateOrderStatus(ctx context.Context, id int64, status entity.OrderStatus) error {
	_, err := g.client.Do(ctx, &Request{
		Method: http.MethodPut,
		Path:   pathf(pathOrderStatus, id),
		Body:   map[string]string{"status": string(status)},
	})

	return errors.Wrapf(err, "update order %d status", id)
}

// productMultipart serialises the product form. Staged uploads become file
// parts read from the preview store; persisted media are referenced by id.
func (g *gateway) productMultipart(form entity.ProductForm) (*Multipart, error) {
	body := &Multipart{}
	body.Add("name", form.Name)
	body.Add("description", form.Description)
	body.Add("price", entity.Amount(form.Price).String())
	body.Add("category", string(form.Category))
	body.Add("stock", strconv.Itoa(form.Stock))
	body.Add("status", string(form.Status))
	if form.Rating > 0 {
		body.Add("rating", strconv.FormatFloat(form.Rating, 'f', -1, 64))
	}
	if form.ImageURL != "" {
		body.Add("image", form.ImageURL)
	}
	if form.Author != "" {
		body.Add("author", form.Author)
	}
	if form.Genre != "" {
		body.Add("genre", form.Genre)
	}

	for _, item := range form.Media {
		switch media := item.(type) {
		case entity.PendingUpload:
			body.Files = append(body.Files, FilePart{
				Field:       fieldMediaFiles,
				Filename:    media.Filename,
				ContentType: media.ContentType,
				Open:        g.openPreview(media.PreviewID),
			})
		case entity.PersistedMedia:
			body.Add(fieldExistingMedia, strconv.FormatInt(media.ID, 10))
		default:
			return nil, errors.Errorf("unsupported media item %T", item)
		}
	}

	return body, nil
}

func (g *gateway) openPreview(previewID string) func(ctx context.Context) (io.ReadCloser, error) {
	return func(ctx context.Context) (io.ReadCloser, error) {
		if g.previews == nil {
			return nil, errors.New("preview store is not configured")
		}

		content, _, err := g.previews.Open(ctx, previewID)

		return content, err
	}
}

func pathf(format string, id int64) string {
	return fmt.Sprintf(format, id)
}
