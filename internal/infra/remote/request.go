package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/errors"
)

// APIError is a non-success response from the back office API.
type APIError = domainerrors.APIError

// ErrGeneric is returned when a call failed without a server payload.
var ErrGeneric = domainerrors.ErrRemoteGeneric

// ErrSessionCleared is joined to the original 401 when the refresh failed
// and the session tokens were cleared.
var ErrSessionCleared = domainerrors.ErrSessionCleared

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// Request describes one call relative to the API base address.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	// Body is JSON-encoded when set. Ignored when Multipart is set.
	Body      any
	Multipart *Multipart
}

// Multipart is a form-data payload. It is rebuilt for every attempt so a
// retried request carries the same files.
type Multipart struct {
	Fields []Field
	Files  []FilePart
}

// Field is one text part.
type Field struct {
	Name  string
	Value string
}

// FilePart is one file part. Open is called once per attempt.
type FilePart struct {
	Field       string
	Filename    string
	ContentType string
	Open        func(ctx context.Context) (io.ReadCloser, error)
}

// Add appends a text field.
func (m *Multipart) Add(name, value string) {
	m.Fields = append(m.Fields, Field{Name: name, Value: value})
}

// Response is a successful API response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the JSON body into v. An empty body leaves v untouched.
func (r *Response) Decode(v any) error {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}

	return errors.Wrap(json.Unmarshal(r.Body, v), "decode response")
}

// DecodeList accepts either a bare JSON array or a {"results": [...]} page.
func DecodeList[T any](r *Response) ([]T, error) {
	body := bytes.TrimSpace(r.Body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return []T{}, nil
	}

	if body[0] == '[' {
		var items []T
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, errors.Wrap(err, "decode list")
		}

		return items, nil
	}

	var page struct {
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, errors.Wrap(err, "decode paginated list")
	}
	if page.Results == nil {
		return []T{}, nil
	}

	return page.Results, nil
}

// encode builds the request body and its content type.
func (r *Request) encode(ctx context.Context) (io.Reader, string, error) {
	if r.Multipart != nil {
		return r.Multipart.encode(ctx)
	}

	if r.Body == nil {
		return nil, mimeJSON, nil
	}

	payload, err := json.Marshal(r.Body)
	if err != nil {
		return nil, "", errors.Wrap(err, "encode request body")
	}

	return bytes.NewReader(payload), mimeJSON, nil
}

func (m *Multipart) encode(ctx context.Context) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, field := range m.Fields {
		if err := writer.WriteField(field.Name, field.Value); err != nil {
			return nil, "", errors.Wrapf(err, "write field %s", field.Name)
		}
	}

	for _, file := range m.Files {
		if err := writeFilePart(ctx, writer, file); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", errors.Wrap(err, "close multipart writer")
	}

	return &buf, writer.FormDataContentType(), nil
}

func writeFilePart(ctx context.Context, writer *multipart.Writer, file FilePart) error {
	content, err := file.Open(ctx)
	if err != nil {
		return errors.Wrapf(err, "open %s", file.Filename)
	}
	defer content.Close()

	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(file.Field), quoteEscaper.Replace(file.Filename)))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return errors.Wrapf(err, "create part for %s", file.Filename)
	}

	if _, err := io.Copy(part, content); err != nil {
		return errors.Wrapf(err, "copy %s", file.Filename)
	}

	return nil
}
