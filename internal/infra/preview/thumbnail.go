package preview

import (
	"bytes"
	"image"
	_ "image/gif" // decoders for staged images
	_ "image/jpeg"
	"image/png"
	"io"

	"backoffice/internal/errors"

	"github.com/nfnt/resize"
)

const thumbnailType = "image/png"

// Thumbnail decodes an image and scales it to fit a width x width box,
// keeping the aspect ratio. Images already inside the box are re-encoded
// without scaling.
func Thumbnail(r io.Reader, width uint) ([]byte, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "decode image")
	}

	scaled := resize.Thumbnail(width, width, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, errors.Wrap(err, "encode thumbnail")
	}

	return buf.Bytes(), nil
}
