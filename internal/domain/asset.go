package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// dataURLPrefix is the scheme prefix of an embedded-image data URL as produced
// by the browser (canvas.toDataURL, FileReader.readAsDataURL).
const dataURLPrefix = "data:"

// base64Marker separates the media type header from the base64 payload.
const base64Marker = ";base64,"

// ImageAsset is an opaque encoded image payload plus its media type. It is the
// unit of exchange between the API boundary, the orchestrator, and the
// generation client. Assets are treated as immutable once created.
type ImageAsset struct {
	MediaType string `json:"media_type"`
	Data      []byte `json:"data"`
}

// NewImageAsset creates an ImageAsset from raw image bytes and a media type.
// Returns an error wrapping ErrInvalidEncoding if the media type is not an
// image type or the payload is empty.
func NewImageAsset(mediaType string, data []byte) (ImageAsset, error) {
	asset := ImageAsset{MediaType: mediaType, Data: data}
	if err := asset.Validate(); err != nil {
		return ImageAsset{}, err
	}
	return asset, nil
}

// Validate checks that the asset carries an image media type and a non-empty
// payload.
func (a ImageAsset) Validate() error {
	if !strings.HasPrefix(a.MediaType, "image/") {
		return fmt.Errorf("%w: media type %q is not an image type", ErrInvalidEncoding, a.MediaType)
	}
	if len(a.Data) == 0 {
		return fmt.Errorf("%w: empty image payload", ErrInvalidEncoding)
	}
	return nil
}

// ParseDataURL decodes a base64 data URL ("data:image/png;base64,...") into an
// ImageAsset. Returns an error wrapping ErrInvalidEncoding when the header is
// malformed, the media type is not an image type, or the payload is not valid
// base64.
func ParseDataURL(s string) (ImageAsset, error) {
	if !strings.HasPrefix(s, dataURLPrefix) {
		return ImageAsset{}, fmt.Errorf("%w: missing %q prefix", ErrInvalidEncoding, dataURLPrefix)
	}
	rest := s[len(dataURLPrefix):]

	idx := strings.Index(rest, base64Marker)
	if idx < 0 {
		return ImageAsset{}, fmt.Errorf("%w: missing %q marker", ErrInvalidEncoding, base64Marker)
	}

	mediaType := rest[:idx]
	payload := rest[idx+len(base64Marker):]

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return ImageAsset{}, fmt.Errorf("%w: invalid base64 payload: %v", ErrInvalidEncoding, err)
	}

	return NewImageAsset(mediaType, data)
}

// DataURL serializes the asset back into a base64 data URL. It is the exact
// inverse of ParseDataURL for valid assets.
func (a ImageAsset) DataURL() string {
	return dataURLPrefix + a.MediaType + base64Marker + base64.StdEncoding.EncodeToString(a.Data)
}
