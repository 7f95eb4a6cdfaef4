package common

import (
	"context"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// ImageValidator checks that a URL can be rendered as an embed image.
type ImageValidator struct {
	// If Client is nil, only the URL itself is checked.
	// Otherwise, the URL is requested with HEAD and must return an image content type.
	Client *http.Client
}

// NewImageValidator returns an ImageValidator. If fetch is true, it makes HEAD requests with a short timeout.
func NewImageValidator(fetch bool) *ImageValidator {
	if !fetch {
		return &ImageValidator{}
	}
	return &ImageValidator{Client: &http.Client{Timeout: 5 * time.Second}}
}

// Validate returns an error matching ErrInvalidImage if rawURL is not an acceptable image.
func (v *ImageValidator) Validate(ctx context.Context, rawURL string) error {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return inputError(ErrInvalidImage, "%q is not a valid image link.", rawURL)
	}

	if v == nil || v.Client == nil {
		if !imageExtensions[strings.ToLower(path.Ext(u.Path))] {
			return inputError(ErrInvalidImage, "%q does not link to an image.", rawURL)
		}
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, u.String(), nil)
	if err != nil {
		return inputError(ErrInvalidImage, "%q is not a valid image link.", rawURL)
	}

	resp, err := v.Client.Do(req)
	if err != nil {
		return inputError(ErrInvalidImage, "%q could not be reached.", rawURL)
	}
	resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 ||
		!strings.HasPrefix(resp.Header.Get("Content-Type"), "image/") {
		return inputError(ErrInvalidImage, "%q does not link to an image.", rawURL)
	}
	return nil
}
