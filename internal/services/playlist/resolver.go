package playlist

import (
	"context"
	"errors"
	"net/url"
	"path"
	"strings"

	"github.com/robuso/conclave/internal/models"
)

// ErrUnresolvable is returned when a query cannot be turned into a track
var ErrUnresolvable = errors.New("query could not be resolved to a track")

// URLResolver resolves direct URLs into tracks using metadata derived
// from the URL itself. Plain-text queries are rejected; richer lookups
// belong in a source-specific Resolver.
type URLResolver struct{}

// Resolve implements Resolver
func (URLResolver) Resolve(_ context.Context, query string) (*models.Track, error) {
	query = strings.TrimSpace(query)

	u, err := url.Parse(query)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, ErrUnresolvable
	}

	return &models.Track{
		URL:   u.String(),
		Title: titleFromURL(u),
	}, nil
}

func titleFromURL(u *url.URL) string {
	if v := u.Query().Get("v"); v != "" {
		return v
	}

	base := path.Base(u.Path)
	if base == "." || base == "/" || base == "" {
		return u.Host
	}

	if ext := path.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return strings.ReplaceAll(base, "-", " ")
}
