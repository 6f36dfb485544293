package avatars

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"sync"
	"time"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/rs/zerolog"
	"golang.org/x/image/draw"
)

const (
	// DefaultTileSize is the side of one avatar tile in pixels
	DefaultTileSize = 128

	// DefaultMaxConcurrent caps parallel avatar downloads
	DefaultMaxConcurrent = 4

	// MaxTiles is the most avatars one composite holds
	MaxTiles = 4
)

// ErrNoAvatars is returned when no avatar could be fetched
var ErrNoAvatars = errors.New("no avatars could be fetched")

// Config holds configuration for the avatar compositor
type Config struct {
	// HTTPClient fetches avatar images; a default client when nil
	HTTPClient *http.Client

	// TileSize is the side of one tile in pixels
	TileSize int

	// MaxConcurrent caps parallel downloads
	MaxConcurrent int

	Logger zerolog.Logger
}

// Compositor fetches member avatars and composes them into a single
// grid image for the status embed. Fetched tiles are cached by URL.
type Compositor struct {
	client   *http.Client
	tileSize int
	sem      chan struct{}
	logger   zerolog.Logger

	mu    sync.Mutex
	cache map[string]image.Image
}

// New creates a new avatar compositor
func New(cfg *Config) (*Compositor, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	tileSize := cfg.TileSize
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}

	maxConcurrent := cfg.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrent
	}

	return &Compositor{
		client:   client,
		tileSize: tileSize,
		sem:      make(chan struct{}, maxConcurrent),
		logger:   cfg.Logger.With().Str("component", "avatars").Logger(),
		cache:    make(map[string]image.Image),
	}, nil
}

// Composite fetches up to four avatars and composes them into one PNG.
// Unfetchable avatars are skipped; the grid shrinks to what arrived.
func (c *Compositor) Composite(ctx context.Context, urls []string) ([]byte, error) {
	if len(urls) > MaxTiles {
		urls = urls[:MaxTiles]
	}

	tiles := c.fetchAll(ctx, urls)
	if len(tiles) == 0 {
		return nil, ErrNoAvatars
	}

	canvas := c.compose(tiles)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("failed to encode composite: %w", err)
	}

	return buf.Bytes(), nil
}

// fetchAll downloads every URL with bounded concurrency, keeping the
// input order for the tiles that arrive.
func (c *Compositor) fetchAll(ctx context.Context, urls []string) []image.Image {
	results := make([]image.Image, len(urls))

	var wg sync.WaitGroup
	for i, url := range urls {
		if url == "" {
			continue
		}

		wg.Add(1)
		go func(i int, url string) {
			defer wg.Done()

			select {
			case c.sem <- struct{}{}:
				defer func() { <-c.sem }()
			case <-ctx.Done():
				return
			}

			img, err := c.fetch(ctx, url)
			if err != nil {
				c.logger.Warn().Err(err).Str("url", url).Msg("failed to fetch avatar")
				return
			}
			results[i] = img
		}(i, url)
	}
	wg.Wait()

	tiles := make([]image.Image, 0, len(results))
	for _, img := range results {
		if img != nil {
			tiles = append(tiles, img)
		}
	}
	return tiles
}

func (c *Compositor) fetch(ctx context.Context, url string) (image.Image, error) {
	c.mu.Lock()
	if img, ok := c.cache[url]; ok {
		c.mu.Unlock()
		return img, nil
	}
	c.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch avatar: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	src, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode avatar: %w", err)
	}

	tile := c.scale(src)

	c.mu.Lock()
	c.cache[url] = tile
	c.mu.Unlock()

	return tile, nil
}

// scale resizes the source onto a square tile
func (c *Compositor) scale(src image.Image) image.Image {
	tile := image.NewRGBA(image.Rect(0, 0, c.tileSize, c.tileSize))
	draw.ApproxBiLinear.Scale(tile, tile.Bounds(), src, src.Bounds(), draw.Over, nil)
	return tile
}

// compose lays the tiles out: one alone, two side by side, three or
// four on a 2x2 grid.
func (c *Compositor) compose(tiles []image.Image) image.Image {
	size := c.tileSize

	var canvas *image.RGBA
	switch len(tiles) {
	case 1:
		canvas = image.NewRGBA(image.Rect(0, 0, size, size))
	case 2:
		canvas = image.NewRGBA(image.Rect(0, 0, 2*size, size))
	default:
		canvas = image.NewRGBA(image.Rect(0, 0, 2*size, 2*size))
	}

	for i, tile := range tiles {
		x := (i % 2) * size
		y := (i / 2) * size
		target := image.Rect(x, y, x+size, y+size)
		draw.Copy(canvas, target.Min, tile, tile.Bounds(), draw.Over, nil)
	}

	return canvas
}
