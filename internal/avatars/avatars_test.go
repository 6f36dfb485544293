package avatars

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"
)

type CompositorTestSuite struct {
	suite.Suite
	ctx        context.Context
	server     *httptest.Server
	hits       atomic.Int64
	compositor *Compositor
}

func (s *CompositorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.hits.Store(0)

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)

		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		img := image.NewRGBA(image.Rect(0, 0, 64, 64))
		for x := 0; x < 64; x++ {
			for y := 0; y < 64; y++ {
				img.Set(x, y, color.RGBA{R: 200, A: 255})
			}
		}
		w.Header().Set("Content-Type", "image/png")
		s.Require().NoError(png.Encode(w, img))
	}))

	compositor, err := New(&Config{
		HTTPClient: s.server.Client(),
		TileSize:   32,
	})
	s.Require().NoError(err)
	s.compositor = compositor
}

func (s *CompositorTestSuite) TearDownTest() {
	s.server.Close()
}

func TestCompositorTestSuite(t *testing.T) {
	suite.Run(t, new(CompositorTestSuite))
}

func (s *CompositorTestSuite) decode(data []byte) image.Image {
	img, err := png.Decode(bytes.NewReader(data))
	s.Require().NoError(err)
	return img
}

func (s *CompositorTestSuite) TestSingleAvatar() {
	data, err := s.compositor.Composite(s.ctx, []string{s.server.URL + "/a.png"})
	s.Require().NoError(err)

	img := s.decode(data)
	s.Equal(32, img.Bounds().Dx())
	s.Equal(32, img.Bounds().Dy())
}

func (s *CompositorTestSuite) TestTwoAvatarsSideBySide() {
	data, err := s.compositor.Composite(s.ctx, []string{
		s.server.URL + "/a.png",
		s.server.URL + "/b.png",
	})
	s.Require().NoError(err)

	img := s.decode(data)
	s.Equal(64, img.Bounds().Dx())
	s.Equal(32, img.Bounds().Dy())
}

func (s *CompositorTestSuite) TestFourAvatarGrid() {
	data, err := s.compositor.Composite(s.ctx, []string{
		s.server.URL + "/a.png",
		s.server.URL + "/b.png",
		s.server.URL + "/c.png",
		s.server.URL + "/d.png",
	})
	s.Require().NoError(err)

	img := s.decode(data)
	s.Equal(64, img.Bounds().Dx())
	s.Equal(64, img.Bounds().Dy())
}

func (s *CompositorTestSuite) TestExtraAvatarsTruncated() {
	urls := make([]string, 6)
	for i := range urls {
		urls[i] = s.server.URL + "/a.png"
	}

	data, err := s.compositor.Composite(s.ctx, urls)
	s.Require().NoError(err)

	img := s.decode(data)
	s.Equal(64, img.Bounds().Dx())
	s.Equal(64, img.Bounds().Dy())
}

func (s *CompositorTestSuite) TestFailedFetchesSkipped() {
	data, err := s.compositor.Composite(s.ctx, []string{
		s.server.URL + "/missing",
		s.server.URL + "/b.png",
	})
	s.Require().NoError(err)

	img := s.decode(data)
	s.Equal(32, img.Bounds().Dx())
}

func (s *CompositorTestSuite) TestAllFailedFetches() {
	_, err := s.compositor.Composite(s.ctx, []string{s.server.URL + "/missing"})
	s.ErrorIs(err, ErrNoAvatars)
}

func (s *CompositorTestSuite) TestCacheAvoidsRefetch() {
	url := s.server.URL + "/a.png"

	_, err := s.compositor.Composite(s.ctx, []string{url})
	s.Require().NoError(err)
	first := s.hits.Load()

	_, err = s.compositor.Composite(s.ctx, []string{url})
	s.Require().NoError(err)

	s.Equal(first, s.hits.Load())
}
