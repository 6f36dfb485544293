package playlist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
)

type URLResolverTestSuite struct {
	suite.Suite
	resolver URLResolver
	ctx      context.Context
}

func (s *URLResolverTestSuite) SetupTest() {
	s.resolver = URLResolver{}
	s.ctx = context.Background()
}

func (s *URLResolverTestSuite) TestResolveDirectURL() {
	track, err := s.resolver.Resolve(s.ctx, "https://example.com/songs/never-gonna-give.mp3")
	s.Require().NoError(err)
	s.Equal("https://example.com/songs/never-gonna-give.mp3", track.URL)
	s.Equal("never gonna give", track.Title)
}

func (s *URLResolverTestSuite) TestResolveVideoIDQueryParam() {
	track, err := s.resolver.Resolve(s.ctx, "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	s.Require().NoError(err)
	s.Equal("dQw4w9WgXcQ", track.Title)
}

func (s *URLResolverTestSuite) TestResolveBareHostFallsBackToHost() {
	track, err := s.resolver.Resolve(s.ctx, "https://example.com/")
	s.Require().NoError(err)
	s.Equal("example.com", track.Title)
}

func (s *URLResolverTestSuite) TestResolveRejectsPlainText() {
	_, err := s.resolver.Resolve(s.ctx, "una cancion cualquiera")
	s.ErrorIs(err, ErrUnresolvable)
}

func (s *URLResolverTestSuite) TestResolveRejectsNonHTTPScheme() {
	_, err := s.resolver.Resolve(s.ctx, "ftp://example.com/song.mp3")
	s.ErrorIs(err, ErrUnresolvable)
}

func TestURLResolverSuite(t *testing.T) {
	suite.Run(t, new(URLResolverTestSuite))
}
