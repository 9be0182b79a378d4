package market

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"shorts_feed/internal/domain"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

type ClientTestSuite struct {
	suite.Suite
	mux    *http.ServeMux
	server *httptest.Server
	client *Client
	logger *slog.Logger
}

func (s *ClientTestSuite) SetupTest() {
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(s.mux)
	s.client = New(Config{
		BaseURL:        s.server.URL,
		Timeout:        5 * time.Second,
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	}, staticToken("tok"), s.logger)
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TestFetchPage_TransformsShorts() {
	s.mux.HandleFunc("/api/shorts", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("10", r.URL.Query().Get("limit"))
		s.Equal("42", r.URL.Query().Get("cursor"))
		s.Equal("Bearer tok", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `[{
			"item_id": 41, "title": "Lamp", "price": 1200, "description": null,
			"audio_url": "https://cdn.test/v41.mp3", "status": "COMPLETED",
			"images": ["a.jpg", "b.jpg"],
			"slides": [
				{"index": 0, "subtitle": "Bright", "position": 0, "color": 1},
				{"index": 0, "subtitle": "dup", "position": 1, "color": 1},
				{"index": 1, "subtitle": "Cheap", "position": 1, "color": 0}
			],
			"seller": {"id": 7, "name": "Ann", "avatar_url": null}
		}]`)
	})

	cursor := int64(42)
	entries, err := s.client.FetchPage(context.Background(), &cursor, 10)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)

	e := entries[0]
	s.Equal(int64(41), e.ItemID)
	s.Equal(domain.StatusCompleted, e.Status)
	s.Equal(int64(7), e.Seller.ID)
	s.Require().NotNil(e.VoiceoverURL)
	s.Equal("https://cdn.test/v41.mp3", *e.VoiceoverURL)
	s.Require().Len(e.Slides, 2)
	s.Equal(domain.Slide{Index: 0, Caption: "Bright", Position: domain.PositionTop, Style: domain.StyleLight}, e.Slides[0])
	s.Equal(domain.Slide{Index: 1, Caption: "Cheap", Position: domain.PositionBottom, Style: domain.StyleDark}, e.Slides[1])
}

func (s *ClientTestSuite) TestFetchPage_NoCursorOnFirstPage() {
	s.mux.HandleFunc("/api/shorts", func(w http.ResponseWriter, r *http.Request) {
		s.False(r.URL.Query().Has("cursor"))
		_, _ = io.WriteString(w, `[]`)
	})

	entries, err := s.client.FetchPage(context.Background(), nil, 10)
	s.NoError(err)
	s.Empty(entries)
}

func (s *ClientTestSuite) TestFetchPage_RetriesServerErrors() {
	var calls atomic.Int32
	s.mux.HandleFunc("/api/shorts", func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = io.WriteString(w, `[{"item_id": 1, "seller": {"id": 1, "name": "x"}}]`)
	})

	entries, err := s.client.FetchPage(context.Background(), nil, 10)
	s.NoError(err)
	s.Len(entries, 1)
	s.Equal(int32(3), calls.Load())
}

func (s *ClientTestSuite) TestFetchPage_GivesUpAfterMaxAttempts() {
	var calls atomic.Int32
	s.mux.HandleFunc("/api/shorts", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := s.client.FetchPage(context.Background(), nil, 10)
	s.Error(err)
	s.Contains(err.Error(), "after 3 attempts")
	s.True(IsStatus(err, http.StatusInternalServerError))
	s.Equal(int32(3), calls.Load())
}

func (s *ClientTestSuite) TestGet_DoesNotRetryClientErrors() {
	var calls atomic.Int32
	s.mux.HandleFunc("/api/musics/3", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := s.client.MusicURL(context.Background(), 3)
	s.Error(err)
	s.True(IsStatus(err, http.StatusNotFound))
	s.Equal(int32(1), calls.Load())
}

func (s *ClientTestSuite) TestMusicURL() {
	s.mux.HandleFunc("/api/musics/10", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"url": "https://cdn.test/bgm10.mp3"}`)
	})

	u, err := s.client.MusicURL(context.Background(), 10)
	s.NoError(err)
	s.Equal("https://cdn.test/bgm10.mp3", u)

	_, err = s.client.MusicURL(context.Background(), 11)
	s.Error(err)
	_, err = s.client.MusicURL(context.Background(), 0)
	s.Error(err)
}

func (s *ClientTestSuite) TestComments_NormalizesBothShapes() {
	s.mux.HandleFunc("/api/items/5/comments", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[
			{"id": 1, "item_id": 5, "user_id": 9, "body": "nice", "created_at": "2025-01-02T03:04:05Z",
			 "user": {"id": 9, "username": "bob", "icon_url": "bob.png"}},
			{"id": "c-2", "author": "eve", "avatar": "eve.png", "content": "want", "timestamp": "2h ago", "likes": 4},
			{"id": 3}
		]`)
	})

	comments, err := s.client.Comments(context.Background(), 5)
	s.Require().NoError(err)
	s.Require().Len(comments, 2)

	nested := comments[0]
	s.Equal("1", nested.ID)
	s.Equal(int64(5), nested.ItemID)
	s.Require().NotNil(nested.AuthorID)
	s.Equal(int64(9), *nested.AuthorID)
	s.Equal("bob", nested.AuthorName)
	s.Equal("bob.png", nested.AvatarURL)
	s.Equal("nice", nested.Body)
	s.True(time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC).Equal(nested.CreatedAt))

	flat := comments[1]
	s.Equal("c-2", flat.ID)
	s.Equal(int64(5), flat.ItemID)
	s.Nil(flat.AuthorID)
	s.Equal("eve", flat.AuthorName)
	s.Equal("want", flat.Body)
	s.Equal(4, flat.Likes)
	s.True(flat.CreatedAt.IsZero())
	s.Equal("2h ago", flat.Timestamp)
}

func (s *ClientTestSuite) TestPostComment() {
	s.mux.HandleFunc("/api/items/5/comments", func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		var req postCommentRequest
		s.NoError(json.NewDecoder(r.Body).Decode(&req))
		s.Equal("hello", req.Body)
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id": 77, "item_id": 5, "user_id": 9, "body": "hello", "created_at": "2025-01-02T03:04:05Z"}`)
	})

	c, err := s.client.PostComment(context.Background(), 5, "hello")
	s.NoError(err)
	s.Equal("77", c.ID)
	s.Equal("hello", c.Body)
	s.Empty(c.AuthorName)
}

func (s *ClientTestSuite) TestPostComment_NotRetried() {
	var calls atomic.Int32
	s.mux.HandleFunc("/api/items/5/comments", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := s.client.PostComment(context.Background(), 5, "hello")
	s.Error(err)
	s.Equal(int32(1), calls.Load())
}

func (s *ClientTestSuite) TestLikes() {
	s.mux.HandleFunc("/api/items/5/likes", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `12`)
	})
	s.mux.HandleFunc("/api/users/me/likes", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"id": 1, "user_id": 9, "item_id": 5}, {"id": 2, "user_id": 9, "item_id": 8}]`)
	})
	var method atomic.Value
	s.mux.HandleFunc("/api/items/5/like", func(w http.ResponseWriter, r *http.Request) {
		method.Store(r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	ctx := context.Background()
	count, err := s.client.LikeCount(ctx, 5)
	s.NoError(err)
	s.Equal(12, count)

	ids, err := s.client.MyLikes(ctx)
	s.NoError(err)
	s.Equal([]int64{5, 8}, ids)

	s.NoError(s.client.Like(ctx, 5))
	s.Equal(http.MethodPost, method.Load())
	s.NoError(s.client.Unlike(ctx, 5))
	s.Equal(http.MethodDelete, method.Load())
}

func (s *ClientTestSuite) TestMe_AnonymousHasNoAuthHeader() {
	s.mux.HandleFunc("/api/users/me", func(w http.ResponseWriter, r *http.Request) {
		s.Empty(r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnauthorized)
	})
	s.client.SetTokenSource(staticToken(""))

	_, err := s.client.Me(context.Background())
	s.True(IsStatus(err, http.StatusUnauthorized))
}
