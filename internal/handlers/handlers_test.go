package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"shorts_feed/internal/domain"
	"shorts_feed/internal/engagement"
	"shorts_feed/internal/feed"
	"shorts_feed/internal/handlers/mocks"
	"shorts_feed/internal/service"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	feed      *mocks.MockFeed
	likes     *mocks.MockLikeStates
	auth      *mocks.MockAuth
	gestures  *mocks.MockGesturer
	summaries *mocks.MockSummaries
	router    http.Handler
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.feed = mocks.NewMockFeed(s.ctrl)
	s.likes = mocks.NewMockLikeStates(s.ctrl)
	s.auth = mocks.NewMockAuth(s.ctrl)
	s.gestures = mocks.NewMockGesturer(s.ctrl)
	s.summaries = mocks.NewMockSummaries(s.ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.router = NewHandler(s.feed, s.likes, s.auth, logger).
		WithGestures(s.gestures).
		WithSummaries(s.summaries).
		Router()
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) decode(rec *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v))
}

func (s *HandlerTestSuite) errorOf(rec *httptest.ResponseRecorder) string {
	var body map[string]string
	s.decode(rec, &body)
	return body["error"]
}

func sessionView(itemID int64) feed.SessionView {
	return feed.SessionView{
		ItemID:       itemID,
		Index:        int(itemID) - 1,
		Active:       true,
		Mounted:      true,
		CurrentImage: 1,
		ImageURL:     "https://cdn.test/1.jpg",
		Caption:      &domain.Slide{Index: 1, Caption: "caption", Position: domain.PositionTop, Style: domain.StyleDark},
		Tracks: []feed.TrackView{
			{Kind: feed.TrackVoiceover, Src: "https://cdn.test/v.mp3", State: feed.Stopped, Volume: 1},
		},
	}
}

func (s *HandlerTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("application/json", rec.Header().Get("Content-Type"))
}

func (s *HandlerTestSuite) TestGetFeed() {
	cursor := int64(2)
	s.feed.EXPECT().Snapshot().Return(feed.View{
		State: feed.State{
			Entries:     []domain.FeedEntry{{ItemID: 1, Title: "one", Images: []string{"a"}}, {ItemID: 2, Title: "two"}},
			ActiveIndex: 0,
			NextCursor:  &cursor,
			HasMore:     true,
		},
		Muted:   true,
		Mounted: []int64{1},
	})

	rec := s.do(http.MethodGet, "/feed", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp feedResponse
	s.decode(rec, &resp)
	s.Len(resp.Entries, 2)
	s.Equal(int64(1), resp.Entries[0].ItemID)
	s.Equal(1, resp.Entries[0].Images)
	s.True(resp.Entries[0].Mounted)
	s.False(resp.Entries[1].Mounted)
	s.Equal(1, resp.Entries[1].Index)
	s.Equal(int64(2), *resp.NextCursor)
	s.True(resp.HasMore)
	s.True(resp.Muted)
}

func (s *HandlerTestSuite) TestGetFeed_DoesNotCountAsGesture() {
	s.feed.EXPECT().Snapshot().Return(feed.View{State: feed.NewState()})
	s.gestures.EXPECT().Gesture().Times(0)

	rec := s.do(http.MethodGet, "/feed", "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestLoadMore() {
	s.gestures.EXPECT().Gesture()
	s.feed.EXPECT().LoadMore()

	rec := s.do(http.MethodPost, "/feed/more", "")
	s.Equal(http.StatusAccepted, rec.Code)
}

func (s *HandlerTestSuite) TestFocus() {
	s.gestures.EXPECT().Gesture()
	s.feed.EXPECT().Focus(3).Return(nil)
	s.feed.EXPECT().Snapshot().Return(feed.View{State: feed.State{ActiveIndex: 3}})

	rec := s.do(http.MethodPost, "/feed/focus/3", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp feedResponse
	s.decode(rec, &resp)
	s.Equal(3, resp.ActiveIndex)
}

func (s *HandlerTestSuite) TestFocus_OutOfRange() {
	s.gestures.EXPECT().Gesture()
	s.feed.EXPECT().Focus(99).Return(domain.ErrUnknownEntry)

	rec := s.do(http.MethodPost, "/feed/focus/99", "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerTestSuite) TestFocus_ActiveIndexAgain() {
	s.gestures.EXPECT().Gesture().Times(2)
	s.feed.EXPECT().Focus(0).Return(nil).Times(2)
	s.feed.EXPECT().Snapshot().Return(feed.View{State: feed.State{ActiveIndex: 0}}).Times(2)

	s.Equal(http.StatusOK, s.do(http.MethodPost, "/feed/focus/0", "").Code)
	rec := s.do(http.MethodPost, "/feed/focus/0", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp feedResponse
	s.decode(rec, &resp)
	s.Equal(0, resp.ActiveIndex)
}

func (s *HandlerTestSuite) TestFocus_Closed() {
	s.gestures.EXPECT().Gesture()
	s.feed.EXPECT().Focus(1).Return(feed.ErrClosed)

	rec := s.do(http.MethodPost, "/feed/focus/1", "")
	s.Equal(http.StatusServiceUnavailable, rec.Code)
}

func (s *HandlerTestSuite) TestFocus_InvalidIndex() {
	s.gestures.EXPECT().Gesture()

	rec := s.do(http.MethodPost, "/feed/focus/abc", "")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("invalid index", s.errorOf(rec))
}

func (s *HandlerTestSuite) TestToggleMute() {
	s.gestures.EXPECT().Gesture()
	s.feed.EXPECT().ToggleMute().Return(false)

	rec := s.do(http.MethodPost, "/feed/mute", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp map[string]bool
	s.decode(rec, &resp)
	s.False(resp["muted"])
}

func (s *HandlerTestSuite) TestGetSession() {
	s.feed.EXPECT().Session(int64(42)).Return(sessionView(42), nil)

	rec := s.do(http.MethodGet, "/feed/sessions/42", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp sessionResponse
	s.decode(rec, &resp)
	s.Equal(int64(42), resp.ItemID)
	s.Equal(1, resp.CurrentImage)
	s.Require().NotNil(resp.Caption)
	s.Equal("caption", resp.Caption.Text)
	s.Equal("top", resp.Caption.Position)
	s.Require().Len(resp.Tracks, 1)
	s.Equal("voiceover", resp.Tracks[0].Kind)
	s.Empty(resp.Comments)
}

func (s *HandlerTestSuite) TestGetSession_Unknown() {
	s.feed.EXPECT().Session(int64(7)).Return(feed.SessionView{}, domain.ErrUnknownEntry)

	rec := s.do(http.MethodGet, "/feed/sessions/7", "")
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(domain.ErrUnknownEntry.Error(), s.errorOf(rec))
}

func (s *HandlerTestSuite) TestGetSession_InvalidID() {
	rec := s.do(http.MethodGet, "/feed/sessions/x", "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestSwipe() {
	s.gestures.EXPECT().Gesture()
	gomock.InOrder(
		s.feed.EXPECT().Swipe(int64(42), 2).Return(nil),
		s.feed.EXPECT().Session(int64(42)).Return(sessionView(42), nil),
	)

	rec := s.do(http.MethodPost, "/feed/sessions/42/swipe/2", "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestTouch_InactiveEntry() {
	s.gestures.EXPECT().Gesture()
	s.feed.EXPECT().Touch(int64(5)).Return(domain.ErrInactiveEntry)

	rec := s.do(http.MethodPost, "/feed/sessions/5/touch", "")
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *HandlerTestSuite) TestDescription() {
	s.gestures.EXPECT().Gesture().Times(2)
	s.feed.EXPECT().OpenDescription(int64(42)).Return(nil)
	s.feed.EXPECT().CloseDescription(int64(42)).Return(nil)
	s.feed.EXPECT().Session(int64(42)).Return(sessionView(42), nil).Times(2)

	s.Equal(http.StatusOK, s.do(http.MethodPost, "/feed/sessions/42/description", "").Code)
	s.Equal(http.StatusOK, s.do(http.MethodDelete, "/feed/sessions/42/description", "").Code)
}

func (s *HandlerTestSuite) TestComments_OpenAndClose() {
	s.gestures.EXPECT().Gesture().Times(2)
	s.feed.EXPECT().OpenComments(int64(42)).Return(nil)
	s.feed.EXPECT().CloseComments(int64(42)).Return(nil)
	view := sessionView(42)
	view.CommentsOpen = true
	view.CommentsLoading = true
	s.feed.EXPECT().Session(int64(42)).Return(view, nil).Times(2)

	rec := s.do(http.MethodPost, "/feed/sessions/42/comments", "")
	s.Require().Equal(http.StatusAccepted, rec.Code)
	var resp sessionResponse
	s.decode(rec, &resp)
	s.True(resp.CommentsLoading)

	s.Equal(http.StatusOK, s.do(http.MethodDelete, "/feed/sessions/42/comments", "").Code)
}

func (s *HandlerTestSuite) TestPostComment() {
	s.gestures.EXPECT().Gesture()
	s.feed.EXPECT().PostComment(int64(42), "  nice  ").Return(nil)
	s.feed.EXPECT().Session(int64(42)).Return(sessionView(42), nil)

	rec := s.do(http.MethodPost, "/feed/sessions/42/comments/new", `{"body":"  nice  "}`)
	s.Equal(http.StatusAccepted, rec.Code)
}

func (s *HandlerTestSuite) TestPostComment_ErrorMapping() {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrNotAuthenticated, http.StatusUnauthorized},
		{domain.ErrEmptyComment, http.StatusBadRequest},
		{domain.ErrInactiveEntry, http.StatusConflict},
		{domain.ErrUnknownEntry, http.StatusNotFound},
		{feed.ErrClosed, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		s.Run(tc.err.Error(), func() {
			s.gestures.EXPECT().Gesture()
			s.feed.EXPECT().PostComment(int64(42), "x").Return(tc.err)

			rec := s.do(http.MethodPost, "/feed/sessions/42/comments/new", `{"body":"x"}`)
			s.Equal(tc.code, rec.Code)
			s.Equal(tc.err.Error(), s.errorOf(rec))
		})
	}
}

func (s *HandlerTestSuite) TestPostComment_InvalidBody() {
	s.gestures.EXPECT().Gesture()

	rec := s.do(http.MethodPost, "/feed/sessions/42/comments/new", `{`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestDeleteComment() {
	s.gestures.EXPECT().Gesture().Times(2)
	s.feed.EXPECT().DeleteComment(int64(42), "c1").Return(nil)
	s.feed.EXPECT().Session(int64(42)).Return(sessionView(42), nil)
	s.feed.EXPECT().DeleteComment(int64(42), "c2").Return(domain.ErrNotCommentAuthor)

	s.Equal(http.StatusAccepted, s.do(http.MethodDelete, "/feed/sessions/42/comments/c1", "").Code)
	s.Equal(http.StatusForbidden, s.do(http.MethodDelete, "/feed/sessions/42/comments/c2", "").Code)
}

func (s *HandlerTestSuite) TestDeleteComment_Unknown() {
	s.gestures.EXPECT().Gesture()
	s.feed.EXPECT().DeleteComment(int64(42), "nope").Return(domain.ErrUnknownComment)

	rec := s.do(http.MethodDelete, "/feed/sessions/42/comments/nope", "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerTestSuite) TestGetLikes() {
	s.likes.EXPECT().Refresh(gomock.Any(), int64(42)).Return(nil)
	s.likes.EXPECT().State(int64(42)).Return(engagement.LikeState{Count: 3, Liked: true})

	rec := s.do(http.MethodGet, "/feed/sessions/42/likes", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp likeResponse
	s.decode(rec, &resp)
	s.Equal(3, resp.Count)
	s.True(resp.Liked)
}

func (s *HandlerTestSuite) TestGetLikes_RefreshFailureServesCache() {
	s.likes.EXPECT().Refresh(gomock.Any(), int64(42)).Return(errors.New("unavailable"))
	s.likes.EXPECT().State(int64(42)).Return(engagement.LikeState{Count: 1})

	rec := s.do(http.MethodGet, "/feed/sessions/42/likes", "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestToggleLike() {
	s.gestures.EXPECT().Gesture()
	s.feed.EXPECT().ToggleLike(int64(42)).Return(nil)
	s.likes.EXPECT().State(int64(42)).Return(engagement.LikeState{Count: 3, Processing: true})

	rec := s.do(http.MethodPost, "/feed/sessions/42/like", "")
	s.Require().Equal(http.StatusAccepted, rec.Code)

	var resp likeResponse
	s.decode(rec, &resp)
	s.True(resp.Processing)
}

func (s *HandlerTestSuite) TestToggleLike_OwnListing() {
	s.gestures.EXPECT().Gesture()
	s.feed.EXPECT().ToggleLike(int64(42)).Return(domain.ErrOwnListing)

	rec := s.do(http.MethodPost, "/feed/sessions/42/like", "")
	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *HandlerTestSuite) TestLogin() {
	name := "alice"
	s.gestures.EXPECT().Gesture()
	gomock.InOrder(
		s.auth.EXPECT().Login(gomock.Any(), "tok").Return(nil),
		s.likes.EXPECT().Reset(),
		s.auth.EXPECT().Current().Return(domain.User{ID: 9, Username: &name}, true),
	)

	rec := s.do(http.MethodPost, "/auth/login", `{"token":" tok "}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp userResponse
	s.decode(rec, &resp)
	s.Equal(int64(9), resp.ID)
	s.Equal("alice", *resp.Username)
}

func (s *HandlerTestSuite) TestLogin_Rejected() {
	s.gestures.EXPECT().Gesture()
	s.auth.EXPECT().Login(gomock.Any(), "bad").Return(errors.New("401"))

	rec := s.do(http.MethodPost, "/auth/login", `{"token":"bad"}`)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *HandlerTestSuite) TestLogin_MissingToken() {
	s.gestures.EXPECT().Gesture()

	rec := s.do(http.MethodPost, "/auth/login", `{"token":"   "}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestLogout() {
	s.gestures.EXPECT().Gesture()
	s.auth.EXPECT().Logout()
	s.likes.EXPECT().Reset()

	rec := s.do(http.MethodPost, "/auth/logout", "")
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *HandlerTestSuite) TestMe_Anonymous() {
	s.auth.EXPECT().Current().Return(domain.User{}, false)

	rec := s.do(http.MethodGet, "/auth/me", "")
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *HandlerTestSuite) TestSummary() {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.summaries.EXPECT().Summary(gomock.Any(), "v1").Return(&service.ViewerSummary{
		State:       domain.ViewState{ViewerID: "v1", LastItemID: 42, TotalViews: 5, LastViewedAt: at},
		Impressions: 5,
	}, nil)

	rec := s.do(http.MethodGet, "/viewers/v1/summary", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp summaryResponse
	s.decode(rec, &resp)
	s.Equal(int64(42), resp.LastItemID)
	s.Equal(int64(5), resp.Impressions)
	s.Require().NotNil(resp.LastViewedAt)
	s.True(at.Equal(*resp.LastViewedAt))
}

func (s *HandlerTestSuite) TestSummary_Error() {
	s.summaries.EXPECT().Summary(gomock.Any(), "v1").Return(nil, errors.New("db down"))

	rec := s.do(http.MethodGet, "/viewers/v1/summary", "")
	s.Equal(http.StatusInternalServerError, rec.Code)
}

func TestRouter_WithoutSummaries(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewHandler(mocks.NewMockFeed(ctrl), mocks.NewMockLikeStates(ctrl), mocks.NewMockAuth(ctrl), logger).Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/viewers/v1/summary", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
