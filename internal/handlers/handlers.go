package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"shorts_feed/internal/domain"
	"shorts_feed/internal/feed"
)

type Handler struct {
	feed      Feed
	likes     LikeStates
	auth      Auth
	gestures  Gesturer
	summaries Summaries
	logger    *slog.Logger
}

func NewHandler(feed Feed, likes LikeStates, auth Auth, logger *slog.Logger) *Handler {
	return &Handler{
		feed:   feed,
		likes:  likes,
		auth:   auth,
		logger: logger.With("component", "http"),
	}
}

// WithGestures makes every mutating request count as a user gesture.
func (h *Handler) WithGestures(g Gesturer) *Handler {
	h.gestures = g
	return h
}

// WithSummaries enables the viewer summary route.
func (h *Handler) WithSummaries(s Summaries) *Handler {
	h.summaries = s
	return h
}

func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.loggingMiddleware)
	r.Use(h.gestureMiddleware)

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	r.HandleFunc("/feed", h.GetFeed).Methods(http.MethodGet)
	r.HandleFunc("/feed/more", h.LoadMore).Methods(http.MethodPost)
	r.HandleFunc("/feed/focus/{index}", h.Focus).Methods(http.MethodPost)
	r.HandleFunc("/feed/mute", h.ToggleMute).Methods(http.MethodPost)

	r.HandleFunc("/feed/sessions/{itemID}", h.GetSession).Methods(http.MethodGet)
	s := r.PathPrefix("/feed/sessions/{itemID}").Subrouter()
	s.HandleFunc("/swipe/{image}", h.Swipe).Methods(http.MethodPost)
	s.HandleFunc("/touch", h.Touch).Methods(http.MethodPost)
	s.HandleFunc("/description", h.OpenDescription).Methods(http.MethodPost)
	s.HandleFunc("/description", h.CloseDescription).Methods(http.MethodDelete)
	s.HandleFunc("/comments", h.OpenComments).Methods(http.MethodPost)
	s.HandleFunc("/comments", h.CloseComments).Methods(http.MethodDelete)
	s.HandleFunc("/comments/new", h.PostComment).Methods(http.MethodPost)
	s.HandleFunc("/comments/{commentID}", h.DeleteComment).Methods(http.MethodDelete)
	s.HandleFunc("/likes", h.GetLikes).Methods(http.MethodGet)
	s.HandleFunc("/like", h.ToggleLike).Methods(http.MethodPost)

	r.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)
	r.HandleFunc("/auth/logout", h.Logout).Methods(http.MethodPost)
	r.HandleFunc("/auth/me", h.Me).Methods(http.MethodGet)

	if h.summaries != nil {
		r.HandleFunc("/viewers/{viewerID}/summary", h.Summary).Methods(http.MethodGet)
	}
	return r
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetFeed(w http.ResponseWriter, r *http.Request) {
	h.respondWithJSON(w, http.StatusOK, newFeedResponse(h.feed.Snapshot()))
}

func (h *Handler) LoadMore(w http.ResponseWriter, r *http.Request) {
	h.feed.LoadMore()
	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) Focus(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		h.respondWithError(w, http.StatusBadRequest, "invalid index")
		return
	}
	if err := h.feed.Focus(index); err != nil {
		h.respondWithFeedError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, newFeedResponse(h.feed.Snapshot()))
}

func (h *Handler) ToggleMute(w http.ResponseWriter, r *http.Request) {
	h.respondWithJSON(w, http.StatusOK, map[string]bool{"muted": h.feed.ToggleMute()})
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	itemID, ok := h.itemID(w, r)
	if !ok {
		return
	}
	h.respondWithSession(w, itemID, http.StatusOK)
}

func (h *Handler) Swipe(w http.ResponseWriter, r *http.Request) {
	itemID, ok := h.itemID(w, r)
	if !ok {
		return
	}
	image, err := strconv.Atoi(mux.Vars(r)["image"])
	if err != nil {
		h.respondWithError(w, http.StatusBadRequest, "invalid image index")
		return
	}
	h.sessionAction(w, itemID, http.StatusOK, h.feed.Swipe(itemID, image))
}

func (h *Handler) Touch(w http.ResponseWriter, r *http.Request) {
	if itemID, ok := h.itemID(w, r); ok {
		h.sessionAction(w, itemID, http.StatusOK, h.feed.Touch(itemID))
	}
}

func (h *Handler) OpenDescription(w http.ResponseWriter, r *http.Request) {
	if itemID, ok := h.itemID(w, r); ok {
		h.sessionAction(w, itemID, http.StatusOK, h.feed.OpenDescription(itemID))
	}
}

func (h *Handler) CloseDescription(w http.ResponseWriter, r *http.Request) {
	if itemID, ok := h.itemID(w, r); ok {
		h.sessionAction(w, itemID, http.StatusOK, h.feed.CloseDescription(itemID))
	}
}

func (h *Handler) OpenComments(w http.ResponseWriter, r *http.Request) {
	if itemID, ok := h.itemID(w, r); ok {
		h.sessionAction(w, itemID, http.StatusAccepted, h.feed.OpenComments(itemID))
	}
}

func (h *Handler) CloseComments(w http.ResponseWriter, r *http.Request) {
	if itemID, ok := h.itemID(w, r); ok {
		h.sessionAction(w, itemID, http.StatusOK, h.feed.CloseComments(itemID))
	}
}

type postCommentRequest struct {
	Body string `json:"body"`
}

func (h *Handler) PostComment(w http.ResponseWriter, r *http.Request) {
	itemID, ok := h.itemID(w, r)
	if !ok {
		return
	}
	var req postCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, http.StatusBadRequest, "invalid input")
		return
	}
	h.sessionAction(w, itemID, http.StatusAccepted, h.feed.PostComment(itemID, req.Body))
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	itemID, ok := h.itemID(w, r)
	if !ok {
		return
	}
	commentID := mux.Vars(r)["commentID"]
	h.sessionAction(w, itemID, http.StatusAccepted, h.feed.DeleteComment(itemID, commentID))
}

func (h *Handler) GetLikes(w http.ResponseWriter, r *http.Request) {
	itemID, ok := h.itemID(w, r)
	if !ok {
		return
	}
	if err := h.likes.Refresh(r.Context(), itemID); err != nil {
		// The cached state is still served.
		h.logger.Warn("failed to refresh likes", "item_id", itemID, "error", err)
	}
	h.respondWithJSON(w, http.StatusOK, newLikeResponse(itemID, h.likes.State(itemID)))
}

func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	itemID, ok := h.itemID(w, r)
	if !ok {
		return
	}
	if err := h.feed.ToggleLike(itemID); err != nil {
		h.respondWithFeedError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusAccepted, newLikeResponse(itemID, h.likes.State(itemID)))
}

type loginRequest struct {
	Token string `json:"token"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, http.StatusBadRequest, "invalid input")
		return
	}
	token := strings.TrimSpace(req.Token)
	if token == "" {
		h.respondWithError(w, http.StatusBadRequest, "token is required")
		return
	}
	if err := h.auth.Login(r.Context(), token); err != nil {
		h.logger.Warn("login failed", "error", err)
		h.respondWithError(w, http.StatusUnauthorized, "invalid token")
		return
	}
	h.likes.Reset()
	h.Me(w, r)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.auth.Logout()
	h.likes.Reset()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := h.auth.Current()
	if !ok {
		h.respondWithError(w, http.StatusUnauthorized, domain.ErrNotAuthenticated.Error())
		return
	}
	h.respondWithJSON(w, http.StatusOK, newUserResponse(user))
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	viewerID := mux.Vars(r)["viewerID"]
	summary, err := h.summaries.Summary(r.Context(), viewerID)
	if err != nil {
		h.logger.Error("failed to load summary", "viewer_id", viewerID, "error", err)
		h.respondWithError(w, http.StatusInternalServerError, "failed to load summary")
		return
	}
	h.respondWithJSON(w, http.StatusOK, newSummaryResponse(summary))
}

func (h *Handler) itemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["itemID"], 10, 64)
	if err != nil {
		h.respondWithError(w, http.StatusBadRequest, "invalid item id")
		return 0, false
	}
	return id, true
}

// sessionAction reports err, or the session after a successful action.
func (h *Handler) sessionAction(w http.ResponseWriter, itemID int64, code int, err error) {
	if err != nil {
		h.respondWithFeedError(w, err)
		return
	}
	h.respondWithSession(w, itemID, code)
}

func (h *Handler) respondWithSession(w http.ResponseWriter, itemID int64, code int) {
	v, err := h.feed.Session(itemID)
	if err != nil {
		h.respondWithFeedError(w, err)
		return
	}
	h.respondWithJSON(w, code, newSessionResponse(v))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrOwnListing), errors.Is(err, domain.ErrNotCommentAuthor):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrEmptyComment):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnknownEntry), errors.Is(err, domain.ErrUnknownComment):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInactiveEntry):
		return http.StatusConflict
	case errors.Is(err, feed.ErrClosed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) respondWithFeedError(w http.ResponseWriter, err error) {
	h.respondWithError(w, statusFor(err), err.Error())
}

func (h *Handler) respondWithJSON(w http.ResponseWriter, code int, payload any) {
	dat, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("failed to marshal response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(dat)
}

func (h *Handler) respondWithError(w http.ResponseWriter, code int, msg string) {
	if code > 499 {
		h.logger.Error("server error", "error", msg)
	}
	h.respondWithJSON(w, code, map[string]string{"error": msg})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (h *Handler) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		h.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

func (h *Handler) gestureMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.gestures != nil && r.Method != http.MethodGet {
			h.gestures.Gesture()
		}
		next.ServeHTTP(w, r)
	})
}
