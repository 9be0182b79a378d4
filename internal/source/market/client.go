package market

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"shorts_feed/internal/domain"
)

// Config holds marketplace API client configuration.
type Config struct {
	BaseURL        string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// TokenSource supplies the bearer token for authenticated calls. An empty
// token means the request goes out anonymously.
type TokenSource interface {
	Token() string
}

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Method string
	Path   string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status: %d", e.Method, e.Path, e.Code)
}

// IsStatus reports whether err is a StatusError carrying code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}

// Client talks to the marketplace HTTP+JSON API.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	tokens         TokenSource
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// New creates a new marketplace client. tokens may be nil.
func New(cfg Config, tokens TokenSource, logger *slog.Logger) *Client {
	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		tokens:         tokens,
		maxAttempts:    attempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("component", "market"),
	}
}

// SetTokenSource swaps the token source; used when the auth session is built
// on top of this client.
func (c *Client) SetTokenSource(tokens TokenSource) {
	c.tokens = tokens
}

// FetchPage returns up to limit shorts after cursor (exclusive). A nil cursor
// starts from the beginning.
func (c *Client) FetchPage(ctx context.Context, cursor *int64, limit int) ([]domain.FeedEntry, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	if cursor != nil {
		q.Set("cursor", strconv.FormatInt(*cursor, 10))
	}

	var shorts []ShortDTO
	if err := c.get(ctx, "/api/shorts?"+q.Encode(), &shorts); err != nil {
		return nil, fmt.Errorf("fetch shorts: %w", err)
	}

	entries := make([]domain.FeedEntry, 0, len(shorts))
	for _, s := range shorts {
		entries = append(entries, toEntry(s))
	}

	c.logger.Debug("fetched page", "cursor", cursor, "entries", len(entries))
	return entries, nil
}

// MusicURL resolves a background music track id (1..10) to its URL.
func (c *Client) MusicURL(ctx context.Context, trackID int) (string, error) {
	if trackID < 1 || trackID > domain.MusicRotation {
		return "", fmt.Errorf("music track %d out of range", trackID)
	}

	var music MusicDTO
	if err := c.get(ctx, fmt.Sprintf("/api/musics/%d", trackID), &music); err != nil {
		return "", fmt.Errorf("fetch music %d: %w", trackID, err)
	}
	if music.URL == "" {
		return "", fmt.Errorf("music %d has no url", trackID)
	}
	return music.URL, nil
}

// Comments lists the comments of an item. Entries in an unrecognized shape are
// skipped.
func (c *Client) Comments(ctx context.Context, itemID int64) ([]domain.Comment, error) {
	var raw []CommentDTO
	if err := c.get(ctx, fmt.Sprintf("/api/items/%d/comments", itemID), &raw); err != nil {
		return nil, fmt.Errorf("fetch comments: %w", err)
	}

	comments := make([]domain.Comment, 0, len(raw))
	for _, dto := range raw {
		comment, err := toComment(itemID, dto)
		if err != nil {
			c.logger.Warn("skipping comment", "item_id", itemID, "error", err)
			continue
		}
		comments = append(comments, comment)
	}
	return comments, nil
}

func (c *Client) PostComment(ctx context.Context, itemID int64, body string) (domain.Comment, error) {
	var dto CommentDTO
	path := fmt.Sprintf("/api/items/%d/comments", itemID)
	if err := c.send(ctx, http.MethodPost, path, postCommentRequest{Body: body}, &dto); err != nil {
		return domain.Comment{}, fmt.Errorf("post comment: %w", err)
	}

	comment, err := toComment(itemID, dto)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("post comment: %w", err)
	}
	return comment, nil
}

func (c *Client) DeleteComment(ctx context.Context, itemID int64, commentID string) error {
	path := fmt.Sprintf("/api/items/%d/comments/%s", itemID, url.PathEscape(commentID))
	if err := c.send(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}

func (c *Client) LikeCount(ctx context.Context, itemID int64) (int, error) {
	var count int
	if err := c.get(ctx, fmt.Sprintf("/api/items/%d/likes", itemID), &count); err != nil {
		return 0, fmt.Errorf("fetch like count: %w", err)
	}
	return count, nil
}

// MyLikes returns the ids of the items the current user has liked.
func (c *Client) MyLikes(ctx context.Context) ([]int64, error) {
	var likes []LikeDTO
	if err := c.get(ctx, "/api/users/me/likes", &likes); err != nil {
		return nil, fmt.Errorf("fetch my likes: %w", err)
	}

	ids := make([]int64, 0, len(likes))
	for _, l := range likes {
		ids = append(ids, l.ItemID)
	}
	return ids, nil
}

func (c *Client) Like(ctx context.Context, itemID int64) error {
	if err := c.send(ctx, http.MethodPost, fmt.Sprintf("/api/items/%d/like", itemID), nil, nil); err != nil {
		return fmt.Errorf("like item: %w", err)
	}
	return nil
}

func (c *Client) Unlike(ctx context.Context, itemID int64) error {
	if err := c.send(ctx, http.MethodDelete, fmt.Sprintf("/api/items/%d/like", itemID), nil, nil); err != nil {
		return fmt.Errorf("unlike item: %w", err)
	}
	return nil
}

// Me resolves the identity behind the current token.
func (c *Client) Me(ctx context.Context) (domain.User, error) {
	var u UserDTO
	if err := c.get(ctx, "/api/users/me", &u); err != nil {
		return domain.User{}, fmt.Errorf("fetch current user: %w", err)
	}
	return toUser(u), nil
}

// get retries idempotent reads with exponential backoff.
func (c *Client) get(ctx context.Context, path string, out any) error {
	var err error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		err = c.do(ctx, http.MethodGet, path, nil, out)
		if err == nil {
			return nil
		}
		if !retryable(err) || attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"path", path,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}

	if c.maxAttempts > 1 && retryable(err) {
		return fmt.Errorf("after %d attempts: %w", c.maxAttempts, err)
	}
	return err
}

// send performs a single non-idempotent request.
func (c *Client) send(ctx context.Context, method, path string, in, out any) error {
	var body []byte
	if in != nil {
		var err error
		body, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
	}
	return c.do(ctx, method, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "ShortsFeed/1.0")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Method: method, Path: path, Code: resp.StatusCode}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}

// retryable reports whether a failed read may succeed on a later attempt.
func retryable(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code >= 500 || se.Code == http.StatusTooManyRequests
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}
