// Package api is the outbound HTTP gateway to the game server. It issues the
// requests, translates failures into the error taxonomy, and tags every
// request with a sequence number so call sites can drop stale responses.
// Nothing here ever reaches into the Session; callers turn results into
// dispatched actions.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	userIDHeader     = "X-User-Id"
	requestIDHeader  = "X-Request-Id"
	requestSeqHeader = "X-Request-Seq"
)

type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
	seq     atomic.Uint64
}

func New(baseURL string, log *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		log:     log,
	}
}

// NextSeq reserves a sequence number for a logical operation. A response
// carrying a seq below LatestSeq was superseded by a newer request and
// should be dropped by the caller.
func (c *Client) NextSeq() uint64 {
	return c.seq.Add(1)
}

func (c *Client) LatestSeq() uint64 {
	return c.seq.Load()
}

func (c *Client) Stale(seq uint64) bool {
	return seq < c.seq.Load()
}

type JoinRequest struct {
	Name      string `json:"name"`
	Avatar    string `json:"avatar"`
	Birthdate string `json:"birthdate"`
}

type JoinResponse struct {
	Room    string         `json:"room"`
	Players []JoinedPlayer `json:"players"`
}

type JoinedPlayer struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type StartResponse struct {
	Turn    int            `json:"turn"`
	Game    string         `json:"game"`
	Players []JoinedPlayer `json:"players"`
}

type DetectiveActionRequest struct {
	ActionID string `json:"action_id,omitempty"`
	SetType  string `json:"set_type"`
	Target   int    `json:"target,omitempty"`
	SecretID int    `json:"secret_id,omitempty"`
}

type AnotherVictimRequest struct {
	ActionID string `json:"action_id"`
	CardID   int    `json:"card_id"`
}

func (c *Client) JoinRoom(ctx context.Context, roomID string, req JoinRequest) (*JoinResponse, error) {
	var out JoinResponse
	if err := c.post(ctx, fmt.Sprintf("/game/%s/join", roomID), 0, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) StartGame(ctx context.Context, roomID string, userID int) (*StartResponse, error) {
	body := map[string]int{"user_id": userID}
	var out StartResponse
	if err := c.post(ctx, fmt.Sprintf("/game/%s/start", roomID), 0, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DiscardCards carries the user identity in a header, per the server
// contract for discard.
func (c *Client) DiscardCards(ctx context.Context, roomID string, userID int, cardIDs []int) error {
	body := map[string][]int{"card_ids": cardIDs}
	return c.post(ctx, fmt.Sprintf("/game/%s/discard", roomID), userID, body, nil)
}

func (c *Client) TakeDeck(ctx context.Context, roomID string) error {
	return c.post(ctx, fmt.Sprintf("/game/%s/take-deck", roomID), 0, nil, nil)
}

func (c *Client) FinishTurn(ctx context.Context, roomID string, userID int) error {
	body := map[string]int{"user_id": userID}
	return c.post(ctx, fmt.Sprintf("/game/%s/finish-turn", roomID), 0, body, nil)
}

func (c *Client) PickDraftCard(ctx context.Context, gameID string, cardID int) error {
	body := map[string]int{"card_id": cardID}
	return c.post(ctx, fmt.Sprintf("/game/%s/draft/pick", gameID), 0, body, nil)
}

func (c *Client) DetectiveAction(ctx context.Context, roomID string, req DetectiveActionRequest) error {
	return c.post(ctx, fmt.Sprintf("/api/game/%s/detective-action", roomID), 0, req, nil)
}

func (c *Client) AnotherVictim(ctx context.Context, roomID string, req AnotherVictimRequest) error {
	return c.post(ctx, fmt.Sprintf("/api/game/%s/event/another-victim", roomID), 0, req, nil)
}

func (c *Client) SelectAshesCard(ctx context.Context, roomID string, cardID int) error {
	body := map[string]int{"card_id": cardID}
	return c.post(ctx, fmt.Sprintf("/api/game/%s/look-into-ashes/select", roomID), 0, body, nil)
}

func (c *Client) post(ctx context.Context, path string, userID int, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())
	req.Header.Set(requestSeqHeader, strconv.FormatUint(c.NextSeq(), 10))
	if userID != 0 {
		req.Header.Set(userIDHeader, strconv.Itoa(userID))
	}

	c.log.Debug("request", zap.String("path", path))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := newError(resp.StatusCode, respBody)
		c.log.Warn("request failed",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message))
		return apiErr
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
