// Package client talks to the idea board API the way the browser front end does:
// cookie session, JSON bodies and the {success, error} envelope.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"ideaboard/model"
)

const bodyReadLimit = 1 << 20

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("invalid username or password")
	ErrForbidden    = errors.New("not allowed")
	ErrConflict     = errors.New("conflict")
)

// APIError is a failure envelope the server answered with.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusConflict:
		return ErrConflict
	}
	return nil
}

type Client struct {
	// BaseURL is the API root, e.g. http://localhost:8080/api.
	BaseURL string
	// HTTPClient must carry a cookie jar for the session to stick. New sets one up.
	HTTPClient *http.Client
	// Token, when set, is sent as a bearer token. Login fills it in.
	Token string
}

func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{Jar: jar, Timeout: 30 * time.Second},
	}, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// do sends in as JSON (when non-nil) and decodes the response into out.
func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, bodyReadLimit))
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var env envelope
		_ = json.Unmarshal(data, &env)
		if env.Error == "" {
			env.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: env.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates the account and leaves the client logged in.
func (c *Client) Register(ctx context.Context, username, password string) error {
	return c.do(ctx, http.MethodPost, "/register", credentials{username, password}, nil)
}

// Login starts a session and keeps the returned bearer token.
func (c *Client) Login(ctx context.Context, username, password string) error {
	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/login", credentials{username, password}, &out); err != nil {
		return err
	}
	c.Token = out.Token
	return nil
}

func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/logout", nil, nil)
	c.Token = ""
	return err
}

// Session reports the logged-in user, or nil.
func (c *Client) Session(ctx context.Context) (*model.SessionUser, error) {
	var out struct {
		LoggedIn bool               `json:"loggedIn"`
		User     *model.SessionUser `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/session", nil, &out); err != nil {
		return nil, err
	}
	if !out.LoggedIn {
		return nil, nil
	}
	return out.User, nil
}

// CreateBoard opens a new board moderated by the caller and returns its code.
func (c *Client) CreateBoard(ctx context.Context) (string, error) {
	var out struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/board", nil, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (c *Client) GetBoard(ctx context.Context, code string) (*model.Board, error) {
	var out struct {
		Board *model.Board `json:"board"`
	}
	if err := c.do(ctx, http.MethodGet, "/board/"+url.PathEscape(code), nil, &out); err != nil {
		return nil, err
	}
	return out.Board, nil
}

func (c *Client) BoardIdeas(ctx context.Context, code string) ([]*model.Idea, error) {
	var out struct {
		Ideas []*model.Idea `json:"ideas"`
	}
	if err := c.do(ctx, http.MethodGet, "/board/"+url.PathEscape(code)+"/ideas", nil, &out); err != nil {
		return nil, err
	}
	return out.Ideas, nil
}

func (c *Client) AddIdea(ctx context.Context, code, content string) (*model.Idea, error) {
	var out struct {
		Idea *model.Idea `json:"idea"`
	}
	in := map[string]string{"content": content}
	if err := c.do(ctx, http.MethodPost, "/board/"+url.PathEscape(code)+"/ideas", in, &out); err != nil {
		return nil, err
	}
	return out.Idea, nil
}

func (c *Client) SavedBoards(ctx context.Context) ([]string, error) {
	var out struct {
		Boards []string `json:"boards"`
	}
	if err := c.do(ctx, http.MethodGet, "/boards", nil, &out); err != nil {
		return nil, err
	}
	return out.Boards, nil
}

func (c *Client) SaveBoard(ctx context.Context, code string) error {
	return c.do(ctx, http.MethodPut, "/boards", map[string]string{"boardId": code}, nil)
}

func (c *Client) UnsaveBoard(ctx context.Context, code string) error {
	return c.do(ctx, http.MethodDelete, "/boards/"+url.PathEscape(code), nil, nil)
}
