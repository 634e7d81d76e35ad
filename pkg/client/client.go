// Package client is the Go SDK for the devconnect API. Authentication state
// lives in an explicit SessionStore rather than ambient global storage.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client talks to a devconnect server.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Sessions   SessionStore
}

// New builds a client for the given server.
func New(baseURL string, sessions SessionStore) *Client {
	return &Client{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
		Sessions:   sessions,
	}
}

// APIError carries the server-reported messages for a failed call.
type APIError struct {
	StatusCode int
	Messages   []string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, strings.Join(e.Messages, "; "))
}

// User mirrors the identity record returned by the API.
type User struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Avatar string    `json:"avatar"`
	Date   time.Time `json:"date"`
}

// UserRef is the joined name/avatar projection on profiles.
type UserRef struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Profile mirrors the profile document.
type Profile struct {
	ID             string            `json:"id"`
	User           UserRef           `json:"user"`
	Company        string            `json:"company"`
	Website        string            `json:"website"`
	Location       string            `json:"location"`
	Status         string            `json:"status"`
	Skills         []string          `json:"skills"`
	Bio            string            `json:"bio"`
	GithubUsername string            `json:"githubusername"`
	Social         map[string]string `json:"social"`
	Date           time.Time         `json:"date"`
}

// Like mirrors one like entry.
type Like struct {
	ID   string `json:"id"`
	User string `json:"user"`
}

// Comment mirrors one comment entry.
type Comment struct {
	ID     string    `json:"id"`
	User   string    `json:"user"`
	Text   string    `json:"text"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
	Date   time.Time `json:"date"`
}

// Post mirrors a feed entry.
type Post struct {
	ID       string    `json:"id"`
	User     string    `json:"user"`
	Text     string    `json:"text"`
	Name     string    `json:"name"`
	Avatar   string    `json:"avatar"`
	Likes    []Like    `json:"likes"`
	Comments []Comment `json:"comments"`
	Date     time.Time `json:"date"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Register creates an account and returns the issued token.
func (c *Client) Register(ctx context.Context, name, email, password string) (string, error) {
	var out tokenResponse
	err := c.do(ctx, http.MethodPost, "/api/users", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, false, &out)
	return out.Token, err
}

// Login authenticates and returns the issued token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out tokenResponse
	err := c.do(ctx, http.MethodPost, "/api/auth", map[string]string{
		"email":    email,
		"password": password,
	}, false, &out)
	return out.Token, err
}

// CurrentUser returns the identity behind the stored session.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodGet, "/api/auth", nil, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Profiles lists every profile.
func (c *Client) Profiles(ctx context.Context) ([]Profile, error) {
	var out []Profile
	err := c.do(ctx, http.MethodGet, "/api/profile", nil, false, &out)
	return out, err
}

// Feed lists all posts, newest first.
func (c *Client) Feed(ctx context.Context) ([]Post, error) {
	var out []Post
	err := c.do(ctx, http.MethodGet, "/api/posts", nil, true, &out)
	return out, err
}

// CreatePost publishes a post.
func (c *Client) CreatePost(ctx context.Context, text string) (*Post, error) {
	var out Post
	if err := c.do(ctx, http.MethodPost, "/api/posts", map[string]string{"text": text}, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Like likes a post and returns the updated like list.
func (c *Client) Like(ctx context.Context, postID string) ([]Like, error) {
	var out []Like
	err := c.do(ctx, http.MethodPut, "/api/posts/like/"+postID, nil, true, &out)
	return out, err
}

// Unlike removes the caller's like and returns the updated like list.
func (c *Client) Unlike(ctx context.Context, postID string) ([]Like, error) {
	var out []Like
	err := c.do(ctx, http.MethodPut, "/api/posts/unlike/"+postID, nil, true, &out)
	return out, err
}

// Comment adds a comment and returns the updated comment list.
func (c *Client) Comment(ctx context.Context, postID, text string) ([]Comment, error) {
	var out []Comment
	err := c.do(ctx, http.MethodPost, "/api/posts/comment/"+postID, map[string]string{"text": text}, true, &out)
	return out, err
}

// wireError covers both error shapes the API answers with.
type wireError struct {
	Errors []struct {
		Msg string `json:"msg"`
	} `json:"errors"`
	Msg string `json:"msg"`
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, authed bool, out interface{}) error {
	var payload *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(data)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		token, err := c.Sessions.Load()
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}
		if token != "" {
			req.Header.Set("x-auth-token", token)
		}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var wire wireError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&wire); decodeErr == nil {
			for _, e := range wire.Errors {
				apiErr.Messages = append(apiErr.Messages, e.Msg)
			}
			if wire.Msg != "" {
				apiErr.Messages = append(apiErr.Messages, wire.Msg)
			}
		}
		if len(apiErr.Messages) == 0 {
			apiErr.Messages = []string{http.StatusText(resp.StatusCode)}
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
