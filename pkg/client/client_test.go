package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClient_Like_MsgErrorShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/posts/like/p1", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"msg":"You cant like the post more than once"}`))
	}))
	defer srv.Close()

	sessions := &MemorySessionStore{}
	_ = sessions.Save("jwt")
	c := New(srv.URL, sessions)

	_, err := c.Like(context.Background(), "p1")
	apiErr, ok := err.(*APIError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, []string{"You cant like the post more than once"}, apiErr.Messages)
}

func TestClient_CreatePost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "jwt", r.Header.Get("x-auth-token"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"p1","text":"hello","user":"u1","likes":[],"comments":[]}`))
	}))
	defer srv.Close()

	sessions := &MemorySessionStore{}
	_ = sessions.Save("jwt")
	c := New(srv.URL, sessions)

	post, err := c.CreatePost(context.Background(), "hello")
	assert.NoError(t, err)
	assert.Equal(t, "hello", post.Text)
	assert.Empty(t, post.Likes)
}

func TestFileSessionStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session")
	s := NewFileSessionStore(path)

	token, err := s.Load()
	assert.NoError(t, err)
	assert.Empty(t, token)

	assert.NoError(t, s.Save("jwt-token"))
	token, err = s.Load()
	assert.NoError(t, err)
	assert.Equal(t, "jwt-token", token)

	assert.NoError(t, s.Clear())
	assert.NoError(t, s.Clear()) // already gone
	token, _ = s.Load()
	assert.Empty(t, token)
}
