package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClient_Repos(t *testing.T) {
	var gotPath, gotQuery, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"name":"repo-one"},{"name":"repo-two"}]`))
	}))
	defer srv.Close()

	client := NewClient("gh-token")
	client.BaseURL = srv.URL

	repos, err := client.Repos(context.Background(), "octocat")
	assert.NoError(t, err)
	assert.JSONEq(t, `[{"name":"repo-one"},{"name":"repo-two"}]`, string(repos))
	assert.Equal(t, "/users/octocat/repos", gotPath)
	assert.Equal(t, "per_page=5&sort=created", gotQuery)
	assert.Equal(t, "token gh-token", gotAuth)
}

func TestClient_Repos_NoTokenHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient("")
	client.BaseURL = srv.URL

	_, err := client.Repos(context.Background(), "octocat")
	assert.NoError(t, err)
}

func TestClient_Repos_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient("gh-token")
	client.BaseURL = srv.URL

	_, err := client.Repos(context.Background(), "octocat")
	assert.Error(t, err)
}
