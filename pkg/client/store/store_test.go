package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"devconnect/pkg/client"
)

func TestReduceAuth(t *testing.T) {
	initial := AuthState{Loading: true}

	t.Run("register success authenticates", func(t *testing.T) {
		next := ReduceAuth(initial, RegisterSuccess{Token: "jwt"})
		assert.Equal(t, "jwt", next.Token)
		assert.NotNil(t, next.Authenticated)
		assert.True(t, *next.Authenticated)
		assert.False(t, next.Loading)
	})

	t.Run("register failure clears the token", func(t *testing.T) {
		next := ReduceAuth(AuthState{Token: "stale"}, RegisterFail{})
		assert.Empty(t, next.Token)
		assert.NotNil(t, next.Authenticated)
		assert.False(t, *next.Authenticated)
	})

	t.Run("fold is pure", func(t *testing.T) {
		before := AuthState{Token: "stale", Loading: true}
		_ = ReduceAuth(before, LoginSuccess{Token: "jwt"})
		assert.Equal(t, AuthState{Token: "stale", Loading: true}, before)
	})
}

func TestReduceAlerts(t *testing.T) {
	a := NewAlert("first")
	b := NewAlert("second")

	alerts := ReduceAlerts(nil, SetAlert{Alert: a})
	alerts = ReduceAlerts(alerts, SetAlert{Alert: b})
	assert.Len(t, alerts, 2)

	alerts = ReduceAlerts(alerts, RemoveAlert{ID: a.ID})
	assert.Len(t, alerts, 1)
	assert.Equal(t, "second", alerts[0].Msg)
}

func TestActions_Register(t *testing.T) {
	t.Run("success persists the token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/users", r.URL.Path)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"token":"issued-jwt"}`))
		}))
		defer srv.Close()

		sessions := &client.MemorySessionStore{}
		actions := NewActions(client.New(srv.URL, sessions), NewStore())

		err := actions.Register(context.Background(), "Jane", "jane@example.com", "password123")
		assert.NoError(t, err)

		auth := actions.Store.Auth()
		assert.Equal(t, "issued-jwt", auth.Token)
		assert.True(t, *auth.Authenticated)

		stored, _ := sessions.Load()
		assert.Equal(t, "issued-jwt", stored)
	})

	t.Run("failure emits one alert per message and clears the session", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"errors":[{"msg":"Name is required"},{"msg":"Please include a valid email"}]}`))
		}))
		defer srv.Close()

		sessions := &client.MemorySessionStore{}
		_ = sessions.Save("stale-token")
		actions := NewActions(client.New(srv.URL, sessions), NewStore())

		err := actions.Register(context.Background(), "", "bad", "password123")
		assert.Error(t, err)

		alerts := actions.Store.Alerts()
		assert.Len(t, alerts, 2)
		assert.Equal(t, "Name is required", alerts[0].Msg)
		assert.Equal(t, "Please include a valid email", alerts[1].Msg)

		auth := actions.Store.Auth()
		assert.False(t, *auth.Authenticated)
		stored, _ := sessions.Load()
		assert.Empty(t, stored)
	})
}

func TestActions_LoadUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "session-jwt", r.Header.Get("x-auth-token"))
		w.Write([]byte(`{"id":"u1","name":"Jane","email":"jane@example.com"}`))
	}))
	defer srv.Close()

	sessions := &client.MemorySessionStore{}
	_ = sessions.Save("session-jwt")
	actions := NewActions(client.New(srv.URL, sessions), NewStore())

	err := actions.LoadUser(context.Background())
	assert.NoError(t, err)

	auth := actions.Store.Auth()
	assert.True(t, *auth.Authenticated)
	user, ok := auth.User.(*client.User)
	assert.True(t, ok)
	assert.Equal(t, "Jane", user.Name)
}
