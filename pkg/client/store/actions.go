package store

import (
	"context"
	"errors"

	"devconnect/pkg/client"
)

// Actions are the asynchronous action creators: each one runs an API call
// and folds the outcome into the store. Token persistence is a side effect
// colocated here, next to the transitions that need it; the reducers stay pure.
type Actions struct {
	Client *client.Client
	Store  *Store
}

// NewActions wires action creators to a client and a store.
func NewActions(c *client.Client, s *Store) *Actions {
	return &Actions{Client: c, Store: s}
}

// Register attempts registration. On success the token is persisted and the
// state becomes authenticated; on failure every server-reported message
// becomes one transient alert and the attempt is marked failed.
func (a *Actions) Register(ctx context.Context, name, email, password string) error {
	token, err := a.Client.Register(ctx, name, email, password)
	if err != nil {
		a.dispatchFailure(err)
		a.Store.Dispatch(RegisterFail{})
		_ = a.Client.Sessions.Clear()
		return err
	}
	if err := a.Client.Sessions.Save(token); err != nil {
		return err
	}
	a.Store.Dispatch(RegisterSuccess{Token: token})
	return nil
}

// Login attempts authentication with the same success/failure folding.
func (a *Actions) Login(ctx context.Context, email, password string) error {
	token, err := a.Client.Login(ctx, email, password)
	if err != nil {
		a.dispatchFailure(err)
		a.Store.Dispatch(LoginFail{})
		_ = a.Client.Sessions.Clear()
		return err
	}
	if err := a.Client.Sessions.Save(token); err != nil {
		return err
	}
	a.Store.Dispatch(LoginSuccess{Token: token})
	return nil
}

// LoadUser resolves the stored session into an identity.
func (a *Actions) LoadUser(ctx context.Context) error {
	user, err := a.Client.CurrentUser(ctx)
	if err != nil {
		a.Store.Dispatch(AuthError{})
		return err
	}
	a.Store.Dispatch(UserLoaded{User: user})
	return nil
}

func (a *Actions) dispatchFailure(err error) {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		for _, msg := range apiErr.Messages {
			a.Store.Dispatch(SetAlert{Alert: NewAlert(msg)})
		}
	}
}
