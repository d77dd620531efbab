package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/dmitrijs2005/bankfront/internal/client/api"
)

// ErrUnsuccessful is returned when the API answers 2xx with success=false.
var ErrUnsuccessful = errors.New("unsuccessful response")

// Requester is the transport the services use. *api.Client implements it.
type Requester interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Put(ctx context.Context, path string, body, out any) error
}

// get fetches path and returns the envelope's data. A missing data field
// yields the zero value.
func get[T any](ctx context.Context, r Requester, path string, query url.Values) (T, error) {
	var env api.Envelope[T]
	if err := r.Get(ctx, path, query, &env); err != nil {
		var zero T
		return zero, fmt.Errorf("get %s: %w", path, err)
	}
	return unwrap(path, &env)
}

func put[T any](ctx context.Context, r Requester, path string, body any) (T, error) {
	var env api.Envelope[T]
	if err := r.Put(ctx, path, body, &env); err != nil {
		var zero T
		return zero, fmt.Errorf("put %s: %w", path, err)
	}
	return unwrap(path, &env)
}

func unwrap[T any](path string, env *api.Envelope[T]) (T, error) {
	var zero T
	if !env.Success {
		return zero, fmt.Errorf("%s: %w: %s", path, ErrUnsuccessful, env.ErrorMessage("request failed"))
	}
	if env.Data == nil {
		return zero, nil
	}
	return *env.Data, nil
}
