package api

import (
	"context"
	"net/url"
	"sync"
)

// Resource wraps a read endpoint and tracks data, loading and error state
// across refetches. Every fetch owns a generation token: when a newer fetch
// has started (or the query changed), a late response is discarded instead
// of overwriting the newer state.
type Resource[T any] struct {
	client *Client
	path   string

	mu      sync.Mutex
	query   url.Values
	gen     uint64
	data    *T
	err     error
	loading bool
}

// NewResource creates a resource for the given GET endpoint.
func NewResource[T any](client *Client, path string) *Resource[T] {
	return &Resource[T]{client: client, path: path}
}

// SetQuery replaces the dependency set for subsequent fetches. Any in-flight
// request is superseded: its response will not be applied.
func (r *Resource[T]) SetQuery(q url.Values) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.query = cloneQuery(q)
	r.gen++
	// No request for the new dependency set is outstanding yet.
	r.loading = false
}

// Refetch issues the request and applies the result unless a newer fetch has
// started in the meantime. The caller always receives its own result.
func (r *Resource[T]) Refetch(ctx context.Context) (*T, error) {
	r.mu.Lock()
	r.gen++
	gen := r.gen
	r.loading = true
	r.err = nil
	target := r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}
	r.mu.Unlock()

	var out T
	err := r.client.Get(ctx, target, &out)

	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen {
		// Superseded while in flight; a newer request owns the state now.
		if err != nil {
			return nil, err
		}
		return &out, nil
	}
	r.loading = false
	if err != nil {
		r.err = err
		return nil, err
	}
	r.data = &out
	return &out, nil
}

// State returns the current data, loading flag and error. Data is nil until
// the first successful response.
func (r *Resource[T]) State() (*T, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data, r.loading, r.err
}

func cloneQuery(q url.Values) url.Values {
	if q == nil {
		return nil
	}
	out := make(url.Values, len(q))
	for k, v := range q {
		out[k] = append([]string(nil), v...)
	}
	return out
}
