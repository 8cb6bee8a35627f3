package api

import (
	"context"
	"sync"
)

// Mutation wraps a mutating endpoint (POST, PUT or DELETE). Failures are
// propagated to the caller; no cached read is updated optimistically and
// nothing is retried.
type Mutation[T any] struct {
	client *Client
	method string
	path   string

	mu      sync.Mutex
	loading bool
	err     error
}

// NewMutation creates a mutation for the given endpoint and verb.
func NewMutation[T any](client *Client, method, path string) *Mutation[T] {
	return &Mutation[T]{client: client, method: method, path: path}
}

// Do issues the request with the given payload and returns the parsed
// response.
func (m *Mutation[T]) Do(ctx context.Context, payload interface{}) (*T, error) {
	m.mu.Lock()
	m.loading = true
	m.err = nil
	m.mu.Unlock()

	var out T
	err := m.client.Do(ctx, m.method, m.path, payload, &out)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = false
	if err != nil {
		m.err = err
		return nil, err
	}
	return &out, nil
}

// State returns the loading flag and last error of the mutation.
func (m *Mutation[T]) State() (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading, m.err
}
