package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/wadoud17/maktabati-pos/pkg/apperror"
)

type item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestResourceInitialState(t *testing.T) {
	client := NewClient("http://unused", nil)
	res := NewResource[[]item](client, "/api/produits")

	data, loading, err := res.State()
	if data != nil {
		t.Errorf("data must be nil before the first successful response")
	}
	if loading {
		t.Errorf("loading must be false before the first fetch")
	}
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestResourceFetchAndRefetch(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := hits.Add(1)
		json.NewEncoder(w).Encode([]item{{ID: int(n), Name: "Stylo"}})
	}))
	defer server.Close()

	res := NewResource[[]item](NewClient(server.URL, nil), "/api/produits")

	first, err := res.Refetch(context.Background())
	if err != nil {
		t.Fatalf("refetch failed: %v", err)
	}
	if (*first)[0].ID != 1 {
		t.Errorf("unexpected first payload: %+v", *first)
	}

	second, err := res.Refetch(context.Background())
	if err != nil {
		t.Fatalf("refetch failed: %v", err)
	}
	if (*second)[0].ID != 2 {
		t.Errorf("manual refetch must re-issue the request, got %+v", *second)
	}

	data, loading, err := res.State()
	if data == nil || (*data)[0].ID != 2 {
		t.Errorf("state must hold the latest response")
	}
	if loading || err != nil {
		t.Errorf("unexpected state: loading=%v err=%v", loading, err)
	}
}

func TestResourceErrorState(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"message": "database on fire"})
	}))
	defer server.Close()

	res := NewResource[[]item](NewClient(server.URL, nil), "/api/produits")

	if _, err := res.Refetch(context.Background()); err == nil {
		t.Fatalf("expected an error")
	}
	data, loading, err := res.State()
	if data != nil {
		t.Errorf("data must stay nil after a failed first fetch")
	}
	if loading {
		t.Errorf("loading must clear after the failure")
	}
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Message != "database on fire" {
		t.Errorf("expected the backend message to surface, got %v", err)
	}
}

func TestResourceErrorClearedBySuccess(t *testing.T) {
	var fail atomic.Bool
	fail.Store(true)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode([]item{{ID: 1}})
	}))
	defer server.Close()

	res := NewResource[[]item](NewClient(server.URL, nil), "/api/produits")
	res.Refetch(context.Background())

	fail.Store(false)
	if _, err := res.Refetch(context.Background()); err != nil {
		t.Fatalf("refetch failed: %v", err)
	}
	if _, _, err := res.State(); err != nil {
		t.Errorf("error must clear on the next success, got %v", err)
	}
}

func TestStaleResponseDiscarded(t *testing.T) {
	// The first request is held until a second, newer one has completed; its
	// late response must not overwrite the newer state.
	block := make(chan struct{})
	started := make(chan struct{})
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := hits.Add(1)
		if n == 1 {
			close(started)
			<-block
		}
		json.NewEncoder(w).Encode([]item{{ID: int(n)}})
	}))
	defer server.Close()

	res := NewResource[[]item](NewClient(server.URL, nil), "/api/produits")

	staleDone := make(chan struct{})
	go func() {
		defer close(staleDone)
		res.Refetch(context.Background())
	}()

	// Wait until the stale request is parked in the handler.
	<-started

	if _, err := res.Refetch(context.Background()); err != nil {
		t.Fatalf("newer refetch failed: %v", err)
	}

	close(block)
	<-staleDone

	data, loading, err := res.State()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loading {
		t.Errorf("loading must be false once the newest request resolved")
	}
	if data == nil || (*data)[0].ID != 2 {
		t.Errorf("stale response overwrote newer state: %+v", data)
	}
}

func TestSetQuerySupersedesInFlightFetch(t *testing.T) {
	block := make(chan struct{})
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-block
		json.NewEncoder(w).Encode([]item{{ID: 1}})
	}))
	defer server.Close()

	res := NewResource[[]item](NewClient(server.URL, nil), "/api/produits")

	done := make(chan struct{})
	go func() {
		defer close(done)
		res.Refetch(context.Background())
	}()
	<-started

	res.SetQuery(url.Values{"category": {"2"}})
	close(block)
	<-done

	data, _, _ := res.State()
	if data != nil {
		t.Errorf("response for a superseded dependency set must be discarded")
	}
}
