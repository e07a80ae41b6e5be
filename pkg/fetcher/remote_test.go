package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRemote_Fetch(t *testing.T) {
	var got solverRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(solverResponse{
			Status: "ok",
			Solution: &solverSolution{
				Status:   200,
				Response: "<html><body>rendered</body></html>",
			},
		})
	}))
	defer srv.Close()

	f := NewRemote(srv.URL)
	page, err := f.Fetch(context.Background(), Params{TFS: "token123", Currency: "USD"})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if got.Cmd != "request.get" {
		t.Errorf("cmd = %q, want request.get", got.Cmd)
	}
	if !strings.Contains(got.URL, "tfs=token123") || !strings.Contains(got.URL, "curr=USD") {
		t.Errorf("solver was asked for %q", got.URL)
	}
	if got.MaxTimeout != 60000 {
		t.Errorf("maxTimeout = %d, want 60000", got.MaxTimeout)
	}

	if page.StatusCode != 200 {
		t.Errorf("status = %d, want 200", page.StatusCode)
	}
	if page.HTML != "<html><body>rendered</body></html>" {
		t.Errorf("html = %q", page.HTML)
	}
	if page.FetchedAt.IsZero() {
		t.Error("FetchedAt not set")
	}
}

func TestRemote_FetchSolverError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(solverResponse{
			Status:  "error",
			Message: "challenge not solved",
		})
	}))
	defer srv.Close()

	f := NewRemote(srv.URL)
	_, err := f.Fetch(context.Background(), Params{TFS: "token123"})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "challenge not solved") {
		t.Errorf("error should carry the solver message, got %v", err)
	}
}

func TestRemote_FetchMissingSolution(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(solverResponse{Status: "ok"})
	}))
	defer srv.Close()

	f := NewRemote(srv.URL)
	if _, err := f.Fetch(context.Background(), Params{TFS: "token123"}); err == nil {
		t.Fatal("expected an error for a solution-less ok response")
	}
}

func TestRemote_FetchUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	f := NewRemote(srv.URL)
	_, err := f.Fetch(context.Background(), Params{TFS: "token123"})
	if !errors.Is(err, ErrSolverUnavailable) {
		t.Fatalf("expected ErrSolverUnavailable, got %v", err)
	}
}

func TestNewRemote_DefaultURL(t *testing.T) {
	f := NewRemote("")
	if f.serviceURL != DefaultSolverURL {
		t.Errorf("serviceURL = %q, want %q", f.serviceURL, DefaultSolverURL)
	}
	if f.Type() != "remote" {
		t.Errorf("type = %q", f.Type())
	}
}

func TestParams_URL(t *testing.T) {
	u := Params{TFS: "abc", Currency: "EUR"}.URL()
	if !strings.HasPrefix(u, BaseURL+"?") {
		t.Errorf("url = %q", u)
	}
	for _, want := range []string{"tfs=abc", "curr=EUR", "hl=en", "tfu=EgQIABABIgA"} {
		if !strings.Contains(u, want) {
			t.Errorf("url %q missing %q", u, want)
		}
	}
}
