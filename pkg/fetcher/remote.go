package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/FranciscoRecio/flights/internal/logger"
)

// ErrSolverUnavailable indicates the remote solver service is not reachable.
var ErrSolverUnavailable = errors.New("solver service unavailable")

// DefaultSolverURL is where a locally run FlareSolverr instance listens.
const DefaultSolverURL = "http://localhost:8191/v1"

// Remote fetches result pages through a FlareSolverr-compatible solver
// service. The service drives a real browser remotely, so pages arrive
// fully rendered and consent walls are already cleared; when something is
// still wrong with a page it shows up as an extraction failure downstream,
// not as a transport error.
type Remote struct {
	serviceURL string
	httpClient *http.Client
	maxTimeout int // milliseconds
}

type solverRequest struct {
	Cmd        string `json:"cmd"`
	URL        string `json:"url,omitempty"`
	MaxTimeout int    `json:"maxTimeout,omitempty"`
}

type solverResponse struct {
	Status   string          `json:"status"`
	Message  string          `json:"message"`
	Solution *solverSolution `json:"solution,omitempty"`
}

type solverSolution struct {
	URL       string `json:"url"`
	Status    int    `json:"status"`
	Response  string `json:"response"`
	UserAgent string `json:"userAgent"`
}

// NewRemote creates the remote transport against a solver service URL.
// An empty serviceURL uses DefaultSolverURL.
func NewRemote(serviceURL string) *Remote {
	if serviceURL == "" {
		serviceURL = DefaultSolverURL
	}
	return &Remote{
		serviceURL: serviceURL,
		httpClient: &http.Client{
			Timeout: 120 * time.Second, // solving can take a while
		},
		maxTimeout: 60000,
	}
}

// Fetch asks the solver service to render a results page.
func (f *Remote) Fetch(ctx context.Context, params Params) (Page, error) {
	page := Page{FetchedAt: time.Now()}
	requestURL := params.URL()

	reqBody, err := json.Marshal(solverRequest{
		Cmd:        "request.get",
		URL:        requestURL,
		MaxTimeout: f.maxTimeout,
	})
	if err != nil {
		return page, fmt.Errorf("failed to marshal solver request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.serviceURL, bytes.NewReader(reqBody))
	if err != nil {
		return page, fmt.Errorf("failed to create solver request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	logger.Debug("remote fetch starting", "url", requestURL, "solver", f.serviceURL)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return page, fmt.Errorf("%w: %v", ErrSolverUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return page, fmt.Errorf("failed to read solver response: %w", err)
	}

	// The solver returns JSON bodies on error statuses too.
	var solved solverResponse
	if err := json.Unmarshal(body, &solved); err != nil {
		return page, fmt.Errorf("failed to parse solver response: %w", err)
	}
	if solved.Status != "ok" {
		return page, fmt.Errorf("solver returned %q: %s", solved.Status, solved.Message)
	}
	if solved.Solution == nil {
		return page, fmt.Errorf("solver returned no solution")
	}

	page.HTML = solved.Solution.Response
	page.StatusCode = solved.Solution.Status

	logger.Debug("remote fetch complete",
		"status", page.StatusCode,
		"html_size", len(page.HTML))
	return page, nil
}

// Close releases resources.
func (f *Remote) Close() error {
	return nil
}

// Type returns the transport type.
func (f *Remote) Type() string {
	return "remote"
}
