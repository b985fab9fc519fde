// Package feed renders the upcoming-contest sidebar. The widget issues a
// single fetch against the aggregation endpoint and settles into a terminal
// ready or error state; a new fetch requires a new widget.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"canonforces/internal/domain/model"
)

type State int

const (
	StateLoading State = iota
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Widget is the sidebar's fetch-once state machine. Not safe for concurrent
// use; each mount owns its own Widget.
type Widget struct {
	endpoint string
	client   *http.Client

	state   State
	entries []Entry
	err     error
}

func NewWidget(endpoint string) *Widget {
	return &Widget{
		endpoint: endpoint,
		client:   http.DefaultClient,
		state:    StateLoading,
	}
}

// Load performs the single fetch. Calling Load again after the widget has
// settled is a no-op; terminal states are never re-entered.
func (w *Widget) Load(ctx context.Context) State {
	if w.state != StateLoading {
		return w.state
	}

	contests, err := w.fetch(ctx)
	if err != nil {
		w.err = err
		w.state = StateError
		return w.state
	}

	w.entries = BuildEntries(contests, time.Now())
	w.state = StateReady
	return w.state
}

func (w *Widget) fetch(ctx context.Context) ([]model.Contest, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", w.endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contests: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("failed to fetch contests: http %d", resp.StatusCode)
	}

	var body model.ContestsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode contests: %w", err)
	}
	return body.Contests, nil
}

func (w *Widget) State() State     { return w.state }
func (w *Widget) Entries() []Entry { return w.entries }
func (w *Widget) Err() error       { return w.err }
