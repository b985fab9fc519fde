// Package codeforces is a thin client for the public Codeforces API. It backs
// both the platform-username existence check and the contest feed source.
package codeforces

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"canonforces/internal/domain/model"
)

const platformName = "Codeforces"

type Client struct {
	Endpoint string // https://codeforces.com/api
	Client   *http.Client
}

func New(endpoint string) *Client {
	return &Client{
		Endpoint: endpoint,
		Client:   http.DefaultClient,
	}
}

type apiResponse struct {
	Status  string          `json:"status"`
	Comment string          `json:"comment"`
	Result  json.RawMessage `json:"result"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.Endpoint+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "canonforces/1.0")

	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var envelope apiResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("codeforces http %d: %w", resp.StatusCode, err)
	}
	if envelope.Status != "OK" {
		return &apiError{Comment: envelope.Comment}
	}
	return json.Unmarshal(envelope.Result, out)
}

type apiError struct {
	Comment string
}

func (e *apiError) Error() string {
	return "codeforces: " + e.Comment
}

// UsernameExists reports whether a handle is registered on Codeforces. The API
// answers a lookup for an unknown handle with status FAILED and a "not found"
// comment rather than an empty result.
func (c *Client) UsernameExists(ctx context.Context, handle string) (bool, error) {
	var users []struct {
		Handle string `json:"handle"`
	}
	query := url.Values{"handles": {handle}}
	err := c.get(ctx, "/user.info", query, &users)
	if err != nil {
		var ae *apiError
		if errors.As(err, &ae) && strings.Contains(ae.Comment, "not found") {
			return false, nil
		}
		return false, err
	}
	return len(users) > 0, nil
}

type contestRow struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Phase            string `json:"phase"`
	DurationSeconds  int64  `json:"durationSeconds"`
	StartTimeSeconds int64  `json:"startTimeSeconds"`
}

// Name implements the contest source interface.
func (c *Client) Name() string { return platformName }

// Upcoming lists contests that have not started yet, soonest first.
func (c *Client) Upcoming(ctx context.Context) ([]model.Contest, error) {
	var rows []contestRow
	query := url.Values{"gym": {"false"}}
	if err := c.get(ctx, "/contest.list", query, &rows); err != nil {
		return nil, err
	}

	contests := make([]model.Contest, 0, len(rows))
	for _, row := range rows {
		if row.Phase != "BEFORE" || row.StartTimeSeconds == 0 {
			continue
		}
		contests = append(contests, model.Contest{
			Platform:        platformName,
			ContestName:     row.Name,
			ContestLink:     fmt.Sprintf("https://codeforces.com/contests/%d", row.ID),
			StartTime:       time.Unix(row.StartTimeSeconds, 0).UTC(),
			ContestDuration: model.FormatDuration(time.Duration(row.DurationSeconds) * time.Second),
		})
	}
	sort.Slice(contests, func(i, j int) bool {
		return contests[i].StartTime.Before(contests[j].StartTime)
	})
	return contests, nil
}
