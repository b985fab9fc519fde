// Package leetcode fetches upcoming contests from the LeetCode GraphQL API.
package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"canonforces/internal/domain/model"
)

const platformName = "LeetCode"

type Client struct {
	Endpoint string // https://leetcode.com/graphql
	Client   *http.Client
}

func New(endpoint string) *Client {
	return &Client{
		Endpoint: endpoint,
		Client:   http.DefaultClient,
	}
}

func (c *Client) postJSON(ctx context.Context, body any, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.Endpoint, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", "https://leetcode.com/")
	req.Header.Set("User-Agent", "canonforces/1.0")

	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("leetcode http %d: %s", resp.StatusCode, raw)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

const upcomingContestsQuery = `{ upcomingContests { title titleSlug startTime duration } }`

type upcomingContestsResponse struct {
	Data struct {
		UpcomingContests []struct {
			Title     string `json:"title"`
			TitleSlug string `json:"titleSlug"`
			StartTime int64  `json:"startTime"`
			Duration  int64  `json:"duration"`
		} `json:"upcomingContests"`
	} `json:"data"`
}

// Name implements the contest source interface.
func (c *Client) Name() string { return platformName }

// Upcoming lists contests that have not started yet.
func (c *Client) Upcoming(ctx context.Context) ([]model.Contest, error) {
	var resp upcomingContestsResponse
	if err := c.postJSON(ctx, map[string]string{"query": upcomingContestsQuery}, &resp); err != nil {
		return nil, err
	}

	contests := make([]model.Contest, 0, len(resp.Data.UpcomingContests))
	for _, row := range resp.Data.UpcomingContests {
		contests = append(contests, model.Contest{
			Platform:        platformName,
			ContestName:     row.Title,
			ContestLink:     "https://leetcode.com/contest/" + row.TitleSlug,
			StartTime:       time.Unix(row.StartTime, 0).UTC(),
			ContestDuration: model.FormatDuration(time.Duration(row.Duration) * time.Second),
		})
	}
	return contests, nil
}
