package leetcode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpcoming(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gotQuery = body["query"]
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"upcomingContests":[
			{"title":"Weekly Contest 500","titleSlug":"weekly-contest-500","startTime":1780000000,"duration":5400}
		]}}`))
	}))
	defer server.Close()

	client := New(server.URL)
	contests, err := client.Upcoming(context.Background())
	require.NoError(t, err)
	require.Len(t, contests, 1)

	assert.Contains(t, gotQuery, "upcomingContests")
	assert.Equal(t, "LeetCode", contests[0].Platform)
	assert.Equal(t, "Weekly Contest 500", contests[0].ContestName)
	assert.Equal(t, "https://leetcode.com/contest/weekly-contest-500", contests[0].ContestLink)
	assert.Equal(t, "1h 30m", contests[0].ContestDuration)
	assert.Equal(t, int64(1780000000), contests[0].StartTime.Unix())
}

func TestUpcomingHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.Upcoming(context.Background())
	require.Error(t, err)
}
