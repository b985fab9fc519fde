package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{2 * time.Hour, "2h"},
		{2*time.Hour + 30*time.Minute, "2h 30m"},
		{90 * time.Minute, "1h 30m"},
		{45 * time.Minute, "45m"},
		{24 * time.Hour, "24h"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatDuration(tc.d))
	}
}
