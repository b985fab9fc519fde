package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUserRecordNormalizesUsernameAndEmail(t *testing.T) {
	record := NewUserRecord("uid-1", "  TouRist ", "Gennady K", "Tourist@Example.COM", 1700000000000)

	assert.Equal(t, "uid-1", record.UserID)
	assert.Equal(t, "tourist", record.Username)
	assert.Equal(t, "tourist@example.com", record.EmailAddress)
	assert.Equal(t, "Gennady K", record.Fullname)
	assert.Equal(t, int64(1700000000000), record.DateCreated)
}

func TestNewUserRecordStartsWithEmptySets(t *testing.T) {
	record := NewUserRecord("uid-1", "tourist", "", "t@example.com", 0)

	// Empty, not nil: the document must serialize as [] rather than null.
	assert.NotNil(t, record.Following)
	assert.NotNil(t, record.Followers)
	assert.Empty(t, record.Following)
	assert.Empty(t, record.Followers)
}
