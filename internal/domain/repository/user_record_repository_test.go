package repository

import (
	"testing"

	"canonforces/internal/common"
	"canonforces/internal/domain/model"

	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name      string
		as        *model.Account
		subjectID string
		wantErr   bool
	}{
		{"matching caller", &model.Account{SubjectID: "uid-1"}, "uid-1", false},
		{"mismatched caller", &model.Account{SubjectID: "uid-1"}, "uid-2", true},
		{"anonymous caller", nil, "uid-1", true},
		{"empty caller identity", &model.Account{}, "uid-1", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := authorize(tc.as, tc.subjectID)
			if tc.wantErr {
				require.ErrorIs(t, err, common.ErrPermissionDenied)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestPutRejectsRecordWithoutUserID(t *testing.T) {
	// The store's rule requires the userId field in every written document;
	// the guard runs before any network call, so no collection is needed.
	repo := &mongoUserRecordRepository{}
	err := repo.Put(nil, &model.Account{SubjectID: "uid-1"}, &model.UserRecord{})
	require.ErrorIs(t, err, common.ErrPermissionDenied)

	err = repo.Put(nil, &model.Account{SubjectID: "uid-1"}, nil)
	require.ErrorIs(t, err, common.ErrPermissionDenied)
}
