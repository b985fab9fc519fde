package repository

import (
	"context"
	"errors"
	"fmt"

	"canonforces/internal/common"
	"canonforces/internal/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRecordRepository is the document-store contract. Get and Put take the
// caller's account explicitly; the store's authorization rule requires the
// caller identity to match the subject id being read or written.
type UserRecordRepository interface {
	Get(ctx context.Context, as *model.Account, subjectID string) (*model.UserRecord, error)
	Put(ctx context.Context, as *model.Account, record *model.UserRecord) error
	FindByUsername(ctx context.Context, username string) (*model.UserRecord, error)
}

type mongoUserRecordRepository struct {
	users *mongo.Collection
}

func NewMongoUserRecordRepository(db *mongo.Database) UserRecordRepository {
	return &mongoUserRecordRepository{users: db.Collection("users")}
}

// authorize enforces the per-document rule: the caller must be authenticated
// as the subject it touches. Mirrors the store's server-side rule so that a
// misconfigured caller fails the same way in every backend.
func authorize(as *model.Account, subjectID string) error {
	if as == nil || as.SubjectID == "" || as.SubjectID != subjectID {
		return common.ErrPermissionDenied
	}
	return nil
}

func (r *mongoUserRecordRepository) Get(ctx context.Context, as *model.Account, subjectID string) (*model.UserRecord, error) {
	if err := authorize(as, subjectID); err != nil {
		return nil, err
	}
	record := &model.UserRecord{}
	err := r.users.FindOne(ctx, bson.M{"userId": subjectID}).Decode(record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("mongoUserRecordRepository.Get: %w", err)
	}
	return record, nil
}

func (r *mongoUserRecordRepository) Put(ctx context.Context, as *model.Account, record *model.UserRecord) error {
	if record == nil || record.UserID == "" {
		// The store rejects documents missing the userId field.
		return common.ErrPermissionDenied
	}
	if err := authorize(as, record.UserID); err != nil {
		return err
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.users.ReplaceOne(ctx, bson.M{"userId": record.UserID}, record, opts); err != nil {
		return fmt.Errorf("mongoUserRecordRepository.Put: %w", err)
	}
	return nil
}

func (r *mongoUserRecordRepository) FindByUsername(ctx context.Context, username string) (*model.UserRecord, error) {
	record := &model.UserRecord{}
	err := r.users.FindOne(ctx, bson.M{"username": username}).Decode(record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("mongoUserRecordRepository.FindByUsername: %w", err)
	}
	return record, nil
}
