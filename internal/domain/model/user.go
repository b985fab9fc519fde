package model

import "strings"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// SignupCandidate carries raw form input into the signup workflow. It is
// consumed exactly once and never persisted; only the derived UserRecord
// reaches the document store.
type SignupCandidate struct {
	Username string `json:"username"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserRecord is the document written to the user store, keyed by the identity
// provider's subject id. It must never exist without a live provider account.
type UserRecord struct {
	UserID       string   `json:"userId" bson:"userId"`
	Username     string   `json:"username" bson:"username"`
	Fullname     string   `json:"fullname" bson:"fullname"`
	EmailAddress string   `json:"emailAddress" bson:"emailAddress"`
	Following    []string `json:"following" bson:"following"`
	Followers    []string `json:"followers" bson:"followers"`
	DateCreated  int64    `json:"dateCreated" bson:"dateCreated"`
}

// NewUserRecord derives the persisted document from validated signup input.
// Username is lowercased and trimmed here and nowhere else; the uniqueness
// checks earlier in the workflow see the input as typed.
func NewUserRecord(subjectID, username, fullname, email string, createdAtMillis int64) *UserRecord {
	return &UserRecord{
		UserID:       subjectID,
		Username:     strings.ToLower(strings.TrimSpace(username)),
		Fullname:     fullname,
		EmailAddress: strings.ToLower(email),
		Following:    []string{},
		Followers:    []string{},
		DateCreated:  createdAtMillis,
	}
}
