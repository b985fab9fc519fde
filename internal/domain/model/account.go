package model

// Account is the authenticated identity-provider session for one workflow
// invocation. It is passed explicitly through the signup workflow and down to
// the document store; there is no ambient current-user state.
type Account struct {
	SubjectID   string
	Email       string
	DisplayName string

	// Federated marks provider-owned accounts (e.g. Google sign-in). The
	// workflow never deletes a federated account on partial failure.
	Federated bool

	IDToken      string
	RefreshToken string
}
