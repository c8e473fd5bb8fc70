// Package credentials implements the durable holder for the single
// bearer token. Writes are whole-value replacements; the single
// threaded clients need no locking protocol around them.
package credentials

//go:generate mockgen -destination=mock/mock.go -package=credentialsmock github.com/khoi-stripe/danddy/internal/credentials Store

// Store holds at most one bearer token across process restarts
type Store interface {
	// Token returns the stored token and whether one exists
	Token() (string, bool)
	// Save replaces the stored token
	Save(token string) error
	// Delete discards the stored token. Deleting an absent token is not
	// an error.
	Delete() error
}
