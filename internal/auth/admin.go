package auth

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ErrInvalidCredentials covers both an unknown username and a wrong
// password, so a caller cannot tell the two apart.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrAdminNotFound is internal to the package; Authenticate collapses it
// into ErrInvalidCredentials before returning.
var ErrAdminNotFound = errors.New("admin not found")

// Admin is a credential record. PasswordHash is never serialized.
type Admin struct {
	ID           bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Username     string        `json:"username" bson:"username"`
	PasswordHash string        `json:"-" bson:"passwordHash"`
	CreatedAt    time.Time     `json:"createdAt" bson:"createdAt"`
}
