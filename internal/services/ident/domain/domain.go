// Package domain defines users and the bearer token scheme
package domain

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"time"

	"github.com/google/uuid"
)

// TokenBytes is the entropy of a freshly minted token
const TokenBytes = 32

type (
	// TokenHash is the stored SHA-256 digest of a bearer token
	TokenHash [32]byte

	// User owns todos
	User struct {
		ID        uuid.UUID `json:"id"`
		Name      string    `json:"name"`
		CreatedAt time.Time `json:"created_at"`
	}
)

// Repo is the persistence surface of ident
type Repo interface {
	Insert(ctx context.Context, u User, hash TokenHash) error
	ByTokenHash(ctx context.Context, hash TokenHash) (User, error)
	Get(ctx context.Context, id uuid.UUID) (User, error)
}

// NewToken mints a random URL-safe token and its digest
func NewToken() (string, TokenHash, error) {
	b := make([]byte, TokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", TokenHash{}, err
	}
	tok := base64.RawURLEncoding.EncodeToString(b)
	return tok, HashToken(tok), nil
}

// HashToken digests a presented token
func HashToken(token string) TokenHash { return sha256.Sum256([]byte(token)) }

// Bytes returns the slice form for the database
func (h TokenHash) Bytes() []byte { return h[:] }
