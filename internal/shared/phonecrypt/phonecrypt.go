// Package phonecrypt protects phone numbers with a salted one-way hash.
//
// Stored phone values are bcrypt hashes and can never be recovered. The
// cost of this choice is that equality cannot be answered by the database:
// any uniqueness check over phones has to walk existing hashes and run
// Verify once per row.
package phonecrypt

import (
	"net/http"
	"os"
	"strconv"

	"go-employee-api/internal/shared/apperror"

	"golang.org/x/crypto/bcrypt"
)

// ErrEncryption signals a failure of the hash primitive itself. It is an
// operational fault, not invalid input.
var ErrEncryption = apperror.New(
	apperror.CodeInternalError,
	"Failed to encrypt phone number",
	http.StatusInternalServerError,
)

//go:generate mockgen -source=phonecrypt.go -destination=mock/phonecrypt_mock.go -package=mock
type Hasher interface {
	Protect(raw string) (string, error)
	Verify(raw, hash string) bool
}

type bcryptHasher struct {
	cost int
}

// NewHasher builds a bcrypt-backed Hasher. Cost comes from the BCRYPT_COST
// environment variable, defaulting to bcrypt.DefaultCost.
func NewHasher() Hasher {
	cost := bcrypt.DefaultCost
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= bcrypt.MinCost && parsed <= bcrypt.MaxCost {
			cost = parsed
		}
	}
	return &bcryptHasher{cost: cost}
}

// NewHasherWithCost is used by tests to trade hash strength for speed.
func NewHasherWithCost(cost int) Hasher {
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Protect(raw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), h.cost)
	if err != nil {
		return "", apperror.Wrap(err, apperror.CodeInternalError, ErrEncryption.Message, http.StatusInternalServerError)
	}
	return string(hash), nil
}

// Verify reports whether raw produced hash. Internal failures (malformed
// hash, truncated value) are reported as "no match" rather than an error,
// so an unverifiable row never aborts a duplicate scan.
func (h *bcryptHasher) Verify(raw, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}
