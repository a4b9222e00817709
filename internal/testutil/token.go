package testutil

import "github.com/google/uuid"

// TokenGenerator produces run tokens identifying a harness execution.
type TokenGenerator interface {
	Generate() string
}

// DefaultFixedToken is used when a scenario specifies no run token. A stable
// default keeps golden files reproducible without per-scenario boilerplate.
const DefaultFixedToken = "test-run-default"

// FixedTokenGenerator always returns the same token. Used for deterministic
// scenario execution and golden comparison.
type FixedTokenGenerator struct {
	token string
}

// NewFixedTokenGenerator creates a generator for the given token, falling
// back to DefaultFixedToken when token is empty.
func NewFixedTokenGenerator(token string) *FixedTokenGenerator {
	if token == "" {
		token = DefaultFixedToken
	}
	return &FixedTokenGenerator{token: token}
}

// Generate returns the fixed token.
func (g *FixedTokenGenerator) Generate() string {
	return g.token
}

// UUIDTokenGenerator produces time-ordered UUIDv7 run tokens for
// non-deterministic (CLI-driven) runs.
type UUIDTokenGenerator struct{}

// Generate returns a fresh UUIDv7 string.
func (UUIDTokenGenerator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}
