package utils

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// PasswordHasher bounds the number of concurrent bcrypt computations. Hashing
// is CPU-bound and slow on purpose; without a limit a burst of registrations
// could occupy every scheduler thread and starve cheap token validations.
type PasswordHasher struct {
	sem *semaphore.Weighted
}

// NewPasswordHasher creates a hasher allowing at most maxConcurrent
// simultaneous hash or verify operations.
func NewPasswordHasher(maxConcurrent int64) *PasswordHasher {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &PasswordHasher{sem: semaphore.NewWeighted(maxConcurrent)}
}

// Hash computes a bcrypt digest, waiting for a slot if the hasher is saturated.
func (h *PasswordHasher) Hash(ctx context.Context, password string) (string, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer h.sem.Release(1)
	return HashPassword(password)
}

// Verify compares a plaintext password against a stored digest under the same
// concurrency bound as Hash.
func (h *PasswordHasher) Verify(ctx context.Context, password, hash string) (bool, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return false, err
	}
	defer h.sem.Release(1)
	return CheckPasswordHash(password, hash), nil
}
