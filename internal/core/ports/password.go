package ports

import "context"

// PasswordHasher abstracts credential hashing so the CPU-bound hash step can
// run through a bounded worker pool instead of on the request goroutine.
// Hash takes a context because a pooled implementation may queue.
type PasswordHasher interface {
	Hash(ctx context.Context, plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}
