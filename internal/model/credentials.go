package model

// PasswordHasher produces and verifies one-way password digests. Verify
// reports a mismatch as (false, nil); an error means the stored digest itself
// is unusable and must be treated as an internal fault.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) (bool, error)
}
