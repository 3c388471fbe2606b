package lumen

import "errors"

// Sentinel errors for state snapshot operations. Styling and rendering do
// not define an error taxonomy: capability gaps degrade by strategy
// selection rather than failing.
var (
	ErrNoStateKey       = errors.New("lumen: registry has no state key configured")
	ErrInvalidSnapshot  = errors.New("lumen: invalid state snapshot")
	ErrSignatureInvalid = errors.New("lumen: snapshot signature verification failed")
	ErrDecryptFailed    = errors.New("lumen: snapshot decryption failed")
)

// IsSnapshotError checks if err came from snapshot decoding: tampered,
// malformed, or undecryptable input.
func IsSnapshotError(err error) bool {
	return errors.Is(err, ErrInvalidSnapshot) ||
		errors.Is(err, ErrSignatureInvalid) ||
		errors.Is(err, ErrDecryptFailed)
}
