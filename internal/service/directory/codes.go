package directory

import (
	"crypto/rand"
	"fmt"

	"github.com/gearbin/gearbin-backend/internal/domain"
)

// rejectAbove is the largest multiple of the alphabet size that fits in a
// byte. Bytes at or above it are discarded so every symbol is equally likely.
const rejectAbove = 256 - 256%len(domain.JoinCodeAlphabet)

// RandomCodes draws join codes from crypto/rand, uniformly over the alphabet.
type RandomCodes struct{}

// Generate returns a fresh candidate code.
func (RandomCodes) Generate() (string, error) {
	out := make([]byte, 0, domain.JoinCodeLength)
	buf := make([]byte, domain.JoinCodeLength*2)

	for len(out) < domain.JoinCodeLength {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= rejectAbove {
				continue
			}
			out = append(out, domain.JoinCodeAlphabet[int(b)%len(domain.JoinCodeAlphabet)])
			if len(out) == domain.JoinCodeLength {
				break
			}
		}
	}
	return string(out), nil
}
