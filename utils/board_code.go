package utils

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// Ambiguous glyphs (0/O, 1/I/L) are left out so codes can be read aloud.
const boardCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const BoardCodeLength = 6

// GenerateBoardCode returns a random code. Uniqueness is enforced by the
// store's unique index, callers retry on collision.
func GenerateBoardCode() (string, error) {
	var sb strings.Builder
	sb.Grow(BoardCodeLength)
	max := big.NewInt(int64(len(boardCodeAlphabet)))
	for i := 0; i < BoardCodeLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		sb.WriteByte(boardCodeAlphabet[n.Int64()])
	}
	return sb.String(), nil
}

// NormalizeBoardCode upper-cases and trims a code typed by a participant.
func NormalizeBoardCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
