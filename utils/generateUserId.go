package utils

import (
	"github.com/google/uuid"
)

// GenerateUserID returns a time-based UUID, falling back to a random one if the
// node clock cannot be read.
func GenerateUserID() string {
	id, err := uuid.NewUUID()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func GenerateSessionID() string {
	return uuid.NewString()
}
