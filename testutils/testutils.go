package testutils

import (
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// MockableTime is an interface for mocking time.Now() in tests
type MockableTime interface {
	Now() time.Time
}

// RealTime implements MockableTime using time.Now()
type RealTime struct{}

func (RealTime) Now() time.Time {
	return time.Now()
}

// FixedTime implements MockableTime using a fixed time
type FixedTime struct {
	Fixed time.Time
}

func (ft FixedTime) Now() time.Time {
	return ft.Fixed
}

const TestSecret = "test_secret_key"

var envMutex sync.Mutex

// SetupTestEnvironment puts the process in test mode.
func SetupTestEnvironment() {
	envMutex.Lock()
	defer envMutex.Unlock()

	os.Setenv("GO_ENV", "test")
	if os.Getenv("JWT_SECRET_KEY") == "" {
		os.Setenv("JWT_SECRET_KEY", TestSecret)
	}
	gin.SetMode(gin.TestMode)
}
