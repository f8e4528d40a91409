package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBoardCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		code, err := GenerateBoardCode()
		require.NoError(t, err)
		assert.Len(t, code, BoardCodeLength)
		assert.True(t, ValidBoardCode(code), "generated code %q should validate", code)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(boardCodeAlphabet, r), "unexpected rune %q", r)
		}
		seen[code] = true
	}
	// 31^6 possible codes, a handful of collisions in 200 draws would point at a broken source.
	assert.Greater(t, len(seen), 190)
}

func TestNormalizeBoardCode(t *testing.T) {
	assert.Equal(t, "ABC123", NormalizeBoardCode("  abc123 "))
	assert.Equal(t, "", NormalizeBoardCode("   "))
}

func TestValidBoardCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"ABC123", true},
		{"a", true},
		{"", false},
		{"ABCDEFG", false},
		{"AB-12", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidBoardCode(tt.code), tt.code)
	}
}

func TestValidatePassword(t *testing.T) {
	assert.True(t, ValidatePassword("secret1"))
	assert.False(t, ValidatePassword("secret"))
	assert.False(t, ValidatePassword("ab1"))
}

func TestValidateStructTags(t *testing.T) {
	type payload struct {
		Code     string `validate:"boardcode"`
		Password string `validate:"password"`
	}
	assert.NoError(t, Validate.Struct(payload{Code: "XY12", Password: "hunter22"}))
	assert.Error(t, Validate.Struct(payload{Code: "TOOLONG", Password: "hunter22"}))
	assert.Error(t, Validate.Struct(payload{Code: "XY12", Password: "hunter"}))
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("IDEABOARD_INT", "42")
	t.Setenv("IDEABOARD_BAD_INT", "forty-two")
	t.Setenv("IDEABOARD_BOOL", "true")
	t.Setenv("IDEABOARD_DURATION", "90m")
	t.Setenv("IDEABOARD_SECONDS", "30")
	t.Setenv("IDEABOARD_LIST", "http://a.test, ,http://b.test")

	assert.Equal(t, 42, GetEnvAsInt("IDEABOARD_INT", 1))
	assert.Equal(t, 1, GetEnvAsInt("IDEABOARD_BAD_INT", 1))
	assert.Equal(t, int64(42), GetEnvAsInt64("IDEABOARD_INT", 1))
	assert.Equal(t, uint64(42), GetEnvAsUint64("IDEABOARD_INT", 1))
	assert.True(t, GetEnvAsBool("IDEABOARD_BOOL", false))
	assert.Equal(t, 90*time.Minute, GetEnvAsDuration("IDEABOARD_DURATION", time.Second))
	assert.Equal(t, 30*time.Second, GetEnvAsDuration("IDEABOARD_SECONDS", time.Second))
	assert.Equal(t, "fallback", GetEnvAsString("IDEABOARD_UNSET", "fallback"))
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, GetEnvAsStringSlice("IDEABOARD_LIST", nil))
}

func TestResponseHelpers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Created(c, gin.H{"id": "ABC123"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"success":true,"id":"ABC123"}`, w.Body.String())

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	Forbidden(c, "login required")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"login required"}`, w.Body.String())
}

func TestParseUserAgent(t *testing.T) {
	browser, os, device := ParseUserAgent("")
	assert.Equal(t, "Unknown Browser", browser)
	assert.Equal(t, "Unknown OS", os)
	assert.Equal(t, "Desktop", device)

	info := DeviceInfo("Mozilla/5.0 (X11; Linux x86_64; rv:120.0) Gecko/20100101 Firefox/120.0")
	assert.Contains(t, info, "Firefox")
}
