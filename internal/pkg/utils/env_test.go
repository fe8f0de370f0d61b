package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Run("String Falls Back To Default", func(t *testing.T) {
		assert.Equal(t, "fallback", GetEnvString("LEARNHUB_TEST_UNSET", "fallback"), "Unset variable should yield the default")
	})

	t.Run("String Reads Value", func(t *testing.T) {
		t.Setenv("LEARNHUB_TEST_STRING", "value")
		assert.Equal(t, "value", GetEnvString("LEARNHUB_TEST_STRING", "fallback"), "Set variable should be returned")
	})

	t.Run("Int Reads Value", func(t *testing.T) {
		t.Setenv("LEARNHUB_TEST_INT", "8080")
		assert.Equal(t, 8080, GetEnvInt("LEARNHUB_TEST_INT", 3000), "Numeric variable should be parsed")
	})

	t.Run("Int Falls Back On Garbage", func(t *testing.T) {
		t.Setenv("LEARNHUB_TEST_INT_BAD", "not-a-number")
		assert.Equal(t, 3000, GetEnvInt("LEARNHUB_TEST_INT_BAD", 3000), "Unparseable value should yield the default")
	})

	t.Run("Bool Reads Value", func(t *testing.T) {
		t.Setenv("LEARNHUB_TEST_BOOL", "true")
		assert.True(t, GetEnvBool("LEARNHUB_TEST_BOOL", false), "Boolean variable should be parsed")
	})

	t.Run("Int64 Reads Value", func(t *testing.T) {
		t.Setenv("LEARNHUB_TEST_INT64", "9000000000")
		assert.Equal(t, int64(9000000000), GetEnvInt64("LEARNHUB_TEST_INT64", 1), "Int64 variable should be parsed")
	})
}
