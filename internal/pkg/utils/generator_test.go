package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Run("Lowercases And Hyphenates", func(t *testing.T) {
		assert.Equal(t, "go-from-scratch", Slugify("Go From Scratch"))
	})

	t.Run("Trims Surrounding Whitespace", func(t *testing.T) {
		assert.Equal(t, "advanced-go", Slugify("  Advanced Go  "))
	})

	t.Run("Same Title Same Slug", func(t *testing.T) {
		assert.Equal(t, Slugify("Docker Deep Dive"), Slugify("docker deep dive"))
	})
}

func TestGenerateObjectName(t *testing.T) {
	objectName := GenerateObjectName("user-1", "lecture.mp4")

	assert.True(t, strings.HasPrefix(objectName, "user-1/"), "object name is namespaced by user")
	assert.True(t, strings.HasSuffix(objectName, "_lecture.mp4"))
}

func TestGenerateSessionID(t *testing.T) {
	first := GenerateSessionID()
	second := GenerateSessionID()

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}
