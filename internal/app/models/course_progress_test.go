package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecompute(t *testing.T) {
	t.Run("Partial Completion", func(t *testing.T) {
		progress := &CourseProgress{
			Lectures: []LectureProgress{
				{LectureID: "lecture-1", IsCompleted: true},
				{LectureID: "lecture-2", IsCompleted: false},
				{LectureID: "lecture-3", IsCompleted: true},
			},
		}
		progress.Recompute(4)
		assert.Equal(t, float64(50), progress.CompletionPercentage, "Two of four lectures watched should be fifty percent")
		assert.False(t, progress.IsCompleted, "Course should not be completed with lectures remaining")
	})

	t.Run("All Lectures Completed", func(t *testing.T) {
		progress := &CourseProgress{
			Lectures: []LectureProgress{
				{LectureID: "lecture-1", IsCompleted: true},
				{LectureID: "lecture-2", IsCompleted: true},
			},
		}
		progress.Recompute(2)
		assert.Equal(t, float64(100), progress.CompletionPercentage, "All lectures watched should be one hundred percent")
		assert.True(t, progress.IsCompleted, "Course should be completed when every lecture is watched")
	})

	t.Run("Lecture Added After Completion", func(t *testing.T) {
		progress := &CourseProgress{
			IsCompleted:          true,
			CompletionPercentage: 100,
			Lectures: []LectureProgress{
				{LectureID: "lecture-1", IsCompleted: true},
				{LectureID: "lecture-2", IsCompleted: true},
			},
		}
		progress.Recompute(3)
		assert.False(t, progress.IsCompleted, "A new lecture should reopen a completed course")
		assert.InDelta(t, 66.66, progress.CompletionPercentage, 0.01, "Percentage should reflect the new lecture count")
	})

	t.Run("No Lectures", func(t *testing.T) {
		progress := &CourseProgress{IsCompleted: true, CompletionPercentage: 100}
		progress.Recompute(0)
		assert.Equal(t, float64(0), progress.CompletionPercentage, "Empty course should report zero percent")
		assert.False(t, progress.IsCompleted, "Empty course should not be completed")
	})
}
