package models

import "time"

type LectureProgress struct {
	LectureID   string     `json:"lectureId" bson:"lectureId"`
	IsCompleted bool       `json:"isCompleted" bson:"isCompleted"`
	WatchedAt   *time.Time `json:"watchedAt,omitempty" bson:"watchedAt,omitempty"`
	LastWatched float64    `json:"lastWatched" bson:"lastWatched"`
}

type CourseProgress struct {
	ID                   string            `json:"id" bson:"_id,omitempty"`
	UserID               string            `json:"userId" bson:"userId"`
	CourseID             string            `json:"courseId" bson:"courseId"`
	IsCompleted          bool              `json:"isCompleted" bson:"isCompleted"`
	CompletionPercentage float64           `json:"completionPercentage" bson:"completionPercentage"`
	Lectures             []LectureProgress `json:"lectureProgress" bson:"lectureProgress"`
	LastAccessed         time.Time         `json:"lastAccessed" bson:"lastAccessed"`
	TimeModel            `bson:",inline"`
}

// Recompute refreshes the completion percentage against the course's
// current lecture count and flips IsCompleted when everything is watched.
func (p *CourseProgress) Recompute(totalLectures int) {
	if totalLectures <= 0 {
		p.CompletionPercentage = 0
		p.IsCompleted = false
		return
	}
	completed := 0
	for _, lp := range p.Lectures {
		if lp.IsCompleted {
			completed++
		}
	}
	p.CompletionPercentage = float64(completed) / float64(totalLectures) * 100
	p.IsCompleted = completed >= totalLectures
}
