package requests

type UpdateLectureProgress struct {
	IsCompleted *bool    `json:"isCompleted"`
	LastWatched *float64 `json:"lastWatched" validate:"omitempty,gte=0"`
}
