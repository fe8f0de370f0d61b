package requests

type CreateCourse struct {
	Title       string `json:"title" validate:"required,max=50"`
	Subtitle    string `json:"subtitle" validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=200"`
	Category    string `json:"category" validate:"required"`
	Level       string `json:"level" validate:"omitempty,oneof=beginner intermediate advance"`
	Price       int64  `json:"price" validate:"gte=0"`
	Thumbnail   string `json:"thumbnail" validate:"required"`
}

type UpdateCourse struct {
	Title       *string `json:"title" validate:"omitempty,max=50"`
	Subtitle    *string `json:"subtitle" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=200"`
	Category    *string `json:"category"`
	Level       *string `json:"level" validate:"omitempty,oneof=beginner intermediate advance"`
	Price       *int64  `json:"price" validate:"omitempty,gte=0"`
	Thumbnail   *string `json:"thumbnail"`
	IsPublished *bool   `json:"isPublished"`
}

type AddLecture struct {
	Title       string `json:"title" validate:"required,max=50"`
	Description string `json:"description" validate:"required,max=100"`
	VideoURL    string `json:"videoUrl" validate:"required,url"`
	PublicID    string `json:"publicId" validate:"required"`
	Order       int    `json:"order" validate:"omitempty,gte=1"`
}
