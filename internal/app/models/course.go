package models

type CourseLevel string

const (
	CourseLevelBeginner     CourseLevel = "beginner"
	CourseLevelIntermediate CourseLevel = "intermediate"
	CourseLevelAdvance      CourseLevel = "advance"
)

type Course struct {
	ID            string      `json:"id" bson:"_id,omitempty"`
	Slug          string      `json:"slug" bson:"slug"`
	Title         string      `json:"title" bson:"title"`
	Subtitle      string      `json:"subtitle" bson:"subtitle"`
	Description   string      `json:"description" bson:"description"`
	Category      string      `json:"category" bson:"category"`
	Level         CourseLevel `json:"level" bson:"level"`
	Price         int64       `json:"price" bson:"price"`
	Thumbnail     string      `json:"thumbnail" bson:"thumbnail"`
	LectureIDs    []string    `json:"lectures" bson:"lectures"`
	InstructorID  string      `json:"instructor" bson:"instructor"`
	IsPublished   bool        `json:"isPublished" bson:"isPublished"`
	TotalLectures int         `json:"totalLectures" bson:"totalLectures"`
	TotalDuration float64     `json:"totalDuration" bson:"totalDuration"`
	TimeModel     `bson:",inline"`
}

type Lecture struct {
	ID          string  `json:"id" bson:"_id,omitempty"`
	CourseID    string  `json:"courseId" bson:"courseId"`
	Slug        string  `json:"slug" bson:"slug"`
	Title       string  `json:"title" bson:"title"`
	Description string  `json:"description" bson:"description"`
	VideoURL    string  `json:"videoUrl" bson:"videoUrl"`
	Duration    float64 `json:"duration" bson:"duration"`
	IsPreview   bool    `json:"isPreview" bson:"isPreview"`
	PublicID    string  `json:"publicId" bson:"publicId"`
	Order       int     `json:"order" bson:"order"`
	TimeModel   `bson:",inline"`
}
