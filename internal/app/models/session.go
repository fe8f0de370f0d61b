package models

type Session struct {
	ID     string   `json:"id"`
	UserID string   `json:"user_id"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`
}
