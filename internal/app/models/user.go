package models

import "time"

type UserRole string

const (
	RoleStudent    UserRole = "student"
	RoleInstructor UserRole = "instructor"
	RoleAdmin      UserRole = "admin"
)

type User struct {
	ID                       string     `json:"id" bson:"_id,omitempty"`
	Name                     string     `json:"name" bson:"name"`
	Email                    string     `json:"email" bson:"email"`
	Password                 string     `json:"-" bson:"password"`
	Role                     UserRole   `json:"role" bson:"role"`
	Avatar                   string     `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Bio                      string     `json:"bio,omitempty" bson:"bio,omitempty"`
	EnrolledCourses          []string   `json:"enrolledCourses,omitempty" bson:"enrolledCourses,omitempty"`
	ResetPasswordToken       string     `json:"-" bson:"resetPasswordToken,omitempty"`
	ResetPasswordTokenExpiry *time.Time `json:"-" bson:"resetPasswordTokenExpiry,omitempty"`
	LastActive               time.Time  `json:"lastActive" bson:"lastActive"`
	TimeModel                `bson:",inline"`
}
