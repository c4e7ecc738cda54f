package models

import "gorm.io/gorm"

// Admin accounts own courses through Course.InstructorID. Admins and users
// live in separate tables, so the same username may exist in both.
type Admin struct {
	gorm.Model
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
}
