package models

import "gorm.io/gorm"

// Purchase is one entry in a user's course ledger. The composite unique
// index makes the insert an append-if-absent: two concurrent purchases of
// the same course can both pass the duplicate pre-check, but only one row
// ever lands.
type Purchase struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"uniqueIndex:idx_user_course;not null"`
	CourseID uint   `json:"course_id" gorm:"uniqueIndex:idx_user_course;not null"`
	Course   Course `gorm:"foreignKey:CourseID"`
}
