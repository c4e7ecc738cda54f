package models

import "gorm.io/gorm"

type Course struct {
	gorm.Model
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	ImageLink    string  `json:"imageLink"`
	Published    bool    `json:"published"`
	InstructorID uint    `json:"-" gorm:"index;not null"`
}

// CourseResponse is the allow-listed projection returned to callers.
// InstructorID stays out on purpose: new Course fields are private until
// they are added here explicitly.
type CourseResponse struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageLink   string  `json:"imageLink"`
	Published   bool    `json:"published"`
}

func (c Course) ToResponse() CourseResponse {
	return CourseResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Price:       c.Price,
		ImageLink:   c.ImageLink,
		Published:   c.Published,
	}
}
