package domain

import "time"

// Course belongs to exactly one user. EstimatedTime and MaterialsNeeded are
// optional; empty string means absent.
type Course struct {
	ID              int64
	Title           string
	Description     string
	EstimatedTime   string
	MaterialsNeeded string
	UserID          int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CourseWithOwner pairs a course with the password-free projection of its
// owner, as returned by course reads.
type CourseWithOwner struct {
	Course
	Owner UserProfile
}
