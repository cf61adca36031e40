package courses

import (
	"context"

	"github.com/amirhosseinghanipour/courseapi/internal/application/ports"
	"github.com/amirhosseinghanipour/courseapi/internal/domain"
)

// ListCourses returns every course with its owner projection. No
// authentication is required for reads.
type ListCourses struct {
	courses ports.CourseRepository
}

func NewListCourses(courses ports.CourseRepository) *ListCourses {
	return &ListCourses{courses: courses}
}

func (uc *ListCourses) Execute(ctx context.Context) ([]domain.CourseWithOwner, error) {
	return uc.courses.List(ctx)
}
