package courses

import (
	"context"

	"github.com/amirhosseinghanipour/courseapi/internal/application/ports"
	"github.com/amirhosseinghanipour/courseapi/internal/domain"
	domerrors "github.com/amirhosseinghanipour/courseapi/internal/domain/errors"
)

type GetCourse struct {
	courses ports.CourseRepository
}

func NewGetCourse(courses ports.CourseRepository) *GetCourse {
	return &GetCourse{courses: courses}
}

func (uc *GetCourse) Execute(ctx context.Context, id int64) (*domain.CourseWithOwner, error) {
	course, err := uc.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, domerrors.ErrCourseNotFound
	}
	return course, nil
}
