package courses

import (
	"context"

	"github.com/amirhosseinghanipour/courseapi/internal/application/ports"
	"github.com/amirhosseinghanipour/courseapi/internal/domain"
)

type CreateCourseInput struct {
	Title           string
	Description     string
	EstimatedTime   string
	MaterialsNeeded string
	// OwnerID comes from the authenticated identity, never from the body.
	OwnerID int64
}

type CreateCourse struct {
	courses ports.CourseRepository
}

func NewCreateCourse(courses ports.CourseRepository) *CreateCourse {
	return &CreateCourse{courses: courses}
}

func (uc *CreateCourse) Execute(ctx context.Context, input CreateCourseInput) (*domain.Course, error) {
	return uc.courses.Create(ctx, &domain.Course{
		Title:           input.Title,
		Description:     input.Description,
		EstimatedTime:   input.EstimatedTime,
		MaterialsNeeded: input.MaterialsNeeded,
		UserID:          input.OwnerID,
	})
}
