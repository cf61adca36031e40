package courses

import (
	"context"

	"github.com/amirhosseinghanipour/courseapi/internal/application/ports"
	"github.com/amirhosseinghanipour/courseapi/internal/domain"
	domerrors "github.com/amirhosseinghanipour/courseapi/internal/domain/errors"
)

type UpdateCourseInput struct {
	ID          int64
	Title       string
	Description string
	// EstimatedTime and MaterialsNeeded are nil when the request body left
	// them out; the existing values are kept in that case.
	EstimatedTime   *string
	MaterialsNeeded *string
	// ActorID is the authenticated identity attempting the update.
	ActorID int64
}

// UpdateCourse replaces a course's fields if the actor owns it. The initial
// read only decides between not-found and forbidden; the UPDATE itself is
// conditioned on (id, owner), so a concurrent owner change cannot let a
// non-owner through. A course deleted between the two calls reports
// not-found.
type UpdateCourse struct {
	courses ports.CourseRepository
}

func NewUpdateCourse(courses ports.CourseRepository) *UpdateCourse {
	return &UpdateCourse{courses: courses}
}

func (uc *UpdateCourse) Execute(ctx context.Context, input UpdateCourseInput) error {
	existing, err := uc.courses.GetByID(ctx, input.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domerrors.ErrCourseNotFound
	}
	if existing.UserID != input.ActorID {
		return domerrors.ErrNotOwner
	}
	estimatedTime := existing.EstimatedTime
	if input.EstimatedTime != nil {
		estimatedTime = *input.EstimatedTime
	}
	materialsNeeded := existing.MaterialsNeeded
	if input.MaterialsNeeded != nil {
		materialsNeeded = *input.MaterialsNeeded
	}
	affected, err := uc.courses.UpdateOwned(ctx, &domain.Course{
		ID:              input.ID,
		Title:           input.Title,
		Description:     input.Description,
		EstimatedTime:   estimatedTime,
		MaterialsNeeded: materialsNeeded,
		UserID:          input.ActorID,
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return domerrors.ErrCourseNotFound
	}
	return nil
}
