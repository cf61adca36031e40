package courses

import (
	"context"

	"github.com/amirhosseinghanipour/courseapi/internal/application/ports"
	domerrors "github.com/amirhosseinghanipour/courseapi/internal/domain/errors"
)

// DeleteCourse removes a course if the actor owns it. Same race posture as
// UpdateCourse: the DELETE is conditioned on (id, owner).
type DeleteCourse struct {
	courses ports.CourseRepository
}

func NewDeleteCourse(courses ports.CourseRepository) *DeleteCourse {
	return &DeleteCourse{courses: courses}
}

func (uc *DeleteCourse) Execute(ctx context.Context, id, actorID int64) error {
	existing, err := uc.courses.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domerrors.ErrCourseNotFound
	}
	if existing.UserID != actorID {
		return domerrors.ErrNotOwner
	}
	affected, err := uc.courses.DeleteOwned(ctx, id, actorID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domerrors.ErrCourseNotFound
	}
	return nil
}
