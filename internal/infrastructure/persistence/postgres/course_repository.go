package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/amirhosseinghanipour/courseapi/internal/application/ports"
	"github.com/amirhosseinghanipour/courseapi/internal/domain"
	"github.com/amirhosseinghanipour/courseapi/internal/infrastructure/persistence/db"
)

type CourseRepository struct {
	q *db.Queries
}

func NewCourseRepository(q *db.Queries) *CourseRepository {
	return &CourseRepository{q: q}
}

func (r *CourseRepository) List(ctx context.Context) ([]domain.CourseWithOwner, error) {
	rows, err := r.q.ListCourses(ctx)
	if err != nil {
		return nil, err
	}
	courses := make([]domain.CourseWithOwner, 0, len(rows))
	for _, row := range rows {
		courses = append(courses, *rowToDomain(row))
	}
	return courses, nil
}

func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*domain.CourseWithOwner, error) {
	row, err := r.q.GetCourse(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return rowToDomain(row), nil
}

func (r *CourseRepository) Create(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	created, err := r.q.CreateCourse(ctx, db.CreateCourseParams{
		Title:           course.Title,
		Description:     course.Description,
		EstimatedTime:   optionalText(course.EstimatedTime),
		MaterialsNeeded: optionalText(course.MaterialsNeeded),
		UserID:          course.UserID,
	})
	if err != nil {
		return nil, err
	}
	c := courseToDomain(created)
	return &c, nil
}

func (r *CourseRepository) UpdateOwned(ctx context.Context, course *domain.Course) (int64, error) {
	return r.q.UpdateCourseOwned(ctx, db.UpdateCourseOwnedParams{
		Title:           course.Title,
		Description:     course.Description,
		EstimatedTime:   optionalText(course.EstimatedTime),
		MaterialsNeeded: optionalText(course.MaterialsNeeded),
		ID:              course.ID,
		UserID:          course.UserID,
	})
}

func (r *CourseRepository) DeleteOwned(ctx context.Context, id, ownerID int64) (int64, error) {
	return r.q.DeleteCourseOwned(ctx, id, ownerID)
}

func optionalText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

func courseToDomain(c db.Course) domain.Course {
	return domain.Course{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		EstimatedTime:   c.EstimatedTime.String,
		MaterialsNeeded: c.MaterialsNeeded.String,
		UserID:          c.UserID,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func rowToDomain(row db.CourseWithOwnerRow) *domain.CourseWithOwner {
	return &domain.CourseWithOwner{
		Course: courseToDomain(row.Course),
		Owner: domain.UserProfile{
			ID:           row.UserID,
			FirstName:    row.OwnerFirstName,
			LastName:     row.OwnerLastName,
			EmailAddress: row.OwnerEmailAddress,
		},
	}
}

// Ensure CourseRepository implements ports.CourseRepository.
var _ ports.CourseRepository = (*CourseRepository)(nil)
