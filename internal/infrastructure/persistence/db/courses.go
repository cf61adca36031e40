package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createCourseSQL = `
INSERT INTO courses (title, description, estimated_time, materials_needed, user_id)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, title, description, estimated_time, materials_needed, user_id, created_at, updated_at`

type CreateCourseParams struct {
	Title           string
	Description     string
	EstimatedTime   pgtype.Text
	MaterialsNeeded pgtype.Text
	UserID          int64
}

func (q *Queries) CreateCourse(ctx context.Context, arg CreateCourseParams) (Course, error) {
	row := q.db.QueryRow(ctx, createCourseSQL,
		arg.Title, arg.Description, arg.EstimatedTime, arg.MaterialsNeeded, arg.UserID)
	var c Course
	err := row.Scan(&c.ID, &c.Title, &c.Description, &c.EstimatedTime, &c.MaterialsNeeded,
		&c.UserID, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// CourseWithOwnerRow carries a course joined with the password-free columns
// of its owning user.
type CourseWithOwnerRow struct {
	Course
	OwnerFirstName    string
	OwnerLastName     string
	OwnerEmailAddress string
}

const courseWithOwnerColumns = `
c.id, c.title, c.description, c.estimated_time, c.materials_needed, c.user_id,
c.created_at, c.updated_at, u.first_name, u.last_name, u.email_address`

const listCoursesSQL = `
SELECT ` + courseWithOwnerColumns + `
FROM courses c
JOIN users u ON u.id = c.user_id
ORDER BY c.id`

func (q *Queries) ListCourses(ctx context.Context) ([]CourseWithOwnerRow, error) {
	rows, err := q.db.Query(ctx, listCoursesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CourseWithOwnerRow
	for rows.Next() {
		var r CourseWithOwnerRow
		if err := rows.Scan(&r.ID, &r.Title, &r.Description, &r.EstimatedTime, &r.MaterialsNeeded,
			&r.UserID, &r.CreatedAt, &r.UpdatedAt,
			&r.OwnerFirstName, &r.OwnerLastName, &r.OwnerEmailAddress); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const getCourseSQL = `
SELECT ` + courseWithOwnerColumns + `
FROM courses c
JOIN users u ON u.id = c.user_id
WHERE c.id = $1`

func (q *Queries) GetCourse(ctx context.Context, id int64) (CourseWithOwnerRow, error) {
	row := q.db.QueryRow(ctx, getCourseSQL, id)
	var r CourseWithOwnerRow
	err := row.Scan(&r.ID, &r.Title, &r.Description, &r.EstimatedTime, &r.MaterialsNeeded,
		&r.UserID, &r.CreatedAt, &r.UpdatedAt,
		&r.OwnerFirstName, &r.OwnerLastName, &r.OwnerEmailAddress)
	return r, err
}

const updateCourseOwnedSQL = `
UPDATE courses
SET title = $1, description = $2, estimated_time = $3, materials_needed = $4, updated_at = NOW()
WHERE id = $5 AND user_id = $6`

type UpdateCourseOwnedParams struct {
	Title           string
	Description     string
	EstimatedTime   pgtype.Text
	MaterialsNeeded pgtype.Text
	ID              int64
	UserID          int64
}

// UpdateCourseOwned mutates only when the owner matches and reports rows
// affected.
func (q *Queries) UpdateCourseOwned(ctx context.Context, arg UpdateCourseOwnedParams) (int64, error) {
	tag, err := q.db.Exec(ctx, updateCourseOwnedSQL,
		arg.Title, arg.Description, arg.EstimatedTime, arg.MaterialsNeeded, arg.ID, arg.UserID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteCourseOwnedSQL = `
DELETE FROM courses
WHERE id = $1 AND user_id = $2`

func (q *Queries) DeleteCourseOwned(ctx context.Context, id, userID int64) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteCourseOwnedSQL, id, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
