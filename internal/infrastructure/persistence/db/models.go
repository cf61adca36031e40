package db

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

type User struct {
	ID           int64
	FirstName    string
	LastName     string
	EmailAddress string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Course struct {
	ID              int64
	Title           string
	Description     string
	EstimatedTime   pgtype.Text
	MaterialsNeeded pgtype.Text
	UserID          int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
