package db

import (
	"context"
)

const createUserSQL = `
INSERT INTO users (first_name, last_name, email_address, password_hash)
VALUES ($1, $2, $3, $4)
RETURNING id, first_name, last_name, email_address, password_hash, created_at, updated_at`

type CreateUserParams struct {
	FirstName    string
	LastName     string
	EmailAddress string
	PasswordHash string
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	row := q.db.QueryRow(ctx, createUserSQL, arg.FirstName, arg.LastName, arg.EmailAddress, arg.PasswordHash)
	var u User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.EmailAddress, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

const getUserByEmailSQL = `
SELECT id, first_name, last_name, email_address, password_hash, created_at, updated_at
FROM users
WHERE email_address = $1`

func (q *Queries) GetUserByEmail(ctx context.Context, emailAddress string) (User, error) {
	row := q.db.QueryRow(ctx, getUserByEmailSQL, emailAddress)
	var u User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.EmailAddress, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

const getUserByIDSQL = `
SELECT id, first_name, last_name, email_address, password_hash, created_at, updated_at
FROM users
WHERE id = $1`

func (q *Queries) GetUserByID(ctx context.Context, id int64) (User, error) {
	row := q.db.QueryRow(ctx, getUserByIDSQL, id)
	var u User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.EmailAddress, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}
