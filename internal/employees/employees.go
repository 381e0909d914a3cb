package employees

import (
	"context"
	"database/sql"
	"errors"

	"harbor-tasks-backend/internal/apperr"
)

// Employee is an externally sourced record, immutable once fetched.
type Employee struct {
	UserID          string `json:"user_id"`
	FullName        string `json:"full_name"`
	Department      string `json:"department"`
	ExperienceLevel string `json:"experience_level"`
	Skills          string `json:"skills"`
	Hobbies         string `json:"hobbies"`
}

func (e Employee) Validate() error {
	switch {
	case e.UserID == "":
		return &apperr.Validation{Msg: "employee user_id is required"}
	case e.FullName == "":
		return &apperr.Validation{Msg: "employee full_name is required"}
	case e.Department == "":
		return &apperr.Validation{Msg: "employee department is required"}
	case e.ExperienceLevel == "":
		return &apperr.Validation{Msg: "employee experience_level is required"}
	}
	return nil
}

type Store struct {
	DB *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

func (s *Store) All(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT user_id, full_name, department, experience_level,
		       COALESCE(skills,''), COALESCE(hobbies,'')
		FROM employees
		ORDER BY user_id
	`)
	if err != nil {
		return nil, &apperr.Persistence{Op: "select employees", Cause: err}
	}
	defer rows.Close()

	var list []Employee
	for rows.Next() {
		var e Employee
		if err := rows.Scan(&e.UserID, &e.FullName, &e.Department, &e.ExperienceLevel, &e.Skills, &e.Hobbies); err != nil {
			return nil, &apperr.Persistence{Op: "scan employee", Cause: err}
		}
		if err := e.Validate(); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, &apperr.Persistence{Op: "select employees", Cause: err}
	}

	return list, nil
}

func (s *Store) ByID(ctx context.Context, id string) (Employee, error) {
	row := s.DB.QueryRowContext(ctx, `
		SELECT user_id, full_name, department, experience_level,
		       COALESCE(skills,''), COALESCE(hobbies,'')
		FROM employees
		WHERE user_id = $1
	`, id)

	var e Employee
	err := row.Scan(&e.UserID, &e.FullName, &e.Department, &e.ExperienceLevel, &e.Skills, &e.Hobbies)
	if errors.Is(err, sql.ErrNoRows) {
		return Employee{}, &apperr.NotFound{Kind: "employee", ID: id}
	}
	if err != nil {
		return Employee{}, &apperr.Persistence{Op: "select employee", Cause: err}
	}

	if err := e.Validate(); err != nil {
		return Employee{}, err
	}
	return e, nil
}
