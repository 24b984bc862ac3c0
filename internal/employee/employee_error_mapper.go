package employee

import (
	"errors"
	"strings"

	employeeerrors "go-employee-api/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation: the email index is the enforcement point
			if pgErr.ConstraintName == "uq_employee_email" {
				return employeeerrors.ErrEmailAlreadyExists
			}
		case "23503": // foreign_key_violation: department_id points nowhere
			return employeeerrors.ErrDepartmentMissing
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_employee_email") {
		return employeeerrors.ErrEmailAlreadyExists
	}

	return err
}
