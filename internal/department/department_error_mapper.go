package department

import (
	"errors"

	departmenterrors "go-employee-api/internal/department/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return departmenterrors.ErrDepartmentNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// foreign_key_violation: employees still reference the department
		if pgErr.Code == "23503" {
			return departmenterrors.ErrDepartmentInUse
		}
	}

	return err
}
