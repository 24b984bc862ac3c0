package departmenterrors

import (
	"net/http"

	"go-employee-api/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found.",
		http.StatusNotFound,
	)
	ErrDepartmentInUse = apperror.New(
		apperror.CodeConflict,
		"Department still has employees assigned.",
		http.StatusConflict,
	)
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid department ID",
		http.StatusBadRequest,
	)
)
