package employee_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-employee-api/internal/employee"
	employeeerrors "go-employee-api/internal/employee/errors"
	"go-employee-api/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	CreateFn  func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetPageFn func(ctx context.Context, page, limit int) (employee.PaginatedEmployees, error)
	UpdateFn  func(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) error
	DeleteFn  func(ctx context.Context, id int64) error
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEmployeeService) GetPage(ctx context.Context, page, limit int) (employee.PaginatedEmployees, error) {
	return f.GetPageFn(ctx, page, limit)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) error {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id int64) error {
	return f.DeleteFn(ctx, id)
}

func init() {
	gin.SetMode(gin.TestMode)
	apperror.Init()
}

func newRouter(svc employee.Service) *gin.Engine {
	r := gin.New()
	h := employee.NewHandler(svc)
	r.GET("/employees", h.GetAll)
	r.POST("/employees", h.Create)
	r.PUT("/employees/:id", h.Update)
	r.DELETE("/employees/:id", h.Delete)
	return r
}

const validCreateBody = `{
	"department_id": 1,
	"name": "John Doe",
	"dob": "1990-05-20",
	"phone": "081234567890",
	"email": "john@example.com",
	"salary": 60000
}`

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "John Doe", req.Name)
				return employee.EmployeeResponse{
					ID:    1,
					Name:  req.Name,
					Phone: req.Phone,
					Email: req.Email,
				}, nil
			},
		}
		r := newRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(validCreateBody))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "John Doe")
		assert.Contains(t, w.Body.String(), "081234567890")
	})

	t.Run("missing required field returns 400 naming it", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				t.Fatal("service must not be called on validation failure")
				return employee.EmployeeResponse{}, nil
			},
		}
		r := newRouter(svc)

		body := `{"department_id":1,"dob":"1990-05-20","phone":"081234567890","email":"john@example.com","salary":60000}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Name is required")
	})

	t.Run("duplicate contact returns 409", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrPhoneAlreadyExists
			},
		}
		r := newRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(validCreateBody))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "Phone number already exists.")
	})

	t.Run("unexpected service error returns opaque 500", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, errors.New(`pq: syntax error at or near "SELECT"`)
			},
		}
		r := newRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(validCreateBody))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "SELECT", "SQL details must not leak")
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	t.Run("defaults applied when params absent", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetPageFn: func(ctx context.Context, page, limit int) (employee.PaginatedEmployees, error) {
				assert.Equal(t, 1, page)
				assert.Equal(t, 10, limit)
				return employee.PaginatedEmployees{CurrentPage: 1, TotalPages: 0}, nil
			},
		}
		r := newRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/employees", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("non-numeric page rejected, not masked", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetPageFn: func(ctx context.Context, page, limit int) (employee.PaginatedEmployees, error) {
				t.Fatal("service must not be called")
				return employee.PaginatedEmployees{}, nil
			},
		}
		r := newRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/employees?page=abc", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("pagination meta exposed in envelope", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetPageFn: func(ctx context.Context, page, limit int) (employee.PaginatedEmployees, error) {
				return employee.PaginatedEmployees{
					Employees:   []employee.EmployeeListItem{{ID: 21}, {ID: 22}},
					CurrentPage: 3,
					TotalPages:  3,
					TotalItems:  25,
				}, nil
			},
		}
		r := newRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/employees?page=3&limit=10", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"currentPage":3`)
		assert.Contains(t, w.Body.String(), `"totalPages":3`)
		assert.Contains(t, w.Body.String(), `"totalItems":25`)
	})
}

func TestEmployeeHandler_Update(t *testing.T) {
	t.Run("not found maps to 404", func(t *testing.T) {
		svc := &fakeEmployeeService{
			UpdateFn: func(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) error {
				return employeeerrors.ErrEmployeeNotFound
			},
		}
		r := newRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/employees/999", strings.NewReader(`{"name":"Ghost"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id rejected", func(t *testing.T) {
		svc := &fakeEmployeeService{}
		r := newRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/employees/abc", strings.NewReader(`{"name":"X Y"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	t.Run("missing id returns 404", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, id int64) error {
				return employeeerrors.ErrEmployeeNotFound
			},
		}
		r := newRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/employees/12345", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Employee not found.")
	})

	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, id int64) error {
				assert.Equal(t, int64(7), id)
				return nil
			},
		}
		r := newRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/employees/7", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Employee deleted successfully.")
	})
}
