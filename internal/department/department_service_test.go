package department_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-employee-api/internal/department"
	departmenterrors "go-employee-api/internal/department/errors"
	departmentMock "go-employee-api/internal/department/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setupServiceTest(t *testing.T) (department.Service, *departmentMock.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := departmentMock.NewMockRepository(ctrl)
	return department.NewService(repo), repo
}

func boolPtr(b bool) *bool { return &b }

func TestDepartmentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		req := department.CreateDepartmentRequest{Name: "HR", Status: boolPtr(true)}

		repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, d *department.Department) error {
				assert.Equal(t, "HR", d.Name)
				assert.True(t, d.Status)
				d.ID = 3
				return nil
			})

		resp, err := svc.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), resp.ID)
		assert.Equal(t, "HR", resp.Name)
	})

	t.Run("repo error propagates", func(t *testing.T) {
		svc, repo := setupServiceTest(t)

		repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(errors.New("db error"))

		_, err := svc.Create(ctx, department.CreateDepartmentRequest{Name: "HR", Status: boolPtr(true)})

		assert.Error(t, err)
	})
}

func TestDepartmentService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, repo := setupServiceTest(t)

		repo.EXPECT().
			FindByID(ctx, int64(3)).
			Return(&department.Department{
				ID:        3,
				Name:      "HR",
				Status:    true,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}, nil)

		resp, err := svc.GetByID(ctx, 3)

		assert.NoError(t, err)
		assert.Equal(t, "HR", resp.Name)
	})

	t.Run("record not found maps to 404", func(t *testing.T) {
		svc, repo := setupServiceTest(t)

		repo.EXPECT().
			FindByID(ctx, int64(99)).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetByID(ctx, 99)

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
	})
}

func TestDepartmentService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		req := department.UpdateDepartmentRequest{Name: "People Ops", Status: boolPtr(false)}

		repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, d *department.Department) (int64, error) {
				assert.Equal(t, int64(3), d.ID)
				assert.Equal(t, "People Ops", d.Name)
				return 1, nil
			})
		repo.EXPECT().
			FindByID(ctx, int64(3)).
			Return(&department.Department{ID: 3, Name: "People Ops", Status: false}, nil)

		resp, err := svc.Update(ctx, 3, req)

		assert.NoError(t, err)
		assert.Equal(t, "People Ops", resp.Name)
	})

	t.Run("zero affected rows means not found", func(t *testing.T) {
		svc, repo := setupServiceTest(t)

		repo.EXPECT().
			Update(ctx, gomock.Any()).
			Return(int64(0), nil)

		_, err := svc.Update(ctx, 99, department.UpdateDepartmentRequest{Name: "X", Status: boolPtr(true)})

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
	})
}

func TestDepartmentService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, repo := setupServiceTest(t)

		repo.EXPECT().
			Delete(ctx, int64(3)).
			Return(int64(1), nil)

		assert.NoError(t, svc.Delete(ctx, 3))
	})

	t.Run("missing id returns not found", func(t *testing.T) {
		svc, repo := setupServiceTest(t)

		repo.EXPECT().
			Delete(ctx, int64(99)).
			Return(int64(0), nil)

		assert.ErrorIs(t, svc.Delete(ctx, 99), departmenterrors.ErrDepartmentNotFound)
	})
}
