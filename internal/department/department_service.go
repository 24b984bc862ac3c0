package department

import (
	"context"
	"time"

	departmenterrors "go-employee-api/internal/department/errors"

	"go.uber.org/zap"
)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, id int64) (DepartmentResponse, error)
	Update(ctx context.Context, id int64, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	req CreateDepartmentRequest,
) (DepartmentResponse, error) {
	s.logger.Debug("create department requested", zap.String("name", req.Name))

	dept := &Department{
		Name:   req.Name,
		Status: *req.Status,
	}

	if err := s.repo.Create(ctx, dept); err != nil {
		s.logger.Error("create department persist failed", zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create department success", zap.Int64("department_id", dept.ID))
	return mapToResponse(*dept), nil
}

func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	depts, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all departments failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(depts), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (DepartmentResponse, error) {
	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("get department by id failed",
			zap.Int64("department_id", id),
			zap.Error(err),
		)
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*dept), nil
}

func (s *service) Update(
	ctx context.Context,
	id int64,
	req UpdateDepartmentRequest,
) (DepartmentResponse, error) {
	s.logger.Debug("update department requested", zap.Int64("department_id", id))

	dept := &Department{
		ID:     id,
		Name:   req.Name,
		Status: *req.Status,
	}

	affected, err := s.repo.Update(ctx, dept)
	if err != nil {
		s.logger.Error("update department persist failed", zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}
	if affected == 0 {
		return DepartmentResponse{}, departmenterrors.ErrDepartmentNotFound
	}

	s.logger.Info("update department success", zap.Int64("department_id", id))

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	s.logger.Debug("delete department requested", zap.Int64("department_id", id))

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete department failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if affected == 0 {
		return departmenterrors.ErrDepartmentNotFound
	}

	s.logger.Info("delete department success", zap.Int64("department_id", id))
	return nil
}

func mapToResponse(dept Department) DepartmentResponse {
	return DepartmentResponse{
		ID:       dept.ID,
		Name:     dept.Name,
		Status:   dept.Status,
		Created:  dept.CreatedAt.Format(time.RFC3339),
		Modified: dept.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res
}
