package statistics

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=statistics_service.go -destination=mock/statistics_service_mock.go -package=mock
type Service interface {
	HighestSalaryByDepartment(ctx context.Context) ([]HighestSalaryRow, error)
	SalaryRangeCounts(ctx context.Context) ([]SalaryRangeRow, error)
	YoungestByDepartment(ctx context.Context) ([]YoungestEmployeeRow, error)
}

type service struct {
	repo   Repository
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("statistics.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("statistics.service")
	}
	return &service{
		repo:   repo,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// The three reports are full-table aggregates with no parameters, so
// concurrent identical requests collapse into a single query execution.

func (s *service) HighestSalaryByDepartment(ctx context.Context) ([]HighestSalaryRow, error) {
	v, err, _ := s.sf.Do("highest-salary", func() (interface{}, error) {
		rows, err := s.repo.HighestSalaryByDepartment(ctx)
		if err != nil {
			s.logger.Error("highest salary query failed", zap.Error(err))
			return nil, err
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]HighestSalaryRow), nil
}

func (s *service) SalaryRangeCounts(ctx context.Context) ([]SalaryRangeRow, error) {
	v, err, _ := s.sf.Do("salary-range-count", func() (interface{}, error) {
		rows, err := s.repo.SalaryRangeCounts(ctx)
		if err != nil {
			s.logger.Error("salary range query failed", zap.Error(err))
			return nil, err
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]SalaryRangeRow), nil
}

func (s *service) YoungestByDepartment(ctx context.Context) ([]YoungestEmployeeRow, error) {
	v, err, _ := s.sf.Do("youngest-employee", func() (interface{}, error) {
		rows, err := s.repo.YoungestByDepartment(ctx)
		if err != nil {
			s.logger.Error("youngest employee query failed", zap.Error(err))
			return nil, err
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]YoungestEmployeeRow), nil
}
