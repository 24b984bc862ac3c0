package employee

import (
	"context"
	"regexp"
	"time"

	employeeerrors "go-employee-api/internal/employee/errors"
	"go-employee-api/internal/shared/contextutil"
	"go-employee-api/internal/shared/phonecrypt"

	"go.uber.org/zap"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10,15}$`)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetPage(ctx context.Context, page, limit int) (PaginatedEmployees, error)
	Update(ctx context.Context, id int64, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo   Repository
	hasher phonecrypt.Hasher
	logger *zap.Logger
}

func NewService(repo Repository, hasher phonecrypt.Hasher, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:   repo,
		hasher: hasher,
		logger: l,
	}
}

// checkDuplicateContact enforces contact uniqueness before a write. Email
// is an indexed exact match and short-circuits. Phones exist only as
// salted one-way hashes, so no equality query is possible: every other
// stored hash is verified against the candidate in turn. That scan is
// O(n) with one bcrypt verification per row and is the scalability
// ceiling of this service; it is accepted as the price of never storing
// a recoverable phone number. excludeID > 0 skips the record being
// updated in both passes.
//
// The check is a fast path with a precise message, not the guarantee:
// two concurrent requests can both pass it. The unique index on email is
// the real enforcement point there; phones have no equivalent backstop.
func (s *service) checkDuplicateContact(ctx context.Context, email, phone string, excludeID int64) error {
	if email != "" {
		exists, err := s.repo.ExistsByEmail(ctx, email, excludeID)
		if err != nil {
			return mapRepositoryError(err)
		}
		if exists {
			return employeeerrors.ErrEmailAlreadyExists
		}
	}

	if phone != "" {
		hashes, err := s.repo.FindPhoneHashes(ctx, excludeID)
		if err != nil {
			return mapRepositoryError(err)
		}
		for _, row := range hashes {
			if row.Phone == "" {
				continue
			}
			if s.hasher.Verify(phone, row.Phone) {
				return employeeerrors.ErrPhoneAlreadyExists
			}
		}
	}

	return nil
}

func parseDOB(value string) (time.Time, error) {
	dob, err := time.Parse(dateLayout, value)
	if err != nil || !dob.Before(time.Now()) {
		return time.Time{}, employeeerrors.ErrInvalidDOB
	}
	return dob, nil
}

func (s *service) Create(
	ctx context.Context,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.Int64("department_id", req.DepartmentID),
		zap.String("email", req.Email),
	)

	dob, err := parseDOB(req.DOB)
	if err != nil {
		s.logger.Warn("create employee invalid dob", zap.String("dob", req.DOB))
		return EmployeeResponse{}, err
	}
	if !phonePattern.MatchString(req.Phone) {
		s.logger.Warn("create employee invalid phone")
		return EmployeeResponse{}, employeeerrors.ErrInvalidPhone
	}
	status := req.Status
	if status == "" {
		status = "active"
	}

	if err := s.checkDuplicateContact(ctx, req.Email, req.Phone, 0); err != nil {
		s.logger.Warn("create employee duplicate contact",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	protected, err := s.hasher.Protect(req.Phone)
	if err != nil {
		s.logger.Error("create employee phone protect failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		DepartmentID: req.DepartmentID,
		Name:         req.Name,
		DOB:          dob,
		Phone:        protected,
		Photo:        req.Photo,
		Email:        req.Email,
		Salary:       req.Salary,
		Status:       status,
	}

	if err := s.repo.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Int64("employee_id", empl.ID),
	)

	// The caller gets back its own plaintext phone, never the hash.
	return EmployeeResponse{
		ID:           empl.ID,
		DepartmentID: empl.DepartmentID,
		Name:         empl.Name,
		DOB:          empl.DOB.Format(dateLayout),
		Phone:        req.Phone,
		Photo:        empl.Photo,
		Email:        empl.Email,
		Salary:       empl.Salary,
		Status:       empl.Status,
	}, nil
}

func (s *service) GetPage(ctx context.Context, page, limit int) (PaginatedEmployees, error) {
	if page < 1 || limit < 1 {
		return PaginatedEmployees{}, employeeerrors.ErrInvalidPagination
	}
	offset := (page - 1) * limit

	rows, err := s.repo.FindPage(ctx, limit, offset)
	if err != nil {
		s.logger.Error("get employees page failed", zap.Error(err))
		return PaginatedEmployees{}, mapRepositoryError(err)
	}

	total, err := s.repo.CountAll(ctx)
	if err != nil {
		s.logger.Error("count employees failed", zap.Error(err))
		return PaginatedEmployees{}, mapRepositoryError(err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	items := make([]EmployeeListItem, len(rows))
	for i, row := range rows {
		items[i] = EmployeeListItem{
			ID:             row.ID,
			Name:           row.Name,
			DOB:            row.DOB.Format(dateLayout),
			Email:          row.Email,
			Salary:         row.Salary,
			Status:         row.Status,
			DepartmentName: row.DepartmentName,
		}
	}

	return PaginatedEmployees{
		Employees:   items,
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
	}, nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateEmployeeRequest) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.Int64("employee_id", id),
	)

	if req.IsEmpty() {
		return employeeerrors.ErrNoFieldsToUpdate
	}

	var email, phone string
	if req.Email != nil {
		email = *req.Email
	}
	if req.Phone != nil {
		if !phonePattern.MatchString(*req.Phone) {
			return employeeerrors.ErrInvalidPhone
		}
		phone = *req.Phone
	}
	if email != "" || phone != "" {
		if err := s.checkDuplicateContact(ctx, email, phone, id); err != nil {
			s.logger.Warn("update employee duplicate contact",
				zap.Int64("employee_id", id),
				zap.Error(err),
			)
			return err
		}
	}

	fields := map[string]any{}
	if req.DepartmentID != nil {
		fields["department_id"] = *req.DepartmentID
	}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.DOB != nil {
		dob, err := parseDOB(*req.DOB)
		if err != nil {
			return err
		}
		fields["dob"] = dob
	}
	if phone != "" {
		protected, err := s.hasher.Protect(phone)
		if err != nil {
			s.logger.Error("update employee phone protect failed", zap.Error(err))
			return err
		}
		fields["phone"] = protected
	}
	if req.Photo != nil {
		fields["photo"] = *req.Photo
	}
	if email != "" {
		fields["email"] = email
	}
	if req.Salary != nil {
		fields["salary"] = *req.Salary
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}

	affected, err := s.repo.UpdateFields(ctx, id, fields)
	if err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if affected == 0 {
		// Postgres reports matched rows, so zero means the id is absent.
		return employeeerrors.ErrEmployeeNotFound
	}

	s.logger.Info("update employee success",
		zap.String("request_id", rid),
		zap.Int64("employee_id", id),
	)
	return nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	s.logger.Debug("delete employee requested", zap.Int64("employee_id", id))

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if affected == 0 {
		return employeeerrors.ErrEmployeeNotFound
	}

	s.logger.Info("delete employee success", zap.Int64("employee_id", id))
	return nil
}
