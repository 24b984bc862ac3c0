package employee

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, empl *Employee) error
	FindPage(ctx context.Context, limit, offset int) ([]EmployeeWithDepartment, error)
	CountAll(ctx context.Context) (int64, error)
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)
	FindPhoneHashes(ctx context.Context, excludeID int64) ([]PhoneHash, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]any) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindPage(ctx context.Context, limit, offset int) ([]EmployeeWithDepartment, error) {
	var rows []EmployeeWithDepartment
	query := `
SELECT
	e.id, e.name, e.dob, e.email, e.salary, e.status,
	d.name AS department_name
FROM employees e
JOIN departments d ON d.id = e.department_id
ORDER BY e.id ASC
LIMIT ? OFFSET ?
`

	err := r.db.WithContext(ctx).Raw(query, limit, offset).Scan(&rows).Error
	return rows, err
}

func (r *repository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&Employee{}).Count(&total).Error
	return total, err
}

func (r *repository) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("email = ?", email)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindPhoneHashes returns the stored phone hashes of every other employee.
// Rows with no stored phone are filtered out here so the caller never
// verifies against an empty hash.
func (r *repository) FindPhoneHashes(ctx context.Context, excludeID int64) ([]PhoneHash, error) {
	q := r.db.WithContext(ctx).
		Model(&Employee{}).
		Select("id", "phone").
		Where("phone <> ''")
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var hashes []PhoneHash
	err := q.Order("id ASC").Find(&hashes).Error
	return hashes, err
}

// UpdateFields applies the supplied column values in one statement and
// reports how many rows matched. gorm refreshes modified automatically.
func (r *repository) UpdateFields(ctx context.Context, id int64, fields map[string]any) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("id = ?", id).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *repository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
