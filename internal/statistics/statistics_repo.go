package statistics

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=statistics_repo.go -destination=mock/statistics_repo_mock.go -package=mock
type Repository interface {
	HighestSalaryByDepartment(ctx context.Context) ([]HighestSalaryRow, error)
	SalaryRangeCounts(ctx context.Context) ([]SalaryRangeRow, error)
	YoungestByDepartment(ctx context.Context) ([]YoungestEmployeeRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) HighestSalaryByDepartment(ctx context.Context) ([]HighestSalaryRow, error) {
	var rows []HighestSalaryRow
	query := `
SELECT
	d.name AS department,
	MAX(e.salary) AS highest_salary
FROM employees e
JOIN departments d ON d.id = e.department_id
GROUP BY d.name
ORDER BY highest_salary DESC
`

	err := r.db.WithContext(ctx).Raw(query).Scan(&rows).Error
	return rows, err
}

// SalaryRangeCounts buckets employees into the three fixed bands. Bands
// with no members produce no row; ordering by MIN(salary) keeps the bands
// in low-to-high order whatever the counts are.
func (r *repository) SalaryRangeCounts(ctx context.Context) ([]SalaryRangeRow, error) {
	var rows []SalaryRangeRow
	query := `
SELECT
	CASE
		WHEN salary BETWEEN 0 AND 50000 THEN '0-50000'
		WHEN salary BETWEEN 50001 AND 100000 THEN '50001-100000'
		ELSE '100000+'
	END AS salary_range,
	COUNT(*) AS employee_count
FROM employees
GROUP BY salary_range
ORDER BY MIN(salary)
`

	err := r.db.WithContext(ctx).Raw(query).Scan(&rows).Error
	return rows, err
}

// YoungestByDepartment returns the employee with the most recent date of
// birth per department; exact dob ties all qualify, so a department can
// contribute more than one row. Age is whole years at query time.
func (r *repository) YoungestByDepartment(ctx context.Context) ([]YoungestEmployeeRow, error) {
	var rows []YoungestEmployeeRow
	query := `
SELECT
	d.name AS department_name,
	e.name,
	date_part('year', age(current_date, e.dob))::int AS age
FROM employees e
JOIN departments d ON d.id = e.department_id
WHERE (e.department_id, e.dob) IN (
	SELECT department_id, MAX(dob)
	FROM employees
	GROUP BY department_id
)
ORDER BY d.name, e.id
`

	err := r.db.WithContext(ctx).Raw(query).Scan(&rows).Error
	return rows, err
}
