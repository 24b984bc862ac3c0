package statistics_test

import (
	"context"
	"testing"

	"go-employee-api/internal/statistics"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupRepoTest(t *testing.T) (statistics.Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	return statistics.NewRepository(gormDB), mock
}

func TestStatisticsRepo_HighestSalaryByDepartment(t *testing.T) {
	repo, mock := setupRepoTest(t)

	mock.ExpectQuery(`SELECT(.|\n)*MAX\(e\.salary\) AS highest_salary(.|\n)*GROUP BY d\.name(.|\n)*ORDER BY highest_salary DESC`).
		WillReturnRows(sqlmock.
			NewRows([]string{"department", "highest_salary"}).
			AddRow("Engineering", 150000.0).
			AddRow("HR", 90000.0))

	rows, err := repo.HighestSalaryByDepartment(context.Background())

	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "Engineering", rows[0].Department)
	assert.Equal(t, 150000.0, rows[0].HighestSalary)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatisticsRepo_SalaryRangeCounts(t *testing.T) {
	repo, mock := setupRepoTest(t)

	// Only populated bands come back; the query orders them low to high.
	mock.ExpectQuery(`SELECT(.|\n)*CASE(.|\n)*GROUP BY salary_range(.|\n)*ORDER BY MIN\(salary\)`).
		WillReturnRows(sqlmock.
			NewRows([]string{"salary_range", "employee_count"}).
			AddRow("0-50000", int64(1)).
			AddRow("100000+", int64(2)))

	rows, err := repo.SalaryRangeCounts(context.Background())

	assert.NoError(t, err)
	assert.Len(t, rows, 2, "empty bands are omitted, not zero-filled")
	assert.Equal(t, "0-50000", rows[0].SalaryRange)
	assert.Equal(t, "100000+", rows[1].SalaryRange)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatisticsRepo_YoungestByDepartment(t *testing.T) {
	repo, mock := setupRepoTest(t)

	mock.ExpectQuery(`SELECT(.|\n)*date_part\('year', age\(current_date, e\.dob\)\)(.|\n)*MAX\(dob\)`).
		WillReturnRows(sqlmock.
			NewRows([]string{"department_name", "name", "age"}).
			AddRow("Engineering", "Alice", 24).
			AddRow("Engineering", "Bob", 24))

	rows, err := repo.YoungestByDepartment(context.Background())

	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, rows[0].Age, rows[1].Age)
	assert.NoError(t, mock.ExpectationsWereMet())
}
