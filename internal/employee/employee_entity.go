package employee

import (
	"time"

	"go-employee-api/internal/department"
)

type Employee struct {
	ID           int64     `gorm:"primaryKey"`
	DepartmentID int64     `gorm:"not null;index"`
	Name         string    `gorm:"size:255;not null"`
	DOB          time.Time `gorm:"column:dob;type:date;not null"`
	Phone        string    `gorm:"size:72"` // bcrypt hash, never the plaintext
	Photo        string    `gorm:"size:2048"`
	Email        string    `gorm:"size:255;not null;uniqueIndex:uq_employee_email"`
	Salary       float64   `gorm:"not null"`
	Status       string    `gorm:"size:16;not null;default:active"`
	CreatedAt    time.Time `gorm:"column:created"`
	UpdatedAt    time.Time `gorm:"column:modified"`

	Department *department.Department `gorm:"foreignKey:DepartmentID"`
}

// PhoneHash is the projection used by the duplicate-contact scan.
type PhoneHash struct {
	ID    int64
	Phone string
}

// EmployeeWithDepartment is the joined row returned by the paginated list.
type EmployeeWithDepartment struct {
	ID             int64
	Name           string
	DOB            time.Time
	Email          string
	Salary         float64
	Status         string
	DepartmentName string
}
