package employee

type CreateEmployeeRequest struct {
	DepartmentID int64   `json:"department_id" binding:"required,gt=0"`
	Name         string  `json:"name" binding:"required,min=3,max=255"`
	DOB          string  `json:"dob" binding:"required"`
	Phone        string  `json:"phone" binding:"required"`
	Photo        string  `json:"photo" binding:"omitempty,uri"`
	Email        string  `json:"email" binding:"required,email"`
	Salary       float64 `json:"salary" binding:"required,gt=0"`
	Status       string  `json:"status" binding:"omitempty,oneof=active inactive"`
}

// UpdateEmployeeRequest carries a fixed set of optional field slots; only
// non-nil slots are written.
type UpdateEmployeeRequest struct {
	DepartmentID *int64   `json:"department_id" binding:"omitempty,gt=0"`
	Name         *string  `json:"name" binding:"omitempty,min=3,max=255"`
	DOB          *string  `json:"dob"`
	Phone        *string  `json:"phone"`
	Photo        *string  `json:"photo" binding:"omitempty,uri"`
	Email        *string  `json:"email" binding:"omitempty,email"`
	Salary       *float64 `json:"salary" binding:"omitempty,gt=0"`
	Status       *string  `json:"status" binding:"omitempty,oneof=active inactive"`
}

func (r UpdateEmployeeRequest) IsEmpty() bool {
	return r.DepartmentID == nil &&
		r.Name == nil &&
		r.DOB == nil &&
		r.Phone == nil &&
		r.Photo == nil &&
		r.Email == nil &&
		r.Salary == nil &&
		r.Status == nil
}

type EmployeeResponse struct {
	ID           int64   `json:"id"`
	DepartmentID int64   `json:"department_id"`
	Name         string  `json:"name"`
	DOB          string  `json:"dob"`
	Phone        string  `json:"phone"` // plaintext echo of the caller's input
	Photo        string  `json:"photo,omitempty"`
	Email        string  `json:"email"`
	Salary       float64 `json:"salary"`
	Status       string  `json:"status"`
}

type EmployeeListItem struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	DOB            string  `json:"dob"`
	Email          string  `json:"email"`
	Salary         float64 `json:"salary"`
	Status         string  `json:"status"`
	DepartmentName string  `json:"department_name"`
}

type PaginatedEmployees struct {
	Employees   []EmployeeListItem
	CurrentPage int
	TotalPages  int
	TotalItems  int64
}
