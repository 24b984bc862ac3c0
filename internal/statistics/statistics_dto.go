package statistics

type HighestSalaryRow struct {
	Department    string  `json:"department"`
	HighestSalary float64 `json:"highest_salary"`
}

type SalaryRangeRow struct {
	SalaryRange   string `json:"salary_range"`
	EmployeeCount int64  `json:"employee_count"`
}

type YoungestEmployeeRow struct {
	DepartmentName string `json:"department_name"`
	Name           string `json:"name"`
	Age            int    `json:"age"`
}
