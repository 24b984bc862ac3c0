package department

type CreateDepartmentRequest struct {
	Name   string `json:"name" binding:"required,min=1,max=255"`
	Status *bool  `json:"status" binding:"required"`
}

type UpdateDepartmentRequest struct {
	Name   string `json:"name" binding:"required,min=1,max=255"`
	Status *bool  `json:"status" binding:"required"`
}

type DepartmentResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Status   bool   `json:"status"`
	Created  string `json:"created"`
	Modified string `json:"modified"`
}
