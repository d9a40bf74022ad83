package http

import (
	"net/http"

	"github.com/worklens/attendance-backend-go/internal/domain/department"
	"github.com/worklens/attendance-backend-go/internal/handler/http/response"
)

type DepartmentHandler struct {
	departmentService department.DepartmentService
}

func NewDepartmentHandler(departmentService department.DepartmentService) DepartmentHandler {
	return DepartmentHandler{departmentService: departmentService}
}

// List handles GET /api/v1/departments.
func (h DepartmentHandler) List(w http.ResponseWriter, r *http.Request) {
	departments, err := h.departmentService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, departments)
}
