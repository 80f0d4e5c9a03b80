package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gymtech/dashboard/internal/core/domain"
	"github.com/gymtech/dashboard/internal/core/ports"
)

type ManagerHandler struct {
	pages     *Pages
	manager   ports.ManagerAPI
	employees ports.EmployeeAPI
}

func NewManagerHandler(pages *Pages, manager ports.ManagerAPI, employees ports.EmployeeAPI) *ManagerHandler {
	return &ManagerHandler{pages: pages, manager: manager, employees: employees}
}

type staffPage struct {
	Staff []domain.Employee
}

func (h *ManagerHandler) Staff(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return h.renderStaff(c, sess, "")
}

func (h *ManagerHandler) renderStaff(c echo.Context, sess domain.Session, pageErr string) error {
	staff, err := h.manager.Staff(c.Request().Context())
	if err != nil {
		return err
	}
	status := http.StatusOK
	if pageErr != "" {
		status = http.StatusUnprocessableEntity
	}
	return h.pages.render(c, status, "manager_staff.html", "Staff Management", sess, staffPage{Staff: staff}, pageErr)
}

// UpdateStaff changes one employee's position and salary.
func (h *ManagerHandler) UpdateStaff(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	employeeID, err := strconv.Atoi(c.FormValue("employee_id"))
	if err != nil {
		return h.renderStaff(c, sess, "invalid employee selection")
	}
	salary, err := strconv.ParseFloat(c.FormValue("salary"), 64)
	if err != nil || salary < 0 {
		return h.renderStaff(c, sess, "salary must be zero or more")
	}
	position := c.FormValue("position")
	if position == "" {
		return h.renderStaff(c, sess, "position is required")
	}

	in := ports.UpdateEmployeeInput{Salary: salary, Position: position}
	if _, err := h.employees.Update(c.Request().Context(), employeeID, in); err != nil {
		return h.renderStaff(c, sess, detailOf(err))
	}
	return redirectWithFlash(c, "Employee updated")
}
