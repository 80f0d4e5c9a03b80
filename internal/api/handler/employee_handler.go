package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/gymtech/dashboard/internal/core/domain"
	"github.com/gymtech/dashboard/internal/core/ports"
)

type EmployeeHandler struct {
	pages     *Pages
	employees ports.EmployeeAPI
	classes   ports.ClassAPI
	bookings  ports.BookingAPI
	equipment ports.EquipmentAPI
	inventory ports.InventoryAPI
}

func NewEmployeeHandler(pages *Pages, employees ports.EmployeeAPI, classes ports.ClassAPI, bookings ports.BookingAPI, equipment ports.EquipmentAPI, inventory ports.InventoryAPI) *EmployeeHandler {
	return &EmployeeHandler{
		pages:     pages,
		employees: employees,
		classes:   classes,
		bookings:  bookings,
		equipment: equipment,
		inventory: inventory,
	}
}

type employeeClassesPage struct {
	Classes   []domain.Class
	Selected  int
	Attendees []domain.Attendee
}

// Classes lists the signed-in trainer's schedule and, when one is selected,
// its attendance sheet.
func (h *EmployeeHandler) Classes(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return h.renderClasses(c, sess, "")
}

func (h *EmployeeHandler) renderClasses(c echo.Context, sess domain.Session, pageErr string) error {
	ctx := c.Request().Context()

	classes, err := h.classes.TrainerSchedule(ctx, sess.ID)
	if err != nil {
		return err
	}

	content := employeeClassesPage{Classes: classes}
	if raw := c.QueryParam("class"); raw != "" {
		scheduleID, err := strconv.Atoi(raw)
		if err == nil {
			attendees, err := h.classes.Attendees(ctx, scheduleID)
			if err != nil {
				return err
			}
			content.Selected = scheduleID
			content.Attendees = attendees
		}
	}

	status := http.StatusOK
	if pageErr != "" {
		status = http.StatusUnprocessableEntity
	}
	return h.pages.render(c, status, "employee_classes.html", "My Classes", sess, content, pageErr)
}

// MarkAttendance flips one booking's attended flag and returns to the same
// attendance sheet.
func (h *EmployeeHandler) MarkAttendance(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	bookingID, err := strconv.Atoi(c.FormValue("booking_id"))
	if err != nil {
		return h.renderClasses(c, sess, "invalid booking selection")
	}
	attended := c.FormValue("attended") == "true"

	if err := h.bookings.MarkAttendance(c.Request().Context(), bookingID, attended); err != nil {
		return h.renderClasses(c, sess, detailOf(err))
	}

	q := url.Values{"flash": []string{"Attendance updated"}}
	if class := c.QueryParam("class"); class != "" {
		q.Set("class", class)
	}
	return c.Redirect(http.StatusSeeOther, c.Request().URL.Path+"?"+q.Encode())
}

type manageClassesPage struct {
	Classes []domain.Class
}

func (h *EmployeeHandler) ManageClasses(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return h.renderManageClasses(c, sess, "")
}

func (h *EmployeeHandler) renderManageClasses(c echo.Context, sess domain.Session, pageErr string) error {
	classes, err := h.classes.All(c.Request().Context())
	if err != nil {
		return err
	}
	status := http.StatusOK
	if pageErr != "" {
		status = http.StatusUnprocessableEntity
	}
	return h.pages.render(c, status, "employee_manage_classes.html", "Manage Classes", sess,
		manageClassesPage{Classes: classes}, pageErr)
}

// CreateClass schedules a class with the signed-in employee as trainer.
func (h *EmployeeHandler) CreateClass(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	capacity, err := strconv.Atoi(c.FormValue("capacity"))
	if err != nil || capacity < 1 {
		return h.renderManageClasses(c, sess, "capacity must be a positive number")
	}
	in := ports.CreateClassInput{
		ClassName: c.FormValue("class_name"),
		TrainerID: sess.ID,
		StartTime: c.FormValue("start_time"),
		Capacity:  capacity,
	}
	if in.ClassName == "" || in.StartTime == "" {
		return h.renderManageClasses(c, sess, "class name and start time are required")
	}

	if _, err := h.classes.Create(c.Request().Context(), in); err != nil {
		return h.renderManageClasses(c, sess, detailOf(err))
	}
	return redirectWithFlash(c, "Class created")
}

type equipmentPage struct {
	Assets []domain.EquipmentAsset
}

func (h *EmployeeHandler) Equipment(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return h.renderEquipment(c, sess, "")
}

func (h *EmployeeHandler) renderEquipment(c echo.Context, sess domain.Session, pageErr string) error {
	assets, err := h.equipment.All(c.Request().Context())
	if err != nil {
		return err
	}
	status := http.StatusOK
	if pageErr != "" {
		status = http.StatusUnprocessableEntity
	}
	return h.pages.render(c, status, "employee_equipment.html", "Equipment", sess, equipmentPage{Assets: assets}, pageErr)
}

func (h *EmployeeHandler) UpdateEquipment(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	assetID, err := strconv.Atoi(c.FormValue("asset_id"))
	if err != nil {
		return h.renderEquipment(c, sess, "invalid equipment selection")
	}
	if _, err := h.equipment.UpdateStatus(c.Request().Context(), assetID, c.FormValue("status")); err != nil {
		return h.renderEquipment(c, sess, detailOf(err))
	}
	return redirectWithFlash(c, "Equipment updated")
}

type inventoryPage struct {
	Items []domain.InventoryItem
}

func (h *EmployeeHandler) Inventory(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return h.renderInventory(c, sess, "")
}

func (h *EmployeeHandler) renderInventory(c echo.Context, sess domain.Session, pageErr string) error {
	items, err := h.inventory.All(c.Request().Context())
	if err != nil {
		return err
	}
	status := http.StatusOK
	if pageErr != "" {
		status = http.StatusUnprocessableEntity
	}
	return h.pages.render(c, status, "employee_inventory.html", "Inventory", sess, inventoryPage{Items: items}, pageErr)
}

func (h *EmployeeHandler) UpdateInventory(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	itemID, err := strconv.Atoi(c.FormValue("item_id"))
	if err != nil {
		return h.renderInventory(c, sess, "invalid item selection")
	}

	var in ports.InventoryUpdateInput
	if raw := c.FormValue("current_stock"); raw != "" {
		stock, err := strconv.Atoi(raw)
		if err != nil || stock < 0 {
			return h.renderInventory(c, sess, "stock must be zero or more")
		}
		in.CurrentStock = &stock
	}
	if raw := c.FormValue("unit_selling_price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil || price < 0 {
			return h.renderInventory(c, sess, "price must be zero or more")
		}
		in.UnitSellingPrice = &price
	}

	if _, err := h.inventory.Update(c.Request().Context(), itemID, in); err != nil {
		return h.renderInventory(c, sess, detailOf(err))
	}
	return redirectWithFlash(c, "Inventory updated")
}

type logEntryPage struct {
	Members []domain.Member
}

func (h *EmployeeHandler) LogEntry(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return h.renderLogEntry(c, sess, "")
}

func (h *EmployeeHandler) renderLogEntry(c echo.Context, sess domain.Session, pageErr string) error {
	members, err := h.employees.AllMembers(c.Request().Context())
	if err != nil {
		return err
	}
	status := http.StatusOK
	if pageErr != "" {
		status = http.StatusUnprocessableEntity
	}
	return h.pages.render(c, status, "employee_log_entry.html", "Log Activity", sess, logEntryPage{Members: members}, pageErr)
}

func (h *EmployeeHandler) LogActivity(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	memberID, err := strconv.Atoi(c.FormValue("member_id"))
	if err != nil {
		return h.renderLogEntry(c, sess, "invalid member selection")
	}

	details := map[string]any{}
	if raw := c.FormValue("duration_minutes"); raw != "" {
		if minutes, err := strconv.Atoi(raw); err == nil {
			details["duration_minutes"] = minutes
		}
	}
	if notes := c.FormValue("notes"); notes != "" {
		details["notes"] = notes
	}

	in := ports.LogActivityInput{
		MemberID:     memberID,
		ActivityType: c.FormValue("activity_type"),
		Details:      details,
	}
	if err := h.employees.LogActivity(c.Request().Context(), in); err != nil {
		return h.renderLogEntry(c, sess, detailOf(err))
	}
	return redirectWithFlash(c, "Activity logged")
}

type membersPage struct {
	Members []domain.Member
}

func (h *EmployeeHandler) Members(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return h.renderMembers(c, sess, "")
}

func (h *EmployeeHandler) renderMembers(c echo.Context, sess domain.Session, pageErr string) error {
	members, err := h.employees.AllMembers(c.Request().Context())
	if err != nil {
		return err
	}
	status := http.StatusOK
	if pageErr != "" {
		status = http.StatusUnprocessableEntity
	}
	return h.pages.render(c, status, "employee_members.html", "Members", sess, membersPage{Members: members}, pageErr)
}

func (h *EmployeeHandler) AddMember(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	in := ports.AddMemberInput{
		FullName: c.FormValue("full_name"),
		Email:    c.FormValue("email"),
		Phone:    c.FormValue("phone"),
		Address:  c.FormValue("address"),
	}
	if in.FullName == "" || in.Email == "" || in.Phone == "" {
		return h.renderMembers(c, sess, "name, email and phone are required")
	}

	if _, err := h.employees.AddMember(c.Request().Context(), in); err != nil {
		return h.renderMembers(c, sess, detailOf(err))
	}
	return redirectWithFlash(c, "Member added")
}

type suppliersPage struct {
	Suppliers []domain.Supplier
}

func (h *EmployeeHandler) Suppliers(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	suppliers, err := h.employees.Suppliers(c.Request().Context())
	if err != nil {
		return err
	}
	return h.pages.render(c, http.StatusOK, "employee_suppliers.html", "Suppliers", sess,
		suppliersPage{Suppliers: suppliers}, "")
}

type maintenancePage struct {
	Logs   []domain.MaintenanceLog
	Assets []domain.EquipmentAsset
}

func (h *EmployeeHandler) Maintenance(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return h.renderMaintenance(c, sess, "")
}

func (h *EmployeeHandler) renderMaintenance(c echo.Context, sess domain.Session, pageErr string) error {
	g, ctx := errgroup.WithContext(c.Request().Context())

	var content maintenancePage
	g.Go(func() error {
		var err error
		content.Logs, err = h.equipment.MaintenanceLogs(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		content.Assets, err = h.equipment.All(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	status := http.StatusOK
	if pageErr != "" {
		status = http.StatusUnprocessableEntity
	}
	return h.pages.render(c, status, "employee_maintenance.html", "Maintenance", sess, content, pageErr)
}

func (h *EmployeeHandler) AddMaintenanceLog(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	assetID, err := strconv.Atoi(c.FormValue("asset_id"))
	if err != nil {
		return h.renderMaintenance(c, sess, "invalid equipment selection")
	}
	cost, err := strconv.ParseFloat(c.FormValue("repair_cost"), 64)
	if err != nil || cost < 0 {
		return h.renderMaintenance(c, sess, "repair cost must be zero or more")
	}

	in := ports.AddMaintenanceLogInput{
		AssetID:     assetID,
		PerformedBy: sess.ID,
		RepairCost:  cost,
		Notes:       c.FormValue("notes"),
	}
	if _, err := h.equipment.AddMaintenanceLog(c.Request().Context(), in); err != nil {
		return h.renderMaintenance(c, sess, detailOf(err))
	}
	return redirectWithFlash(c, "Maintenance recorded")
}

type employeeProfilePage struct {
	Profile domain.Employee
}

func (h *EmployeeHandler) Profile(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	profile, err := h.employees.Profile(c.Request().Context(), sess.ID)
	if err != nil {
		return err
	}
	return h.pages.render(c, http.StatusOK, "employee_profile.html", "My Profile", sess,
		employeeProfilePage{Profile: profile}, "")
}
