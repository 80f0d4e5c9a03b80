// Package stub is an in-memory rendition of the gym backend the dashboard
// talks to. It exists for local development and end-to-end testing: same
// routes, same payload shapes, same {"detail": ...} error envelope as the
// real service, with seeded demo data instead of a database.
package stub

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gymtech/dashboard/internal/core/domain"
	"github.com/gymtech/dashboard/internal/core/ports"
)

type Server struct {
	e      *echo.Echo
	secret []byte
	log    zerolog.Logger

	mu       sync.Mutex
	accounts []account
	data     *dataset
}

func New(secret string, log zerolog.Logger) *Server {
	s := &Server{
		secret: []byte(secret),
		log:    log,
		data:   seed(),
	}
	s.accounts = demoAccounts(func(pw string) []byte {
		hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			panic(err)
		}
		return hash
	})

	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())

	e.POST("/login", s.login)

	auth := e.Group("", s.requireToken)
	auth.GET("/member/:id/profile", s.memberProfile)
	auth.PUT("/member/:id/profile", s.updateMemberProfile)
	auth.GET("/member/:id/calendar", s.memberCalendar)
	auth.GET("/member/:id/subscriptions", s.memberSubscriptions)
	auth.GET("/member/:id/purchases", s.memberPurchases)
	auth.GET("/member/:id/bookings", s.memberBookings)
	auth.GET("/classes/available", s.availableClasses)
	auth.GET("/classes/all", s.allClasses)
	auth.POST("/api/classes", s.createClass)
	auth.GET("/classes/:id/attendees", s.classAttendees)
	auth.GET("/employee/:id/classes", s.trainerClasses)
	auth.POST("/bookings", s.createBooking)
	auth.DELETE("/bookings/:id", s.deleteBooking)
	auth.PATCH("/attendance/:id", s.markAttendance)
	auth.GET("/members/all", s.allMembers)
	auth.POST("/employee/add-member", s.addMember)
	auth.POST("/employee/log-activity", s.logActivity)
	auth.GET("/employee/:id/profile", s.employeeProfile)
	auth.GET("/api/employees", s.allEmployees)
	auth.PATCH("/api/employees/:id", s.updateEmployee)
	auth.GET("/suppliers", s.allSuppliers)
	auth.GET("/equipment/status", s.equipmentStatus)
	auth.GET("/employee/equipment", s.allEquipment)
	auth.PATCH("/equipment/:id", s.updateEquipment)
	auth.GET("/maintenance/logs", s.maintenanceLogs)
	auth.POST("/maintenance/logs", s.addMaintenanceLog)
	auth.GET("/inventory/all", s.allInventory)
	auth.PATCH("/inventory/:id", s.updateInventory)
	auth.POST("/member/purchase", s.purchase)
	auth.GET("/manager/analytics", s.analytics)
	auth.GET("/manager/staff", s.staff)
	auth.GET("/plans", s.plans)
	auth.POST("/api/chat", s.chat)

	s.e = e
	return s
}

// Handler exposes the stub for httptest servers.
func (s *Server) Handler() http.Handler {
	return s.e
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

func (s *Server) Shutdown() error {
	return s.e.Close()
}

// detail writes the FastAPI-style error envelope the dashboard normalizes.
func detail(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]string{"detail": msg})
}

func (s *Server) requireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return detail(c, http.StatusUnauthorized, "not authenticated")
		}
		tkn, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return s.secret, nil
		})
		if err != nil || !tkn.Valid {
			return detail(c, http.StatusUnauthorized, "invalid token")
		}
		return next(c)
	}
}

func (s *Server) login(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "invalid payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.accounts {
		if acc.Username != req.Username {
			continue
		}
		if bcrypt.CompareHashAndPassword(acc.Hash, []byte(req.Password)) != nil {
			break
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":  acc.Session.ID,
			"role": string(acc.Session.Role),
			"name": acc.Session.Name,
			"exp":  time.Now().Add(24 * time.Hour).Unix(),
		})
		signed, err := token.SignedString(s.secret)
		if err != nil {
			return detail(c, http.StatusInternalServerError, "could not sign token")
		}
		return c.JSON(http.StatusOK, map[string]any{
			"access_token": signed,
			"user":         acc.Session,
		})
	}
	return detail(c, http.StatusUnauthorized, "incorrect username or password")
}

func pathID(c echo.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}

func (s *Server) memberProfile(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return detail(c, http.StatusBadRequest, "invalid member id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.data.memberByID(id)
	if !ok {
		return detail(c, http.StatusNotFound, "member not found")
	}
	return c.JSON(http.StatusOK, *m)
}

func (s *Server) updateMemberProfile(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return detail(c, http.StatusBadRequest, "invalid member id")
	}
	var req struct {
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
	}
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "invalid payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.data.memberByID(id)
	if !ok {
		return detail(c, http.StatusNotFound, "member not found")
	}
	if req.Email != "" {
		m.Email = req.Email
	}
	if req.Phone != "" {
		m.Phone = req.Phone
	}
	if req.Address != "" {
		m.Address = req.Address
	}
	return c.JSON(http.StatusOK, *m)
}

func (s *Server) memberCalendar(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return detail(c, http.StatusBadRequest, "invalid member id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.ActivityLog{}
	for _, a := range s.data.activity {
		if a.MemberID == id {
			out = append(out, a)
		}
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) memberSubscriptions(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return detail(c, http.StatusBadRequest, "invalid member id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Enrollment{}
	for _, e := range s.data.enrollments {
		if e.MemberID == id {
			out = append(out, e)
		}
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) memberPurchases(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return detail(c, http.StatusBadRequest, "invalid member id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Purchase{}
	for _, p := range s.data.purchases {
		if p.MemberID == id {
			out = append(out, p)
		}
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) memberBookings(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return detail(c, http.StatusBadRequest, "invalid member id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Booking{}
	for _, b := range s.data.bookings {
		if b.MemberID == id {
			out = append(out, b)
		}
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) availableClasses(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Class{}
	for _, cl := range s.data.classes {
		if cl.BookedCount < cl.Capacity {
			out = append(out, cl)
		}
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) allClasses(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, s.data.classes)
}

func (s *Server) createClass(c echo.Context) error {
	var req ports.CreateClassInput
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "invalid payload")
	}
	if req.ClassName == "" || req.StartTime == "" || req.Capacity < 1 {
		return detail(c, http.StatusUnprocessableEntity, "class name, start time and capacity are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	trainerName := ""
	if emp, ok := s.data.employeeByID(req.TrainerID); ok {
		trainerName = emp.Name
	}
	cl := domain.Class{
		ScheduleID:  s.data.nextScheduleID,
		ClassName:   req.ClassName,
		TrainerID:   req.TrainerID,
		TrainerName: trainerName,
		StartTime:   req.StartTime,
		Capacity:    req.Capacity,
	}
	s.data.nextScheduleID++
	s.data.classes = append(s.data.classes, cl)
	return c.JSON(http.StatusCreated, cl)
}

func (s *Server) classAttendees(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return detail(c, http.StatusBadRequest, "invalid class id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Attendee{}
	for _, b := range s.data.bookings {
		if b.ScheduleID != id {
			continue
		}
		name := ""
		if m, ok := s.data.memberByID(b.MemberID); ok {
			name = m.FullName
		}
		out = append(out, domain.Attendee{BookingID: b.BookingID, MemberID: b.MemberID, FullName: name, Attended: b.Attended})
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) trainerClasses(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return detail(c, http.StatusBadRequest, "invalid trainer id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Class{}
	for _, cl := range s.data.classes {
		if cl.TrainerID == id {
			out = append(out, cl)
		}
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) createBooking(c echo.Context) error {
	var req struct {
		MemberID   int `json:"member_id"`
		ScheduleID int `json:"schedule_id"`
	}
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "invalid payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cl, ok := s.data.classByID(req.ScheduleID)
	if !ok {
		return detail(c, http.StatusNotFound, "class not found")
	}
	for _, b := range s.data.bookings {
		if b.MemberID == req.MemberID && b.ScheduleID == req.ScheduleID {
			return detail(c, http.StatusConflict, "already booked for this class")
		}
	}
	if cl.BookedCount >= cl.Capacity {
		return detail(c, http.StatusConflict, "class is full")
	}

	cl.BookedCount++
	b := domain.Booking{
		BookingID:   s.data.nextBookingID,
		MemberID:    req.MemberID,
		ScheduleID:  req.ScheduleID,
		BookingDate: day(0),
		ClassName:   cl.ClassName,
		StartTime:   cl.StartTime,
		TrainerName: cl.TrainerName,
	}
	s.data.nextBookingID++
	s.data.bookings = append(s.data.bookings, b)
	return c.JSON(http.StatusCreated, b)
}

func (s *Server) deleteBooking(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return detail(c, http.StatusBadRequest, "invalid booking id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.data.bookings {
		if b.BookingID != id {
			continue
		}
		if cl, ok := s.data.classByID(b.ScheduleID); ok && cl.BookedCount > 0 {
			cl.BookedCount--
		}
		s.data.bookings = append(s.data.bookings[:i], s.data.bookings[i+1:]...)
		return c.NoContent(http.StatusNoContent)
	}
	return detail(c, http.StatusNotFound, "booking not found")
}

func (s *Server) markAttendance(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return detail(c, http.StatusBadRequest, "invalid booking id")
	}
	attended, err := strconv.ParseBool(c.QueryParam("attended"))
	if err != nil {
		return detail(c, http.StatusUnprocessableEntity, "attended must be true or false")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.data.bookingByID(id)
	if !ok {
		return detail(c, http.StatusNotFound, "booking not found")
	}
	b.Attended = attended
	return c.JSON(http.StatusOK, *b)
}

func (s *Server) allMembers(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, s.data.members)
}

func (s *Server) addMember(c echo.Context) error {
	var req ports.AddMemberInput
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "invalid payload")
	}
	if req.FullName == "" || req.Email == "" || req.Phone == "" {
		return detail(c, http.StatusUnprocessableEntity, "name, email and phone are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.data.members {
		if strings.EqualFold(m.Email, req.Email) {
			return detail(c, http.StatusConflict, "member with this email already exists")
		}
	}
	m := domain.Member{
		MemberID: s.data.nextMemberID,
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		JoinDate: day(0),
	}
	s.data.nextMemberID++
	s.data.members = append(s.data.members, m)
	return c.JSON(http.StatusCreated, m)
}

func (s *Server) logActivity(c echo.Context) error {
	var req ports.LogActivityInput
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "invalid payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data.memberByID(req.MemberID); !ok {
		return detail(c, http.StatusNotFound, "member not found")
	}
	raw, _ := json.Marshal(req.Details)
	a := domain.ActivityLog{
		DocID:        s.data.nextDocID,
		MemberID:     req.MemberID,
		ActivityType: req.ActivityType,
		RecordedAt:   time.Now().Format(time.RFC3339),
		Details:      raw,
	}
	s.data.nextDocID++
	s.data.activity = append(s.data.activity, a)
	return c.JSON(http.StatusCreated, a)
}

func (s *Server) employeeProfile(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return detail(c, http.StatusBadRequest, "invalid employee id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	emp, ok := s.data.employeeByID(id)
	if !ok {
		return detail(c, http.StatusNotFound, "employee not found")
	}
	return c.JSON(http.StatusOK, *emp)
}

func (s *Server) allEmployees(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, s.data.employees)
}

func (s *Server) updateEmployee(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return detail(c, http.StatusBadRequest, "invalid employee id")
	}
	var req ports.UpdateEmployeeInput
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "invalid payload")
	}
	if req.Salary < 0 {
		return detail(c, http.StatusUnprocessableEntity, "salary cannot be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	emp, ok := s.data.employeeByID(id)
	if !ok {
		return detail(c, http.StatusNotFound, "employee not found")
	}
	if req.Position != "" {
		emp.Role = req.Position
	}
	if req.Salary > 0 {
		emp.Salary = req.Salary
	}
	return c.JSON(http.StatusOK, *emp)
}

func (s *Server) allSuppliers(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, s.data.suppliers)
}

func (s *Server) equipmentStatus(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := map[string]int{}
	order := []string{}
	for _, a := range s.data.assets {
		if _, seen := counts[a.Status]; !seen {
			order = append(order, a.Status)
		}
		counts[a.Status]++
	}
	summary := make([]domain.EquipmentSummary, 0, len(order))
	for _, status := range order {
		summary = append(summary, domain.EquipmentSummary{Status: status, Count: counts[status]})
	}
	return c.JSON(http.StatusOK, domain.EquipmentStatus{Summary: summary, Details: s.data.assets})
}

func (s *Server) allEquipment(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, s.data.assets)
}

var validAssetStatus = map[string]bool{
	"Operational":       true,
	"Under Maintenance": true,
	"Out of Order":      true,
}

func (s *Server) updateEquipment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return detail(c, http.StatusBadRequest, "invalid equipment id")
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "invalid payload")
	}
	if !validAssetStatus[req.Status] {
		return detail(c, http.StatusUnprocessableEntity, "invalid equipment status")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.data.assetByID(id)
	if !ok {
		return detail(c, http.StatusNotFound, "equipment not found")
	}
	a.Status = req.Status
	return c.JSON(http.StatusOK, *a)
}

func (s *Server) maintenanceLogs(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, s.data.maintenance)
}

func (s *Server) addMaintenanceLog(c echo.Context) error {
	var req ports.AddMaintenanceLogInput
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "invalid payload")
	}
	if req.RepairCost < 0 {
		return detail(c, http.StatusUnprocessableEntity, "repair cost cannot be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.data.assetByID(req.AssetID)
	if !ok {
		return detail(c, http.StatusNotFound, "equipment not found")
	}
	technician := ""
	if emp, ok := s.data.employeeByID(req.PerformedBy); ok {
		technician = emp.Name
	}
	entry := domain.MaintenanceLog{
		LogID:           s.data.nextLogID,
		AssetID:         req.AssetID,
		PerformedBy:     req.PerformedBy,
		MaintenanceDate: day(0),
		RepairCost:      req.RepairCost,
		Notes:           req.Notes,
		AssetName:       a.AssetName,
		TechnicianName:  technician,
	}
	s.data.nextLogID++
	s.data.maintenance = append(s.data.maintenance, entry)
	return c.JSON(http.StatusCreated, entry)
}

func (s *Server) allInventory(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, s.data.items)
}

const lowStockThreshold = 5

func (s *Server) updateInventory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return detail(c, http.StatusBadRequest, "invalid item id")
	}
	var req ports.InventoryUpdateInput
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "invalid payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.data.itemByID(id)
	if !ok {
		return detail(c, http.StatusNotFound, "item not found")
	}
	if req.CurrentStock != nil {
		if *req.CurrentStock < 0 {
			return detail(c, http.StatusUnprocessableEntity, "stock cannot be negative")
		}
		item.CurrentStock = *req.CurrentStock
	}
	if req.UnitSellingPrice != nil {
		if *req.UnitSellingPrice < 0 {
			return detail(c, http.StatusUnprocessableEntity, "price cannot be negative")
		}
		item.UnitSellingPrice = *req.UnitSellingPrice
	}
	item.LowStock = item.CurrentStock < lowStockThreshold
	return c.JSON(http.StatusOK, *item)
}

func (s *Server) purchase(c echo.Context) error {
	var req struct {
		MemberID int `json:"member_id"`
		ItemID   int `json:"item_id"`
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "invalid payload")
	}
	if req.Quantity < 1 {
		return detail(c, http.StatusUnprocessableEntity, "quantity must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.data.itemByID(req.ItemID)
	if !ok {
		return detail(c, http.StatusNotFound, "item not found")
	}
	if item.CurrentStock < req.Quantity {
		return detail(c, http.StatusConflict, "not enough stock")
	}

	item.CurrentStock -= req.Quantity
	item.LowStock = item.CurrentStock < lowStockThreshold
	p := domain.Purchase{
		TransactionID: s.data.nextPurchaseID,
		MemberID:      req.MemberID,
		ItemID:        req.ItemID,
		Quantity:      req.Quantity,
		SaleTimestamp: time.Now().Format(time.RFC3339),
		TotalAmount:   float64(req.Quantity) * item.UnitSellingPrice,
		ItemName:      item.ItemName,
	}
	s.data.nextPurchaseID++
	s.data.purchases = append(s.data.purchases, p)
	return c.JSON(http.StatusCreated, p)
}

func (s *Server) analytics(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var revenue, expenses float64
	for _, e := range s.data.enrollments {
		revenue += e.FinalPricePaid
	}
	for _, p := range s.data.purchases {
		revenue += p.TotalAmount
	}
	for _, emp := range s.data.employees {
		expenses += emp.Salary / 12
	}
	for _, m := range s.data.maintenance {
		expenses += m.RepairCost
	}
	return c.JSON(http.StatusOK, domain.Analytics{
		TotalRevenue:  revenue,
		TotalExpenses: expenses,
		NetProfit:     revenue - expenses,
	})
}

func (s *Server) staff(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, s.data.employees)
}

func (s *Server) plans(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, s.data.plans)
}

func (s *Server) chat(c echo.Context) error {
	var req ports.ChatInput
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "invalid payload")
	}
	if req.Message == "" || req.SessionID == "" {
		return detail(c, http.StatusUnprocessableEntity, "message and session_id are required")
	}

	answer := "Here's what I'd suggest:\n\n" +
		"- **Warm up** for 10 minutes\n" +
		"- Alternate strength and cardio days\n" +
		"- Book a class from the *schedule* page to stay consistent\n\n" +
		"You asked: _" + req.Message + "_"
	return c.JSON(http.StatusOK, map[string]string{"answer": answer})
}
