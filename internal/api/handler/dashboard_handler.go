package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/gymtech/dashboard/internal/api/view"
	"github.com/gymtech/dashboard/internal/core/domain"
	"github.com/gymtech/dashboard/internal/core/ports"
)

type DashboardHandler struct {
	pages     *Pages
	members   ports.MemberAPI
	bookings  ports.BookingAPI
	classes   ports.ClassAPI
	equipment ports.EquipmentAPI
	inventory ports.InventoryAPI
	manager   ports.ManagerAPI
}

func NewDashboardHandler(pages *Pages, members ports.MemberAPI, bookings ports.BookingAPI, classes ports.ClassAPI, equipment ports.EquipmentAPI, inventory ports.InventoryAPI, manager ports.ManagerAPI) *DashboardHandler {
	return &DashboardHandler{
		pages:     pages,
		members:   members,
		bookings:  bookings,
		classes:   classes,
		equipment: equipment,
		inventory: inventory,
		manager:   manager,
	}
}

type memberDashboard struct {
	Profile       domain.Member
	Bookings      []domain.Booking
	BookingsError string
}

type employeeDashboard struct {
	Classes     []domain.Class
	Inventory   []domain.InventoryItem
	Operational int
	LowStock    int
}

type managerDashboard struct {
	Analytics domain.Analytics
	Staff     []domain.Employee
}

// Show renders the role-specific dashboard. Unknown roles get an empty shell
// rather than an error.
func (h *DashboardHandler) Show(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	switch sess.Role {
	case domain.RoleMember:
		return h.member(c, sess)
	case domain.RoleEmployee:
		return h.employee(c, sess)
	case domain.RoleManager:
		return h.managerOverview(c, sess)
	default:
		return h.pages.render(c, http.StatusOK, view.DashboardTemplate(sess.Role), "Dashboard", sess, nil, "")
	}
}

// member loads the profile as the anchor of the page; a bookings failure
// degrades to a banner instead of sinking the whole screen.
func (h *DashboardHandler) member(c echo.Context, sess domain.Session) error {
	ctx := c.Request().Context()

	profile, err := h.members.Profile(ctx, sess.ID)
	if err != nil {
		return err
	}

	content := memberDashboard{Profile: profile}
	if bookings, err := h.bookings.ByMember(ctx, sess.ID); err != nil {
		content.BookingsError = detailOf(err)
	} else {
		content.Bookings = bookings
	}

	return h.pages.render(c, http.StatusOK, view.DashboardTemplate(sess.Role), "Dashboard", sess, content, "")
}

// employee joins three upstream feeds; the page is all-or-nothing, so the
// first failure cancels the remaining fetches.
func (h *DashboardHandler) employee(c echo.Context, sess domain.Session) error {
	g, ctx := errgroup.WithContext(c.Request().Context())

	var (
		classes []domain.Class
		assets  []domain.EquipmentAsset
		items   []domain.InventoryItem
	)
	g.Go(func() error {
		var err error
		classes, err = h.classes.All(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		assets, err = h.equipment.All(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = h.inventory.All(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	content := employeeDashboard{Classes: classes, Inventory: items}
	for _, a := range assets {
		if a.Status == "Operational" {
			content.Operational++
		}
	}
	for _, it := range items {
		if it.LowStock {
			content.LowStock++
		}
	}

	return h.pages.render(c, http.StatusOK, view.DashboardTemplate(sess.Role), "Dashboard", sess, content, "")
}

func (h *DashboardHandler) managerOverview(c echo.Context, sess domain.Session) error {
	g, ctx := errgroup.WithContext(c.Request().Context())

	var content managerDashboard
	g.Go(func() error {
		var err error
		content.Analytics, err = h.manager.Analytics(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		content.Staff, err = h.manager.Staff(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	return h.pages.render(c, http.StatusOK, view.DashboardTemplate(sess.Role), "Dashboard", sess, content, "")
}
