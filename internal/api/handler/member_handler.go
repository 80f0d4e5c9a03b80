package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gymtech/dashboard/internal/api/view"
	"github.com/gymtech/dashboard/internal/core/domain"
	"github.com/gymtech/dashboard/internal/core/ports"
)

type MemberHandler struct {
	pages     *Pages
	members   ports.MemberAPI
	classes   ports.ClassAPI
	bookings  ports.BookingAPI
	equipment ports.EquipmentAPI
	inventory ports.InventoryAPI
	plans     ports.SubscriptionAPI
}

func NewMemberHandler(pages *Pages, members ports.MemberAPI, classes ports.ClassAPI, bookings ports.BookingAPI, equipment ports.EquipmentAPI, inventory ports.InventoryAPI, plans ports.SubscriptionAPI) *MemberHandler {
	return &MemberHandler{
		pages:     pages,
		members:   members,
		classes:   classes,
		bookings:  bookings,
		equipment: equipment,
		inventory: inventory,
		plans:     plans,
	}
}

func redirectWithFlash(c echo.Context, msg string) error {
	return c.Redirect(http.StatusSeeOther, c.Request().URL.Path+"?flash="+url.QueryEscape(msg))
}

type memberClassesPage struct {
	Available []domain.Class
	Bookings  []domain.Booking
}

func (h *MemberHandler) Classes(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return h.renderClasses(c, sess, "")
}

func (h *MemberHandler) renderClasses(c echo.Context, sess domain.Session, pageErr string) error {
	ctx := c.Request().Context()

	available, err := h.classes.Available(ctx)
	if err != nil {
		return err
	}
	bookings, err := h.bookings.ByMember(ctx, sess.ID)
	if err != nil {
		return err
	}

	content := memberClassesPage{Available: available, Bookings: bookings}
	status := http.StatusOK
	if pageErr != "" {
		status = http.StatusUnprocessableEntity
	}
	return h.pages.render(c, status, "member_classes.html", "Classes", sess, content, pageErr)
}

// MutateClasses books or cancels depending on the form's action field. A
// rejected mutation re-renders the page with the upstream detail and the
// lists untouched.
func (h *MemberHandler) MutateClasses(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	switch c.FormValue("action") {
	case "book":
		scheduleID, err := strconv.Atoi(c.FormValue("schedule_id"))
		if err != nil {
			return h.renderClasses(c, sess, "invalid class selection")
		}
		if err := h.bookings.Create(ctx, sess.ID, scheduleID); err != nil {
			return h.renderClasses(c, sess, detailOf(err))
		}
		return redirectWithFlash(c, "Class booked")
	case "cancel":
		bookingID, err := strconv.Atoi(c.FormValue("booking_id"))
		if err != nil {
			return h.renderClasses(c, sess, "invalid booking selection")
		}
		if err := h.bookings.Delete(ctx, bookingID); err != nil {
			return h.renderClasses(c, sess, detailOf(err))
		}
		return redirectWithFlash(c, "Booking cancelled")
	default:
		return h.renderClasses(c, sess, "unknown action")
	}
}

type memberFitnessPage struct {
	Days            []view.CalendarDay
	Streak          int
	Selected        string
	SelectedEntries []domain.ActivityLog
}

func (h *MemberHandler) Fitness(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	logs, err := h.members.ActivityLogs(c.Request().Context(), sess.ID)
	if err != nil {
		return err
	}

	now := time.Now()
	content := memberFitnessPage{
		Days:   view.BuildCalendar(logs, now),
		Streak: view.WorkoutStreak(logs, now),
	}
	if day := c.QueryParam("day"); day != "" {
		content.Selected = day
		for _, d := range content.Days {
			if d.Date == day {
				content.SelectedEntries = d.Entries
				break
			}
		}
	}

	return h.pages.render(c, http.StatusOK, "member_fitness.html", "Fitness Calendar", sess, content, "")
}

type memberPlansPage struct {
	Plans         []domain.SubscriptionPlan
	Subscriptions []domain.Enrollment
}

func (h *MemberHandler) Plans(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	plans, err := h.plans.Plans(ctx)
	if err != nil {
		return err
	}
	subs, err := h.members.Subscriptions(ctx, sess.ID)
	if err != nil {
		return err
	}

	return h.pages.render(c, http.StatusOK, "member_plans.html", "Membership Plans", sess,
		memberPlansPage{Plans: plans, Subscriptions: subs}, "")
}

type memberProfilePage struct {
	Profile domain.Member
}

func (h *MemberHandler) Profile(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return h.renderProfile(c, sess, "")
}

func (h *MemberHandler) renderProfile(c echo.Context, sess domain.Session, pageErr string) error {
	profile, err := h.members.Profile(c.Request().Context(), sess.ID)
	if err != nil {
		return err
	}
	status := http.StatusOK
	if pageErr != "" {
		status = http.StatusUnprocessableEntity
	}
	return h.pages.render(c, status, "member_profile.html", "My Profile", sess, memberProfilePage{Profile: profile}, pageErr)
}

func (h *MemberHandler) UpdateProfile(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	in := ports.ProfileUpdateInput{
		Email:   c.FormValue("email"),
		Phone:   c.FormValue("phone"),
		Address: c.FormValue("address"),
	}
	if err := h.members.UpdateProfile(c.Request().Context(), sess.ID, in); err != nil {
		return h.renderProfile(c, sess, detailOf(err))
	}
	return redirectWithFlash(c, "Profile updated")
}

type memberPurchasesPage struct {
	Purchases []domain.Purchase
}

func (h *MemberHandler) Purchases(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	purchases, err := h.members.Purchases(c.Request().Context(), sess.ID)
	if err != nil {
		return err
	}
	return h.pages.render(c, http.StatusOK, "member_purchases.html", "Purchase History", sess,
		memberPurchasesPage{Purchases: purchases}, "")
}

type memberShopPage struct {
	Items []domain.InventoryItem
}

func (h *MemberHandler) Shop(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return h.renderShop(c, sess, "")
}

func (h *MemberHandler) renderShop(c echo.Context, sess domain.Session, pageErr string) error {
	items, err := h.inventory.All(c.Request().Context())
	if err != nil {
		return err
	}
	status := http.StatusOK
	if pageErr != "" {
		status = http.StatusUnprocessableEntity
	}
	return h.pages.render(c, status, "member_shop.html", "Shop", sess, memberShopPage{Items: items}, pageErr)
}

func (h *MemberHandler) Purchase(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	itemID, err := strconv.Atoi(c.FormValue("item_id"))
	if err != nil {
		return h.renderShop(c, sess, "invalid item selection")
	}
	quantity, err := strconv.Atoi(c.FormValue("quantity"))
	if err != nil || quantity < 1 {
		return h.renderShop(c, sess, "quantity must be a positive number")
	}

	if _, err := h.inventory.Purchase(c.Request().Context(), sess.ID, itemID, quantity); err != nil {
		return h.renderShop(c, sess, detailOf(err))
	}
	return redirectWithFlash(c, "Purchase complete")
}

func (h *MemberHandler) Equipment(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	status, err := h.equipment.Status(c.Request().Context())
	if err != nil {
		return err
	}
	return h.pages.render(c, http.StatusOK, "member_equipment.html", "Equipment Status", sess, status, "")
}
