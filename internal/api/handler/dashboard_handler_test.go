package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gymtech/dashboard/internal/api/middleware"
	"github.com/gymtech/dashboard/internal/core/domain"
	"github.com/gymtech/dashboard/internal/core/ports"
	"github.com/gymtech/dashboard/internal/gateway"
)

type stubMemberAPI struct {
	profile    domain.Member
	profileErr error
	logs       []domain.ActivityLog
}

func (s *stubMemberAPI) Profile(context.Context, int) (domain.Member, error) {
	return s.profile, s.profileErr
}

func (s *stubMemberAPI) UpdateProfile(context.Context, int, ports.ProfileUpdateInput) error {
	return nil
}

func (s *stubMemberAPI) ActivityLogs(context.Context, int) ([]domain.ActivityLog, error) {
	return s.logs, nil
}

func (s *stubMemberAPI) Subscriptions(context.Context, int) ([]domain.Enrollment, error) {
	return nil, nil
}

func (s *stubMemberAPI) Purchases(context.Context, int) ([]domain.Purchase, error) {
	return nil, nil
}

type stubBookingAPI struct {
	bookings []domain.Booking
	listErr  error
}

func (s *stubBookingAPI) ByMember(context.Context, int) ([]domain.Booking, error) {
	return s.bookings, s.listErr
}

func (s *stubBookingAPI) Create(context.Context, int, int) error        { return nil }
func (s *stubBookingAPI) Delete(context.Context, int) error             { return nil }
func (s *stubBookingAPI) MarkAttendance(context.Context, int, bool) error { return nil }

func TestDashboard_MemberBookingsDegrade(t *testing.T) {
	e := newTestEcho(t)
	members := &stubMemberAPI{profile: domain.Member{MemberID: 1, FullName: "Jane Doe", JoinDate: "2024-02-01", CurrentPlan: "Gold"}}
	bookings := &stubBookingAPI{listErr: &gateway.APIError{Status: http.StatusBadGateway, Detail: "booking service down"}}
	pages := NewPages(nil, zerolog.Nop())
	h := NewDashboardHandler(pages, members, bookings, nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	middleware.SetSession(c, domain.Session{ID: 1, Name: "Jane Doe", Role: domain.RoleMember}, "sid-1")

	if err := h.Show(c); err != nil {
		t.Fatalf("show: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Jane Doe") {
		t.Fatalf("profile missing from dashboard")
	}
	if !strings.Contains(body, "booking service down") {
		t.Fatalf("bookings failure should degrade to a banner")
	}
}

func TestDashboard_MemberProfileFailureIsFatal(t *testing.T) {
	e := newTestEcho(t)
	members := &stubMemberAPI{profileErr: &gateway.APIError{Status: http.StatusNotFound, Detail: "member not found"}}
	pages := NewPages(nil, zerolog.Nop())
	h := NewDashboardHandler(pages, members, &stubBookingAPI{}, nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	middleware.SetSession(c, domain.Session{ID: 1, Role: domain.RoleMember}, "sid-1")

	err := h.Show(c)
	if err == nil {
		t.Fatalf("expected the profile failure to surface")
	}
	if apiErr, ok := gateway.IsAPIError(err); !ok || apiErr.Detail != "member not found" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDashboard_UnknownRoleRendersBlank(t *testing.T) {
	e := newTestEcho(t)
	pages := NewPages(nil, zerolog.Nop())
	h := NewDashboardHandler(pages, &stubMemberAPI{}, &stubBookingAPI{}, nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	middleware.SetSession(c, domain.Session{ID: 1, Role: domain.Role("Auditor")}, "sid-1")

	if err := h.Show(c); err != nil {
		t.Fatalf("show: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
