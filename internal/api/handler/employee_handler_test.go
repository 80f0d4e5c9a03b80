package handler

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gymtech/dashboard/internal/api/middleware"
	"github.com/gymtech/dashboard/internal/core/domain"
	"github.com/gymtech/dashboard/internal/core/ports"
	"github.com/gymtech/dashboard/internal/gateway"
)

type stubEquipmentAPI struct {
	assets    []domain.EquipmentAsset
	updateErr error
	updated   int
}

func (s *stubEquipmentAPI) Status(context.Context) (domain.EquipmentStatus, error) {
	return domain.EquipmentStatus{}, nil
}

func (s *stubEquipmentAPI) All(context.Context) ([]domain.EquipmentAsset, error) {
	return s.assets, nil
}

func (s *stubEquipmentAPI) UpdateStatus(_ context.Context, id int, status string) (domain.EquipmentAsset, error) {
	if s.updateErr != nil {
		return domain.EquipmentAsset{}, s.updateErr
	}
	s.updated = id
	return domain.EquipmentAsset{AssetID: id, Status: status}, nil
}

func (s *stubEquipmentAPI) MaintenanceLogs(context.Context) ([]domain.MaintenanceLog, error) {
	return nil, nil
}

func (s *stubEquipmentAPI) AddMaintenanceLog(context.Context, ports.AddMaintenanceLogInput) (domain.MaintenanceLog, error) {
	return domain.MaintenanceLog{}, nil
}

func TestUpdateEquipment_RejectionKeepsPageIntact(t *testing.T) {
	e := newTestEcho(t)
	equipment := &stubEquipmentAPI{
		assets: []domain.EquipmentAsset{
			{AssetID: 1, AssetName: "Treadmill Alpha", Status: "Operational", PurchaseDate: "2024-01-15"},
			{AssetID: 2, AssetName: "Rowing Machine", Status: "Under Maintenance", PurchaseDate: "2023-06-02"},
		},
		updateErr: &gateway.APIError{Status: http.StatusConflict, Detail: "equipment is currently in use"},
	}
	pages := NewPages(nil, zerolog.Nop())
	h := NewEmployeeHandler(pages, nil, nil, nil, equipment, nil)

	c, rec := postForm(e, "/employee/equipment", url.Values{"asset_id": {"1"}, "status": {"Out of Order"}})
	middleware.SetSession(c, domain.Session{ID: 3, Name: "Sam Lee", Role: domain.RoleEmployee}, "sid-3")

	if err := h.UpdateEquipment(c); err != nil {
		t.Fatalf("update equipment: %v", err)
	}

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	body := rec.Body.String()
	// The upstream detail text shows verbatim and the list stays as served.
	if !strings.Contains(body, "equipment is currently in use") {
		t.Fatalf("upstream detail missing from body")
	}
	if !strings.Contains(body, "Treadmill Alpha") || !strings.Contains(body, "Rowing Machine") {
		t.Fatalf("equipment list missing from body")
	}
}

func TestUpdateEquipment_SuccessRedirectsWithFlash(t *testing.T) {
	e := newTestEcho(t)
	equipment := &stubEquipmentAPI{}
	pages := NewPages(nil, zerolog.Nop())
	h := NewEmployeeHandler(pages, nil, nil, nil, equipment, nil)

	c, rec := postForm(e, "/employee/equipment", url.Values{"asset_id": {"2"}, "status": {"Operational"}})
	middleware.SetSession(c, domain.Session{ID: 3, Role: domain.RoleEmployee}, "sid-3")

	if err := h.UpdateEquipment(c); err != nil {
		t.Fatalf("update equipment: %v", err)
	}

	if equipment.updated != 2 {
		t.Fatalf("expected asset 2 to be updated, got %d", equipment.updated)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	loc := rec.Header().Get("Location")
	if !strings.HasPrefix(loc, "/employee/equipment?flash=") {
		t.Fatalf("expected flash redirect, got %q", loc)
	}
}

type stubClassAPI struct {
	created *ports.CreateClassInput
}

func (s *stubClassAPI) Available(context.Context) ([]domain.Class, error) { return nil, nil }
func (s *stubClassAPI) All(context.Context) ([]domain.Class, error)       { return nil, nil }

func (s *stubClassAPI) Create(_ context.Context, in ports.CreateClassInput) (domain.Class, error) {
	s.created = &in
	return domain.Class{ScheduleID: 9, ClassName: in.ClassName}, nil
}

func (s *stubClassAPI) TrainerSchedule(context.Context, int) ([]domain.Class, error) {
	return nil, nil
}

func (s *stubClassAPI) Attendees(context.Context, int) ([]domain.Attendee, error) {
	return nil, nil
}

func TestCreateClass_UsesSignedInTrainer(t *testing.T) {
	e := newTestEcho(t)
	classes := &stubClassAPI{}
	pages := NewPages(nil, zerolog.Nop())
	h := NewEmployeeHandler(pages, nil, classes, nil, nil, nil)

	c, rec := postForm(e, "/employee/manage-classes", url.Values{
		"class_name": {"Morning Yoga"},
		"start_time": {"2026-09-01T07:00"},
		"capacity":   {"15"},
	})
	middleware.SetSession(c, domain.Session{ID: 5, Role: domain.RoleEmployee}, "sid-5")

	if err := h.CreateClass(c); err != nil {
		t.Fatalf("create class: %v", err)
	}

	if classes.created == nil {
		t.Fatalf("class was not created")
	}
	if classes.created.TrainerID != 5 {
		t.Fatalf("expected trainer 5, got %d", classes.created.TrainerID)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
}

func TestCreateClass_MissingFieldsRerender(t *testing.T) {
	e := newTestEcho(t)
	classes := &stubClassAPI{}
	pages := NewPages(nil, zerolog.Nop())
	h := NewEmployeeHandler(pages, nil, classes, nil, nil, nil)

	c, rec := postForm(e, "/employee/manage-classes", url.Values{"capacity": {"10"}})
	middleware.SetSession(c, domain.Session{ID: 5, Role: domain.RoleEmployee}, "sid-5")

	if err := h.CreateClass(c); err != nil {
		t.Fatalf("create class: %v", err)
	}

	if classes.created != nil {
		t.Fatalf("class should not be created")
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}
