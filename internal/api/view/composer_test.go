package view

import (
	"testing"

	"github.com/gymtech/dashboard/internal/core/domain"
)

func labels(entries []MenuEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Label)
	}
	return out
}

func TestMenu_EmployeeEntries(t *testing.T) {
	want := []string{
		"Dashboard", "My Classes", "Manage Classes", "Equipment Status",
		"Log Entry", "Inventory", "Suppliers", "Members",
		"Maintenance Logs", "Profile",
	}
	got := labels(Menu(domain.RoleEmployee))
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d: got %q, want %q", i, got[i], want[i])
		}
	}
	for _, label := range got {
		if label == "Staff Management" {
			t.Fatalf("employee menu must not contain manager-only entries")
		}
	}
}

func TestMenu_RolesDoNotOverlapPaths(t *testing.T) {
	for _, e := range Menu(domain.RoleManager) {
		if e.Path == "/employee/equipment" {
			t.Fatalf("manager menu points at employee routes; roles are not hierarchical")
		}
	}
}

func TestMenu_UnknownRoleEmpty(t *testing.T) {
	if got := Menu(domain.Role("Janitor")); got != nil {
		t.Fatalf("unknown role must yield an empty menu, got %v", got)
	}
	if got := Menu(domain.Role("")); got != nil {
		t.Fatalf("absent role must yield an empty menu, got %v", got)
	}
}

func TestDashboardTemplate(t *testing.T) {
	cases := map[domain.Role]string{
		domain.RoleMember:   "dashboard_member.html",
		domain.RoleEmployee: "dashboard_employee.html",
		domain.RoleManager:  "dashboard_manager.html",
		domain.Role("???"):  "dashboard_blank.html",
	}
	for role, want := range cases {
		if got := DashboardTemplate(role); got != want {
			t.Fatalf("role %q: got %q, want %q", role, got, want)
		}
	}
}
