// Package view composes what each role sees: the sidebar menu, the
// dashboard variant, and the rendered templates. Pure lookups over three
// fixed tables; an unrecognised or absent role gets an empty menu and a
// blank dashboard slot rather than an error.
package view

import "github.com/gymtech/dashboard/internal/core/domain"

// MenuEntry is one sidebar navigation item. Icon names follow the lucide
// set used by the web assets.
type MenuEntry struct {
	Label string
	Path  string
	Icon  string
}

var memberMenu = []MenuEntry{
	{Label: "Dashboard", Path: "/dashboard", Icon: "bar-chart-3"},
	{Label: "Fitness Journey", Path: "/member/fitness", Icon: "trending-up"},
	{Label: "Class Schedule", Path: "/member/classes", Icon: "calendar"},
	{Label: "Subscription Plans", Path: "/member/plans", Icon: "dumbbell"},
	{Label: "Profile", Path: "/member/profile", Icon: "users"},
	{Label: "Purchase History", Path: "/member/purchases", Icon: "shopping-cart"},
	{Label: "Shop Inventory", Path: "/member/shop", Icon: "shopping-cart"},
	{Label: "Equipment Status", Path: "/member/equipment", Icon: "zap"},
}

var employeeMenu = []MenuEntry{
	{Label: "Dashboard", Path: "/dashboard", Icon: "bar-chart-3"},
	{Label: "My Classes", Path: "/employee/classes", Icon: "calendar"},
	{Label: "Manage Classes", Path: "/employee/manage-classes", Icon: "clipboard-list"},
	{Label: "Equipment Status", Path: "/employee/equipment", Icon: "zap"},
	{Label: "Log Entry", Path: "/employee/log-entry", Icon: "clipboard-list"},
	{Label: "Inventory", Path: "/employee/inventory", Icon: "package"},
	{Label: "Suppliers", Path: "/employee/suppliers", Icon: "settings"},
	{Label: "Members", Path: "/employee/members", Icon: "users"},
	{Label: "Maintenance Logs", Path: "/employee/maintenance", Icon: "wrench"},
	{Label: "Profile", Path: "/employee/profile", Icon: "users"},
}

var managerMenu = []MenuEntry{
	{Label: "Dashboard", Path: "/dashboard", Icon: "bar-chart-3"},
	{Label: "Staff Management", Path: "/manager/staff", Icon: "users"},
	{Label: "Classes", Path: "/manager/classes", Icon: "calendar"},
	{Label: "Equipment", Path: "/manager/equipment", Icon: "zap"},
	{Label: "Inventory", Path: "/manager/inventory", Icon: "package"},
	{Label: "Suppliers", Path: "/manager/suppliers", Icon: "settings"},
	{Label: "Members", Path: "/manager/members", Icon: "users"},
}

// Menu returns the ordered sidebar entries for a role. The slice is shared;
// callers must not mutate it.
func Menu(role domain.Role) []MenuEntry {
	switch role {
	case domain.RoleMember:
		return memberMenu
	case domain.RoleEmployee:
		return employeeMenu
	case domain.RoleManager:
		return managerMenu
	default:
		return nil
	}
}

// DashboardTemplate returns the template name of the role's dashboard
// variant, or the blank variant for an unrecognised role.
func DashboardTemplate(role domain.Role) string {
	switch role {
	case domain.RoleMember:
		return "dashboard_member.html"
	case domain.RoleEmployee:
		return "dashboard_employee.html"
	case domain.RoleManager:
		return "dashboard_manager.html"
	default:
		return "dashboard_blank.html"
	}
}
