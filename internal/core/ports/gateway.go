package ports

import (
	"context"

	"github.com/gymtech/dashboard/internal/core/domain"
)

// The gateway ports mirror the remote gym API one intent per function.
// None of these retry, cache, or deduplicate; every call is independent and
// at-most-once from the dashboard's side.

// LoginResult is the upstream credential exchange response.
type LoginResult struct {
	AccessToken string         `json:"access_token"`
	User        domain.Session `json:"user"`
}

type AuthAPI interface {
	Login(ctx context.Context, username, password string) (LoginResult, error)
}

type ProfileUpdateInput struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

type MemberAPI interface {
	Profile(ctx context.Context, id int) (domain.Member, error)
	UpdateProfile(ctx context.Context, id int, in ProfileUpdateInput) error
	ActivityLogs(ctx context.Context, id int) ([]domain.ActivityLog, error)
	Subscriptions(ctx context.Context, id int) ([]domain.Enrollment, error)
	Purchases(ctx context.Context, id int) ([]domain.Purchase, error)
}

type CreateClassInput struct {
	ClassName string `json:"class_name"`
	TrainerID int    `json:"trainer_id"`
	StartTime string `json:"start_time"`
	Capacity  int    `json:"capacity"`
}

type ClassAPI interface {
	Available(ctx context.Context) ([]domain.Class, error)
	All(ctx context.Context) ([]domain.Class, error)
	Create(ctx context.Context, in CreateClassInput) (domain.Class, error)
	TrainerSchedule(ctx context.Context, trainerID int) ([]domain.Class, error)
	Attendees(ctx context.Context, scheduleID int) ([]domain.Attendee, error)
}

type BookingAPI interface {
	ByMember(ctx context.Context, memberID int) ([]domain.Booking, error)
	Create(ctx context.Context, memberID, scheduleID int) error
	Delete(ctx context.Context, bookingID int) error
	MarkAttendance(ctx context.Context, bookingID int, attended bool) error
}

type AddMemberInput struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address,omitempty"`
}

type LogActivityInput struct {
	MemberID     int            `json:"member_id"`
	ActivityType string         `json:"activity_type"`
	Details      map[string]any `json:"details"`
}

type UpdateEmployeeInput struct {
	Salary   float64 `json:"salary"`
	Position string  `json:"position"`
}

type EmployeeAPI interface {
	Profile(ctx context.Context, id int) (domain.Employee, error)
	AddMember(ctx context.Context, in AddMemberInput) (domain.Member, error)
	AllMembers(ctx context.Context) ([]domain.Member, error)
	LogActivity(ctx context.Context, in LogActivityInput) error
	All(ctx context.Context) ([]domain.Employee, error)
	Update(ctx context.Context, id int, in UpdateEmployeeInput) (domain.Employee, error)
	Suppliers(ctx context.Context) ([]domain.Supplier, error)
}

type AddMaintenanceLogInput struct {
	AssetID     int     `json:"asset_id"`
	PerformedBy int     `json:"performed_by"`
	RepairCost  float64 `json:"repair_cost"`
	Notes       string  `json:"notes,omitempty"`
}

type EquipmentAPI interface {
	Status(ctx context.Context) (domain.EquipmentStatus, error)
	All(ctx context.Context) ([]domain.EquipmentAsset, error)
	UpdateStatus(ctx context.Context, id int, status string) (domain.EquipmentAsset, error)
	MaintenanceLogs(ctx context.Context) ([]domain.MaintenanceLog, error)
	AddMaintenanceLog(ctx context.Context, in AddMaintenanceLogInput) (domain.MaintenanceLog, error)
}

type InventoryUpdateInput struct {
	CurrentStock     *int     `json:"current_stock,omitempty"`
	UnitSellingPrice *float64 `json:"unit_selling_price,omitempty"`
}

type InventoryAPI interface {
	All(ctx context.Context) ([]domain.InventoryItem, error)
	Update(ctx context.Context, id int, in InventoryUpdateInput) (domain.InventoryItem, error)
	Purchase(ctx context.Context, memberID, itemID, quantity int) (domain.Purchase, error)
}

type SubscriptionAPI interface {
	Plans(ctx context.Context) ([]domain.SubscriptionPlan, error)
}

type ManagerAPI interface {
	Analytics(ctx context.Context) (domain.Analytics, error)
	Staff(ctx context.Context) ([]domain.Employee, error)
}

// ChatAPI forwards one conversational turn to the upstream assistant.
// SessionID is an opaque client-generated correlation value carried verbatim.
type ChatInput struct {
	Message   string `json:"message"`
	UserID    int    `json:"user_id"`
	Role      string `json:"role"`
	SessionID string `json:"session_id"`
}

type ChatAPI interface {
	Send(ctx context.Context, in ChatInput) (string, error)
}
