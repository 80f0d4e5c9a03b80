package domain

import "encoding/json"

// The gym API owns these records; the dashboard fetches and displays them
// as-is. Field names mirror the upstream JSON contract.

type Member struct {
	MemberID    int    `json:"member_id"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address,omitempty"`
	JoinDate    string `json:"join_date"`
	CurrentPlan string `json:"current_plan,omitempty"`
}

type Employee struct {
	EmployeeID  int     `json:"employee_id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Address     string  `json:"address,omitempty"`
	Role        string  `json:"role"`
	Salary      float64 `json:"salary,omitempty"`
	ReportsTo   int     `json:"reports_to,omitempty"`
	ManagerName string  `json:"manager_name,omitempty"`
}

type SubscriptionPlan struct {
	PlanID         int     `json:"plan_id"`
	PlanName       string  `json:"plan_name"`
	DurationMonths int     `json:"duration_months"`
	BasePrice      float64 `json:"base_price"`
	Description    string  `json:"description,omitempty"`
}

type Enrollment struct {
	EnrollmentID   int     `json:"enrollment_id"`
	MemberID       int     `json:"member_id"`
	PlanID         int     `json:"plan_id"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	FinalPricePaid float64 `json:"final_price_paid"`
	PaymentStatus  string  `json:"payment_status"`
	PlanName       string  `json:"plan_name,omitempty"`
}

type Class struct {
	ScheduleID  int    `json:"schedule_id"`
	ClassName   string `json:"class_name"`
	TrainerID   int    `json:"trainer_id"`
	TrainerName string `json:"trainer_name,omitempty"`
	StartTime   string `json:"start_time"`
	Capacity    int    `json:"capacity"`
	BookedCount int    `json:"booked_count,omitempty"`
}

type Booking struct {
	BookingID   int    `json:"booking_id"`
	MemberID    int    `json:"member_id"`
	ScheduleID  int    `json:"schedule_id"`
	BookingDate string `json:"booking_date"`
	Attended    bool   `json:"attended"`
	ClassName   string `json:"class_name,omitempty"`
	StartTime   string `json:"start_time,omitempty"`
	TrainerName string `json:"trainer_name,omitempty"`
}

type Attendee struct {
	BookingID int    `json:"booking_id"`
	MemberID  int    `json:"member_id"`
	FullName  string `json:"full_name"`
	Attended  bool   `json:"attended"`
}

type EquipmentAsset struct {
	AssetID      int    `json:"asset_id"`
	AssetName    string `json:"asset_name"`
	PurchaseDate string `json:"purchase_date"`
	Status       string `json:"status"`
}

// EquipmentStatus is the member-facing roll-up returned by GET /equipment/status.
type EquipmentStatus struct {
	Summary []EquipmentSummary `json:"summary"`
	Details []EquipmentAsset   `json:"details"`
}

type EquipmentSummary struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type InventoryItem struct {
	ItemID           int     `json:"item_id"`
	ItemName         string  `json:"item_name"`
	Description      string  `json:"description"`
	CurrentStock     int     `json:"current_stock"`
	UnitSellingPrice float64 `json:"unit_selling_price"`
	LowStock         bool    `json:"low_stock"`
}

type Supplier struct {
	SupplierID    int    `json:"supplier_id"`
	CompanyName   string `json:"company_name"`
	ContactPerson string `json:"contact_person"`
	PhoneNumber   string `json:"phone_number"`
	Address       string `json:"address"`
	Category      string `json:"category"`
	Email         string `json:"email,omitempty"`
}

type MaintenanceLog struct {
	LogID           int     `json:"log_id"`
	AssetID         int     `json:"asset_id"`
	PerformedBy     int     `json:"performed_by"`
	MaintenanceDate string  `json:"maintenance_date"`
	RepairCost      float64 `json:"repair_cost"`
	Notes           string  `json:"notes,omitempty"`
	AssetName       string  `json:"asset_name,omitempty"`
	TechnicianName  string  `json:"technician_name,omitempty"`
}

type Purchase struct {
	TransactionID int     `json:"transaction_id"`
	MemberID      int     `json:"member_id"`
	ItemID        int     `json:"item_id"`
	Quantity      int     `json:"quantity"`
	SaleTimestamp string  `json:"sale_timestamp"`
	TotalAmount   float64 `json:"total_amount"`
	ItemName      string  `json:"item_name,omitempty"`
}

// ActivityLog is one habit-tracking document from the member calendar feed.
// Details is schemaless upstream (duration, exercise, feeling, ...).
type ActivityLog struct {
	DocID        int             `json:"doc_id"`
	MemberID     int             `json:"member_id"`
	ActivityType string          `json:"activity_type"`
	RecordedAt   string          `json:"recorded_at"`
	Details      json.RawMessage `json:"details,omitempty"`
}

type Analytics struct {
	TotalRevenue  float64 `json:"total_revenue"`
	TotalExpenses float64 `json:"total_expenses"`
	NetProfit     float64 `json:"net_profit"`
}
