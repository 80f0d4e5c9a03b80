package stub

import (
	"encoding/json"
	"time"

	"github.com/gymtech/dashboard/internal/core/domain"
)

// account is one demo login. All demo accounts use the password "password".
type account struct {
	Username string
	Hash     []byte
	Session  domain.Session
}

type dataset struct {
	members     []domain.Member
	employees   []domain.Employee
	plans       []domain.SubscriptionPlan
	enrollments []domain.Enrollment
	classes     []domain.Class
	bookings    []domain.Booking
	assets      []domain.EquipmentAsset
	items       []domain.InventoryItem
	suppliers   []domain.Supplier
	maintenance []domain.MaintenanceLog
	purchases   []domain.Purchase
	activity    []domain.ActivityLog

	nextMemberID   int
	nextScheduleID int
	nextBookingID  int
	nextLogID      int
	nextDocID      int
	nextPurchaseID int
}

func day(offset int) string {
	return time.Now().AddDate(0, 0, offset).Format("2006-01-02")
}

func at(offset int, hour int) string {
	d := time.Now().AddDate(0, 0, offset)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, time.Local).Format(time.RFC3339)
}

func workoutDetails(minutes int, exercise string) json.RawMessage {
	raw, _ := json.Marshal(map[string]any{"duration_minutes": minutes, "exercise": exercise})
	return raw
}

func seed() *dataset {
	d := &dataset{
		members: []domain.Member{
			{MemberID: 1, FullName: "Alice Johnson", Email: "alice@example.com", Phone: "555-0101", Address: "12 Oak Street", JoinDate: "2024-02-01", CurrentPlan: "Gold"},
			{MemberID: 2, FullName: "Bob Martinez", Email: "bob@example.com", Phone: "555-0102", JoinDate: "2024-06-15", CurrentPlan: "Basic"},
		},
		employees: []domain.Employee{
			{EmployeeID: 1, Name: "Sarah Williams", Email: "sarah@gymtech.example", Phone: "555-0201", Role: "Manager", Salary: 82000},
			{EmployeeID: 2, Name: "Mike Chen", Email: "mike@gymtech.example", Phone: "555-0202", Role: "Trainer", Salary: 54000, ReportsTo: 1, ManagerName: "Sarah Williams"},
			{EmployeeID: 3, Name: "Lena Petrov", Email: "lena@gymtech.example", Phone: "555-0203", Role: "Technician", Salary: 48000, ReportsTo: 1, ManagerName: "Sarah Williams"},
		},
		plans: []domain.SubscriptionPlan{
			{PlanID: 1, PlanName: "Basic", DurationMonths: 1, BasePrice: 29.99, Description: "Gym floor access"},
			{PlanID: 2, PlanName: "Gold", DurationMonths: 12, BasePrice: 299.99, Description: "All classes and equipment"},
			{PlanID: 3, PlanName: "Platinum", DurationMonths: 12, BasePrice: 499.99, Description: "Everything plus personal training"},
		},
		enrollments: []domain.Enrollment{
			{EnrollmentID: 1, MemberID: 1, PlanID: 2, StartDate: "2026-01-01", EndDate: "2026-12-31", FinalPricePaid: 299.99, PaymentStatus: "Paid", PlanName: "Gold"},
			{EnrollmentID: 2, MemberID: 2, PlanID: 1, StartDate: day(-20), EndDate: day(10), FinalPricePaid: 29.99, PaymentStatus: "Paid", PlanName: "Basic"},
		},
		classes: []domain.Class{
			{ScheduleID: 1, ClassName: "Morning Yoga", TrainerID: 2, TrainerName: "Mike Chen", StartTime: at(1, 7), Capacity: 15, BookedCount: 1},
			{ScheduleID: 2, ClassName: "HIIT Blast", TrainerID: 2, TrainerName: "Mike Chen", StartTime: at(2, 18), Capacity: 10, BookedCount: 0},
			{ScheduleID: 3, ClassName: "Spin Class", TrainerID: 2, TrainerName: "Mike Chen", StartTime: at(3, 12), Capacity: 1, BookedCount: 1},
		},
		bookings: []domain.Booking{
			{BookingID: 1, MemberID: 1, ScheduleID: 1, BookingDate: day(-1), ClassName: "Morning Yoga", StartTime: at(1, 7), TrainerName: "Mike Chen"},
			{BookingID: 2, MemberID: 2, ScheduleID: 3, BookingDate: day(-2), ClassName: "Spin Class", StartTime: at(3, 12), TrainerName: "Mike Chen"},
		},
		assets: []domain.EquipmentAsset{
			{AssetID: 1, AssetName: "Treadmill Alpha", PurchaseDate: "2024-01-15", Status: "Operational"},
			{AssetID: 2, AssetName: "Rowing Machine", PurchaseDate: "2023-06-02", Status: "Under Maintenance"},
			{AssetID: 3, AssetName: "Cable Crossover", PurchaseDate: "2022-11-20", Status: "Operational"},
			{AssetID: 4, AssetName: "Spin Bike 4", PurchaseDate: "2024-08-30", Status: "Out of Order"},
		},
		items: []domain.InventoryItem{
			{ItemID: 1, ItemName: "Protein Bar", Description: "Chocolate, 60g", CurrentStock: 42, UnitSellingPrice: 3.5},
			{ItemID: 2, ItemName: "Shaker Bottle", Description: "700ml", CurrentStock: 4, UnitSellingPrice: 9.99, LowStock: true},
			{ItemID: 3, ItemName: "Resistance Band", Description: "Medium tension", CurrentStock: 17, UnitSellingPrice: 12.0},
		},
		suppliers: []domain.Supplier{
			{SupplierID: 1, CompanyName: "FitSupply Co", ContactPerson: "Dan Ruiz", PhoneNumber: "555-0301", Address: "400 Industrial Way", Category: "Nutrition"},
			{SupplierID: 2, CompanyName: "IronWorks Ltd", ContactPerson: "Mia Park", PhoneNumber: "555-0302", Address: "77 Forge Road", Category: "Equipment"},
		},
		maintenance: []domain.MaintenanceLog{
			{LogID: 1, AssetID: 2, PerformedBy: 3, MaintenanceDate: day(-5), RepairCost: 120, Notes: "Replaced chain", AssetName: "Rowing Machine", TechnicianName: "Lena Petrov"},
		},
		purchases: []domain.Purchase{
			{TransactionID: 1, MemberID: 1, ItemID: 1, Quantity: 2, SaleTimestamp: at(-3, 16), TotalAmount: 7.0, ItemName: "Protein Bar"},
		},
	}

	// A recent workout run so the dashboard calendar has a live streak.
	for i, offset := range []int{-1, -2, -3, -10} {
		d.activity = append(d.activity, domain.ActivityLog{
			DocID:        i + 1,
			MemberID:     1,
			ActivityType: "Workout",
			RecordedAt:   at(offset, 9),
			Details:      workoutDetails(45+5*i, "full body"),
		})
	}

	d.nextMemberID = 3
	d.nextScheduleID = 4
	d.nextBookingID = 3
	d.nextLogID = 2
	d.nextDocID = 5
	d.nextPurchaseID = 2
	return d
}

func (d *dataset) memberByID(id int) (*domain.Member, bool) {
	for i := range d.members {
		if d.members[i].MemberID == id {
			return &d.members[i], true
		}
	}
	return nil, false
}

func (d *dataset) employeeByID(id int) (*domain.Employee, bool) {
	for i := range d.employees {
		if d.employees[i].EmployeeID == id {
			return &d.employees[i], true
		}
	}
	return nil, false
}

func (d *dataset) classByID(id int) (*domain.Class, bool) {
	for i := range d.classes {
		if d.classes[i].ScheduleID == id {
			return &d.classes[i], true
		}
	}
	return nil, false
}

func (d *dataset) assetByID(id int) (*domain.EquipmentAsset, bool) {
	for i := range d.assets {
		if d.assets[i].AssetID == id {
			return &d.assets[i], true
		}
	}
	return nil, false
}

func (d *dataset) itemByID(id int) (*domain.InventoryItem, bool) {
	for i := range d.items {
		if d.items[i].ItemID == id {
			return &d.items[i], true
		}
	}
	return nil, false
}

func (d *dataset) bookingByID(id int) (*domain.Booking, bool) {
	for i := range d.bookings {
		if d.bookings[i].BookingID == id {
			return &d.bookings[i], true
		}
	}
	return nil, false
}

func demoAccounts(hash func(string) []byte) []account {
	mk := func(username string, sess domain.Session) account {
		return account{Username: username, Hash: hash("password"), Session: sess}
	}
	return []account{
		mk("member1", domain.Session{ID: 1, Name: "Alice Johnson", Role: domain.RoleMember, Email: "alice@example.com"}),
		mk("member2", domain.Session{ID: 2, Name: "Bob Martinez", Role: domain.RoleMember, Email: "bob@example.com"}),
		mk("trainer1", domain.Session{ID: 2, Name: "Mike Chen", Role: domain.RoleEmployee, Email: "mike@gymtech.example"}),
		mk("manager1", domain.Session{ID: 1, Name: "Sarah Williams", Role: domain.RoleManager, Email: "sarah@gymtech.example"}),
	}
}
