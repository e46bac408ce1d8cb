package fixtures

import "erpviews-backend/internal/domain"

// Entries are deliberately stored out of level order; the approval service
// sorts them.
var mockApprovalHistory = []domain.ApprovalEntry{
	{DocID: "REP-2024-002", DocType: "replenishment", Approver: "Marcus Lee", Action: domain.ApprovalSubmitted, Date: at("2024-01-14 08:40"), Comments: "Stock critically low", Level: 0},
	{DocID: "REP-2024-002", DocType: "replenishment", Approver: "Hannah Weiss", Action: domain.ApprovalApproved, Date: at("2024-01-14 15:20"), Comments: "Approved, expedite shipping", Level: 2},
	{DocID: "REP-2024-002", DocType: "replenishment", Approver: "Anil Kumar", Action: domain.ApprovalApproved, Date: at("2024-01-14 10:05"), Comments: "Confirmed with production plan", Level: 1},

	{DocID: "REP-2024-007", DocType: "replenishment", Approver: "Anil Kumar", Action: domain.ApprovalSubmitted, Date: at("2024-01-08 09:00"), Level: 0},
	{DocID: "REP-2024-007", DocType: "replenishment", Approver: "Hannah Weiss", Action: domain.ApprovalRejected, Date: at("2024-01-09 11:30"), Comments: "Use alternate sensor from stock", Level: 1},

	{DocID: "REP-2024-001", DocType: "replenishment", Approver: "Priya Nair", Action: domain.ApprovalSubmitted, Date: at("2024-01-15 09:15"), Level: 0},
	{DocID: "REP-2024-001", DocType: "replenishment", Approver: "Anil Kumar", Action: domain.ApprovalReturned, Date: at("2024-01-15 13:40"), Comments: "Quantity exceeds max stock, please revise", Level: 1},
	{DocID: "REP-2024-001", DocType: "replenishment", Approver: "Priya Nair", Action: domain.ApprovalSubmitted, Date: at("2024-01-15 16:05"), Comments: "Revised quantity", Level: 0},
	{DocID: "REP-2024-001", DocType: "replenishment", Approver: "Anil Kumar", Action: domain.ApprovalPending, Date: at("2024-01-15 16:05"), Level: 1},

	{DocID: "PO-2024-0142", DocType: "purchase_order", Approver: "Lucia Romero", Action: domain.ApprovalSubmitted, Date: at("2024-01-11 10:00"), Level: 0},
	{DocID: "PO-2024-0142", DocType: "purchase_order", Approver: "Grace Kim", Action: domain.ApprovalApproved, Date: at("2024-01-11 14:22"), Comments: "Within budget", Level: 1},
	{DocID: "PO-2024-0142", DocType: "purchase_order", Approver: "Hannah Weiss", Action: domain.ApprovalApproved, Date: at("2024-01-12 09:10"), Level: 2},

	{DocID: "LV-2024-0031", DocType: "leave_request", Approver: "Anil Kumar", Action: domain.ApprovalSubmitted, Date: at("2024-01-16 08:00"), Comments: "Family event", Level: 0},
	{DocID: "LV-2024-0031", DocType: "leave_request", Approver: "Priya Nair", Action: domain.ApprovalPending, Date: at("2024-01-16 08:00"), Level: 1},
}

// ApprovalEntries returns every recorded approval step.
func ApprovalEntries() []domain.ApprovalEntry { return clone(mockApprovalHistory) }

// ApprovalHistory returns every entry recorded for the document, in storage
// order.
func ApprovalHistory(docID, docType string) []domain.ApprovalEntry {
	var out []domain.ApprovalEntry
	for _, e := range mockApprovalHistory {
		if e.DocID == docID && e.DocType == docType {
			out = append(out, e)
		}
	}
	return out
}

// SeedUser is a login account created at startup. Passwords are hashed when
// the user store is built.
type SeedUser struct {
	Name       string
	Email      string
	Department string
	Role       domain.UserRole
}

var seedUsers = []SeedUser{
	{Name: "Hannah Weiss", Email: "admin@erp.local", Department: "Administration", Role: domain.RoleAdmin},
	{Name: "Anil Kumar", Email: "production.manager@erp.local", Department: "Production", Role: domain.RoleManager},
	{Name: "Priya Nair", Email: "hr.manager@erp.local", Department: "Human Resources", Role: domain.RoleManager},
	{Name: "Omar Haddad", Email: "support@erp.local", Department: "Support", Role: domain.RoleStaff},
}

func SeedUsers() []SeedUser { return clone(seedUsers) }
