package dashboard

import (
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hris-web-go/internal/domain/user"
)

// DeriveCards maps an access level and a stats snapshot to the four summary
// cards for that role. A nil snapshot counts as all zeros.
func DeriveCards(level user.AccessLevel, stats *Stats) []Card {
	s := orZero(stats)

	switch level {
	case user.AccessAdmin, user.AccessHR:
		return []Card{
			{Title: "Total Employees", Count: s.TotalEmployees, IconKey: "users", Description: "Active employees", ColorToken: "blue"},
			{Title: "Present Today", Count: s.PresentToday, IconKey: "user-check", Description: "Checked in today", ColorToken: "green"},
			{Title: "On Leave", Count: s.OnLeave, IconKey: "calendar-off", Description: "Away today", ColorToken: "amber"},
			{Title: "Pending Approvals", Count: s.PendingTotal(), IconKey: "clock", Description: "Awaiting review", ColorToken: "red"},
		}
	case user.AccessManager:
		return []Card{
			{Title: "Team Members", Count: s.TotalEmployees, IconKey: "users", Description: "People in your team", ColorToken: "blue"},
			{Title: "Team Present", Count: s.PresentToday, IconKey: "user-check", Description: "Checked in today", ColorToken: "green"},
			{Title: "Pending Approvals", Count: s.PendingTotal(), IconKey: "clock", Description: "Awaiting your review", ColorToken: "red"},
			{Title: "Team on Leave", Count: s.OnLeave, IconKey: "calendar-off", Description: "Away today", ColorToken: "amber"},
		}
	case user.AccessAccountant:
		return []Card{
			{Title: "Pending Reimbursements", Count: s.PendingReimbursements, IconKey: "receipt", Description: "Claims to process", ColorToken: "red"},
			{Title: "Total Employees", Count: s.TotalEmployees, IconKey: "users", Description: "On payroll", ColorToken: "blue"},
			{Title: "Present Today", Count: s.PresentToday, IconKey: "user-check", Description: "Checked in today", ColorToken: "green"},
			{Title: "Processing Items", Count: s.PendingReimbursements, IconKey: "loader", Description: "In progress", ColorToken: "amber"},
		}
	default:
		attendance := "Absent"
		if s.PresentToday > 0 {
			attendance = "Present"
		}
		return []Card{
			{Title: "My Attendance", Text: attendance, IsTextValue: true, IconKey: "calendar-check", Description: "Today's status", ColorToken: "green"},
			{Title: "Leave Balance", Text: "-", IsTextValue: true, IconKey: "calendar-days", Description: "Days available", ColorToken: "blue"},
			// not wired to live data
			{Title: "Pending Requests", Count: 0, IconKey: "clock", Description: "Awaiting approval", ColorToken: "amber"},
			{Title: "Quick Actions", Text: "-", IsTextValue: true, IconKey: "zap", Description: "Shortcuts", ColorToken: "purple"},
		}
	}
}

// DeriveWelcomeMessage returns the banner text for a role
func DeriveWelcomeMessage(level user.AccessLevel, firstName string) Welcome {
	name := strings.TrimSpace(firstName)
	if name == "" {
		name = "there"
	}

	switch level {
	case user.AccessAdmin:
		return Welcome{
			Title:    fmt.Sprintf("Welcome back, %s!", name),
			Subtitle: "Here's an overview of your organization today.",
		}
	case user.AccessHR:
		return Welcome{
			Title:    fmt.Sprintf("Welcome, %s!", name),
			Subtitle: "Manage employee records, attendance and leave requests.",
		}
	case user.AccessManager:
		return Welcome{
			Title:    fmt.Sprintf("Hello, %s!", name),
			Subtitle: "Keep track of your team's attendance and approvals.",
		}
	case user.AccessAccountant:
		return Welcome{
			Title:    fmt.Sprintf("Welcome, %s!", name),
			Subtitle: "Review reimbursements and payroll processing.",
		}
	default:
		return Welcome{
			Title:    fmt.Sprintf("Hi, %s!", name),
			Subtitle: "Here's your personal dashboard.",
		}
	}
}

// DerivePendingActions builds the pending actions panel. Only reviewers
// (Manager, Admin, HR) see it.
func DerivePendingActions(level user.AccessLevel, stats *Stats) PendingPanel {
	if !user.HasPermission(level, user.PermissionDashboardPendingActions) {
		return PendingPanel{}
	}

	s := orZero(stats)
	categories := []PendingRow{
		{Label: "Leave approvals", Count: s.PendingApprovals, Href: "/leave/approvals"},
		{Label: "Reimbursements", Count: s.PendingReimbursements, Href: "/reimbursements"},
		{Label: "Regularizations", Count: s.PendingRegularizations, Href: "/attendance/regularizations"},
	}

	panel := PendingPanel{Visible: true}
	for _, c := range categories {
		if c.Count != 0 {
			panel.Rows = append(panel.Rows, c)
		}
	}
	if len(panel.Rows) == 0 {
		panel.Empty = true
		panel.Rows = []PendingRow{{Label: "No pending actions"}}
	}
	return panel
}

// BuildView assembles the dashboard for an identity. A pending identity gets
// the Employee view.
func BuildView(identity user.Identity, stats *Stats) View {
	level := identity.Level()
	return View{
		AccessLevel: string(level),
		Welcome:     DeriveWelcomeMessage(level, identity.FirstName()),
		Cards:       DeriveCards(level, stats),
		Pending:     DerivePendingActions(level, stats),
		StatsLoaded: stats != nil,
	}
}
