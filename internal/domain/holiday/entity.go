package holiday

import "github.com/cmlabs-hris/hris-web-go/internal/pkg/flexid"

// Holiday is one element of GET /api/holidays
type Holiday struct {
	ID            flexid.ID `json:"id"`
	Name          string    `json:"name"`
	FromDate      string    `json:"fromDate"`
	ToDate        string    `json:"toDate"`
	TotalHolidays int       `json:"totalHolidays"`
}
