package holiday

import (
	"time"

	"github.com/cmlabs-hris/hris-web-go/internal/pkg/flexid"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/validator"
)

// Row is a holiday table line. Controls are rendered for every role.
type Row struct {
	ID            flexid.ID `json:"id"`
	Name          string    `json:"name"`
	FromDate      string    `json:"from_date"`
	ToDate        string    `json:"to_date"`
	TotalHolidays int       `json:"total_holidays"`
	CanEdit       bool      `json:"can_edit"`
	CanDelete     bool      `json:"can_delete"`
}

// Calendar is the holiday table view-model
type Calendar struct {
	Rows []Row `json:"rows"`
}

// ProjectRows maps holidays to rows one-to-one, in input order.
func ProjectRows(holidays []Holiday) []Row {
	rows := make([]Row, 0, len(holidays))
	for _, h := range holidays {
		rows = append(rows, Row{
			ID:            h.ID,
			Name:          h.Name,
			FromDate:      h.FromDate,
			ToDate:        h.ToDate,
			TotalHolidays: h.TotalHolidays,
			CanEdit:       true,
			CanDelete:     true,
		})
	}
	return rows
}

// CreateHolidayRequest is the body of POST /api/holidays
type CreateHolidayRequest struct {
	Name          string `json:"name"`
	FromDate      string `json:"fromDate"`
	ToDate        string `json:"toDate"`
	TotalHolidays int    `json:"totalHolidays"`
}

// Validate checks the request and fills TotalHolidays with the inclusive day
// count when it was left at zero.
func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	from, fromOK := validator.IsValidDate(r.FromDate)
	if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "fromDate",
			Message: "fromDate must be in YYYY-MM-DD format",
		})
	}

	to, toOK := validator.IsValidDate(r.ToDate)
	if !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "toDate",
			Message: "toDate must be in YYYY-MM-DD format",
		})
	}

	if fromOK && toOK {
		if to.Before(from) {
			errs = append(errs, validator.ValidationError{
				Field:   "toDate",
				Message: "toDate cannot be before fromDate",
			})
		} else if r.TotalHolidays == 0 {
			r.TotalHolidays = InclusiveDays(from, to)
		}
	}

	if r.TotalHolidays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "totalHolidays",
			Message: "totalHolidays must be at least 1",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// InclusiveDays counts calendar days from..to, both ends included
func InclusiveDays(from, to time.Time) int {
	return int(to.Sub(from).Hours()/24) + 1
}
