package holiday

import "context"

// HolidayService defines the holiday calendar operations
type HolidayService interface {
	// GetCalendar returns the holiday table
	GetCalendar(ctx context.Context) (*Calendar, error)

	// CreateHoliday forwards a new holiday to the API
	CreateHoliday(ctx context.Context, req CreateHolidayRequest) (Holiday, error)
}
