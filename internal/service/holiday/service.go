package holiday

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-web-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/snapshot"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/sse"
)

type HolidayServiceImpl struct {
	client apiclient.ClientInterface
	store  *snapshot.Store
	hub    *sse.Hub
}

func NewHolidayService(client apiclient.ClientInterface, store *snapshot.Store, hub *sse.Hub) holiday.HolidayService {
	return &HolidayServiceImpl{client: client, store: store, hub: hub}
}

func (s *HolidayServiceImpl) GetCalendar(ctx context.Context) (*holiday.Calendar, error) {
	holidays, err := snapshot.Load(ctx, s.store, sse.ResourceHolidays, jwt.Subject(ctx), s.client.ListHolidays)
	if err != nil {
		return nil, fmt.Errorf("failed to load holidays: %w", err)
	}
	return &holiday.Calendar{Rows: holiday.ProjectRows(holidays)}, nil
}

func (s *HolidayServiceImpl) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.Holiday, error) {
	if err := req.Validate(); err != nil {
		return holiday.Holiday{}, err
	}

	created, err := s.client.CreateHoliday(ctx, req)
	if err != nil {
		return holiday.Holiday{}, err
	}

	s.hub.Publish(sse.ResourceHolidays)
	slog.InfoContext(ctx, "Holiday created", "holiday_id", created.ID, "name", created.Name)
	return created, nil
}
