package holiday

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-web-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/apiclient/apiclienttest"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/snapshot"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/sse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHolidayService(t *testing.T) {
	api := apiclienttest.New()
	api.Holidays = []holiday.Holiday{
		{ID: "1", Name: "New Year", FromDate: "2025-01-01", ToDate: "2025-01-01", TotalHolidays: 1},
		{ID: "2", Name: "Lebaran", FromDate: "2025-03-31", ToDate: "2025-04-01", TotalHolidays: 2},
	}

	store := snapshot.NewStore(time.Minute)
	hub := sse.NewHub()
	store.Attach(hub)
	svc := NewHolidayService(api, store, hub)
	ctx := jwt.WithRawToken(context.Background(), "session")

	cal, err := svc.GetCalendar(ctx)
	require.NoError(t, err)
	require.Len(t, cal.Rows, 2)
	assert.Equal(t, "New Year", cal.Rows[0].Name)
	assert.True(t, cal.Rows[1].CanEdit)
	assert.True(t, cal.Rows[1].CanDelete)

	_, err = svc.CreateHoliday(ctx, holiday.CreateHolidayRequest{Name: "Bad", FromDate: "2025-05-02", ToDate: "2025-05-01"})
	assert.Error(t, err)
	assert.Equal(t, 0, api.CallCount("CreateHoliday"))

	created, err := svc.CreateHoliday(ctx, holiday.CreateHolidayRequest{Name: "Labour Day", FromDate: "2025-05-01", ToDate: "2025-05-02"})
	require.NoError(t, err)
	assert.Equal(t, 2, created.TotalHolidays)

	cal, err = svc.GetCalendar(ctx)
	require.NoError(t, err)
	assert.Len(t, cal.Rows, 3)
	assert.Equal(t, 2, api.CallCount("ListHolidays"))
}
