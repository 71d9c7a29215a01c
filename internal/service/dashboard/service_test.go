package dashboard

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-web-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-web-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/apiclient/apiclienttest"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/snapshot"
	userservice "github.com/cmlabs-hris/hris-web-go/internal/service/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(api *apiclienttest.Fake) dashboard.DashboardService {
	store := snapshot.NewStore(time.Minute)
	return NewDashboardService(api, store, userservice.NewIdentityService(api, store))
}

func counts(cards []dashboard.Card) []int64 {
	out := make([]int64, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.Count)
	}
	return out
}

func TestGetDashboard_Admin(t *testing.T) {
	api := apiclienttest.New()
	api.User = user.CurrentUser{ID: "1", FirstName: "Ana", AccessLevel: "Admin"}
	api.Stats = &dashboard.Stats{
		TotalEmployees: 50, PresentToday: 42, OnLeave: 3,
		PendingApprovals: 1, PendingReimbursements: 2, PendingRegularizations: 0,
	}

	view, err := newService(api).GetDashboard(jwt.WithRawToken(context.Background(), "t"))
	require.NoError(t, err)

	assert.Equal(t, "Admin", view.AccessLevel)
	assert.Equal(t, []int64{50, 42, 3, 3}, counts(view.Cards))
	assert.True(t, view.Pending.Visible)
	assert.True(t, view.StatsLoaded)
}

func TestGetDashboard_StatsFailureRendersZeros(t *testing.T) {
	api := apiclienttest.New()
	api.User = user.CurrentUser{ID: "1", FirstName: "Ana", AccessLevel: "HR"}
	api.StatsErr = &apiclient.APIError{Status: http.StatusInternalServerError, Message: "down"}

	view, err := newService(api).GetDashboard(jwt.WithRawToken(context.Background(), "t"))
	require.NoError(t, err)

	assert.Equal(t, []int64{0, 0, 0, 0}, counts(view.Cards))
	assert.False(t, view.StatsLoaded)
}

func TestGetDashboard_IdentityFailureRendersEmployeeView(t *testing.T) {
	api := apiclienttest.New()
	api.MeErr = errors.New("timeout")
	api.Stats = &dashboard.Stats{PresentToday: 1}

	view, err := newService(api).GetDashboard(jwt.WithRawToken(context.Background(), "t"))
	require.NoError(t, err)

	assert.Equal(t, "Employee", view.AccessLevel)
	assert.False(t, view.Pending.Visible)
	require.Len(t, view.Cards, 4)
	assert.Equal(t, "Present", view.Cards[0].Text)
}

func TestGetDashboard_RejectedSession(t *testing.T) {
	api := apiclienttest.New()
	api.MeErr = &apiclient.APIError{Status: http.StatusUnauthorized, Message: "Unauthorized"}

	_, err := newService(api).GetDashboard(jwt.WithRawToken(context.Background(), "t"))
	assert.True(t, apiclient.IsSessionError(err))
}
