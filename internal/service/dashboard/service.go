package dashboard

import (
	"context"
	"log/slog"

	"github.com/cmlabs-hris/hris-web-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-web-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/snapshot"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/sse"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	client   apiclient.ClientInterface
	store    *snapshot.Store
	identity user.IdentityService
}

func NewDashboardService(client apiclient.ClientInterface, store *snapshot.Store, identity user.IdentityService) dashboard.DashboardService {
	return &DashboardServiceImpl{
		client:   client,
		store:    store,
		identity: identity,
	}
}

// GetDashboard fetches stats and identity in parallel. A failed stats fetch
// renders zero cards and a failed identity renders the Employee view; only a
// rejected session is returned as an error.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (*dashboard.View, error) {
	var (
		stats    *dashboard.Stats
		identity = user.PendingIdentity()
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		result, err := snapshot.Load(gctx, s.store, sse.ResourceStats, jwt.Subject(gctx), s.client.GetStats)
		if err != nil {
			if apiclient.IsSessionError(err) {
				return err
			}
			slog.WarnContext(ctx, "Dashboard stats unavailable", "error", err)
			return nil
		}
		stats = result
		return nil
	})

	g.Go(func() error {
		result, err := s.identity.Current(gctx)
		if err != nil {
			if apiclient.IsSessionError(err) {
				return err
			}
			slog.WarnContext(ctx, "Identity unavailable, rendering employee view", "error", err)
			return nil
		}
		identity = result
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	view := dashboard.BuildView(identity, stats)
	return &view, nil
}
