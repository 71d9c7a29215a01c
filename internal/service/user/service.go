package user

import (
	"context"

	"github.com/cmlabs-hris/hris-web-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/snapshot"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/sse"
)

type IdentityServiceImpl struct {
	client apiclient.ClientInterface
	store  *snapshot.Store
}

func NewIdentityService(client apiclient.ClientInterface, store *snapshot.Store) user.IdentityService {
	return &IdentityServiceImpl{client: client, store: store}
}

// Current returns the cached identity for the session, fetching it on a miss
func (s *IdentityServiceImpl) Current(ctx context.Context) (user.Identity, error) {
	me, err := snapshot.Load(ctx, s.store, sse.ResourceMe, jwt.Subject(ctx), s.client.Me)
	if err != nil {
		return user.PendingIdentity(), err
	}
	return user.LoadedIdentity(me), nil
}
