package middleware

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-web-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-web-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/flash"
)

// ManageOnly lets through identities that can manage employees. Denied page
// requests go back to fallbackURL with an error notification.
func ManageOnly(identities user.IdentityService, flashes *flash.Store, fallbackURL string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := identities.Current(r.Context())
			if err != nil {
				slog.WarnContext(r.Context(), "Identity lookup failed on managed route", "error", err)
			}

			if user.CanManage(identity) {
				next.ServeHTTP(w, r)
				return
			}

			if WantsJSON(r) {
				response.HandleError(w, user.ErrManageAccessRequired)
				return
			}

			flashes.Set(w, flash.Error(response.Describe(user.ErrManageAccessRequired).Message))
			http.Redirect(w, r, fallbackURL, http.StatusSeeOther)
		})
	}
}
