package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/cmlabs-hris/hris-web-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// WantsJSON reports whether the caller expects a JSON body rather than a page
func WantsJSON(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return true
	}
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}

// AuthRequired rejects requests without a verified session token. Pages are
// redirected to loginURL with the original path in ?next=, JSON callers get
// 401.
func AuthRequired(loginURL string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err == nil && token != nil {
				next.ServeHTTP(w, r)
				return
			}

			if WantsJSON(r) {
				message := "Session required"
				if err != nil {
					message = err.Error()
				}
				response.Unauthorized(w, message)
				return
			}

			http.Redirect(w, r, loginRedirect(loginURL, r.URL.RequestURI()), http.StatusSeeOther)
		}
		return http.HandlerFunc(hfn)
	}
}

func loginRedirect(loginURL, next string) string {
	u, err := url.Parse(loginURL)
	if err != nil {
		return loginURL
	}
	q := u.Query()
	q.Set("next", next)
	u.RawQuery = q.Encode()
	return u.String()
}
