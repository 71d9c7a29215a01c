package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/cmlabs-hris/hris-web-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-web-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/flash"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/sse"
	"github.com/cmlabs-hris/hris-web-go/internal/view"
)

// Pages holds what every HTML handler needs to render a full page
type Pages struct {
	Views      *view.Renderer
	Flashes    *flash.Store
	Identities user.IdentityService
	LoginURL   string
}

// page describes one render: the template, the nav entry to highlight and the
// resources whose invalidation reloads it.
type page struct {
	name  string
	title string
	nav   string
	live  []sse.Resource
}

func (p *Pages) render(w http.ResponseWriter, r *http.Request, status int, pg page, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}

	identity, err := p.Identities.Current(r.Context())
	if err != nil {
		slog.DebugContext(r.Context(), "Rendering with pending identity", "error", err)
	}

	live := make([]string, 0, len(pg.live))
	for _, res := range pg.live {
		live = append(live, string(res))
	}

	data["Title"] = pg.title
	data["Nav"] = pg.nav
	data["Live"] = strings.Join(live, " ")
	data["User"] = identity
	if _, exists := data["Errors"]; !exists {
		data["Errors"] = map[string]string{}
	}
	if _, exists := data["Flash"]; !exists {
		if msg, ok := p.Flashes.Pop(w, r); ok {
			data["Flash"] = &msg
		}
	}

	if err := p.Views.Render(w, status, pg.name, data); err != nil {
		slog.ErrorContext(r.Context(), "Failed to render page", "page", pg.name, "error", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

// redirect queues msg and sends the browser to target
func (p *Pages) redirect(w http.ResponseWriter, r *http.Request, target string, msg flash.Message) {
	p.Flashes.Set(w, msg)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// fail reports err to the user. A refused session goes back to the login
// page; anything else becomes an error notification on target.
func (p *Pages) fail(w http.ResponseWriter, r *http.Request, err error, target string) {
	if apiclient.IsSessionError(err) {
		http.Redirect(w, r, p.LoginURL, http.StatusSeeOther)
		return
	}
	p.redirect(w, r, target, flash.Error(response.Describe(err).Message))
}

// failInline renders pg with an error notification instead of redirecting,
// for GET pages where a redirect would loop.
func (p *Pages) failInline(w http.ResponseWriter, r *http.Request, err error, pg page) {
	if apiclient.IsSessionError(err) {
		http.Redirect(w, r, p.LoginURL, http.StatusSeeOther)
		return
	}
	problem := response.Describe(err)
	slog.WarnContext(r.Context(), "Page data unavailable", "page", pg.name, "error", err)
	msg := flash.Error(problem.Message)
	p.render(w, r, problem.Status, pg, map[string]any{"Flash": &msg})
}
