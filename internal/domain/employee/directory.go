package employee

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cmlabs-hris/hris-web-go/internal/domain/user"
)

// FilterDirectory keeps the profiles whose "first last email username" contains
// query, ignoring case. Input order is preserved; an empty query keeps all.
func FilterDirectory(profiles []Profile, query string) []Profile {
	if query == "" {
		return profiles
	}

	needle := strings.ToLower(query)
	filtered := make([]Profile, 0, len(profiles))
	for _, p := range profiles {
		haystack := strings.ToLower(p.FirstName + " " + p.LastName + " " + p.Email + " " + p.Username)
		if strings.Contains(haystack, needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// BuildDirectory filters profiles and resolves their lookup labels into
// display rows.
func BuildDirectory(profiles []Profile, roles []Role, departments []Department, query string, identity user.Identity) Directory {
	canManage := user.CanManage(identity)
	matches := FilterDirectory(profiles, query)

	rows := make([]Row, 0, len(matches))
	for _, p := range matches {
		rows = append(rows, Row{
			ID:         p.ID,
			Name:       p.FullName(),
			Initials:   initials(p),
			Email:      p.Email,
			Username:   p.Username,
			Photo:      p.Photo,
			Role:       ResolveRoleLabel(p.RoleID, roles),
			Department: ResolveDepartmentLabel(p.DepartmentID, departments),
			Status:     p.Status,
			CanEdit:    canManage,
			CanDelete:  canManage,
		})
	}

	return Directory{
		Query:     query,
		Rows:      rows,
		Total:     len(profiles),
		Shown:     len(rows),
		CanManage: canManage,
	}
}

func initials(p Profile) string {
	var b strings.Builder
	for _, part := range []string{p.FirstName, p.LastName} {
		r, _ := utf8.DecodeRuneInString(strings.TrimSpace(part))
		if r != utf8.RuneError {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	if b.Len() == 0 {
		return "?"
	}
	return b.String()
}
