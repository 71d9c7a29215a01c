package employee

import (
	"encoding/json"
	"fmt"

	"github.com/cmlabs-hris/hris-web-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/flexid"
)

type LabelKind int

const (
	LabelAbsent     LabelKind = iota // no foreign key on the record
	LabelUnresolved                  // key present, no matching lookup row
	LabelResolved
)

func (k LabelKind) String() string {
	switch k {
	case LabelResolved:
		return "resolved"
	case LabelUnresolved:
		return "unresolved"
	default:
		return "absent"
	}
}

// Label is the display value of a foreign key.
type Label struct {
	Kind LabelKind
	Text string // display name when resolved, raw id when unresolved
}

func Resolved(text string) Label {
	return Label{Kind: LabelResolved, Text: text}
}

func Unresolved(rawID flexid.ID) Label {
	return Label{Kind: LabelUnresolved, Text: rawID.String()}
}

func Absent() Label {
	return Label{Kind: LabelAbsent}
}

// Display returns the label text, or placeholder when absent
func (l Label) Display(placeholder string) string {
	if l.Kind == LabelAbsent {
		return placeholder
	}
	return l.Text
}

func (l Label) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string  `json:"kind"`
		Text *string `json:"text"`
	}{
		Kind: l.Kind.String(),
		Text: l.textPtr(),
	})
}

func (l Label) textPtr() *string {
	if l.Kind == LabelAbsent {
		return nil
	}
	text := l.Text
	return &text
}

// ResolveRoleLabel renders "{roleName} ({accessLevel})" for a role id.
func ResolveRoleLabel(roleID *flexid.ID, roles []Role) Label {
	if roleID == nil || roleID.IsZero() {
		return Absent()
	}
	for _, r := range roles {
		if r.ID == *roleID {
			return Resolved(fmt.Sprintf("%s (%s)", r.RoleName, r.AccessLevel))
		}
	}
	return Unresolved(*roleID)
}

// ResolveDepartmentLabel renders the department name for a department id.
func ResolveDepartmentLabel(departmentID *flexid.ID, departments []Department) Label {
	if departmentID == nil || departmentID.IsZero() {
		return Absent()
	}
	for _, d := range departments {
		if d.ID == *departmentID {
			return Resolved(d.Name)
		}
	}
	return Unresolved(*departmentID)
}

// AccessLevelOf returns the access level of the role with the given id,
// AccessEmployee when the id is absent or unknown.
func AccessLevelOf(roleID *flexid.ID, roles []Role) user.AccessLevel {
	if roleID == nil {
		return user.AccessEmployee
	}
	for _, r := range roles {
		if r.ID == *roleID {
			return user.ParseAccessLevel(r.AccessLevel)
		}
	}
	return user.AccessEmployee
}
