package employee

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/cmlabs-hris/hris-web-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/flexid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProfiles() []Profile {
	return []Profile{
		{ID: "1", FirstName: "Ann", LastName: "Lee", Email: "a@x.com", Username: "alee", RoleID: flexid.Ptr("10"), DepartmentID: flexid.Ptr("100"), Status: StatusActive},
		{ID: "2", FirstName: "Bob", LastName: "Stone", Email: "bob.stone@corp.io", Username: "bstone", Status: StatusInactive},
		{ID: "3", FirstName: "Cleo", LastName: "Park", Email: "cleo@x.com", Username: "cpark", RoleID: flexid.Ptr("99"), Status: StatusActive},
	}
}

func TestFilterDirectory_EmptyQuery(t *testing.T) {
	profiles := sampleProfiles()
	got := FilterDirectory(profiles, "")
	assert.Equal(t, profiles, got)
}

func TestFilterDirectory_Scenario(t *testing.T) {
	profiles := []Profile{{FirstName: "Ann", LastName: "Lee", Email: "a@x.com", Username: "alee"}}
	assert.Len(t, FilterDirectory(profiles, "LEE"), 1)
}

func TestFilterDirectory_CaseInsensitiveEmail(t *testing.T) {
	profiles := sampleProfiles()
	got := FilterDirectory(profiles, strings.ToUpper("stone@corp"))
	require.Len(t, got, 1)
	assert.Equal(t, flexid.ID("2"), got[0].ID)
}

func TestFilterDirectory_StableOrder(t *testing.T) {
	got := FilterDirectory(sampleProfiles(), "x.com")
	require.Len(t, got, 2)
	assert.Equal(t, flexid.ID("1"), got[0].ID)
	assert.Equal(t, flexid.ID("3"), got[1].ID)
}

func TestFilterDirectory_AcrossFields(t *testing.T) {
	profiles := sampleProfiles()
	assert.Len(t, FilterDirectory(profiles, "ann lee"), 1)
	assert.Len(t, FilterDirectory(profiles, "cpark"), 1)
	assert.Empty(t, FilterDirectory(profiles, "nobody"))
}

func TestResolveRoleLabel(t *testing.T) {
	roles := []Role{{ID: "10", RoleName: "People Ops", AccessLevel: "HR"}}

	assert.Equal(t, Resolved("People Ops (HR)"), ResolveRoleLabel(flexid.Ptr("10"), roles))
	assert.Equal(t, Unresolved("11"), ResolveRoleLabel(flexid.Ptr("11"), roles))
	assert.Equal(t, Absent(), ResolveRoleLabel(nil, roles))
	assert.Equal(t, Absent(), ResolveRoleLabel(nil, nil))
}

func TestResolveRoleLabel_EmptyRoles(t *testing.T) {
	label := ResolveRoleLabel(flexid.Ptr("42"), []Role{})
	assert.Equal(t, LabelUnresolved, label.Kind)
	assert.Equal(t, "42", label.Text)
}

func TestResolveDepartmentLabel(t *testing.T) {
	departments := []Department{{ID: "100", Name: "Finance"}}

	assert.Equal(t, Resolved("Finance"), ResolveDepartmentLabel(flexid.Ptr("100"), departments))
	assert.Equal(t, Unresolved("7"), ResolveDepartmentLabel(flexid.Ptr("7"), departments))
	assert.Equal(t, Absent(), ResolveDepartmentLabel(nil, departments))
	assert.Equal(t, "-", Absent().Display("-"))
	assert.Equal(t, "7", Unresolved("7").Display("-"))
}

func TestLabel_MarshalJSON(t *testing.T) {
	b, err := json.Marshal([]Label{Resolved("Finance"), Unresolved("7"), Absent()})
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"kind": "resolved", "text": "Finance"},
		{"kind": "unresolved", "text": "7"},
		{"kind": "absent", "text": null}
	]`, string(b))
}

func TestBuildDirectory(t *testing.T) {
	roles := []Role{{ID: "10", RoleName: "Engineer", AccessLevel: "Employee"}}
	departments := []Department{{ID: "100", Name: "R&D"}}
	admin := user.LoadedIdentity(user.CurrentUser{AccessLevel: "Admin"})

	dir := BuildDirectory(sampleProfiles(), roles, departments, "x.com", admin)

	assert.Equal(t, 3, dir.Total)
	assert.Equal(t, 2, dir.Shown)
	assert.True(t, dir.CanManage)
	require.Len(t, dir.Rows, 2)
	assert.Equal(t, "Ann Lee", dir.Rows[0].Name)
	assert.Equal(t, "AL", dir.Rows[0].Initials)
	assert.Equal(t, "Engineer (Employee)", dir.Rows[0].Role.Text)
	assert.Equal(t, "R&D", dir.Rows[0].Department.Text)
	assert.Equal(t, Unresolved("99"), dir.Rows[1].Role)
	assert.Equal(t, LabelAbsent, dir.Rows[1].Department.Kind)
	assert.True(t, dir.Rows[1].CanDelete)
}

func TestBuildDirectory_NoManagementWhilePending(t *testing.T) {
	dir := BuildDirectory(sampleProfiles(), nil, nil, "", user.PendingIdentity())
	assert.False(t, dir.CanManage)
	for _, row := range dir.Rows {
		assert.False(t, row.CanEdit)
		assert.False(t, row.CanDelete)
	}

	hr := BuildDirectory(sampleProfiles(), nil, nil, "", user.LoadedIdentity(user.CurrentUser{AccessLevel: "HR"}))
	assert.False(t, hr.CanManage)
}

func TestAccessLevelOf(t *testing.T) {
	roles := []Role{{ID: "1", AccessLevel: "Manager"}}
	assert.Equal(t, user.AccessManager, AccessLevelOf(flexid.Ptr("1"), roles))
	assert.Equal(t, user.AccessEmployee, AccessLevelOf(flexid.Ptr("2"), roles))
	assert.Equal(t, user.AccessEmployee, AccessLevelOf(nil, roles))
}
