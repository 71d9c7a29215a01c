package employee

import (
	"testing"

	"github.com/cmlabs-hris/hris-web-go/internal/pkg/flexid"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEmployeeRequest_Validate(t *testing.T) {
	valid := CreateEmployeeRequest{
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "ann@example.com",
		Username:  "alee",
		Status:    StatusActive,
		RoleID:    flexid.Ptr("3"),
	}
	assert.NoError(t, valid.Validate())

	invalid := CreateEmployeeRequest{Email: "nope", Username: "a", Status: "Retired"}
	err := invalid.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "firstName")
	assert.Contains(t, fields, "lastName")
	assert.Equal(t, "invalid email format", fields["email"])
	assert.Contains(t, fields, "username")
	assert.Contains(t, fields, "status")
}

func TestUpdateEmployeeRequest_Validate(t *testing.T) {
	req := FromProfile(Profile{ID: "5", FirstName: "Bo", LastName: "Kim", Email: "bo@kim.dev", Username: "bokim", Status: StatusInactive})
	assert.NoError(t, req.Validate())

	req.ID = ""
	blank := flexid.ID(" ")
	req.DepartmentID = &blank
	err := req.Validate()

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "id")
	assert.Contains(t, errs.ToMap(), "departmentId")
}
