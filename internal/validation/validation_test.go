package validation

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/student-records-api/internal/patch"
	"github.com/aanand-mishra/student-records-api/internal/types"
)

func validPerson() types.PersonCreate {
	return types.PersonCreate{
		Uni:       "dy2530",
		FirstName: "Dhanvanth Reddy",
		LastName:  "Yerramreddy",
		Email:     "dhanvanthyerramreddy09@gmail.com",
	}
}

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var verr *Error
	require.True(t, errors.As(err, &verr), "expected *validation.Error, got %v", err)
	names := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestStruct_ValidPerson(t *testing.T) {
	assert.NoError(t, New().Struct(validPerson()))
}

func TestStruct_UniPattern(t *testing.T) {
	v := New()
	cases := map[string]bool{
		"ab12":     true,
		"abc1234":  true,
		"dy2530":   true,
		"AB123":    false,
		"abcd1":    false,
		"a1":       false,
		"ab":       false,
		"ab12345":  false,
		" ab12":    false,
		"ab12\n":   false,
		"ab-12":    false,
	}

	for uni, ok := range cases {
		p := validPerson()
		p.Uni = uni
		err := v.Struct(p)
		if ok {
			assert.NoError(t, err, "uni %q", uni)
			continue
		}
		require.Error(t, err, "uni %q", uni)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Equal(t, []string{"uni"}, fieldNames(t, err))
	}
}

func TestStruct_Email(t *testing.T) {
	p := validPerson()
	p.Email = "not-an-email"

	err := New().Struct(p)
	require.Error(t, err)
	assert.Equal(t, []string{"email"}, fieldNames(t, err))
	assert.Contains(t, err.Error(), "valid email")
}

func TestStruct_MissingRequiredFields(t *testing.T) {
	err := New().Struct(types.PersonCreate{})
	require.Error(t, err)
	assert.ElementsMatch(t, []string{"uni", "first_name", "last_name", "email"}, fieldNames(t, err))
}

func TestStruct_EmbeddedAddressPath(t *testing.T) {
	p := validPerson()
	p.Addresses = []types.AddressCreate{
		{AddressFields: types.AddressFields{Street: "736 Riverside Dr", State: "NY", PostalCode: "10031", Country: "USA"}},
	}

	err := New().Struct(p)
	require.Error(t, err)
	assert.Equal(t, []string{"addresses[0].city"}, fieldNames(t, err))
}

func TestStruct_FeeDetailsZeroValuesArePresent(t *testing.T) {
	credits, paid := 0, false
	fee := types.FeeDetailsCreate{
		UniversityName:  "Columbia University",
		NumberOfCredits: &credits,
		FeePaid:         &paid,
	}
	assert.NoError(t, New().Struct(fee))

	err := New().Struct(types.FeeDetailsCreate{UniversityName: "Columbia University"})
	require.Error(t, err)
	assert.ElementsMatch(t, []string{"number_of_credits", "fee_paid"}, fieldNames(t, err))
}

func TestStruct_UpdateChecksOnlyPresentFields(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(types.PersonUpdate{}))
	assert.NoError(t, v.Struct(types.PersonUpdate{Uni: patch.Null[string]()}))
	assert.NoError(t, v.Struct(types.PersonUpdate{Uni: patch.Value("abc1234")}))

	err := v.Struct(types.PersonUpdate{Uni: patch.Value("ABC1234"), Email: patch.Value("nope")})
	require.Error(t, err)
	assert.ElementsMatch(t, []string{"uni", "email"}, fieldNames(t, err))
}

func TestStruct_UpdateDivesIntoAddresses(t *testing.T) {
	u := types.PersonUpdate{
		Addresses: patch.Value([]types.AddressCreate{{}}),
	}

	err := New().Struct(u)
	require.Error(t, err)
	assert.Contains(t, fieldNames(t, err), "addresses[0].street")
}

func TestNotNull(t *testing.T) {
	err := Fail(NotNull("uni"))
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "field uni cannot be null", err.Error())
}

func TestFieldPath(t *testing.T) {
	assert.Equal(t, "uni", fieldPath("PersonCreate.uni"))
	assert.Equal(t, "addresses[1].postal_code", fieldPath("Person.addresses[1].AddressFields.postal_code"))
	assert.Equal(t, "street", fieldPath("AddressCreate.AddressFields.street"))
}

func TestNew_RegistersCustomRules(t *testing.T) {
	var v *Validator
	require.NotPanics(t, func() { v = New() })
	require.Error(t, v.Struct(types.PersonCreate{Uni: "ABC1", FirstName: "A", LastName: "B", Email: "a@b.io"}))
}
