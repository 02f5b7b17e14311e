package registry

import (
	"github.com/aanand-mishra/student-records-api/internal/identity"
	"github.com/aanand-mishra/student-records-api/internal/patch"
	"github.com/aanand-mishra/student-records-api/internal/types"
	"github.com/aanand-mishra/student-records-api/internal/validation"
)

// merger applies patch fields and collects the ones that were sent as
// null but cannot be cleared.
type merger struct {
	errs []validation.FieldError
}

func (m *merger) err() error {
	if len(m.errs) == 0 {
		return nil
	}
	return validation.Fail(m.errs...)
}

// set overwrites *dst when f is present. null is rejected.
func set[T any](m *merger, dst *T, f patch.Field[T], name string) {
	if !f.IsSet() {
		return
	}
	if f.IsNull() {
		m.errs = append(m.errs, validation.NotNull(name))
		return
	}
	*dst, _ = f.Get()
}

// setNullable overwrites *dst when f is present; null clears it.
func setNullable[T any](dst **T, f patch.Field[T]) {
	if !f.IsSet() {
		return
	}
	v, ok := f.Get()
	if !ok {
		*dst = nil
		return
	}
	*dst = &v
}

func mergeAddress(cur types.Address, u types.AddressUpdate) (types.Address, error) {
	var m merger
	set(&m, &cur.Street, u.Street, "street")
	set(&m, &cur.City, u.City, "city")
	set(&m, &cur.State, u.State, "state")
	set(&m, &cur.PostalCode, u.PostalCode, "postal_code")
	set(&m, &cur.Country, u.Country, "country")
	return cur, m.err()
}

// mergePerson replaces the embedded addresses wholesale when the field is
// present: a list (even empty) or null both overwrite what was stored.
func mergePerson(cur types.Person, u types.PersonUpdate, ids *identity.Assigner) (types.Person, error) {
	var m merger
	set(&m, &cur.Uni, u.Uni, "uni")
	set(&m, &cur.FirstName, u.FirstName, "first_name")
	set(&m, &cur.LastName, u.LastName, "last_name")
	set(&m, &cur.Email, u.Email, "email")
	setNullable(&cur.Phone, u.Phone)
	setNullable(&cur.BirthDate, u.BirthDate)
	if u.Addresses.IsSet() {
		list, _ := u.Addresses.Get()
		cur.Addresses = embedAddresses(list, ids)
	}
	return cur, m.err()
}

func mergeFeeDetails(cur types.FeeDetails, u types.FeeDetailsUpdate) (types.FeeDetails, error) {
	var m merger
	set(&m, &cur.UniversityName, u.UniversityName, "university_name")
	set(&m, &cur.NumberOfCredits, u.NumberOfCredits, "number_of_credits")
	set(&m, &cur.FeePaid, u.FeePaid, "fee_paid")
	return cur, m.err()
}

func mergeVisaStatus(cur types.VisaStatus, u types.VisaStatusUpdate) (types.VisaStatus, error) {
	var m merger
	set(&m, &cur.VisaStatus, u.VisaStatus, "visa_status")
	return cur, m.err()
}

// embedAddresses copies address payloads into a person's own list. A
// client id is kept; a missing one is generated. The result is never nil.
func embedAddresses(in []types.AddressCreate, ids *identity.Assigner) []types.PersonAddress {
	out := make([]types.PersonAddress, 0, len(in))
	for _, a := range in {
		id := ids.NewID()
		if a.ID != nil {
			id = *a.ID
		}
		out = append(out, types.PersonAddress{ID: id, AddressFields: a.AddressFields})
	}
	return out
}
