package filter

import "github.com/aanand-mishra/student-records-api/internal/types"

// Addresses builds the predicate for GET /addresses.
func Addresses(f types.AddressFilter) Predicate[types.Address] {
	return All(
		Equal(f.Street, func(a types.Address) string { return a.Street }),
		Equal(f.City, func(a types.Address) string { return a.City }),
		Equal(f.State, func(a types.Address) string { return a.State }),
		Equal(f.PostalCode, func(a types.Address) string { return a.PostalCode }),
		Equal(f.Country, func(a types.Address) string { return a.Country }),
	)
}

// Persons builds the predicate for GET /persons. City and Country look
// through the person's embedded addresses.
func Persons(f types.PersonFilter) Predicate[types.Person] {
	addresses := func(p types.Person) []types.PersonAddress { return p.Addresses }

	return All(
		Equal(f.Uni, func(p types.Person) string { return p.Uni }),
		Equal(f.FirstName, func(p types.Person) string { return p.FirstName }),
		Equal(f.LastName, func(p types.Person) string { return p.LastName }),
		Equal(f.Email, func(p types.Person) string { return p.Email }),
		EqualOptional(f.Phone, func(p types.Person) *string { return p.Phone }),
		EqualOptional(f.BirthDate, birthDate),
		Any(f.City, addresses, func(a types.PersonAddress) string { return a.City }),
		Any(f.Country, addresses, func(a types.PersonAddress) string { return a.Country }),
	)
}

// birthDate returns the canonical YYYY-MM-DD form, or nil when unset.
func birthDate(p types.Person) *string {
	if p.BirthDate == nil {
		return nil
	}
	s := p.BirthDate.String()
	return &s
}

// FeeDetails builds the predicate for GET /fee_details.
func FeeDetails(f types.FeeDetailsFilter) Predicate[types.FeeDetails] {
	return All(
		Equal(f.UniversityName, func(d types.FeeDetails) string { return d.UniversityName }),
		Equal(f.FeePaid, func(d types.FeeDetails) bool { return d.FeePaid }),
	)
}

// VisaStatuses builds the predicate for GET /visa_status.
func VisaStatuses(f types.VisaStatusFilter) Predicate[types.VisaStatus] {
	return All(
		Equal(f.VisaStatus, func(v types.VisaStatus) string { return v.VisaStatus }),
	)
}
