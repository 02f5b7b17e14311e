package filter

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"

	"github.com/aanand-mishra/student-records-api/internal/types"
)

func ptr[T any](v T) *T { return &v }

func person(uni string, cities ...string) types.Person {
	p := types.Person{Uni: uni, FirstName: "Ada", LastName: "Lovelace", Email: uni + "@columbia.edu"}
	for _, c := range cities {
		p.Addresses = append(p.Addresses, types.PersonAddress{
			AddressFields: types.AddressFields{City: c, Country: "USA"},
		})
	}
	return p
}

func unis(ps []types.Person) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Uni)
	}
	return out
}

func TestAll_NoPredicatesMatchesEverything(t *testing.T) {
	p := All[int]()
	assert.True(t, p(0))
	assert.True(t, p(42))
}

func TestAll_SkipsNilPredicates(t *testing.T) {
	p := All[int](nil, Equal(ptr(3), func(i int) int { return i }), nil)
	assert.True(t, p(3))
	assert.False(t, p(4))
}

func TestApply_KeepsOrderAndNeverNil(t *testing.T) {
	in := []int{5, 1, 4, 2, 3}
	assert.Equal(t, []int{4, 2}, Apply(in, func(i int) bool { return i%2 == 0 }))
	assert.Equal(t, in, Apply(in, nil))

	none := Apply(in, func(int) bool { return false })
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestPersons_NoFiltersReturnsAll(t *testing.T) {
	ps := []types.Person{person("ab1", "New York"), person("cd2")}
	assert.Equal(t, []string{"ab1", "cd2"}, unis(Apply(ps, Persons(types.PersonFilter{}))))
}

func TestPersons_CityIsExistentialOverAddresses(t *testing.T) {
	ps := []types.Person{
		person("dy2530", "New York"),
		person("ab12", "Boston", "New York"),
		person("cd34"),
	}

	got := Apply(ps, Persons(types.PersonFilter{City: ptr("New York")}))
	assert.Equal(t, []string{"dy2530", "ab12"}, unis(got))

	got = Apply(ps, Persons(types.PersonFilter{City: ptr("Chicago")}))
	assert.Empty(t, got)
}

func TestPersons_FiltersAreANDed(t *testing.T) {
	ps := []types.Person{person("dy2530", "New York"), person("ab12", "New York")}

	got := Apply(ps, Persons(types.PersonFilter{City: ptr("New York"), Uni: ptr("ab12")}))
	assert.Equal(t, []string{"ab12"}, unis(got))

	got = Apply(ps, Persons(types.PersonFilter{Country: ptr("USA"), Uni: ptr("zz99")}))
	assert.Empty(t, got)
}

func TestPersons_BirthDateCanonicalForm(t *testing.T) {
	withDate := person("dy2530")
	withDate.BirthDate = &civil.Date{Year: 2002, Month: 5, Day: 9}
	ps := []types.Person{withDate, person("ab12")}

	assert.Equal(t, []string{"dy2530"}, unis(Apply(ps, Persons(types.PersonFilter{BirthDate: ptr("2002-05-09")}))))
	assert.Empty(t, Apply(ps, Persons(types.PersonFilter{BirthDate: ptr("2002-5-9")})))
}

func TestPersons_PhoneUnsetNeverMatches(t *testing.T) {
	withPhone := person("dy2530")
	withPhone.Phone = ptr("+1-646-408-9482")
	ps := []types.Person{withPhone, person("ab12")}

	assert.Equal(t, []string{"dy2530"}, unis(Apply(ps, Persons(types.PersonFilter{Phone: ptr("+1-646-408-9482")}))))
	assert.Empty(t, Apply(ps, Persons(types.PersonFilter{Phone: ptr("")})))
}

func TestFeeDetails_FeePaid(t *testing.T) {
	fees := []types.FeeDetails{
		{UniversityName: "Columbia University", NumberOfCredits: 30, FeePaid: true},
		{UniversityName: "New York University", NumberOfCredits: 12, FeePaid: false},
	}

	paid := Apply(fees, FeeDetails(types.FeeDetailsFilter{FeePaid: ptr(true)}))
	assert.Len(t, paid, 1)
	assert.Equal(t, "Columbia University", paid[0].UniversityName)

	unpaid := Apply(fees, FeeDetails(types.FeeDetailsFilter{FeePaid: ptr(false)}))
	assert.Len(t, unpaid, 1)
	assert.Equal(t, "New York University", unpaid[0].UniversityName)

	assert.Empty(t, Apply(fees, FeeDetails(types.FeeDetailsFilter{UniversityName: ptr("Columbia University"), FeePaid: ptr(false)})))
}

func TestAddresses_EveryField(t *testing.T) {
	a := types.Address{AddressFields: types.AddressFields{
		Street: "736 Riverside Dr", City: "New York", State: "NY", PostalCode: "10031", Country: "USA",
	}}
	all := []types.Address{a}

	assert.Len(t, Apply(all, Addresses(types.AddressFilter{
		Street: ptr("736 Riverside Dr"), City: ptr("New York"), State: ptr("NY"),
		PostalCode: ptr("10031"), Country: ptr("USA"),
	})), 1)
	assert.Empty(t, Apply(all, Addresses(types.AddressFilter{PostalCode: ptr("10027")})))
	// exact match only: no case folding or trimming
	assert.Empty(t, Apply(all, Addresses(types.AddressFilter{City: ptr("new york")})))
}

func TestVisaStatuses(t *testing.T) {
	vs := []types.VisaStatus{{VisaStatus: "F1"}, {VisaStatus: "OPT"}, {VisaStatus: "F1"}}
	assert.Len(t, Apply(vs, VisaStatuses(types.VisaStatusFilter{VisaStatus: ptr("F1")})), 2)
	assert.Len(t, Apply(vs, VisaStatuses(types.VisaStatusFilter{})), 3)
}
