package types

import "github.com/aanand-mishra/student-records-api/internal/patch"

// FeeDetailsCreate is the payload for POST /fee_details.
//
// The number and the boolean are pointers so that "required" means
// "present": 0 credits and fee_paid=false are valid values, a missing
// key is not.
type FeeDetailsCreate struct {
	UniversityName  string `json:"university_name"   validate:"required"`
	NumberOfCredits *int   `json:"number_of_credits" validate:"required"`
	FeePaid         *bool  `json:"fee_paid"          validate:"required"`
}

// FeeDetailsUpdate is the payload for PATCH /fee_details/{id}.
type FeeDetailsUpdate struct {
	UniversityName  patch.Field[string] `json:"university_name,omitzero"`
	NumberOfCredits patch.Field[int]    `json:"number_of_credits,omitzero"`
	FeePaid         patch.Field[bool]   `json:"fee_paid,omitzero"`
}

// FeeDetails is the stored representation of a tuition fee record.
type FeeDetails struct {
	Metadata
	UniversityName  string `json:"university_name" validate:"required"`
	NumberOfCredits int    `json:"number_of_credits"`
	FeePaid         bool   `json:"fee_paid"`
}

// FeeDetailsFilter holds the list filters for GET /fee_details.
type FeeDetailsFilter struct {
	UniversityName *string
	FeePaid        *bool
}
