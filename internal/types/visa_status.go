package types

import "github.com/aanand-mishra/student-records-api/internal/patch"

// VisaStatusCreate is the payload for POST /visa_status.
type VisaStatusCreate struct {
	VisaStatus string `json:"visa_status" validate:"required"`
}

// VisaStatusUpdate is the payload for PATCH /visa_status/{id}.
type VisaStatusUpdate struct {
	VisaStatus patch.Field[string] `json:"visa_status,omitzero"`
}

// VisaStatus is the stored representation of a visa record (F1, H1B, OPT...).
type VisaStatus struct {
	Metadata
	VisaStatus string `json:"visa_status" validate:"required"`
}

// VisaStatusFilter holds the list filters for GET /visa_status.
type VisaStatusFilter struct {
	VisaStatus *string
}
