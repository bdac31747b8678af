// internal/domain/models/careers.go
package models

// Canonical career values a bootcamp can offer.
//
// These strings are stored verbatim in Bootcamp.Careers and double as the
// display labels, so they must not be renamed without a data migration.
const (
	CareerWebDevelopment    = "Web Development"
	CareerMobileDevelopment = "Mobile Development"
	CareerUIUX              = "UI/UX"
	CareerDataScience       = "Data Science"
	CareerBusiness          = "Business"
	CareerOther             = "Other"
)

// CareerTypes is the full set of allowed career values.
//
// Validation and the collection schema enum are both built from this slice.
var CareerTypes = []string{
	CareerWebDevelopment,
	CareerMobileDevelopment,
	CareerUIUX,
	CareerDataScience,
	CareerBusiness,
	CareerOther,
}
