// internal/domain/models/bootcamp.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultBootcampPhoto is stored when no photo has been uploaded.
const DefaultBootcampPhoto = "no-photo.jpg"

// Bootcamp is a listing in the bootcamp directory.
//
// Slug and Location are derived on every save and are never taken from
// caller input. Address is only carried on the way in: once geocoding has
// populated Location it is cleared and never written to the database.
type Bootcamp struct {
	ID     primitive.ObjectID `bson:"_id" json:"id"`
	Name   string             `bson:"name" json:"name" validate:"required,max=50" label:"Name"`
	NameCI string             `bson:"name_ci" json:"-"` // ← always stored
	Slug   string             `bson:"slug" json:"slug"`

	Description string `bson:"description" json:"description" validate:"required,max=500" label:"Description"`
	Website     string `bson:"website,omitempty" json:"website,omitempty" validate:"omitempty,httpurl" label:"Website"`
	Phone       string `bson:"phone,omitempty" json:"phone,omitempty" validate:"omitempty,max=20" label:"Phone number"`
	Email       string `bson:"email,omitempty" json:"email,omitempty" validate:"omitempty,looseemail" label:"Email"`

	Address  string    `bson:"address,omitempty" json:"address,omitempty" label:"Address"`
	Location *Location `bson:"location,omitempty" json:"location,omitempty"`

	Careers       []string `bson:"careers" json:"careers" validate:"required,min=1,dive,career" label:"Careers"`
	AverageRating *float64 `bson:"average_rating,omitempty" json:"averageRating,omitempty" validate:"omitempty,gte=1,lte=10" label:"Rating"`
	AverageCost   *float64 `bson:"average_cost,omitempty" json:"averageCost,omitempty"`

	Photo         string `bson:"photo" json:"photo"`
	Housing       bool   `bson:"housing" json:"housing"`
	JobAssistance bool   `bson:"job_assistance" json:"jobAssistance"`
	JobGuarantee  bool   `bson:"job_guarantee" json:"jobGuarantee"`
	AcceptGi      bool   `bson:"accept_gi" json:"acceptGi"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// GeoJSONPoint is the only GeoJSON type stored in Location.Type.
const GeoJSONPoint = "Point"

// Location is a GeoJSON point plus the address parts returned by the geocoder.
// Coordinates are [longitude, latitude] so the field can carry a 2dsphere index.
type Location struct {
	Type             string    `bson:"type" json:"type"`
	Coordinates      []float64 `bson:"coordinates" json:"coordinates"`
	FormattedAddress string    `bson:"formatted_address" json:"formattedAddress"`
	Street           string    `bson:"street" json:"street"`
	City             string    `bson:"city" json:"city"`
	State            string    `bson:"state" json:"state"`
	Zipcode          string    `bson:"zipcode" json:"zipcode"`
	Country          string    `bson:"country" json:"country"`
}

// Longitude returns the first coordinate, or 0 when the point is empty.
func (l Location) Longitude() float64 {
	if len(l.Coordinates) < 2 {
		return 0
	}
	return l.Coordinates[0]
}

// Latitude returns the second coordinate, or 0 when the point is empty.
func (l Location) Latitude() float64 {
	if len(l.Coordinates) < 2 {
		return 0
	}
	return l.Coordinates[1]
}
