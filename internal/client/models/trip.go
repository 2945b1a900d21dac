package models

import "slices"

// Continent enumerates the values accepted by the trip form.
type Continent string

const (
	ContinentAfrica       Continent = "africa"
	ContinentAsia         Continent = "asia"
	ContinentEurope       Continent = "europe"
	ContinentNorthAmerica Continent = "north america"
	ContinentSouthAmerica Continent = "south america"
	ContinentAustralia    Continent = "australia"
	ContinentAntarctica   Continent = "antarctica"
)

// Continents lists all valid continent values in display order.
var Continents = []Continent{
	ContinentAfrica,
	ContinentAsia,
	ContinentEurope,
	ContinentNorthAmerica,
	ContinentSouthAmerica,
	ContinentAustralia,
	ContinentAntarctica,
}

// Trip is a travel-destination record as exposed by the /trips endpoints.
//
// Every field is required by the submit gate, including the numeric costs
// and VisaIsRequired. That means a cost of exactly 0 or a visa-free
// destination cannot be submitted; see the validation package for the
// open product question around this rule.
type Trip struct {
	ID                  string    `json:"_id,omitempty"`
	DestinationName     string    `json:"destinationName" validate:"required"`
	Location            string    `json:"location" validate:"required"`
	Continent           Continent `json:"continent" validate:"required,continent"`
	Language            string    `json:"language" validate:"required"`
	Nationality         string    `json:"nationality" validate:"required"`
	Images              []string  `json:"images" validate:"required,min=1"`
	Description         string    `json:"description" validate:"required"`
	FlightCost          float64   `json:"flightCost" validate:"required"`
	AccommodationCost   float64   `json:"accommodationCost" validate:"required"`
	MealCost            float64   `json:"mealCost" validate:"required"`
	VisaCost            float64   `json:"visaCost" validate:"required"`
	CurrencyCode        string    `json:"currencyCode" validate:"required"`
	TransportationModes []string  `json:"transportationModes" validate:"required,min=1"`
	TransportationCost  float64   `json:"transportationCost" validate:"required"`
	VisaIsRequired      bool      `json:"visaIsRequired" validate:"required"`
	VisaRequirements    string    `json:"visaRequirements" validate:"required"`
	TimeZone            string    `json:"timeZone" validate:"required"`
	BestTimeToVisit     string    `json:"bestTimeToVisit" validate:"required"`
	BestPlacesToVisit   []string  `json:"bestPlacesToVisit" validate:"required,min=1"`
}

// EmptyTrip returns the template used when adding a new trip.
func EmptyTrip() Trip {
	return Trip{
		Images:              []string{},
		TransportationModes: []string{},
		BestPlacesToVisit:   []string{},
	}
}

func (t Trip) GetID() string { return t.ID }

func (t Trip) Label() string { return t.DestinationName }

// IsNew reports whether the record has not been created remotely yet.
func (t Trip) IsNew() bool { return t.ID == "" }

// Clone returns a deep copy. The list fields are copied so that editing a
// draft never mutates the cached record it was loaded from.
func (t Trip) Clone() Trip {
	c := t
	c.Images = slices.Clone(t.Images)
	c.TransportationModes = slices.Clone(t.TransportationModes)
	c.BestPlacesToVisit = slices.Clone(t.BestPlacesToVisit)
	return c
}
