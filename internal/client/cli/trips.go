package cli

import (
	"context"
	"errors"
	"fmt"

	"tripadmin/internal/client/models"
	"tripadmin/internal/client/validation"
)

func (a *App) listTrips(ctx context.Context) {
	if a.trips.Cache().Len() == 0 {
		if err := a.trips.FetchAll(ctx); err != nil {
			return
		}
	}
	for _, t := range a.trips.Cache().All() {
		fmt.Fprintf(a.out, "%s  %s (%s, %s)\n", t.ID, t.DestinationName, t.Location, t.Continent)
	}
}

func (a *App) addTrip(ctx context.Context) {
	a.trips.Dialog().OpenForCreate()
	a.runTripDialog(ctx)
}

func (a *App) editTrip(ctx context.Context, id string) {
	rec, ok := a.trips.Cache().Get(id)
	if !ok {
		fmt.Fprintln(a.out, "No such trip:", id)
		return
	}
	a.trips.Dialog().OpenForEdit(rec)
	a.runTripDialog(ctx)
}

func (a *App) runTripDialog(ctx context.Context) {
	for {
		if err := a.promptTrip(); err != nil {
			a.trips.Dialog().Close()
			return
		}

		err := a.trips.Submit(ctx)
		if err == nil {
			return
		}

		var verr *validation.Error
		if errors.As(err, &verr) {
			for _, f := range verr.Fields {
				fmt.Fprintln(a.out, f.Message)
			}
			continue
		}
		return
	}
}

func (a *App) promptTrip() error {
	draft := a.trips.Dialog().Draft()
	cur := draft.Value()
	r, w := a.reader, a.out

	name, err := GetSimpleText(r, "Destination name", cur.DestinationName, w)
	if err != nil {
		return err
	}
	location, err := GetSimpleText(r, "Location", cur.Location, w)
	if err != nil {
		return err
	}
	continent, err := GetSimpleText(r, continentPrompt(), string(cur.Continent), w)
	if err != nil {
		return err
	}
	language, err := GetSimpleText(r, "Language", cur.Language, w)
	if err != nil {
		return err
	}
	nationality, err := GetSimpleText(r, "Nationality", cur.Nationality, w)
	if err != nil {
		return err
	}
	images, err := GetList(r, "Image URLs", cur.Images, w)
	if err != nil {
		return err
	}
	description, err := GetSimpleText(r, "Description", cur.Description, w)
	if err != nil {
		return err
	}
	flightCost, err := GetNumber(r, "Flight cost", cur.FlightCost, w)
	if err != nil {
		return err
	}
	accommodationCost, err := GetNumber(r, "Accommodation cost", cur.AccommodationCost, w)
	if err != nil {
		return err
	}
	mealCost, err := GetNumber(r, "Meal cost", cur.MealCost, w)
	if err != nil {
		return err
	}
	visaCost, err := GetNumber(r, "Visa cost", cur.VisaCost, w)
	if err != nil {
		return err
	}
	currencyCode, err := GetSimpleText(r, "Currency code", cur.CurrencyCode, w)
	if err != nil {
		return err
	}
	transportationModes, err := GetList(r, "Transportation modes", cur.TransportationModes, w)
	if err != nil {
		return err
	}
	transportationCost, err := GetNumber(r, "Transportation cost", cur.TransportationCost, w)
	if err != nil {
		return err
	}
	visaIsRequired, err := GetBool(r, "Visa required", cur.VisaIsRequired, w)
	if err != nil {
		return err
	}
	visaRequirements, err := GetSimpleText(r, "Visa requirements", cur.VisaRequirements, w)
	if err != nil {
		return err
	}
	timeZone, err := GetSimpleText(r, "Time zone", cur.TimeZone, w)
	if err != nil {
		return err
	}
	bestTimeToVisit, err := GetSimpleText(r, "Best time to visit", cur.BestTimeToVisit, w)
	if err != nil {
		return err
	}
	bestPlacesToVisit, err := GetList(r, "Best places to visit", cur.BestPlacesToVisit, w)
	if err != nil {
		return err
	}

	draft.Mutate(func(t *models.Trip) {
		t.DestinationName = name
		t.Location = location
		t.Continent = models.Continent(continent)
		t.Language = language
		t.Nationality = nationality
		t.Images = images
		t.Description = description
		t.FlightCost = flightCost
		t.AccommodationCost = accommodationCost
		t.MealCost = mealCost
		t.VisaCost = visaCost
		t.CurrencyCode = currencyCode
		t.TransportationModes = transportationModes
		t.TransportationCost = transportationCost
		t.VisaIsRequired = visaIsRequired
		t.VisaRequirements = visaRequirements
		t.TimeZone = timeZone
		t.BestTimeToVisit = bestTimeToVisit
		t.BestPlacesToVisit = bestPlacesToVisit
	})
	return nil
}

func continentPrompt() string {
	s := "Continent ("
	for i, c := range models.Continents {
		if i > 0 {
			s += ", "
		}
		s += string(c)
	}
	return s + ")"
}

func (a *App) deleteTrip(ctx context.Context, id string) {
	rec, ok := a.trips.Cache().Get(id)
	if !ok {
		fmt.Fprintln(a.out, "No such trip:", id)
		return
	}
	a.trips.Dialog().OpenDeleteConfirm(rec)

	ans, err := GetSimpleText(a.reader, fmt.Sprintf("Delete trip %q? (y/n)", rec.Label()), "", a.out)
	if err != nil || ans != "y" {
		a.trips.Dialog().Close()
		return
	}
	_ = a.trips.Delete(ctx)
}
