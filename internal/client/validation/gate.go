// Package validation is the single gate deciding whether a draft record may
// be submitted to the remote store. Both the prompt-time check and the save
// path call the same functions, so the rules cannot drift apart.
package validation

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"tripadmin/internal/client/models"
)

// FieldError describes one field blocking submission. Field holds the JSON
// name; Message is the inline text shown next to the input.
type FieldError struct {
	Field   string
	Message string
}

// Error carries every field that failed the gate.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// Has reports whether the given field failed.
func (e *Error) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Gate evaluates records against their submission rules.
type Gate struct {
	v *validator.Validate
}

// NewGate builds a gate with the console's custom rules registered.
func NewGate() (*Gate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report errors under JSON field names so inline messages line up with
	// the wire format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("continent", validateContinent); err != nil {
		return nil, err
	}

	return &Gate{v: v}, nil
}

func validateContinent(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return slices.Contains(models.Continents, models.Continent(fl.Field().String()))
}

// CheckAccount validates an account draft. Password rules depend on whether
// the record is new: creation requires both password and confirmation, while
// editing leaves the password untouched when empty. A whitespace-only
// password is always rejected.
func (g *Gate) CheckAccount(a models.Account) error {
	fields := g.structFields(a)

	if a.IsNew() {
		if a.Password == "" {
			fields = append(fields, FieldError{Field: "password", Message: "Password is required."})
		}
		if a.PasswordConfirm == "" {
			fields = append(fields, FieldError{Field: "passwordConfirm", Message: "Please confirm your password."})
		}
	}
	if a.Password != "" && strings.TrimSpace(a.Password) == "" {
		fields = append(fields, FieldError{Field: "password", Message: "Password must not be blank."})
	}

	if len(fields) > 0 {
		return &Error{Fields: fields}
	}
	return nil
}

// CheckTrip validates a trip draft. Every field must carry a non-zero value,
// which also rejects a cost of exactly 0 and visaIsRequired=false.
//
// TODO(product): decide whether 0 costs and visa-free destinations should be
// submittable; the admin UI has always blocked them.
func (g *Gate) CheckTrip(tr models.Trip) error {
	if fields := g.structFields(tr); len(fields) > 0 {
		return &Error{Fields: fields}
	}
	return nil
}

func (g *Gate) structFields(v any) []FieldError {
	err := g.v.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Message: err.Error()}}
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return fields
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", displayName(fe.Field()), fe.Param())
	case "continent":
		return "Continent must be a valid continent name."
	default:
		return fmt.Sprintf("%s is required.", displayName(fe.Field()))
	}
}

// displayName renders a JSON field name for humans: "destinationName"
// becomes "Destination name".
func displayName(field string) string {
	var b strings.Builder
	for i, r := range field {
		switch {
		case i == 0 && r >= 'a' && r <= 'z':
			b.WriteRune(r - ('a' - 'A'))
		case i == 0:
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteByte(' ')
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
