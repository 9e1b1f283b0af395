package entity

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"
)

const (
	MinNameLength = 1
	MaxNameLength = 32
)

type Rider struct {
	ID           int64     `json:"id" db:"id"`
	FirstName    string    `json:"firstName" db:"first_name"`
	LastName     string    `json:"lastName" db:"last_name"`
	Email        string    `json:"email" db:"email"`
	LicensePlate string    `json:"licensePlate" db:"license_plate"`
	PhoneNumber  string    `json:"phoneNumber" db:"phone_number"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// RiderInput is a rider payload as received. Nil fields were not supplied.
type RiderInput struct {
	FirstName    *string
	LastName     *string
	Email        *string
	LicensePlate *string
	PhoneNumber  *string
}

// RiderFields is a validated, complete rider payload.
type RiderFields struct {
	FirstName    string
	LastName     string
	Email        string
	LicensePlate string
	PhoneNumber  string
}

// RiderPatch holds the validated subset of rider fields to change.
type RiderPatch struct {
	FirstName    *string
	LastName     *string
	Email        *string
	LicensePlate *string
	PhoneNumber  *string
}

func (p RiderPatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil &&
		p.LicensePlate == nil && p.PhoneNumber == nil
}

// DefaultPhoneRegion is the region local phone numbers are read in when none is configured.
const DefaultPhoneRegion = "TH"

var fieldValidator = validator.New()

// RiderValidator checks rider payloads. Phone numbers without a leading +<country code>
// are parsed as numbers of PhoneRegion.
type RiderValidator struct {
	PhoneRegion string
}

// NewRiderValidator fails when region is not an ISO 3166-1 region known to the phone metadata.
func NewRiderValidator(region string) (RiderValidator, error) {
	region = strings.ToUpper(strings.TrimSpace(region))
	if phonenumbers.GetCountryCodeForRegion(region) == 0 {
		return RiderValidator{}, fmt.Errorf("unknown phone region %q", region)
	}
	return RiderValidator{PhoneRegion: region}, nil
}

type riderRule struct {
	field string
	label string
	check func(v string) string
}

func nameLength(label string) func(string) string {
	return func(v string) string {
		if n := utf8.RuneCountInString(v); n < MinNameLength || n > MaxNameLength {
			return label + " length must be between 1 - 32 character"
		}
		return ""
	}
}

func emailFormat(v string) string {
	if fieldValidator.Var(v, "email") != nil {
		return "Invalid email format"
	}
	return ""
}

func phoneFormat(region string) func(string) string {
	return func(v string) string {
		num, err := phonenumbers.Parse(v, region)
		if err != nil || !phonenumbers.IsValidNumber(num) {
			return "Phone Number is invalid"
		}
		return ""
	}
}

func (rv RiderValidator) rules() []riderRule {
	region := rv.PhoneRegion
	if region == "" {
		region = DefaultPhoneRegion
	}
	return []riderRule{
		{field: "firstName", label: "First name", check: nameLength("First name")},
		{field: "lastName", label: "Last name", check: nameLength("Last name")},
		{field: "email", label: "Email", check: emailFormat},
		{field: "licensePlate", label: "License Plate"},
		{field: "phoneNumber", label: "Phone Number", check: phoneFormat(region)},
	}
}

func (in RiderInput) values() []*string {
	return []*string{in.FirstName, in.LastName, in.Email, in.LicensePlate, in.PhoneNumber}
}

func (rv RiderValidator) validate(in RiderInput, required bool) ([]*string, []string) {
	var messages []string
	rules := rv.rules()
	out := make([]*string, len(rules))
	for i, raw := range in.values() {
		rule := rules[i]
		if raw == nil {
			if required {
				messages = append(messages, rule.field+": "+rule.label+" is required")
			}
			continue
		}
		v := strings.TrimSpace(*raw)
		if v == "" {
			messages = append(messages, rule.field+": "+rule.label+" is required")
			continue
		}
		if rule.check != nil {
			if msg := rule.check(v); msg != "" {
				messages = append(messages, rule.field+": "+msg)
				continue
			}
		}
		out[i] = &v
	}
	return out, messages
}

// Validate checks a rider to be created. All fields are required.
func (rv RiderValidator) Validate(in RiderInput) (RiderFields, error) {
	v, messages := rv.validate(in, true)
	if len(messages) > 0 {
		return RiderFields{}, NewValidationError(messages...)
	}
	return RiderFields{
		FirstName:    *v[0],
		LastName:     *v[1],
		Email:        *v[2],
		LicensePlate: *v[3],
		PhoneNumber:  *v[4],
	}, nil
}

// ValidatePatch checks a rider update. Absent fields are left untouched.
func (rv RiderValidator) ValidatePatch(in RiderInput) (RiderPatch, error) {
	v, messages := rv.validate(in, false)
	if len(messages) > 0 {
		return RiderPatch{}, NewValidationError(messages...)
	}
	return RiderPatch{
		FirstName:    v[0],
		LastName:     v[1],
		Email:        v[2],
		LicensePlate: v[3],
		PhoneNumber:  v[4],
	}, nil
}

// ValidateRider is Validate with phone numbers read in DefaultPhoneRegion.
func ValidateRider(in RiderInput) (RiderFields, error) {
	return RiderValidator{}.Validate(in)
}

// ValidateRiderPatch is ValidatePatch with phone numbers read in DefaultPhoneRegion.
func ValidateRiderPatch(in RiderInput) (RiderPatch, error) {
	return RiderValidator{}.ValidatePatch(in)
}
