package waitlist

import (
	"strings"

	"sendero-web/internal/domain/locale"
	"sendero-web/internal/pkg/validation"
)

// Input is the untrusted waitlist form payload. The oneof lists mirror the
// constants in types.go.
type Input struct {
	Email          string   `json:"email" validate:"required,email_shape"`
	TourDuration   string   `json:"tourDuration" validate:"required,oneof=one_day weekend one_week"`
	InterestTypes  []string `json:"interestTypes" validate:"required,min=1,dive,oneof=hike bike e_bike women_only coffee_farm"`
	FitnessLevel   string   `json:"fitnessLevel" validate:"required,oneof=beginner moderate"`
	TravelTimeline string   `json:"travelTimeline" validate:"required,oneof=next_3_months next_6_months later"`
	Notes          string   `json:"notes" validate:"omitempty,max=2000"`
}

// Validate reports every violation, not only the first one.
func Validate(in Input) validation.Errors {
	in.Email = strings.TrimSpace(in.Email)
	in.Notes = strings.TrimSpace(in.Notes)
	return validation.Struct(in)
}

// Signup is the canonical record written to the store. ID and creation time
// are assigned by the store and never read back.
type Signup struct {
	email          string
	tourDuration   TourDuration
	interestTypes  []InterestType
	fitnessLevel   FitnessLevel
	travelTimeline TravelTimeline
	notes          *string
	locale         locale.Locale
}

// NewSignup returns validation.Errors when the input is rejected.
func NewSignup(in Input, loc locale.Locale) (*Signup, error) {
	if errs := Validate(in); len(errs) > 0 {
		return nil, errs
	}

	interests := make([]InterestType, 0, len(in.InterestTypes))
	for _, it := range in.InterestTypes {
		interests = append(interests, InterestType(it))
	}

	var notes *string
	if n := strings.TrimSpace(in.Notes); n != "" {
		notes = &n
	}

	return &Signup{
		email:          NormalizeEmail(in.Email),
		tourDuration:   TourDuration(in.TourDuration),
		interestTypes:  interests,
		fitnessLevel:   FitnessLevel(in.FitnessLevel),
		travelTimeline: TravelTimeline(in.TravelTimeline),
		notes:          notes,
		locale:         loc,
	}, nil
}

func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (s *Signup) Email() string                  { return s.email }
func (s *Signup) TourDuration() TourDuration     { return s.tourDuration }
func (s *Signup) InterestTypes() []InterestType  { return s.interestTypes }
func (s *Signup) FitnessLevel() FitnessLevel     { return s.fitnessLevel }
func (s *Signup) TravelTimeline() TravelTimeline { return s.travelTimeline }
func (s *Signup) Notes() *string                 { return s.notes }
func (s *Signup) Locale() locale.Locale          { return s.locale }

func (s *Signup) InterestTypeStrings() []string {
	out := make([]string, len(s.interestTypes))
	for i, it := range s.interestTypes {
		out[i] = string(it)
	}
	return out
}
