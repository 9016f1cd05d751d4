//go:build unit || e2e

package builder

import (
	"sendero-web/internal/domain/locale"
	"sendero-web/internal/domain/waitlist"
	reqdto "sendero-web/internal/handler/dto/request"
)

type WaitlistBuilder struct {
	Email          string
	TourDuration   string
	InterestTypes  []string
	FitnessLevel   string
	TravelTimeline string
	Notes          string
	Locale         locale.Locale
}

func NewWaitlistBuilder() *WaitlistBuilder {
	return &WaitlistBuilder{
		Email:          "a@b.com",
		TourDuration:   "weekend",
		InterestTypes:  []string{"bike"},
		FitnessLevel:   "beginner",
		TravelTimeline: "later",
		Locale:         locale.English,
	}
}

func (w *WaitlistBuilder) With(mutate func(*WaitlistBuilder)) *WaitlistBuilder {
	mutate(w)
	return w
}

// WithInterestTypes with no arguments leaves an empty, non-nil list.
func (w *WaitlistBuilder) WithInterestTypes(types ...string) *WaitlistBuilder {
	w.InterestTypes = append([]string{}, types...)
	return w
}

func (w *WaitlistBuilder) BuildInput() waitlist.Input {
	return waitlist.Input{
		Email:          w.Email,
		TourDuration:   w.TourDuration,
		InterestTypes:  w.InterestTypes,
		FitnessLevel:   w.FitnessLevel,
		TravelTimeline: w.TravelTimeline,
		Notes:          w.Notes,
	}
}

func (w *WaitlistBuilder) BuildDomain() (*waitlist.Signup, error) {
	return waitlist.NewSignup(w.BuildInput(), w.Locale)
}

func (w *WaitlistBuilder) BuildRequestDTO() reqdto.WaitlistRequest {
	return reqdto.WaitlistRequest{
		Email:          w.Email,
		TourDuration:   w.TourDuration,
		InterestTypes:  w.InterestTypes,
		FitnessLevel:   w.FitnessLevel,
		TravelTimeline: w.TravelTimeline,
		Notes:          w.Notes,
	}
}
