package request

import (
	"sendero-web/internal/domain/contact"
	"sendero-web/internal/domain/feedback"
	"sendero-web/internal/domain/waitlist"

	"github.com/jinzhu/copier"
)

// Form bodies carry no binding tags: rules live in the domain packages so
// that every violation is reported, not only the first one gin finds.

type WaitlistRequest struct {
	Email          string   `json:"email"`
	TourDuration   string   `json:"tourDuration"`
	InterestTypes  []string `json:"interestTypes"`
	FitnessLevel   string   `json:"fitnessLevel"`
	TravelTimeline string   `json:"travelTimeline"`
	Notes          string   `json:"notes"`
}

func (r *WaitlistRequest) ToInput() (waitlist.Input, error) {
	var in waitlist.Input
	err := copier.Copy(&in, r)
	return in, err
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r *ContactRequest) ToInput() (contact.Input, error) {
	var in contact.Input
	err := copier.Copy(&in, r)
	return in, err
}

type FeedbackRequest struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Email   string `json:"email"`
	Page    string `json:"page"`
	Locale  string `json:"locale"`
}

func (r *FeedbackRequest) ToInput() (feedback.Input, error) {
	var in feedback.Input
	err := copier.Copy(&in, r)
	return in, err
}
