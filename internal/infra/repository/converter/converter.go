package converter

import (
	"sendero-web/internal/domain/contact"
	"sendero-web/internal/domain/feedback"
	"sendero-web/internal/domain/waitlist"
	"sendero-web/internal/infra/db"
)

func SignupToInsertParams(s *waitlist.Signup) db.InsertWaitlistSignupParams {
	return db.InsertWaitlistSignupParams{
		Email:          s.Email(),
		TourDuration:   string(s.TourDuration()),
		InterestTypes:  s.InterestTypeStrings(),
		FitnessLevel:   string(s.FitnessLevel()),
		TravelTimeline: string(s.TravelTimeline()),
		Notes:          s.Notes(),
		Locale:         s.Locale().String(),
	}
}

// Absent subject is stored as NULL.
func SubmissionToInsertParams(s *contact.Submission) db.InsertContactSubmissionParams {
	params := db.InsertContactSubmissionParams{
		Name:    s.Name(),
		Email:   s.Email(),
		Message: s.Message(),
		Locale:  s.Locale().String(),
	}
	if subject := s.SubjectString(); subject != "" {
		params.Subject = &subject
	}
	return params
}

func EntryToInsertParams(e *feedback.Entry) db.InsertFeedbackEntryParams {
	return db.InsertFeedbackEntryParams{
		Kind:      string(e.Kind()),
		Message:   e.Message(),
		Email:     e.Email(),
		Page:      e.Page(),
		Locale:    e.Locale().String(),
		UserAgent: e.UserAgent(),
	}
}
