package db

import "context"

// Queries holds the insert statements. Every table is append-only, so there
// is nothing to read back.
type Queries struct{}

func NewQueries() *Queries {
	return &Queries{}
}

const insertWaitlistSignup = `
INSERT INTO waitlist_signups (email, tour_duration, interest_types, fitness_level, travel_timeline, notes, locale)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

type InsertWaitlistSignupParams struct {
	Email          string
	TourDuration   string
	InterestTypes  []string
	FitnessLevel   string
	TravelTimeline string
	Notes          *string
	Locale         string
}

func (q *Queries) InsertWaitlistSignup(ctx context.Context, db DBTX, arg InsertWaitlistSignupParams) error {
	_, err := db.Exec(ctx, insertWaitlistSignup,
		arg.Email,
		arg.TourDuration,
		arg.InterestTypes,
		arg.FitnessLevel,
		arg.TravelTimeline,
		arg.Notes,
		arg.Locale,
	)
	return err
}

const insertContactSubmission = `
INSERT INTO contact_submissions (name, email, subject, message, locale)
VALUES ($1, $2, $3, $4, $5)`

type InsertContactSubmissionParams struct {
	Name    string
	Email   string
	Subject *string
	Message string
	Locale  string
}

func (q *Queries) InsertContactSubmission(ctx context.Context, db DBTX, arg InsertContactSubmissionParams) error {
	_, err := db.Exec(ctx, insertContactSubmission,
		arg.Name,
		arg.Email,
		arg.Subject,
		arg.Message,
		arg.Locale,
	)
	return err
}

const insertFeedbackEntry = `
INSERT INTO feedback_entries (kind, message, email, page, locale, user_agent)
VALUES ($1, $2, $3, $4, $5, $6)`

type InsertFeedbackEntryParams struct {
	Kind      string
	Message   string
	Email     *string
	Page      *string
	Locale    string
	UserAgent *string
}

func (q *Queries) InsertFeedbackEntry(ctx context.Context, db DBTX, arg InsertFeedbackEntryParams) error {
	_, err := db.Exec(ctx, insertFeedbackEntry,
		arg.Kind,
		arg.Message,
		arg.Email,
		arg.Page,
		arg.Locale,
		arg.UserAgent,
	)
	return err
}

const ping = `SELECT 1`

// Ping runs a trivial query; used by the health endpoint.
func (q *Queries) Ping(ctx context.Context, db DBTX) error {
	var one int
	return db.QueryRow(ctx, ping).Scan(&one)
}
