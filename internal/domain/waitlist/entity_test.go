//go:build unit

package waitlist_test

import (
	"testing"

	"sendero-web/internal/domain/locale"
	"sendero-web/internal/domain/waitlist"
	"sendero-web/internal/pkg/validation"
	"sendero-web/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.WaitlistBuilder)
	field  string
	reason validation.Reason
}

func TestValidate(t *testing.T) {
	t.Run("valid input has no errors", func(t *testing.T) {
		errs := waitlist.Validate(builder.NewWaitlistBuilder().BuildInput())
		assert.Empty(t, errs)
	})

	t.Run("missing required fields", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "email", mutate: func(b *builder.WaitlistBuilder) { b.Email = "" }, field: "email", reason: validation.ReasonRequired},
			{name: "email whitespace only", mutate: func(b *builder.WaitlistBuilder) { b.Email = "   " }, field: "email", reason: validation.ReasonRequired},
			{name: "tourDuration", mutate: func(b *builder.WaitlistBuilder) { b.TourDuration = "" }, field: "tourDuration", reason: validation.ReasonRequired},
			{name: "interestTypes nil", mutate: func(b *builder.WaitlistBuilder) { b.InterestTypes = nil }, field: "interestTypes", reason: validation.ReasonRequired},
			{name: "fitnessLevel", mutate: func(b *builder.WaitlistBuilder) { b.FitnessLevel = "" }, field: "fitnessLevel", reason: validation.ReasonRequired},
			{name: "travelTimeline", mutate: func(b *builder.WaitlistBuilder) { b.TravelTimeline = "" }, field: "travelTimeline", reason: validation.ReasonRequired},
		})
	})

	t.Run("invalid values", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "email without at", mutate: func(b *builder.WaitlistBuilder) { b.Email = "hiker.example.com" }, field: "email", reason: validation.ReasonInvalidFormat},
			{name: "email without dot after at", mutate: func(b *builder.WaitlistBuilder) { b.Email = "hiker@example" }, field: "email", reason: validation.ReasonInvalidFormat},
			{name: "unknown tourDuration", mutate: func(b *builder.WaitlistBuilder) { b.TourDuration = "two_weeks" }, field: "tourDuration", reason: validation.ReasonInvalidOption},
			{name: "unknown interest", mutate: func(b *builder.WaitlistBuilder) { b.InterestTypes = []string{"bike", "kayak"} }, field: "interestTypes", reason: validation.ReasonInvalidOption},
			{name: "unknown fitnessLevel", mutate: func(b *builder.WaitlistBuilder) { b.FitnessLevel = "expert" }, field: "fitnessLevel", reason: validation.ReasonInvalidOption},
			{name: "unknown travelTimeline", mutate: func(b *builder.WaitlistBuilder) { b.TravelTimeline = "next_year" }, field: "travelTimeline", reason: validation.ReasonInvalidOption},
		})
	})

	t.Run("empty interestTypes is rejected regardless of other fields", func(t *testing.T) {
		for _, mutate := range []func(*builder.WaitlistBuilder){
			func(b *builder.WaitlistBuilder) {},
			func(b *builder.WaitlistBuilder) { b.Email = "bad" },
			func(b *builder.WaitlistBuilder) { b.FitnessLevel = "" },
		} {
			errs := waitlist.Validate(builder.NewWaitlistBuilder().With(mutate).WithInterestTypes().BuildInput())
			reason, ok := errs.Reason("interestTypes")
			require.True(t, ok)
			assert.Equal(t, validation.ReasonRequired, reason)
		}
	})

	t.Run("all violations are collected", func(t *testing.T) {
		in := waitlist.Input{
			Email:          "not-an-email",
			TourDuration:   "",
			InterestTypes:  []string{},
			FitnessLevel:   "athlete",
			TravelTimeline: "",
		}

		want := validation.Errors{
			{Field: "email", Reason: validation.ReasonInvalidFormat},
			{Field: "tourDuration", Reason: validation.ReasonRequired},
			{Field: "interestTypes", Reason: validation.ReasonRequired, Param: "1"},
			{Field: "fitnessLevel", Reason: validation.ReasonInvalidOption, Param: "beginner moderate"},
			{Field: "travelTimeline", Reason: validation.ReasonRequired},
		}
		if diff := cmp.Diff(want, waitlist.Validate(in)); diff != "" {
			t.Errorf("errors mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		in := waitlist.Input{Email: "x", InterestTypes: []string{"kayak"}}
		assert.Equal(t, waitlist.Validate(in), waitlist.Validate(in))
	})
}

func TestNewSignup(t *testing.T) {
	t.Run("normalizes accepted input", func(t *testing.T) {
		signup, err := builder.NewWaitlistBuilder().
			With(func(b *builder.WaitlistBuilder) {
				b.Email = "  Hiker@Example.COM "
				b.Notes = "  vegetarian  "
			}).
			WithInterestTypes("bike", "coffee_farm").
			BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "hiker@example.com", signup.Email())
		assert.Equal(t, waitlist.TourDurationWeekend, signup.TourDuration())
		assert.Equal(t, []string{"bike", "coffee_farm"}, signup.InterestTypeStrings())
		assert.Equal(t, waitlist.FitnessBeginner, signup.FitnessLevel())
		assert.Equal(t, waitlist.TimelineLater, signup.TravelTimeline())
		require.NotNil(t, signup.Notes())
		assert.Equal(t, "vegetarian", *signup.Notes())
		assert.Equal(t, locale.English, signup.Locale())
	})

	t.Run("blank notes become absent", func(t *testing.T) {
		signup, err := builder.NewWaitlistBuilder().With(func(b *builder.WaitlistBuilder) { b.Notes = "   " }).BuildDomain()
		require.NoError(t, err)
		assert.Nil(t, signup.Notes())
	})

	t.Run("returns validation errors", func(t *testing.T) {
		signup, err := builder.NewWaitlistBuilder().With(func(b *builder.WaitlistBuilder) { b.Email = "" }).BuildDomain()
		require.Nil(t, signup)

		var verrs validation.Errors
		require.ErrorAs(t, err, &verrs)
		assert.True(t, verrs.Has("email"))
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			errs := waitlist.Validate(builder.NewWaitlistBuilder().With(c.mutate).BuildInput())

			require.NotEmpty(t, errs)
			reason, ok := errs.Reason(c.field)
			require.True(t, ok, "expected an error for %s, got %v", c.field, errs)
			assert.Equal(t, c.reason, reason)
		})
	}
}
