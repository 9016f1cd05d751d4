package waitlist

type TourDuration string

const (
	TourDurationOneDay  TourDuration = "one_day"
	TourDurationWeekend TourDuration = "weekend"
	TourDurationOneWeek TourDuration = "one_week"
)

type InterestType string

const (
	InterestHike       InterestType = "hike"
	InterestBike       InterestType = "bike"
	InterestEBike      InterestType = "e_bike"
	InterestWomenOnly  InterestType = "women_only"
	InterestCoffeeFarm InterestType = "coffee_farm"
)

type FitnessLevel string

const (
	FitnessBeginner FitnessLevel = "beginner"
	FitnessModerate FitnessLevel = "moderate"
)

type TravelTimeline string

const (
	TimelineNext3Months TravelTimeline = "next_3_months"
	TimelineNext6Months TravelTimeline = "next_6_months"
	TimelineLater       TravelTimeline = "later"
)

const MaxNotesLength = 2000
