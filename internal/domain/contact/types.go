package contact

type Subject string

const (
	SubjectGeneral  Subject = "general"
	SubjectTour     Subject = "tour"
	SubjectCustom   Subject = "custom"
	SubjectFeedback Subject = "feedback"
)

const (
	MinNameLength    = 2
	MinMessageLength = 10
	MaxMessageLength = 5000
)
