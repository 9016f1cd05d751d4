package contact

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const notificationSubject = "New Contact Form Submission"

// TimestampLayout is the human readable form used on the "Submitted:" line.
const TimestampLayout = "Monday, January 2, 2006 at 3:04 PM MST"

type Notification struct {
	Subject string
	Body    string
	ReplyTo string
}

// ComposeNotification is pure: the same submission and time always give the
// same message. now is rendered in its own location.
func ComposeNotification(sub *Submission, now time.Time) Notification {
	subject := notificationSubject
	if s := sub.SubjectString(); s != "" {
		subject += " - " + capitalize(s)
	}

	shownSubject := sub.SubjectString()
	if shownSubject == "" {
		shownSubject = "None"
	}

	var b strings.Builder
	b.WriteString("Name: " + sub.Name() + "\n")
	b.WriteString("Email: " + sub.Email() + "\n")
	b.WriteString("Subject: " + shownSubject + "\n")
	b.WriteString("Language: " + sub.Locale().String() + "\n")
	b.WriteString("\n")
	b.WriteString("Message:\n")
	b.WriteString(sub.Message() + "\n")
	b.WriteString("---\n")
	b.WriteString("Submitted: " + now.Format(TimestampLayout) + "\n")

	return Notification{
		Subject: subject,
		Body:    b.String(),
		ReplyTo: sub.Email(),
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
