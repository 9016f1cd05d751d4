package feedback

import (
	"strings"

	"sendero-web/internal/domain/locale"
	"sendero-web/internal/domain/waitlist"
	"sendero-web/internal/pkg/validation"
)

type Kind string

const (
	KindBug    Kind = "bug"
	KindIdea   Kind = "idea"
	KindPraise Kind = "praise"
	KindOther  Kind = "other"
)

const maxUserAgentLength = 400

type Input struct {
	Kind    string `json:"kind" validate:"required,oneof=bug idea praise other"`
	Message string `json:"message" validate:"required,min=5,max=2000"`
	Email   string `json:"email" validate:"omitempty,email_shape"`
	Page    string `json:"page" validate:"omitempty,max=512"`
	Locale  string `json:"locale" validate:"-"`
}

func Validate(in Input) validation.Errors {
	in.Message = strings.TrimSpace(in.Message)
	in.Email = strings.TrimSpace(in.Email)
	in.Page = strings.TrimSpace(in.Page)
	return validation.Struct(in)
}

type Entry struct {
	kind      Kind
	message   string
	email     *string
	page      *string
	locale    locale.Locale
	userAgent *string
}

// NewEntry resolves in.Locale against fallback; the user agent is truncated
// rather than rejected.
func NewEntry(in Input, fallback locale.Locale, userAgent string) (*Entry, error) {
	if errs := Validate(in); len(errs) > 0 {
		return nil, errs
	}

	e := &Entry{
		kind:    Kind(in.Kind),
		message: strings.TrimSpace(in.Message),
		locale:  locale.Resolve(in.Locale, fallback),
	}
	if email := waitlist.NormalizeEmail(in.Email); email != "" {
		e.email = &email
	}
	if page := strings.TrimSpace(in.Page); page != "" {
		e.page = &page
	}
	if ua := truncate(strings.TrimSpace(userAgent), maxUserAgentLength); ua != "" {
		e.userAgent = &ua
	}
	return e, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func (e *Entry) Kind() Kind            { return e.kind }
func (e *Entry) Message() string       { return e.message }
func (e *Entry) Email() *string        { return e.email }
func (e *Entry) Page() *string         { return e.page }
func (e *Entry) Locale() locale.Locale { return e.locale }
func (e *Entry) UserAgent() *string    { return e.userAgent }
