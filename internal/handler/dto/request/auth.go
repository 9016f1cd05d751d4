package request

// Password is a pointer so that an absent field can be told apart from a
// JSON string; a non-string value fails to bind.
type LoginRequest struct {
	Password  *string `json:"password"`
	ReturnURL string  `json:"returnUrl"`
}
