package response

type LoginResponse struct {
	Success   bool   `json:"success"`
	ReturnURL string `json:"returnUrl"`
}

type LogoutResponse struct {
	Success bool `json:"success"`
}
