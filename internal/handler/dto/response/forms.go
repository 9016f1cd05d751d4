package response

type MessageData struct {
	Message string `json:"message"`
}

type SubmissionResponse struct {
	Success bool        `json:"success"`
	Data    MessageData `json:"data"`
}

func Submitted(message string) SubmissionResponse {
	return SubmissionResponse{Success: true, Data: MessageData{Message: message}}
}
