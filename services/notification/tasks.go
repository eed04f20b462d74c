package notification

// TypeEmailSend is the asynq task type for outgoing email.
const TypeEmailSend = "email:send"

// EmailPayload is the JSON payload of a TypeEmailSend task.
type EmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
