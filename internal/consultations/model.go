package consultations

const (
	StatusPending = "pending"

	DefaultCompany         = "Not specified"
	DefaultServiceInterest = "General inquiry"

	EstimatedResponseTime = "24 hours"
	SubmittedMessage      = "Consultation request submitted successfully"

	// TimestampLayout renders UTC instants with millisecond precision and a Z suffix.
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

type Request struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Company         string `json:"company"`
	Message         string `json:"message"`
	ServiceInterest string `json:"serviceInterest"`
	Timestamp       string `json:"timestamp"`
	Status          string `json:"status"`
}

// SubmitRequest is the POST body. Only presence and email shape are checked.
type SubmitRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,simpleemail"`
	Company         string `json:"company"`
	Message         string `json:"message" validate:"required"`
	ServiceInterest string `json:"serviceInterest"`
}

// Submission is a validated SubmitRequest with optional fields defaulted.
type Submission struct {
	Name            string
	Email           string
	Company         string
	Message         string
	ServiceInterest string
}

type SubmitResponse struct {
	Message               string `json:"message"`
	RequestID             int    `json:"requestId"`
	EstimatedResponseTime string `json:"estimatedResponseTime"`
}

type ListResponse struct {
	Total    int       `json:"total"`
	Requests []Request `json:"requests"`
}
