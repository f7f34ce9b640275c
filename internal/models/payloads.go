// Package models holds the payload shapes shared between the API boundary
// and its clients.
package models

// ChatRequest is the body of POST /chat
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse is the success body of POST /chat
type ChatResponse struct {
	Response string `json:"response"`
}

// ErrorResponse is the degraded payload for internal failures. Clients
// check for the error key rather than the status code.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DiagnosisResponse is the success body of POST /predict and GET /diagnosis.
// ConfidenceScore is scaled to 0-100 and rounded to two decimals.
type DiagnosisResponse struct {
	ClassificationResult string  `json:"classification_result"`
	ConfidenceScore      float64 `json:"confidence_score"`
	BodyPart             string  `json:"body_part"`
	MedicalInfo          string  `json:"medical_info,omitempty"`
}
