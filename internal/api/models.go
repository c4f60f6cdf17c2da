package api

// SubmitResponseRequest is the request body for submitting a review action.
type SubmitResponseRequest struct {
	WordID string `json:"word_id" validate:"required,uuid"`
	Action string `json:"action"  validate:"required,oneof=remember forget master"`
}

// MarkWordMasteredRequest is the request body for bulk-mastering a word.
type MarkWordMasteredRequest struct {
	Word string `json:"word" validate:"required"`
}

// MarkWordBadRequest is the request body for flagging a card as bad.
type MarkWordBadRequest struct {
	WordID string `json:"word_id" validate:"required,uuid"`
}

// StatusResponse signals flow-control outcomes such as review completion.
type StatusResponse struct {
	Status string `json:"status"`
}

// MessageResponse carries a human-readable confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusComplete marks the end of the available review queue, and also
// acknowledges a processed verdict.
const StatusComplete = "complete"
