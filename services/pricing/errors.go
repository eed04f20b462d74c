package pricing

import "fmt"

// Error codes returned by the pricing engine.
const (
	CodeInvalidDraft   = "invalidDraft"
	CodeUnknownItem    = "unknownWorkItem"
	CodeNotChoosable   = "itemNotChoosable"
	CodeBadQuantity    = "invalidQuantity"
	CodeJobTooLong     = "jobTooLong"
	CodeOutsideHorizon = "outsideBookingHorizon"
	CodeCatalog        = "catalogIncomplete"
)

// QuoteError is a validation failure from the pricing engine.
type QuoteError struct {
	Code    string
	Message string
}

func (e *QuoteError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
