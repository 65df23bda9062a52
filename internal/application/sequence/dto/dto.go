package dto

// CreateDocumentTypeRequest defines a new numbered document series.
type CreateDocumentTypeRequest struct {
	Code   string `json:"code" validate:"required,max=20"`
	Name   string `json:"name" validate:"required,max=100"`
	Prefix string `json:"prefix" validate:"max=10"`
}

// DocumentTypeResponse is the outward shape of a document type.
type DocumentTypeResponse struct {
	ID     uint   `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Prefix string `json:"prefix"`
	Active bool   `json:"active"`
}

// AllocationResponse is one issued document number.
type AllocationResponse struct {
	Number   string `json:"number"`
	Sequence int    `json:"sequence"`
	Year     int    `json:"year"`
}
