package app

// ReportErrorCode identifies a report use-case failure class.
type ReportErrorCode string

const (
	ReportErrInvalidDay ReportErrorCode = "INVALID_DAY"
	ReportErrStorage    ReportErrorCode = "STORAGE"
)

// ReportError is a typed error for report use cases.
type ReportError struct {
	Code    ReportErrorCode
	Message string
}

func (e *ReportError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// ItemErrorCode identifies an item use-case failure class.
type ItemErrorCode string

const (
	ItemErrNotFound   ItemErrorCode = "NOT_FOUND"
	ItemErrValidation ItemErrorCode = "VALIDATION"
)

// ItemError is a typed error for item use cases.
type ItemError struct {
	Code    ItemErrorCode
	Message string
}

func (e *ItemError) Error() string {
	return string(e.Code) + ": " + e.Message
}
