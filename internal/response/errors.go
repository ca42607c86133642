package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation ErrCode = "VALIDATION_ERROR"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound             ErrCode = "NOT_FOUND"
	ErrUnknownQualification ErrCode = "UNKNOWN_QUALIFICATION"

	// ─── Exam data ─────────────────────────────────────────────────────
	ErrExamDataUnavailable ErrCode = "EXAM_DATA_UNAVAILABLE"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrNotFound:
		return "Resource not found."
	case ErrUnknownQualification:
		return "Unknown qualification."
	case ErrExamDataUnavailable:
		return "Exam timetable data is unavailable for this qualification."
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
