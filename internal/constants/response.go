package constants

// Standard response field keys
const (
	ResponseFieldSuccess = "success"
	ResponseFieldMessage = "message"
	ResponseFieldData    = "data"
	ResponseFieldError   = "error"
	ResponseFieldDetails = "details"
	ResponseFieldCount   = "results_count"
)

// Response format functions. Every endpoint uses the same envelope:
// success true plus data, or success false plus error.

func BuildSuccessResponse(message string, data any) map[string]any {
	response := map[string]any{
		ResponseFieldSuccess: true,
	}
	if message != "" {
		response[ResponseFieldMessage] = message
	}
	if data != nil {
		response[ResponseFieldData] = data
	}
	return response
}

func BuildErrorResponse(message string, details any) map[string]any {
	response := map[string]any{
		ResponseFieldSuccess: false,
		ResponseFieldError:   message,
	}
	if details != nil {
		response[ResponseFieldDetails] = details
	}
	return response
}

func BuildListResponse(count int, data any) map[string]any {
	return map[string]any{
		ResponseFieldSuccess: true,
		ResponseFieldCount:   count,
		ResponseFieldData:    data,
	}
}
