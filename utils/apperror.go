package utils

// AppError is the single error shape domain services raise. Controllers
// render it as the uniform {"error": {...}} envelope with its declared
// HTTP status.
type AppError struct {
	StatusCode int      `json:"status_code"`
	Fields     []string `json:"fields"`
	Msg        string   `json:"message"`
}

func (e *AppError) Error() string {
	return e.Msg
}

func NewAppError(statusCode int, msg string, fields ...string) *AppError {
	if fields == nil {
		fields = []string{}
	}
	return &AppError{StatusCode: statusCode, Fields: fields, Msg: msg}
}
