package response

// Response is the body of every API reply. Data is null on errors.
type Response struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func OK(message string, data any) Response {
	return Response{
		Message: message,
		Data:    data,
	}
}

func Error(message string) Response {
	return Response{
		Message: message,
	}
}
