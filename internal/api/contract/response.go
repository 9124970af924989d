package contract

const CodeSuccess = "success"

type Response struct {
	Successful bool   `json:"successful"`
	Code       string `json:"code"`
	Message    string `json:"message,omitempty"`
	Result     any    `json:"result,omitempty"`
}

func Success(message string, result any) Response {
	return Response{Successful: true, Code: CodeSuccess, Message: message, Result: result}
}
