package models

// Status carries the stable application-level code and a human-readable
// description. Clients switch on the code, not the HTTP status.
type Status struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type APIResponse struct {
	Status Status      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
}

func Success(data interface{}, code, description string) APIResponse {
	return APIResponse{
		Status: Status{Code: code, Description: description},
		Data:   data,
	}
}

func SuccessNoData(code, description string) APIResponse {
	return APIResponse{
		Status: Status{Code: code, Description: description},
	}
}

// ErrorResponse uses the same envelope with no data payload.
func ErrorResponse(code, description string) APIResponse {
	return APIResponse{
		Status: Status{Code: code, Description: description},
	}
}
