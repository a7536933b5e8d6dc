package dto

type QueryResponse struct {
	Response string `json:"response"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

type ValidationErrorResponse struct {
	Detail string `json:"detail"`
	Hint   string `json:"hint"`
}
