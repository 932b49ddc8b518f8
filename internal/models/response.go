package models

// Response is the uniform API envelope. Every successful response carries
// its payload under "data"; collection responses additionally carry
// pagination fields.
type Response struct {
	Data interface{} `json:"data"`
}

type CollectionResponse struct {
	Data   interface{} `json:"data"`
	Total  int64       `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

type ErrorResponse struct {
	Errors []string `json:"errors"`
}

func NewResponse(data interface{}) Response {
	return Response{Data: data}
}

func NewCollectionResponse(data interface{}, total int64, limit, offset int) CollectionResponse {
	return CollectionResponse{
		Data:   data,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
}

func NewErrorResponse(errors ...string) ErrorResponse {
	return ErrorResponse{Errors: errors}
}
