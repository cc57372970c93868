package dto

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Detail string `json:"detail"`
}

// PaginatedResponse wraps list endpoints that accept page/page_size query
// parameters.
type PaginatedResponse struct {
	Count    int64       `json:"count"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	Results  interface{} `json:"results"`
}

type GenreResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
