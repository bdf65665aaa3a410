package utils

import "github.com/gofiber/fiber/v2"

// APIResponse is the envelope every endpoint returns: status=true with
// data on success, status=false with message on failure.
type APIResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// PaginatedResponse wraps a page of items with the effective
// pagination and sorting that produced it (post-fallback values, not
// the raw caller input).
type PaginatedResponse struct {
	TotalItems int64       `json:"total_items"`
	TotalPages int64       `json:"total_pages"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	SortField  string      `json:"sort_field"`
	SortOrder  string      `json:"sort_order"`
	Items      interface{} `json:"items"`
}

// SuccessResponse sends a success envelope
func SuccessResponse(c *fiber.Ctx, code int, data interface{}) error {
	return c.Status(code).JSON(APIResponse{
		Status: true,
		Data:   data,
	})
}

// SuccessMessageResponse sends a success envelope with a message
func SuccessMessageResponse(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(APIResponse{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse sends an error envelope
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(APIResponse{
		Status:  false,
		Message: message,
	})
}
