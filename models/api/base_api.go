package apimodels

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"store-ops-backend/lib/utils/dateutils"
)

// Response is the unified envelope every endpoint answers with.
type Response struct {
	Code      int         `json:"code"`      // HTTP status of the result
	Message   string      `json:"message"`   // human-readable outcome
	Data      interface{} `json:"data"`      // payload, null on errors
	Timestamp string      `json:"timestamp"` // RFC3339 in UTC+8
}

func NewResponse(data interface{}) Response {
	return Response{
		Code:      fiber.StatusOK,
		Message:   "success",
		Data:      data,
		Timestamp: dateutils.Now().Format(time.RFC3339),
	}
}

func NewError(code int, message string) Response {
	return Response{
		Code:      code,
		Message:   message,
		Timestamp: dateutils.Now().Format(time.RFC3339),
	}
}

// PagedData wraps list payloads with pagination bookkeeping.
type PagedData struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int         `json:"total_pages"`
}

func NewPagedData(data interface{}, total int64, page, limit int) PagedData {
	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}
	return PagedData{
		Data:       data,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

type Pagination struct {
	Page  int `json:"page"`  // page number, 1-based
	Limit int `json:"limit"` // rows per page
}

func (r Pagination) GetPage() (page, limit int) {
	page = 1
	limit = 100
	if r.Page > 0 {
		page = r.Page
	}
	if r.Limit > 0 {
		limit = r.Limit
	}
	return page, limit
}
