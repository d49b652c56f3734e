package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/storecraft/storefront/internal/adapters/inbound/http/middleware"
)

const (
	contentTypeHeader = "Content-Type"
	applicationJSON   = "application/json"

	apiVersion = "v1"

	codeNotFound      = "NOT_FOUND"
	codeConflict      = "CONFLICT"
	codeInternalError = "INTERNAL_ERROR"
	codeInvalidID     = "INVALID_ID"
	codeInvalidJSON   = "INVALID_JSON"
	codeInvalidQuery  = "INVALID_QUERY"
	codeValidation    = "VALIDATION_FAILED"
	codePayment       = "PAYMENT_DECLINED"
)

type (
	// responseMeta carries request correlation data back to the caller.
	responseMeta struct {
		RequestID  string `json:"requestId"`
		TraceID    string `json:"traceId,omitempty"`
		APIVersion string `json:"apiVersion"`
	}

	paginationData struct {
		Page        uint  `json:"page"`
		Size        uint  `json:"size"`
		TotalItems  uint  `json:"totalItems"`
		TotalPages  uint  `json:"totalPages"`
		HasNext     *bool `json:"hasNext,omitempty"`
		HasPrevious *bool `json:"hasPrevious,omitempty"`
	}

	// envelopedResponse wraps response data with metadata and optional pagination.
	envelopedResponse struct {
		Data       any             `json:"data"`
		Meta       responseMeta    `json:"meta"`
		Pagination *paginationData `json:"pagination,omitempty"`
	}

	errorDetail struct {
		Field   string `json:"field,omitempty"`
		Message string `json:"message"`
		Code    string `json:"code,omitempty"`
	}

	errorResponse struct {
		Code      string        `json:"code"`
		Message   string        `json:"message"`
		Details   []errorDetail `json:"details,omitempty"`
		Timestamp time.Time     `json:"timestamp"`
		Meta      responseMeta  `json:"meta"`
	}
)

func newMeta(r *http.Request) responseMeta {
	return responseMeta{
		RequestID:  middleware.GetRequestID(r.Context()),
		TraceID:    extractTraceID(r),
		APIVersion: apiVersion,
	}
}

// extractTraceID pulls the trace ID out of a W3C traceparent header.
// Format: {version}-{trace-id}-{parent-id}-{trace-flags}, minimum 55 chars.
func extractTraceID(r *http.Request) string {
	traceparent := r.Header.Get("traceparent")
	if len(traceparent) < 55 {
		return ""
	}

	return traceparent[3:35]
}

func writeEnveloped(w http.ResponseWriter, r *http.Request, status int, data any, pagination *paginationData) {
	w.Header().Set(contentTypeHeader, applicationJSON)
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(envelopedResponse{
		Data:       data,
		Meta:       newMeta(r),
		Pagination: pagination,
	})
}

// writeJSONStatus writes plain JSON without the envelope. Health probes use
// it so external checkers see a flat document.
func writeJSONStatus(w http.ResponseWriter, status int, data any) {
	w.Header().Set(contentTypeHeader, applicationJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeErrorResponse(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeErrorResponseWithDetails(w, r, status, code, message, nil)
}

func writeErrorResponseWithDetails(w http.ResponseWriter, r *http.Request, status int, code, message string, details []errorDetail) {
	w.Header().Set(contentTypeHeader, applicationJSON)
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(errorResponse{
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
		Meta:      newMeta(r),
	})
}
