package dto

import (
	"eventfront/internal/fields"

	"github.com/wb-go/wbf/ginext"
)

const (
	FieldBadFormat     = "FIELD_BADFORMAT"
	FieldIncorrect     = "FIELD_INCORRECT"
	ServiceUnavailable = "SERVICE_UNAVAILABLE"
	InternalError      = "Service is currently unavailable. Please try again later."

	NoActiveEvent  = "NO_ACTIVE_EVENT"
	EventNotFound  = "EVENT_NOT_FOUND"
	UpstreamFailed = "UPSTREAM_FAILED"
	SendBlocked    = "SEND_BLOCKED"
)

// RegisterRequest is a visitor's form submission. FormData carries the
// answers for the event's custom fields keyed by field_name; email and phone
// are validated locally before anything leaves this service.
type RegisterRequest struct {
	Email    string            `json:"email" validate:"required,email"`
	Phone    string            `json:"phone" validate:"required,phone10"`
	FormData map[string]string `json:"form_data"`
}

type CheckInRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type CloneEventRequest struct {
	NewName string `json:"new_name" validate:"required"`
}

type ReplaceFieldsRequest struct {
	Fields []fields.Field `json:"fields"`
}

type TemplateRequest struct {
	TemplateName string `json:"template_name" validate:"required"`
	TemplateText string `json:"template_text" validate:"required"`
}

// BulkSendInput is the operator's send-modal submission, still in wire form;
// the service parses the string-tagged choices into their closed enums.
type BulkSendInput struct {
	Subject           string            `json:"subject"`
	SendTo            string            `json:"send_to"`
	MessageMode       string            `json:"message_mode"`
	Message           string            `json:"message"`
	TemplateID        string            `json:"template_id"`
	TemplateVariables map[string]string `json:"template_variables"`
	FilterField       string            `json:"filter_field"`
	FilterValue       string            `json:"filter_value"`
}

type Response struct {
	Status string `json:"status"`
	Error  *Error `json:"error,omitempty"`
	Data   any    `json:"data,omitempty"`
}

type Error struct {
	Code string `json:"code"`
	Desc string `json:"desc"`
}

func BadResponseError(c *ginext.Context, code, desc string) {
	c.JSON(400, Response{
		Status: "error",
		Error: &Error{
			Code: code,
			Desc: desc,
		},
	})
}

func InternalServerError(c *ginext.Context) {
	c.JSON(500, Response{
		Status: "error",
		Error: &Error{
			Code: ServiceUnavailable,
			Desc: InternalError,
		},
	})
}

// UpstreamError reports a failed backend call, preferring the upstream's own
// detail message when one was provided.
func UpstreamError(c *ginext.Context, detail string) {
	if detail == "" {
		detail = InternalError
	}
	c.JSON(502, Response{
		Status: "error",
		Error: &Error{
			Code: UpstreamFailed,
			Desc: detail,
		},
	})
}

func NoActiveEventError(c *ginext.Context) {
	c.JSON(404, Response{
		Status: "error",
		Error: &Error{
			Code: NoActiveEvent,
			Desc: "No event is currently open for registration",
		},
	})
}

func EventNotFoundError(c *ginext.Context) {
	c.JSON(404, Response{
		Status: "error",
		Error: &Error{
			Code: EventNotFound,
			Desc: "Event not found",
		},
	})
}

func SuccessResponse(c *ginext.Context, data any) {
	c.JSON(200, Response{
		Status: "ok",
		Data:   data,
	})
}

func SuccessCreatedResponse(c *ginext.Context, data any) {
	c.JSON(201, Response{
		Status: "ok",
		Data:   data,
	})
}
