package model

import (
	"time"

	"eventfront/internal/fields"
)

type Event struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Description       string         `json:"description,omitempty"`
	Date              string         `json:"date"`
	Time              string         `json:"time"`
	Venue             string         `json:"venue,omitempty"`
	VenueAddress      string         `json:"venue_address,omitempty"`
	VenueMapLink      string         `json:"venue_map_link,omitempty"`
	IsActive          bool           `json:"is_active"`
	RegistrationsOpen bool           `json:"registrations_open"`
	Fields            []fields.Field `json:"fields,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// Registration is a visitor's submitted answers. FormData maps field_name to
// the captured value and always includes email and phone. Later edits to the
// event's field definitions have no retroactive effect on FormData.
type Registration struct {
	ID          string            `json:"id"`
	EventID     string            `json:"event_id"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	FormData    map[string]string `json:"form_data"`
	IsCheckedIn bool              `json:"is_checked_in"`
	CreatedAt   time.Time         `json:"created_at"`
}

// MessageTemplate is a reusable message body. Variables is always derived from
// TemplateText, never edited independently.
type MessageTemplate struct {
	ID           string    `json:"id"`
	TemplateName string    `json:"template_name"`
	TemplateText string    `json:"template_text"`
	Variables    []string  `json:"variables"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type QRCode struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Label     string    `json:"label,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Branding struct {
	AppName  string `json:"app_name"`
	LogoURL  string `json:"logo_url,omitempty"`
	Tagline  string `json:"tagline,omitempty"`
	ThemeID  string `json:"theme_id"`
	ShowLogo bool   `json:"show_logo"`
}

// BulkSendRequest is one outbound campaign instruction. Exactly one message
// source is populated: Message for direct text, or TemplateID plus
// TemplateVariables for template mode. FilterField and FilterValue are both
// set or both empty and only meaningful when SendTo is "subset".
type BulkSendRequest struct {
	EventID           string            `json:"event_id"`
	Subject           string            `json:"subject,omitempty"`
	SendTo            string            `json:"send_to"`
	FilterField       *string           `json:"filter_field"`
	FilterValue       *string           `json:"filter_value"`
	Message           string            `json:"message,omitempty"`
	TemplateID        string            `json:"template_id,omitempty"`
	TemplateVariables map[string]string `json:"template_variables,omitempty"`
}

type RecipientResult struct {
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// BulkSendResult summarizes one campaign: Sent + Failed == Total and Results
// holds one entry per recipient in send order.
type BulkSendResult struct {
	Total   int               `json:"total"`
	Sent    int               `json:"sent"`
	Failed  int               `json:"failed"`
	Results []RecipientResult `json:"results"`
}

type AutofillProfile struct {
	Email    string            `json:"email"`
	Phone    string            `json:"phone"`
	FormData map[string]string `json:"form_data"`
}

type FieldValues struct {
	EventID   string   `json:"event_id"`
	FieldName string   `json:"field_name"`
	Values    []string `json:"values"`
}

type RegistrantsCount struct {
	EventID string `json:"event_id"`
	Count   int    `json:"count"`
}
