// Package bulksend shapes one outbound campaign: operator input is collected
// into a Draft, validated, built into a single request, sent through a
// channel-specific upstream call, and the per-recipient result summary is
// interpreted back into operator-facing notices.
package bulksend

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"eventfront/internal/model"
)

// Channel selects the delivery medium. Closed set.
type Channel int

const (
	ChannelWhatsApp Channel = iota
	ChannelEmail
)

func ParseChannel(s string) (Channel, error) {
	switch s {
	case "whatsapp":
		return ChannelWhatsApp, nil
	case "email":
		return ChannelEmail, nil
	}
	return ChannelWhatsApp, fmt.Errorf("unknown channel %q", s)
}

func (c Channel) String() string {
	switch c {
	case ChannelEmail:
		return "email"
	case ChannelWhatsApp:
		return "whatsapp"
	}
	return "whatsapp"
}

// unit is the noun used in operator notices.
func (c Channel) unit() string {
	switch c {
	case ChannelEmail:
		return "emails"
	case ChannelWhatsApp:
		return "messages"
	}
	return "messages"
}

// Mode selects the message source. Closed set.
type Mode int

const (
	ModeDirect Mode = iota
	ModeTemplate
)

func ParseMode(s string) (Mode, error) {
	switch s {
	case "direct":
		return ModeDirect, nil
	case "template":
		return ModeTemplate, nil
	}
	return ModeDirect, fmt.Errorf("unknown message mode %q", s)
}

func (m Mode) String() string {
	switch m {
	case ModeTemplate:
		return "template"
	case ModeDirect:
		return "direct"
	}
	return "direct"
}

// Audience selects recipient targeting. Closed set.
type Audience int

const (
	SendAll Audience = iota
	SendSubset
)

func ParseAudience(s string) (Audience, error) {
	switch s {
	case "all":
		return SendAll, nil
	case "subset":
		return SendSubset, nil
	}
	return SendAll, fmt.Errorf("unknown audience %q", s)
}

func (a Audience) String() string {
	switch a {
	case SendSubset:
		return "subset"
	case SendAll:
		return "all"
	}
	return "all"
}

func (a Audience) MarshalJSON() ([]byte, error) { return json.Marshal(a.String()) }
func (m Mode) MarshalJSON() ([]byte, error)     { return json.Marshal(m.String()) }
func (c Channel) MarshalJSON() ([]byte, error)  { return json.Marshal(c.String()) }

// Blocking validation errors, surfaced verbatim to the operator.
var (
	ErrSubjectRequired  = errors.New("Please enter a subject")
	ErrMessageRequired  = errors.New("Please enter a message")
	ErrTemplateRequired = errors.New("Please select a template")
	ErrFilterRequired   = errors.New("Please select filter field and value")
)

// Draft is the operator's in-progress campaign input.
type Draft struct {
	Channel           Channel
	Audience          Audience
	Mode              Mode
	Subject           string
	Message           string
	TemplateID        string
	TemplateVariables map[string]string
	FilterField       string
	FilterValue       string
}

// NewDraft returns a draft at the modal's initial defaults: everyone,
// direct text, everything else empty.
func NewDraft(channel Channel) Draft {
	return Draft{
		Channel:  channel,
		Audience: SendAll,
		Mode:     ModeDirect,
	}
}

// Validate runs the pre-send checks in their fixed order and returns the
// first failure. A non-nil error blocks the send entirely.
func (d Draft) Validate() error {
	if d.Channel == ChannelEmail && strings.TrimSpace(d.Subject) == "" {
		return ErrSubjectRequired
	}
	if d.Mode == ModeDirect && strings.TrimSpace(d.Message) == "" {
		return ErrMessageRequired
	}
	if d.Mode == ModeTemplate && d.TemplateID == "" {
		return ErrTemplateRequired
	}
	if d.Audience == SendSubset && (d.FilterField == "" || d.FilterValue == "") {
		return ErrFilterRequired
	}
	return nil
}

// BuildRequest shapes the outbound request. Exactly one message source is
// populated and the filter pair is carried only for subset targeting.
func (d Draft) BuildRequest(eventID string) model.BulkSendRequest {
	req := model.BulkSendRequest{
		EventID: eventID,
		SendTo:  d.Audience.String(),
	}
	if d.Channel == ChannelEmail {
		req.Subject = d.Subject
	}
	if d.Audience == SendSubset {
		field, value := d.FilterField, d.FilterValue
		req.FilterField = &field
		req.FilterValue = &value
	}
	switch d.Mode {
	case ModeDirect:
		req.Message = d.Message
	case ModeTemplate:
		req.TemplateID = d.TemplateID
		req.TemplateVariables = d.TemplateVariables
	}
	return req
}
