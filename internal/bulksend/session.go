package bulksend

import (
	"context"
	"errors"
	"sync"

	"eventfront/internal/model"
	"eventfront/internal/msgtemplate"
)

// Sender issues the actual upstream calls for one channel. No retry and no
// caching happen behind this interface.
type Sender interface {
	SendBulk(ctx context.Context, channel Channel, req model.BulkSendRequest) (*model.BulkSendResult, error)
	FieldValues(ctx context.Context, channel Channel, eventID, fieldName string) ([]string, error)
}

// State tracks one send attempt: idle -> sending -> completed, or back to
// idle when the transport fails before a result is obtained.
type State int

const (
	StateIdle State = iota
	StateSending
	StateCompleted
)

var (
	// ErrSending rejects any input mutation while a send is in flight.
	ErrSending = errors.New("send in progress")
	// ErrCompleted rejects a second send on the same modal instance.
	ErrCompleted = errors.New("send already completed")
	// ErrClosed reports a send whose session was closed mid-flight.
	ErrClosed = errors.New("session closed")
)

// Session owns the state of one send modal instance. A send in flight
// freezes every input; Close discards interest in it without cancelling the
// upstream call.
type Session struct {
	mu      sync.Mutex
	eventID string
	state   State
	draft   Draft
	values  []string
	result  *model.BulkSendResult

	// gen invalidates in-flight work: Close bumps it, and anything that
	// started under an older generation is dropped on arrival.
	gen int
}

func NewSession(eventID string, channel Channel) *Session {
	return &Session{
		eventID: eventID,
		draft:   NewDraft(channel),
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Draft() Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

func (s *Session) Result() *model.BulkSendResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

func (s *Session) mutate(fn func(*Draft)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateSending {
		return ErrSending
	}
	fn(&s.draft)
	return nil
}

func (s *Session) SetAudience(a Audience) error {
	return s.mutate(func(d *Draft) { d.Audience = a })
}

func (s *Session) SetMode(m Mode) error {
	return s.mutate(func(d *Draft) { d.Mode = m })
}

func (s *Session) SetSubject(subject string) error {
	return s.mutate(func(d *Draft) { d.Subject = subject })
}

func (s *Session) SetMessage(message string) error {
	return s.mutate(func(d *Draft) { d.Message = message })
}

// SelectTemplate installs a template as the message source: the body becomes
// the raw template text and the variable inputs are reseeded empty.
func (s *Session) SelectTemplate(tpl model.MessageTemplate) error {
	return s.mutate(func(d *Draft) {
		d.TemplateID = tpl.ID
		d.Message = tpl.TemplateText
		d.TemplateVariables = msgtemplate.VariableInputs(tpl.Variables)
	})
}

func (s *Session) SetTemplateVariable(name, value string) error {
	return s.mutate(func(d *Draft) {
		if d.TemplateVariables == nil {
			d.TemplateVariables = map[string]string{}
		}
		d.TemplateVariables[name] = value
	})
}

// SetFilterField switches the subset filter to a new field, clearing the
// selected value and the cached value list before any new lookup resolves.
func (s *Session) SetFilterField(field string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateSending {
		return ErrSending
	}
	s.draft.FilterField = field
	s.draft.FilterValue = ""
	s.values = nil
	return nil
}

func (s *Session) SetFilterValue(value string) error {
	return s.mutate(func(d *Draft) { d.FilterValue = value })
}

// LoadFieldValues fetches the distinct captured values for the current filter
// field. A list arriving after a field switch or a close is stale and dropped.
func (s *Session) LoadFieldValues(ctx context.Context, sender Sender) error {
	s.mu.Lock()
	field := s.draft.FilterField
	channel := s.draft.Channel
	gen := s.gen
	s.mu.Unlock()

	if field == "" {
		return nil
	}

	values, err := sender.FieldValues(ctx, channel, s.eventID, field)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen || s.draft.FilterField != field {
		return nil
	}
	s.values = values
	return nil
}

func (s *Session) FieldValues() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values
}

// Send validates the draft, freezes all inputs, and issues the one upstream
// call. Validation failure or a transport failure returns the session to
// idle; success makes the session completed and terminal. A session closed
// mid-flight discards the late outcome and returns ErrClosed.
func (s *Session) Send(ctx context.Context, sender Sender) (*model.BulkSendResult, error) {
	s.mu.Lock()
	switch s.state {
	case StateSending:
		s.mu.Unlock()
		return nil, ErrSending
	case StateCompleted:
		s.mu.Unlock()
		return nil, ErrCompleted
	case StateIdle:
	}
	if err := s.draft.Validate(); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	req := s.draft.BuildRequest(s.eventID)
	channel := s.draft.Channel
	gen := s.gen
	s.state = StateSending
	s.mu.Unlock()

	result, err := sender.SendBulk(ctx, channel, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		// modal was closed mid-flight; nobody is interested anymore
		return nil, ErrClosed
	}
	if err != nil {
		s.state = StateIdle
		return nil, err
	}
	s.state = StateCompleted
	s.result = result
	return result, nil
}

// Close resets the session to its initial defaults: audience all, direct
// mode, empty subject, message, template selection and filters, no cached
// values, no result. An in-flight send keeps running but its outcome is
// discarded.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.state = StateIdle
	s.draft = NewDraft(s.draft.Channel)
	s.values = nil
	s.result = nil
}
