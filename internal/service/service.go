package service

import (
	"context"
	"errors"
	"fmt"

	"eventfront/internal/backend"
	"eventfront/internal/bulksend"
	"eventfront/internal/dto"
	"eventfront/internal/fields"
	"eventfront/internal/model"
	"eventfront/internal/theme"
	"eventfront/pkg/validator"

	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/ginext"
)

type Service interface {
	// public
	RegistrationForm(ctx *ginext.Context)
	Register(ctx *ginext.Context)
	Autofill(ctx *ginext.Context)
	CheckInInfo(ctx *ginext.Context)
	CheckIn(ctx *ginext.Context)

	// admin: events
	ListEvents(ctx *ginext.Context)
	GetEvent(ctx *ginext.Context)
	CreateEvent(ctx *ginext.Context)
	UpdateEvent(ctx *ginext.Context)
	ToggleEvent(ctx *ginext.Context)
	CloneEvent(ctx *ginext.Context)
	DeleteEvent(ctx *ginext.Context)
	EventRegistrations(ctx *ginext.Context)
	ExportRegistrations(ctx *ginext.Context)
	ReplaceFields(ctx *ginext.Context)

	// admin: messaging
	ListTemplates(ctx *ginext.Context)
	CreateTemplate(ctx *ginext.Context)
	UpdateTemplate(ctx *ginext.Context)
	DeleteTemplate(ctx *ginext.Context)
	SendBulk(ctx *ginext.Context)
	FieldValues(ctx *ginext.Context)
	RegistrantsCount(ctx *ginext.Context)

	// admin: branding, theming, qr
	GetBranding(ctx *ginext.Context)
	UpdateBranding(ctx *ginext.Context)
	ListThemes(ctx *ginext.Context)
	ListPalettes(ctx *ginext.Context)
	CreateQRCode(ctx *ginext.Context)
	QRCodesByEvent(ctx *ginext.Context)
	DeleteQRCode(ctx *ginext.Context)
}

type service struct {
	api    *backend.Client
	sender bulksend.Sender
	log    *zerolog.Logger
}

func NewService(api *backend.Client, logger *zerolog.Logger) Service {
	return &service{
		api:    api,
		sender: channelSender{api: api},
		log:    logger,
	}
}

// channelSender routes a bulksend call to the channel's upstream endpoint.
type channelSender struct {
	api *backend.Client
}

func (s channelSender) SendBulk(ctx context.Context, channel bulksend.Channel, req model.BulkSendRequest) (*model.BulkSendResult, error) {
	switch channel {
	case bulksend.ChannelEmail:
		return s.api.SendBulkEmail(ctx, req)
	case bulksend.ChannelWhatsApp:
		return s.api.SendBulkWhatsApp(ctx, req)
	}
	return nil, fmt.Errorf("unknown channel %d", channel)
}

func (s channelSender) FieldValues(ctx context.Context, channel bulksend.Channel, eventID, fieldName string) ([]string, error) {
	switch channel {
	case bulksend.ChannelEmail:
		return s.api.EmailFieldValues(ctx, eventID, fieldName)
	case bulksend.ChannelWhatsApp:
		return s.api.WhatsAppFieldValues(ctx, eventID, fieldName)
	}
	return nil, fmt.Errorf("unknown channel %d", channel)
}

// upstreamError writes a backend failure, keeping the upstream detail message
// when one was provided.
func (s *service) upstreamError(ctx *ginext.Context, err error) {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		dto.UpstreamError(ctx, apiErr.Detail)
		return
	}
	dto.UpstreamError(ctx, "")
}

func isNotFound(err error) bool {
	var apiErr *backend.APIError
	return errors.As(err, &apiErr) && apiErr.Status == 404
}

// RegistrationForm assembles everything the public form needs in one shot:
// the active event, its render plan, and the branding-selected theme.
func (s *service) RegistrationForm(ctx *ginext.Context) {
	event, err := s.api.ActiveEvent(ctx.Request.Context())
	if err != nil {
		if isNotFound(err) {
			dto.NoActiveEventError(ctx)
			return
		}
		s.log.Error().Err(err).Msg("failed to load active event")
		s.upstreamError(ctx, err)
		return
	}

	// a broken branding record falls back to defaults, it never blocks the form
	branding, err := s.api.GetBranding(ctx.Request.Context())
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to load branding, using defaults")
		branding = &model.Branding{}
	}

	dto.SuccessResponse(ctx, map[string]any{
		"event":    event,
		"controls": fields.BuildControls(event.Fields),
		"theme":    theme.Resolve(branding.ThemeID),
		"branding": branding,
	})
}

func (s *service) Register(ctx *ginext.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}

	if verr := validator.Validate(ctx, req); verr != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	event, err := s.api.ActiveEvent(ctx.Request.Context())
	if err != nil {
		if isNotFound(err) {
			dto.NoActiveEventError(ctx)
			return
		}
		s.upstreamError(ctx, err)
		return
	}

	// required custom fields block the submission locally, nothing is sent
	if ferrs := fields.Validate(event.Fields, req.FormData); len(ferrs) > 0 {
		dto.BadResponseError(ctx, dto.FieldIncorrect, ferrs[0].Message)
		return
	}

	formData := make(map[string]string, len(req.FormData)+2)
	for k, v := range req.FormData {
		formData[k] = v
	}
	formData["email"] = req.Email
	formData["phone"] = req.Phone

	created, err := s.api.CreateRegistration(ctx.Request.Context(), &model.Registration{
		EventID:  event.ID,
		Email:    req.Email,
		Phone:    req.Phone,
		FormData: formData,
	})
	if err != nil {
		s.log.Error().Err(err).Str("event_id", event.ID).Msg("failed to create registration")
		s.upstreamError(ctx, err)
		return
	}

	s.log.Info().Str("registration_id", created.ID).Str("event_id", event.ID).
		Msg("registration created successfully")
	dto.SuccessCreatedResponse(ctx, created)
}

// Autofill looks up a returning visitor's previous answers by email or phone.
// The client debounces keystrokes; this end is a plain passthrough.
func (s *service) Autofill(ctx *ginext.Context) {
	email := ctx.Query("email")
	phone := ctx.Query("phone")
	if email == "" && phone == "" {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "email or phone is required")
		return
	}

	profile, err := s.api.AutofillProfile(ctx.Request.Context(), email, phone)
	if err != nil {
		if isNotFound(err) {
			dto.SuccessResponse(ctx, nil)
			return
		}
		s.upstreamError(ctx, err)
		return
	}
	dto.SuccessResponse(ctx, profile)
}

// CheckInInfo validates a QR-linked check-in URL and returns the themed page
// data. The link is unauthenticated by design.
func (s *service) CheckInInfo(ctx *ginext.Context) {
	eventID := ctx.Param("eventId")
	qrID := ctx.Param("qrId")

	qr, err := s.api.GetQRCode(ctx.Request.Context(), qrID)
	if err != nil || qr.EventID != eventID {
		dto.EventNotFoundError(ctx)
		return
	}

	event, err := s.api.GetEvent(ctx.Request.Context(), eventID)
	if err != nil {
		dto.EventNotFoundError(ctx)
		return
	}

	branding, err := s.api.GetBranding(ctx.Request.Context())
	if err != nil {
		branding = &model.Branding{}
	}

	dto.SuccessResponse(ctx, map[string]any{
		"event": event,
		"theme": theme.Resolve(branding.ThemeID),
	})
}

func (s *service) CheckIn(ctx *ginext.Context) {
	eventID := ctx.Param("eventId")

	var req dto.CheckInRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}
	if verr := validator.Validate(ctx, req); verr != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	reg, err := s.api.CheckIn(ctx.Request.Context(), eventID, req.Email)
	if err != nil {
		s.log.Error().Err(err).Str("event_id", eventID).Msg("check-in failed")
		s.upstreamError(ctx, err)
		return
	}

	s.log.Info().Str("registration_id", reg.ID).Str("event_id", eventID).
		Msg("attendee checked in")
	dto.SuccessResponse(ctx, reg)
}
