package service

import (
	"fmt"

	"eventfront/internal/bulksend"
	"eventfront/internal/dto"
	"eventfront/internal/model"
	"eventfront/internal/msgtemplate"
	"eventfront/pkg/validator"

	"github.com/wb-go/wbf/ginext"
)

func (s *service) ListTemplates(ctx *ginext.Context) {
	templates, err := s.api.ListTemplates(ctx.Request.Context())
	if err != nil {
		s.upstreamError(ctx, err)
		return
	}
	// variables always reflect the stored text, whatever upstream sent
	for i := range templates {
		templates[i].Variables = msgtemplate.ExtractVariables(templates[i].TemplateText)
	}
	dto.SuccessResponse(ctx, templates)
}

func (s *service) CreateTemplate(ctx *ginext.Context) {
	var req dto.TemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}
	if verr := validator.Validate(ctx, req); verr != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	created, err := s.api.CreateTemplate(ctx.Request.Context(), &model.MessageTemplate{
		TemplateName: req.TemplateName,
		TemplateText: req.TemplateText,
		Variables:    msgtemplate.ExtractVariables(req.TemplateText),
	})
	if err != nil {
		s.upstreamError(ctx, err)
		return
	}
	created.Variables = msgtemplate.ExtractVariables(created.TemplateText)

	s.log.Info().Str("template_id", created.ID).Msg("message template created")
	dto.SuccessCreatedResponse(ctx, created)
}

func (s *service) UpdateTemplate(ctx *ginext.Context) {
	id := ctx.Param("id")

	var req dto.TemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}
	if verr := validator.Validate(ctx, req); verr != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	updated, err := s.api.UpdateTemplate(ctx.Request.Context(), id, &model.MessageTemplate{
		TemplateName: req.TemplateName,
		TemplateText: req.TemplateText,
		Variables:    msgtemplate.ExtractVariables(req.TemplateText),
	})
	if err != nil {
		s.upstreamError(ctx, err)
		return
	}
	updated.Variables = msgtemplate.ExtractVariables(updated.TemplateText)
	dto.SuccessResponse(ctx, updated)
}

func (s *service) DeleteTemplate(ctx *ginext.Context) {
	if err := s.api.DeleteTemplate(ctx.Request.Context(), ctx.Param("id")); err != nil {
		s.upstreamError(ctx, err)
		return
	}
	dto.SuccessResponse(ctx, nil)
}

// SendBulk runs one campaign: operator input is parsed into a draft session,
// validated in order, sent through the channel's upstream endpoint, and the
// per-recipient summary comes back with its operator notices. Validation
// failures block before any network call.
func (s *service) SendBulk(ctx *ginext.Context) {
	channel, err := bulksend.ParseChannel(ctx.Param("channel"))
	if err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Unknown channel")
		return
	}
	eventID := ctx.Param("eventId")

	var input dto.BulkSendInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}

	sess := bulksend.NewSession(eventID, channel)
	if err := s.applyInput(ctx, sess, input); err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, err.Error())
		return
	}

	result, err := sess.Send(ctx.Request.Context(), s.sender)
	if err != nil {
		switch err {
		case bulksend.ErrSubjectRequired, bulksend.ErrMessageRequired,
			bulksend.ErrTemplateRequired, bulksend.ErrFilterRequired:
			dto.BadResponseError(ctx, dto.SendBlocked, err.Error())
		default:
			s.log.Error().Err(err).Str("event_id", eventID).Str("channel", channel.String()).
				Msg("bulk send failed")
			s.upstreamError(ctx, err)
		}
		return
	}

	s.log.Info().Str("event_id", eventID).Str("channel", channel.String()).
		Int("total", result.Total).Int("sent", result.Sent).Int("failed", result.Failed).
		Msg("bulk send completed")

	dto.SuccessResponse(ctx, map[string]any{
		"result":  result,
		"notices": bulksend.Summarize(result, channel),
		"failed":  bulksend.FailedRecipients(result),
	})
}

// applyInput translates the wire-form modal submission onto a fresh session.
func (s *service) applyInput(ctx *ginext.Context, sess *bulksend.Session, input dto.BulkSendInput) error {
	if input.SendTo != "" {
		audience, err := bulksend.ParseAudience(input.SendTo)
		if err != nil {
			return err
		}
		_ = sess.SetAudience(audience)
	}
	if input.MessageMode != "" {
		mode, err := bulksend.ParseMode(input.MessageMode)
		if err != nil {
			return err
		}
		_ = sess.SetMode(mode)
	}
	_ = sess.SetSubject(input.Subject)
	_ = sess.SetMessage(input.Message)

	if input.TemplateID != "" {
		tpl, err := s.api.GetTemplate(ctx.Request.Context(), input.TemplateID)
		if err != nil {
			return fmt.Errorf("template not found")
		}
		tpl.Variables = msgtemplate.ExtractVariables(tpl.TemplateText)
		_ = sess.SelectTemplate(*tpl)
		// only values for variables the template actually declares survive
		declared := msgtemplate.VariableInputs(tpl.Variables)
		for name, value := range input.TemplateVariables {
			if _, ok := declared[name]; ok {
				_ = sess.SetTemplateVariable(name, value)
			}
		}
	}

	if input.FilterField != "" {
		_ = sess.SetFilterField(input.FilterField)
		_ = sess.SetFilterValue(input.FilterValue)
	}
	return nil
}

// FieldValues returns the distinct captured values for one field across an
// event's registrations, for the subset-targeting picker.
func (s *service) FieldValues(ctx *ginext.Context) {
	channel, err := bulksend.ParseChannel(ctx.Param("channel"))
	if err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Unknown channel")
		return
	}

	values, err := s.sender.FieldValues(ctx.Request.Context(), channel, ctx.Param("eventId"), ctx.Param("fieldName"))
	if err != nil {
		s.upstreamError(ctx, err)
		return
	}
	dto.SuccessResponse(ctx, map[string]any{"values": values})
}

func (s *service) RegistrantsCount(ctx *ginext.Context) {
	eventID := ctx.Param("eventId")
	count, err := s.api.RegistrantsCount(ctx.Request.Context(), eventID)
	if err != nil {
		s.upstreamError(ctx, err)
		return
	}
	dto.SuccessResponse(ctx, model.RegistrantsCount{EventID: eventID, Count: count})
}
