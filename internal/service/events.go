package service

import (
	"fmt"

	"eventfront/internal/dto"
	"eventfront/internal/fields"
	"eventfront/internal/model"
	"eventfront/pkg/validator"

	"github.com/wb-go/wbf/ginext"
)

func (s *service) ListEvents(ctx *ginext.Context) {
	events, err := s.api.ListEvents(ctx.Request.Context())
	if err != nil {
		s.upstreamError(ctx, err)
		return
	}
	dto.SuccessResponse(ctx, events)
}

func (s *service) GetEvent(ctx *ginext.Context) {
	event, err := s.api.GetEvent(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if isNotFound(err) {
			dto.EventNotFoundError(ctx)
			return
		}
		s.upstreamError(ctx, err)
		return
	}
	dto.SuccessResponse(ctx, event)
}

func (s *service) CreateEvent(ctx *ginext.Context) {
	var event model.Event
	if err := ctx.ShouldBindJSON(&event); err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}
	if event.Name == "" {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Event name is required")
		return
	}

	// names derived, order renumbered; the stored list is exactly this one
	fields.Normalize(event.Fields)
	for _, f := range event.Fields {
		if f.Name == "" {
			dto.BadResponseError(ctx, dto.FieldIncorrect, "Field label is required")
			return
		}
	}

	created, err := s.api.CreateEvent(ctx.Request.Context(), &event)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create event")
		s.upstreamError(ctx, err)
		return
	}

	s.log.Info().Str("event_id", created.ID).Msg("event created successfully")
	dto.SuccessCreatedResponse(ctx, created)
}

func (s *service) UpdateEvent(ctx *ginext.Context) {
	id := ctx.Param("id")

	var event model.Event
	if err := ctx.ShouldBindJSON(&event); err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}

	// field edits travel through ReplaceFields, not the event update
	event.Fields = nil

	updated, err := s.api.UpdateEvent(ctx.Request.Context(), id, &event)
	if err != nil {
		if isNotFound(err) {
			dto.EventNotFoundError(ctx)
			return
		}
		s.upstreamError(ctx, err)
		return
	}
	dto.SuccessResponse(ctx, updated)
}

func (s *service) ToggleEvent(ctx *ginext.Context) {
	toggled, err := s.api.ToggleEvent(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if isNotFound(err) {
			dto.EventNotFoundError(ctx)
			return
		}
		s.upstreamError(ctx, err)
		return
	}
	s.log.Info().Str("event_id", toggled.ID).Bool("is_active", toggled.IsActive).
		Msg("event toggled")
	dto.SuccessResponse(ctx, toggled)
}

func (s *service) CloneEvent(ctx *ginext.Context) {
	id := ctx.Param("id")

	var req dto.CloneEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}
	if verr := validator.Validate(ctx, req); verr != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	cloned, err := s.api.CloneEvent(ctx.Request.Context(), id, req.NewName)
	if err != nil {
		if isNotFound(err) {
			dto.EventNotFoundError(ctx)
			return
		}
		s.upstreamError(ctx, err)
		return
	}
	dto.SuccessCreatedResponse(ctx, cloned)
}

func (s *service) DeleteEvent(ctx *ginext.Context) {
	id := ctx.Param("id")
	if err := s.api.DeleteEvent(ctx.Request.Context(), id); err != nil {
		if isNotFound(err) {
			dto.EventNotFoundError(ctx)
			return
		}
		s.upstreamError(ctx, err)
		return
	}
	s.log.Info().Str("event_id", id).Msg("event deleted")
	dto.SuccessResponse(ctx, nil)
}

func (s *service) EventRegistrations(ctx *ginext.Context) {
	regs, err := s.api.EventRegistrations(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if isNotFound(err) {
			dto.EventNotFoundError(ctx)
			return
		}
		s.upstreamError(ctx, err)
		return
	}
	dto.SuccessResponse(ctx, regs)
}

// ReplaceFields saves an event's full field list. The upstream semantics are
// replace-whole-collection: fields omitted from this call are deleted, and
// existing registrations keep their captured data regardless.
func (s *service) ReplaceFields(ctx *ginext.Context) {
	id := ctx.Param("id")

	var req dto.ReplaceFieldsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}

	fields.Normalize(req.Fields)
	for _, f := range req.Fields {
		if f.Name == "" {
			dto.BadResponseError(ctx, dto.FieldIncorrect, "Field label is required")
			return
		}
	}

	if err := s.api.ReplaceEventFields(ctx.Request.Context(), id, req.Fields); err != nil {
		if isNotFound(err) {
			dto.EventNotFoundError(ctx)
			return
		}
		s.log.Error().Err(err).Str("event_id", id).Msg("failed to replace event fields")
		s.upstreamError(ctx, err)
		return
	}

	s.log.Info().Str("event_id", id).Int("fields", len(req.Fields)).
		Msg("event fields replaced")
	dto.SuccessResponse(ctx, req.Fields)
}
