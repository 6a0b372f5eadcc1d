package service

import (
	"eventfront/internal/dto"
	"eventfront/internal/model"
	"eventfront/internal/theme"

	"github.com/wb-go/wbf/ginext"
)

func (s *service) GetBranding(ctx *ginext.Context) {
	branding, err := s.api.GetBranding(ctx.Request.Context())
	if err != nil {
		s.upstreamError(ctx, err)
		return
	}
	dto.SuccessResponse(ctx, map[string]any{
		"branding": branding,
		"theme":    theme.Resolve(branding.ThemeID),
	})
}

func (s *service) UpdateBranding(ctx *ginext.Context) {
	var branding model.Branding
	if err := ctx.ShouldBindJSON(&branding); err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}

	// unknown identifiers are stored as-is and resolve to the default theme
	updated, err := s.api.UpdateBranding(ctx.Request.Context(), &branding)
	if err != nil {
		s.upstreamError(ctx, err)
		return
	}

	s.log.Info().Str("theme_id", updated.ThemeID).Msg("branding updated")
	dto.SuccessResponse(ctx, map[string]any{
		"branding": updated,
		"theme":    theme.Resolve(updated.ThemeID),
	})
}

// ListThemes exposes the public registration themes for the branding screen.
func (s *service) ListThemes(ctx *ginext.Context) {
	dto.SuccessResponse(ctx, theme.All())
}

// ListPalettes exposes the dashboard palette presets. The operator's choice
// is persisted client-side; nothing here touches the branding record.
func (s *service) ListPalettes(ctx *ginext.Context) {
	dto.SuccessResponse(ctx, theme.Palettes())
}

func (s *service) CreateQRCode(ctx *ginext.Context) {
	var qr model.QRCode
	if err := ctx.ShouldBindJSON(&qr); err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}
	if qr.EventID == "" {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Event ID is required")
		return
	}

	created, err := s.api.CreateQRCode(ctx.Request.Context(), &qr)
	if err != nil {
		s.upstreamError(ctx, err)
		return
	}

	s.log.Info().Str("qr_id", created.ID).Str("event_id", created.EventID).
		Msg("qr code created")
	dto.SuccessCreatedResponse(ctx, created)
}

func (s *service) QRCodesByEvent(ctx *ginext.Context) {
	codes, err := s.api.QRCodesByEvent(ctx.Request.Context(), ctx.Param("eventId"))
	if err != nil {
		s.upstreamError(ctx, err)
		return
	}
	dto.SuccessResponse(ctx, codes)
}

func (s *service) DeleteQRCode(ctx *ginext.Context) {
	if err := s.api.DeleteQRCode(ctx.Request.Context(), ctx.Param("id")); err != nil {
		s.upstreamError(ctx, err)
		return
	}
	dto.SuccessResponse(ctx, nil)
}
