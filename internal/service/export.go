package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strings"
	"time"

	"eventfront/internal/dto"
	"eventfront/internal/model"

	"github.com/wb-go/wbf/ginext"
)

// exportColumns is the fixed prefix of every registrations export; the
// event's captured form_data keys follow it.
var exportColumns = []string{"Email", "Phone", "Checked In", "Registered At"}

func columnTitle(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// registrationsCSV flattens a registration list into CSV. Columns are the
// fixed prefix plus the union of form_data keys across all registrations
// (email and phone already have their own columns); a registration missing a
// key gets an empty cell.
func registrationsCSV(regs []model.Registration) ([]byte, error) {
	var keys []string
	seen := make(map[string]struct{})
	for _, reg := range regs {
		regKeys := make([]string, 0, len(reg.FormData))
		for key := range reg.FormData {
			if key == "email" || key == "phone" {
				continue
			}
			regKeys = append(regKeys, key)
		}
		sort.Strings(regKeys)
		for _, key := range regKeys {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}

	header := make([]string, 0, len(exportColumns)+len(keys))
	header = append(header, exportColumns...)
	for _, key := range keys {
		header = append(header, columnTitle(key))
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, reg := range regs {
		checkedIn := "No"
		if reg.IsCheckedIn {
			checkedIn = "Yes"
		}
		row := []string{reg.Email, reg.Phone, checkedIn, reg.CreatedAt.Format(time.RFC3339)}
		for _, key := range keys {
			row = append(row, reg.FormData[key])
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// ExportRegistrations downloads an event's registrations as a CSV file.
func (s *service) ExportRegistrations(ctx *ginext.Context) {
	id := ctx.Param("id")
	regs, err := s.api.EventRegistrations(ctx.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			dto.EventNotFoundError(ctx)
			return
		}
		s.upstreamError(ctx, err)
		return
	}

	data, err := registrationsCSV(regs)
	if err != nil {
		s.log.Error().Err(err).Str("event_id", id).Msg("failed to build registrations export")
		dto.InternalServerError(ctx)
		return
	}

	filename := fmt.Sprintf("registrations-%s-%s.csv", id, time.Now().Format("2006-01-02"))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(200, "text/csv", data)
}
