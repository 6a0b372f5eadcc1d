package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"eventfront/internal/fields"
	"eventfront/internal/model"
)

// Events

func (c *Client) ListEvents(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	if err := c.get(ctx, "/events", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) ActiveEvent(ctx context.Context) (*model.Event, error) {
	var event model.Event
	if err := c.get(ctx, "/events/active", nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *Client) GetEvent(ctx context.Context, id string) (*model.Event, error) {
	var event model.Event
	if err := c.get(ctx, "/events/"+id, nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *Client) CreateEvent(ctx context.Context, event *model.Event) (*model.Event, error) {
	var created model.Event
	if err := c.post(ctx, "/events", event, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateEvent(ctx context.Context, id string, event *model.Event) (*model.Event, error) {
	var updated model.Event
	if err := c.patch(ctx, "/events/"+id, event, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) ToggleEvent(ctx context.Context, id string) (*model.Event, error) {
	var toggled model.Event
	if err := c.post(ctx, "/events/"+id+"/toggle", nil, &toggled); err != nil {
		return nil, err
	}
	return &toggled, nil
}

func (c *Client) CloneEvent(ctx context.Context, id, newName string) (*model.Event, error) {
	query := url.Values{"new_name": []string{newName}}
	var cloned model.Event
	if err := c.do(ctx, http.MethodPost, "/events/"+id+"/clone", query, nil, &cloned); err != nil {
		return nil, err
	}
	return &cloned, nil
}

func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return c.delete(ctx, "/events/"+id)
}

func (c *Client) EventRegistrations(ctx context.Context, id string) ([]model.Registration, error) {
	var regs []model.Registration
	if err := c.get(ctx, "/events/"+id+"/registrations", nil, &regs); err != nil {
		return nil, err
	}
	return regs, nil
}

// ReplaceEventFields saves a field list with whole-collection semantics: the
// upstream list is replaced by exactly what is sent, and fields omitted here
// are gone. There is no per-field diff.
func (c *Client) ReplaceEventFields(ctx context.Context, id string, fs []fields.Field) error {
	return c.put(ctx, "/events/"+id+"/fields", fs, nil)
}

// Registrations

func (c *Client) CreateRegistration(ctx context.Context, reg *model.Registration) (*model.Registration, error) {
	var created model.Registration
	if err := c.post(ctx, "/registrations", reg, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) GetRegistration(ctx context.Context, id string) (*model.Registration, error) {
	var reg model.Registration
	if err := c.get(ctx, "/registrations/"+id, nil, &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

func (c *Client) AutofillProfile(ctx context.Context, email, phone string) (*model.AutofillProfile, error) {
	query := url.Values{}
	if email != "" {
		query.Set("email", email)
	}
	if phone != "" {
		query.Set("phone", phone)
	}
	var profile model.AutofillProfile
	if err := c.get(ctx, "/registrations/profile/autofill", query, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) CheckIn(ctx context.Context, eventID, email string) (*model.Registration, error) {
	body := map[string]string{"email": email}
	var reg model.Registration
	if err := c.post(ctx, "/registrations/check-in/"+eventID, body, &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

// QR codes

func (c *Client) CreateQRCode(ctx context.Context, qr *model.QRCode) (*model.QRCode, error) {
	var created model.QRCode
	if err := c.post(ctx, "/qr-codes", qr, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) GetQRCode(ctx context.Context, id string) (*model.QRCode, error) {
	var qr model.QRCode
	if err := c.get(ctx, "/qr-codes/"+id, nil, &qr); err != nil {
		return nil, err
	}
	return &qr, nil
}

func (c *Client) QRCodesByEvent(ctx context.Context, eventID string) ([]model.QRCode, error) {
	var codes []model.QRCode
	if err := c.get(ctx, "/qr-codes/event/"+eventID, nil, &codes); err != nil {
		return nil, err
	}
	return codes, nil
}

func (c *Client) DeleteQRCode(ctx context.Context, id string) error {
	return c.delete(ctx, "/qr-codes/"+id)
}

// Branding

func (c *Client) GetBranding(ctx context.Context) (*model.Branding, error) {
	var branding model.Branding
	if err := c.get(ctx, "/branding", nil, &branding); err != nil {
		return nil, err
	}
	return &branding, nil
}

func (c *Client) UpdateBranding(ctx context.Context, branding *model.Branding) (*model.Branding, error) {
	var updated model.Branding
	if err := c.put(ctx, "/branding", branding, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Message templates

func (c *Client) ListTemplates(ctx context.Context) ([]model.MessageTemplate, error) {
	var templates []model.MessageTemplate
	if err := c.get(ctx, "/message-templates/", nil, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (c *Client) GetTemplate(ctx context.Context, id string) (*model.MessageTemplate, error) {
	var tpl model.MessageTemplate
	if err := c.get(ctx, "/message-templates/"+id, nil, &tpl); err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (c *Client) CreateTemplate(ctx context.Context, tpl *model.MessageTemplate) (*model.MessageTemplate, error) {
	var created model.MessageTemplate
	if err := c.post(ctx, "/message-templates/", tpl, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateTemplate(ctx context.Context, id string, tpl *model.MessageTemplate) (*model.MessageTemplate, error) {
	var updated model.MessageTemplate
	if err := c.put(ctx, "/message-templates/"+id, tpl, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteTemplate(ctx context.Context, id string) error {
	return c.delete(ctx, "/message-templates/"+id)
}

// Bulk messaging

func (c *Client) SendBulkWhatsApp(ctx context.Context, req model.BulkSendRequest) (*model.BulkSendResult, error) {
	var result model.BulkSendResult
	if err := c.post(ctx, "/whatsapp/send-bulk/", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) SendBulkEmail(ctx context.Context, req model.BulkSendRequest) (*model.BulkSendResult, error) {
	var result model.BulkSendResult
	if err := c.post(ctx, "/email/send-bulk/", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) RegistrantsCount(ctx context.Context, eventID string) (int, error) {
	var count model.RegistrantsCount
	if err := c.get(ctx, "/whatsapp/registrants-count/"+eventID, nil, &count); err != nil {
		return 0, err
	}
	return count.Count, nil
}

func (c *Client) WhatsAppFieldValues(ctx context.Context, eventID, fieldName string) ([]string, error) {
	var values model.FieldValues
	if err := c.get(ctx, fmt.Sprintf("/whatsapp/field-values/%s/%s", eventID, fieldName), nil, &values); err != nil {
		return nil, err
	}
	return values.Values, nil
}

func (c *Client) EmailFieldValues(ctx context.Context, eventID, fieldName string) ([]string, error) {
	var values model.FieldValues
	if err := c.get(ctx, fmt.Sprintf("/email/field-values/%s/%s", eventID, fieldName), nil, &values); err != nil {
		return nil, err
	}
	return values.Values, nil
}
