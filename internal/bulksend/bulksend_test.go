package bulksend

import (
	"context"
	"errors"
	"testing"

	"eventfront/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSender struct {
	sendCalls   int
	lastChannel Channel
	lastReq     model.BulkSendRequest
	result      *model.BulkSendResult
	sendErr     error

	valueCalls int
	lastField  string
	values     []string
	valuesErr  error
}

func (m *mockSender) SendBulk(_ context.Context, channel Channel, req model.BulkSendRequest) (*model.BulkSendResult, error) {
	m.sendCalls++
	m.lastChannel = channel
	m.lastReq = req
	return m.result, m.sendErr
}

func (m *mockSender) FieldValues(_ context.Context, _ Channel, _, fieldName string) ([]string, error) {
	m.valueCalls++
	m.lastField = fieldName
	return m.values, m.valuesErr
}

func TestDraftValidateOrder(t *testing.T) {
	tests := []struct {
		name  string
		draft Draft
		want  error
	}{
		{
			name:  "email without subject",
			draft: Draft{Channel: ChannelEmail, Mode: ModeDirect, Message: "hi"},
			want:  ErrSubjectRequired,
		},
		{
			name:  "subject checked before message",
			draft: Draft{Channel: ChannelEmail},
			want:  ErrSubjectRequired,
		},
		{
			name:  "direct without message",
			draft: Draft{Channel: ChannelWhatsApp, Mode: ModeDirect},
			want:  ErrMessageRequired,
		},
		{
			name:  "whitespace message blocks",
			draft: Draft{Channel: ChannelWhatsApp, Mode: ModeDirect, Message: "   "},
			want:  ErrMessageRequired,
		},
		{
			name:  "template without selection",
			draft: Draft{Channel: ChannelWhatsApp, Mode: ModeTemplate},
			want:  ErrTemplateRequired,
		},
		{
			name:  "subset without filter value",
			draft: Draft{Channel: ChannelWhatsApp, Mode: ModeDirect, Message: "hi", Audience: SendSubset, FilterField: "city"},
			want:  ErrFilterRequired,
		},
		{
			name:  "subset without filter field",
			draft: Draft{Channel: ChannelWhatsApp, Mode: ModeDirect, Message: "hi", Audience: SendSubset, FilterValue: "Pune"},
			want:  ErrFilterRequired,
		},
		{
			name:  "valid direct whatsapp",
			draft: Draft{Channel: ChannelWhatsApp, Mode: ModeDirect, Message: "hi"},
			want:  nil,
		},
		{
			name:  "valid template email",
			draft: Draft{Channel: ChannelEmail, Subject: "Update", Mode: ModeTemplate, TemplateID: "tpl-1"},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.draft.Validate())
		})
	}
}

func TestBuildRequest(t *testing.T) {
	t.Run("direct all", func(t *testing.T) {
		d := Draft{Channel: ChannelWhatsApp, Mode: ModeDirect, Message: "hi", Audience: SendAll}
		req := d.BuildRequest("ev-1")

		assert.Equal(t, "ev-1", req.EventID)
		assert.Equal(t, "all", req.SendTo)
		assert.Equal(t, "hi", req.Message)
		assert.Empty(t, req.TemplateID)
		assert.Nil(t, req.TemplateVariables)
		assert.Nil(t, req.FilterField)
		assert.Nil(t, req.FilterValue)
	})

	t.Run("template subset email", func(t *testing.T) {
		d := Draft{
			Channel:           ChannelEmail,
			Subject:           "Reminder",
			Mode:              ModeTemplate,
			Message:           "Hi {{name}}",
			TemplateID:        "tpl-1",
			TemplateVariables: map[string]string{"name": "Ada"},
			Audience:          SendSubset,
			FilterField:       "city",
			FilterValue:       "Pune",
		}
		req := d.BuildRequest("ev-1")

		assert.Equal(t, "Reminder", req.Subject)
		assert.Equal(t, "subset", req.SendTo)
		assert.Empty(t, req.Message, "template mode never carries the direct body")
		assert.Equal(t, "tpl-1", req.TemplateID)
		assert.Equal(t, map[string]string{"name": "Ada"}, req.TemplateVariables)
		require.NotNil(t, req.FilterField)
		require.NotNil(t, req.FilterValue)
		assert.Equal(t, "city", *req.FilterField)
		assert.Equal(t, "Pune", *req.FilterValue)
	})

	t.Run("whatsapp drops subject", func(t *testing.T) {
		d := Draft{Channel: ChannelWhatsApp, Mode: ModeDirect, Message: "hi", Subject: "ignored"}
		assert.Empty(t, d.BuildRequest("ev-1").Subject)
	})
}

func TestSessionBlockedSendNeverReachesSender(t *testing.T) {
	sender := &mockSender{}
	sess := NewSession("ev-1", ChannelWhatsApp)
	require.NoError(t, sess.SetAudience(SendSubset))
	require.NoError(t, sess.SetMessage("hi"))
	require.NoError(t, sess.SetFilterField("city"))

	res, err := sess.Send(context.Background(), sender)

	assert.Nil(t, res)
	assert.Equal(t, ErrFilterRequired, err)
	assert.Zero(t, sender.sendCalls, "validation failure must not issue a request")
	assert.Equal(t, StateIdle, sess.State())
}

func TestSessionSendSuccess(t *testing.T) {
	sender := &mockSender{result: &model.BulkSendResult{Total: 2, Sent: 2}}
	sess := NewSession("ev-1", ChannelEmail)
	require.NoError(t, sess.SetSubject("Update"))
	require.NoError(t, sess.SetMessage("hi"))

	res, err := sess.Send(context.Background(), sender)

	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 2, res.Sent)
	assert.Equal(t, ChannelEmail, sender.lastChannel)
	assert.Equal(t, "ev-1", sender.lastReq.EventID)
	assert.Equal(t, StateCompleted, sess.State())
	assert.Equal(t, res, sess.Result())

	// terminal: a second attempt on the same instance is rejected
	_, err = sess.Send(context.Background(), sender)
	assert.Equal(t, ErrCompleted, err)
	assert.Equal(t, 1, sender.sendCalls)
}

func TestSessionSendFailureReturnsToIdle(t *testing.T) {
	sender := &mockSender{sendErr: errors.New("upstream down")}
	sess := NewSession("ev-1", ChannelWhatsApp)
	require.NoError(t, sess.SetMessage("hi"))

	_, err := sess.Send(context.Background(), sender)
	require.Error(t, err)
	assert.Equal(t, StateIdle, sess.State())
	assert.Nil(t, sess.Result())

	// the draft survives for a retry
	sender.sendErr = nil
	sender.result = &model.BulkSendResult{Total: 1, Sent: 1}
	res, err := sess.Send(context.Background(), sender)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Sent)
}

func TestSelectTemplateReseedsVariables(t *testing.T) {
	sess := NewSession("ev-1", ChannelWhatsApp)
	require.NoError(t, sess.SelectTemplate(model.MessageTemplate{
		ID:           "tpl-1",
		TemplateText: "Hi {{name}}, code {{code}}",
		Variables:    []string{"name", "code"},
	}))
	require.NoError(t, sess.SetTemplateVariable("name", "Ada"))

	require.NoError(t, sess.SelectTemplate(model.MessageTemplate{
		ID:           "tpl-2",
		TemplateText: "Bye {{name}}",
		Variables:    []string{"name"},
	}))

	d := sess.Draft()
	assert.Equal(t, "tpl-2", d.TemplateID)
	assert.Equal(t, "Bye {{name}}", d.Message, "preview shows raw unresolved text")
	assert.Equal(t, map[string]string{"name": ""}, d.TemplateVariables, "values never carry over")
}

func TestSetFilterFieldClearsValueAndCache(t *testing.T) {
	sender := &mockSender{values: []string{"Pune", "Delhi"}}
	sess := NewSession("ev-1", ChannelWhatsApp)
	require.NoError(t, sess.SetFilterField("city"))
	require.NoError(t, sess.LoadFieldValues(context.Background(), sender))
	require.NoError(t, sess.SetFilterValue("Pune"))
	require.Equal(t, []string{"Pune", "Delhi"}, sess.FieldValues())

	require.NoError(t, sess.SetFilterField("company"))

	d := sess.Draft()
	assert.Equal(t, "company", d.FilterField)
	assert.Empty(t, d.FilterValue)
	assert.Nil(t, sess.FieldValues())
}

func TestLoadFieldValuesDropsStaleList(t *testing.T) {
	sender := &mockSender{values: []string{"Pune"}}
	sess := NewSession("ev-1", ChannelWhatsApp)
	require.NoError(t, sess.SetFilterField("city"))

	// the fetch resolves after the operator already switched fields
	slow := &slowSender{inner: sender, after: func() {
		require.NoError(t, sess.SetFilterField("company"))
	}}
	require.NoError(t, sess.LoadFieldValues(context.Background(), slow))

	assert.Nil(t, sess.FieldValues(), "stale list for the old field is dropped")
}

// slowSender runs a callback between the upstream response and its delivery,
// simulating operator activity during an in-flight fetch.
type slowSender struct {
	inner Sender
	after func()
}

func (s *slowSender) SendBulk(ctx context.Context, channel Channel, req model.BulkSendRequest) (*model.BulkSendResult, error) {
	return s.inner.SendBulk(ctx, channel, req)
}

func (s *slowSender) FieldValues(ctx context.Context, channel Channel, eventID, fieldName string) ([]string, error) {
	values, err := s.inner.FieldValues(ctx, channel, eventID, fieldName)
	if s.after != nil {
		s.after()
	}
	return values, err
}

// closingSender dismisses the modal between the upstream response and its
// delivery, simulating an operator closing during an in-flight send.
type closingSender struct {
	inner   Sender
	dismiss func()
}

func (s *closingSender) SendBulk(ctx context.Context, channel Channel, req model.BulkSendRequest) (*model.BulkSendResult, error) {
	res, err := s.inner.SendBulk(ctx, channel, req)
	s.dismiss()
	return res, err
}

func (s *closingSender) FieldValues(ctx context.Context, channel Channel, eventID, fieldName string) ([]string, error) {
	return s.inner.FieldValues(ctx, channel, eventID, fieldName)
}

func TestCloseMidFlightDiscardsResult(t *testing.T) {
	inner := &mockSender{result: &model.BulkSendResult{Total: 1, Sent: 1}}
	sess := NewSession("ev-1", ChannelWhatsApp)
	require.NoError(t, sess.SetMessage("hi"))

	sender := &closingSender{inner: inner, dismiss: sess.Close}
	res, err := sess.Send(context.Background(), sender)

	assert.Nil(t, res)
	assert.Equal(t, ErrClosed, err)
	assert.Nil(t, sess.Result(), "late outcome never lands on the closed session")
	assert.Equal(t, StateIdle, sess.State())

	// the reopened modal starts over and can send again
	require.NoError(t, sess.SetMessage("second try"))
	res, err = sess.Send(context.Background(), inner)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Sent)
	assert.Equal(t, StateCompleted, sess.State())
}

func TestCloseResetsToDefaults(t *testing.T) {
	sender := &mockSender{values: []string{"Pune"}, result: &model.BulkSendResult{Total: 1, Sent: 1}}
	sess := NewSession("ev-1", ChannelEmail)
	require.NoError(t, sess.SetAudience(SendSubset))
	require.NoError(t, sess.SetMode(ModeTemplate))
	require.NoError(t, sess.SetSubject("Update"))
	require.NoError(t, sess.SelectTemplate(model.MessageTemplate{ID: "tpl-1", TemplateText: "Hi {{name}}", Variables: []string{"name"}}))
	require.NoError(t, sess.SetFilterField("city"))
	require.NoError(t, sess.LoadFieldValues(context.Background(), sender))

	sess.Close()

	d := sess.Draft()
	assert.Equal(t, SendAll, d.Audience)
	assert.Equal(t, ModeDirect, d.Mode)
	assert.Empty(t, d.Subject)
	assert.Empty(t, d.Message)
	assert.Empty(t, d.TemplateID)
	assert.Empty(t, d.FilterField)
	assert.Empty(t, d.FilterValue)
	assert.Equal(t, ChannelEmail, d.Channel, "channel is the modal's identity, not operator input")
	assert.Nil(t, sess.FieldValues())
	assert.Nil(t, sess.Result())
	assert.Equal(t, StateIdle, sess.State())
}

func TestSummarize(t *testing.T) {
	res := &model.BulkSendResult{
		Total:  5,
		Sent:   3,
		Failed: 2,
		Results: []model.RecipientResult{
			{Email: "a@x.io", Success: true},
			{Email: "b@x.io", Success: false, Error: "bounce"},
			{Email: "c@x.io", Success: true},
			{Email: "d@x.io", Success: false, Error: "bounce"},
			{Email: "e@x.io", Success: true},
		},
	}

	require.Len(t, res.Results, res.Total)

	notices := Summarize(res, ChannelEmail)
	require.Len(t, notices, 2, "partial failure raises both notices")
	assert.Equal(t, Notice{Level: "success", Message: "Successfully sent 3 emails!"}, notices[0])
	assert.Equal(t, Notice{Level: "error", Message: "Failed to send 2 emails"}, notices[1])

	failed := FailedRecipients(res)
	require.Len(t, failed, 2)
	assert.Equal(t, "b@x.io", failed[0].Email)
	assert.Equal(t, "d@x.io", failed[1].Email)

	whatsapp := Summarize(&model.BulkSendResult{Sent: 4}, ChannelWhatsApp)
	require.Len(t, whatsapp, 1)
	assert.Equal(t, "Successfully sent 4 messages!", whatsapp[0].Message)

	assert.Nil(t, Summarize(nil, ChannelEmail))
	assert.Empty(t, Summarize(&model.BulkSendResult{}, ChannelEmail))
}

func TestParseEnums(t *testing.T) {
	ch, err := ParseChannel("email")
	require.NoError(t, err)
	assert.Equal(t, ChannelEmail, ch)
	_, err = ParseChannel("sms")
	assert.Error(t, err)

	m, err := ParseMode("template")
	require.NoError(t, err)
	assert.Equal(t, ModeTemplate, m)
	_, err = ParseMode("bulk")
	assert.Error(t, err)

	a, err := ParseAudience("subset")
	require.NoError(t, err)
	assert.Equal(t, SendSubset, a)
	_, err = ParseAudience("some")
	assert.Error(t, err)
}
