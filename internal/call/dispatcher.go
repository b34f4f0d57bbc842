package call

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/google/uuid"

	"github.com/jayph/distresscall/internal/world"
)

const (
	DefaultMessageTemplate = "DISTRESS CALL - {{ .Sender }}"

	DefaultMarkerColor = "#FB33FF"
)

// Publisher delivers raw payloads to a subject.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Notification is the payload delivered to each recipient: a chat message
// plus a map marker at the sender's position.
type Notification struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
	Marker  Marker `json:"marker"`
}

type Marker struct {
	Id       string         `json:"id"`
	Label    string         `json:"label"`
	Position world.Position `json:"position"`
	Color    string         `json:"color"`
}

// messageData is what the message template renders against.
type messageData struct {
	Sender string
	Group  string
}

// Dispatcher delivers a distress notification to each resolved recipient.
// Delivery is best-effort and independent per recipient: one failed send is
// logged and never aborts the rest or bubbles up to the caller.
type Dispatcher struct {
	pub   Publisher
	tmpl  *template.Template
	color string
}

func NewDispatcher(pub Publisher, messageTemplate, markerColor string) (*Dispatcher, error) {
	if messageTemplate == "" {
		messageTemplate = DefaultMessageTemplate
	}
	if markerColor == "" {
		markerColor = DefaultMarkerColor
	}

	tmpl, err := template.New("message").Funcs(sprig.TxtFuncMap()).Parse(messageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing message template: %w", err)
	}

	return &Dispatcher{
		pub:   pub,
		tmpl:  tmpl,
		color: markerColor,
	}, nil
}

// Dispatch sends the notification to every recipient. One marker is shared
// by all recipients of a single call.
func (d *Dispatcher) Dispatch(ctx context.Context, sender, group string, pos world.Position, recipients []Recipient) {
	n := &Notification{
		Sender:  sender,
		Message: d.renderMessage(ctx, sender, group),
		Marker: Marker{
			Id:       uuid.New().String(),
			Label:    fmt.Sprintf("%s Distress Call", sender),
			Position: pos,
			Color:    d.color,
		},
	}

	data, err := json.Marshal(n)
	if err != nil {
		slog.ErrorContext(ctx, "marshalling distress notification", "error", err)
		return
	}

	for _, rcpt := range recipients {
		if err := d.pub.Publish(PlayerSubject(rcpt.Id), data); err != nil {
			slog.WarnContext(ctx, "delivering distress notification", "recipient", rcpt.Id, "error", err)
		}
	}
}

func (d *Dispatcher) renderMessage(ctx context.Context, sender, group string) string {
	var buf bytes.Buffer
	err := d.tmpl.Execute(&buf, &messageData{Sender: sender, Group: group})
	if err != nil {
		slog.ErrorContext(ctx, "executing message template", "error", err)
		return "DISTRESS CALL - " + sender
	}
	return buf.String()
}

// PlayerSubject is the per-player delivery subject.
func PlayerSubject(charId string) string {
	return fmt.Sprintf("player-%s", charId)
}
