package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/psigiovana/contratos-assinados/pkg/broker"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=event_handler.go -destination=../../mocks/events.go -package=mocks -typed

type Mailer interface {
	SendMessage(subject, message string, recipients []string) error
}

type EventHandler struct {
	mailer     Mailer
	recipients []string
	location   *time.Location
}

func NewEventHandler(mailer Mailer, recipients []string, location *time.Location) *EventHandler {
	if location == nil {
		location = time.UTC
	}

	return &EventHandler{
		mailer:     mailer,
		recipients: recipients,
		location:   location,
	}
}

func (h *EventHandler) OnContractUploaded(ctx context.Context, msg kafka.Message) error {
	var event broker.ContractUploadedEvent

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	if len(h.recipients) == 0 {
		slog.WarnContext(ctx, "no recipients for contract notification", "path", event.Path)
		return nil
	}

	subject, body := ContractUploadedMessage(event, h.location)

	err = h.mailer.SendMessage(subject, body, h.recipients)
	if err != nil {
		return fmt.Errorf("send contract notification: %w", err)
	}

	return nil
}

// ContractUploadedMessage builds the e-mail subject and body for event.
func ContractUploadedMessage(event broker.ContractUploadedEvent, location *time.Location) (string, string) {
	name := path.Base(event.Path)

	subject := "Novo contrato assinado: " + name
	if !event.Created {
		subject = "Contrato atualizado: " + name
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Arquivo: %s\n", event.Path)
	fmt.Fprintf(&b, "Tamanho: %d bytes\n", event.Size)
	fmt.Fprintf(&b, "Recebido em: %s\n", event.CreatedAt.In(location).Format("02/01/2006 15:04"))

	if event.HTMLURL != "" {
		fmt.Fprintf(&b, "Link: %s\n", event.HTMLURL)
	}

	return subject, b.String()
}
