package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/psigiovana/contratos-assinados/internal/entity"
)

const baseURL = "https://wa.me/"

// DeepLink builds a link that opens a chat with recipient prefilled with
// message. Opening it is left to the caller's environment.
func DeepLink(recipient, message string) string {
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")

	return baseURL + entity.Digits(recipient) + "?text=" + text
}

// Dispatcher addresses every signed contract to the professional's number.
type Dispatcher struct {
	recipient        string
	professionalName string
}

func New(recipient, professionalName string) *Dispatcher {
	return &Dispatcher{
		recipient:        recipient,
		professionalName: professionalName,
	}
}

func (d *Dispatcher) Message(rec entity.ClientRecord) string {
	return fmt.Sprintf("Olá %s, segue o contrato assinado por %s", entity.FirstName(d.professionalName), rec.Name)
}

func (d *Dispatcher) Link(rec entity.ClientRecord) string {
	return DeepLink(d.recipient, d.Message(rec))
}
