package gomail

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/psigiovana/contratos-assinados/pkg/config"
)

func TestClient_Message(t *testing.T) {
	t.Parallel()

	c := New(config.Mailer{
		From:     "contratos@psigiovana.com.br",
		FromName: "Contratos",
		Host:     "smtp.example.com",
		Port:     587,
	})

	msg := c.message("Contrato assinado", "Olá, novo contrato.", []string{"giovana@psigiovana.com.br"})

	var buf bytes.Buffer

	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)

	raw := buf.String()
	require.Contains(t, raw, "To: giovana@psigiovana.com.br")
	require.Contains(t, raw, "From: \"Contratos\" <contratos@psigiovana.com.br>")
	require.Contains(t, raw, "Content-Type: text/plain; charset=UTF-8")

	body := raw[strings.Index(raw, "\r\n\r\n")+4:]
	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(strings.TrimSpace(body), "\r\n", ""))
	require.NoError(t, err)
	require.Equal(t, "Olá, novo contrato.", string(decoded))
}
