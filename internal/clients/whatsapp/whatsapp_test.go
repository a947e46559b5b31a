package whatsapp_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/psigiovana/contratos-assinados/internal/clients/whatsapp"
	"github.com/psigiovana/contratos-assinados/internal/entity"
)

func TestDeepLink(t *testing.T) {
	t.Parallel()

	link := whatsapp.DeepLink("+55 (44) 99711-2467", "Olá & até já?")
	require.Equal(t, "https://wa.me/5544997112467?text=Ol%C3%A1%20%26%20at%C3%A9%20j%C3%A1%3F", link)

	u, err := url.Parse(link)
	require.NoError(t, err)
	require.Equal(t, "Olá & até já?", u.Query().Get("text"))
}

func TestDispatcher_Link(t *testing.T) {
	t.Parallel()

	d := whatsapp.New("5544997112467", "Giovana de Morais")

	link := d.Link(entity.ClientRecord{Name: "Ana Paula"})

	u, err := url.Parse(link)
	require.NoError(t, err)
	require.Equal(t, "wa.me", u.Host)
	require.Equal(t, "/5544997112467", u.Path)
	require.Equal(t, "Olá Giovana, segue o contrato assinado por Ana Paula", u.Query().Get("text"))
}
