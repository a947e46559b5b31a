package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/psigiovana/contratos-assinados/internal/entity"
)

func TestClientRecord_With(t *testing.T) {
	t.Parallel()

	var rec entity.ClientRecord

	rec = rec.With(entity.FieldName, "Maria Silva")
	rec = rec.With(entity.FieldCPF, "12345678901")
	rec = rec.With(entity.FieldPhone, "44997112467")
	rec = rec.With(entity.FieldRG, "123456")

	require.Equal(t, entity.ClientRecord{
		Name:  "Maria Silva",
		CPF:   "123.456.789-01",
		RG:    "123456",
		Phone: "(44) 99711-2467",
	}, rec)
	require.Equal(t, "123.456.789-01", rec.Get(entity.FieldCPF))
	require.False(t, rec.IsEmpty())
	require.True(t, entity.ClientRecord{}.IsEmpty())
}

func TestFirstName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Ana", entity.FirstName("  Ana Paula "))
	require.Equal(t, "", entity.FirstName("   "))
}
