package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/psigiovana/contratos-assinados/internal/entity"
	"github.com/psigiovana/contratos-assinados/internal/service"
)

func validRecord() entity.ClientRecord {
	return entity.ClientRecord{
		Name:  "Maria Silva",
		CPF:   entity.FormatCPF("12345678901"),
		RG:    "123456",
		Phone: entity.FormatPhone("44997112467"),
	}
}

func TestIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		mutate     func(r *entity.ClientRecord)
		want       bool
		wantFields []entity.Field
	}{
		{
			name:   "valid record",
			mutate: func(*entity.ClientRecord) {},
			want:   true,
		},
		{
			name:       "empty name",
			mutate:     func(r *entity.ClientRecord) { r.Name = "" },
			wantFields: []entity.Field{entity.FieldName},
		},
		{
			name:       "whitespace name",
			mutate:     func(r *entity.ClientRecord) { r.Name = "   " },
			wantFields: []entity.Field{entity.FieldName},
		},
		{
			name:       "cpf with 10 digits",
			mutate:     func(r *entity.ClientRecord) { r.CPF = entity.FormatCPF("1234567890") },
			wantFields: []entity.Field{entity.FieldCPF},
		},
		{
			name:       "empty rg",
			mutate:     func(r *entity.ClientRecord) { r.RG = " " },
			wantFields: []entity.Field{entity.FieldRG},
		},
		{
			name:       "phone with 9 digits",
			mutate:     func(r *entity.ClientRecord) { r.Phone = entity.FormatPhone("449971124") },
			wantFields: []entity.Field{entity.FieldPhone},
		},
		{
			name:   "phone with 10 digits",
			mutate: func(r *entity.ClientRecord) { r.Phone = entity.FormatPhone("4433224455") },
			want:   true,
		},
		{
			name:   "social name is optional",
			mutate: func(r *entity.ClientRecord) { r.SocialName = "" },
			want:   true,
		},
		{
			name: "every field reported",
			mutate: func(r *entity.ClientRecord) {
				*r = entity.ClientRecord{}
			},
			wantFields: []entity.Field{entity.FieldName, entity.FieldCPF, entity.FieldRG, entity.FieldPhone},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := validRecord()
			tt.mutate(&rec)

			require.Equal(t, tt.want, service.IsValid(rec))

			err := service.ValidateClientRecord(rec)
			if tt.want {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, entity.ErrValidation)

			var vErr *entity.ValidationError

			require.ErrorAs(t, err, &vErr)
			require.Equal(t, tt.wantFields, vErr.Fields)
		})
	}
}
