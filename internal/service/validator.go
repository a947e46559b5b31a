package service

import (
	"strings"

	"github.com/psigiovana/contratos-assinados/internal/entity"
)

const (
	minCPFDigits   = 11
	minPhoneDigits = 10
)

// IsValid reports whether every required field of the record is filled in.
func IsValid(rec entity.ClientRecord) bool {
	return len(invalidFields(rec)) == 0
}

func ValidateClientRecord(rec entity.ClientRecord) error {
	fields := invalidFields(rec)
	if len(fields) > 0 {
		return &entity.ValidationError{Fields: fields}
	}

	return nil
}

func invalidFields(rec entity.ClientRecord) []entity.Field {
	var fields []entity.Field

	if strings.TrimSpace(rec.Name) == "" {
		fields = append(fields, entity.FieldName)
	}

	if len(entity.Digits(rec.CPF)) < minCPFDigits {
		fields = append(fields, entity.FieldCPF)
	}

	if strings.TrimSpace(rec.RG) == "" {
		fields = append(fields, entity.FieldRG)
	}

	if len(entity.Digits(rec.Phone)) < minPhoneDigits {
		fields = append(fields, entity.FieldPhone)
	}

	return fields
}
