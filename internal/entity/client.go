package entity

import "strings"

type Field string

const (
	FieldName       Field = "name"
	FieldSocialName Field = "socialName"
	FieldCPF        Field = "cpf"
	FieldRG         Field = "rg"
	FieldPhone      Field = "phone"
)

func (f Field) IsValid() bool {
	switch f {
	case FieldName, FieldSocialName, FieldCPF, FieldRG, FieldPhone:
		return true
	default:
		return false
	}
}

// ClientRecord is the personal data collected for a single contract.
// CPF and Phone are stored already masked.
type ClientRecord struct {
	Name       string `json:"name"`
	SocialName string `json:"socialName"`
	CPF        string `json:"cpf"`
	RG         string `json:"rg"`
	Phone      string `json:"phone"`
}

// With returns a copy of the record with one field replaced. CPF and phone
// values pass through their display masks before being stored.
func (c ClientRecord) With(field Field, value string) ClientRecord {
	switch field {
	case FieldName:
		c.Name = value
	case FieldSocialName:
		c.SocialName = value
	case FieldCPF:
		c.CPF = FormatCPF(value)
	case FieldRG:
		c.RG = value
	case FieldPhone:
		c.Phone = FormatPhone(value)
	}

	return c
}

func (c ClientRecord) Get(field Field) string {
	switch field {
	case FieldName:
		return c.Name
	case FieldSocialName:
		return c.SocialName
	case FieldCPF:
		return c.CPF
	case FieldRG:
		return c.RG
	case FieldPhone:
		return c.Phone
	default:
		return ""
	}
}

func (c ClientRecord) IsEmpty() bool {
	return c == ClientRecord{}
}

// FirstName is the first word of the full name.
func FirstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}
