package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/psigiovana/contratos-assinados/internal/entity"
)

// Template holds the values interpolated into the fixed contract text.
type Template struct {
	ProfessionalName  string
	Registration      string
	City              string
	State             string
	SocialFee         decimal.Decimal
	StandardFee       decimal.Decimal
	PaymentDay        int
	SessionMinutes    int
	CancelNoticeHours int
}

type Clause struct {
	Title      string
	Paragraphs []string
}

const Title = "CONTRATO DE PSICOTERAPIA"

func (t Template) Intro() string {
	return fmt.Sprintf(
		"Eu, %s, Psicóloga (CRP %s), e você, paciente abaixo identificado(a), firmamos este acordo "+
			"com o objetivo de estabelecer clareza e segurança em nosso processo terapêutico.",
		t.ProfessionalName, t.Registration,
	)
}

func (t Template) Clauses() []Clause {
	return []Clause{
		{
			Title: "1. Sobre o atendimento:",
			Paragraphs: []string{fmt.Sprintf(
				"Nossas sessões de psicoterapia terão duração de aproximadamente %d minutos e acontecerão "+
					"semanalmente ou quinzenalmente em formato presencial em %s-%s ou on-line, conforme combinado.",
				t.SessionMinutes, t.City, t.State,
			)},
		},
		{
			Title: "2. Valores e forma de pagamento:",
			Paragraphs: []string{fmt.Sprintf(
				"Cada sessão tem o valor de %s (social para estudantes e baixa renda) e %s valor convencional. "+
					"O pagamento poderá ser realizado por: (PIX, Transferência ou Dinheiro). Sendo realizado "+
					"até o dia %d de cada mês, ou no dia das sessões.",
				FormatBRL(t.SocialFee), FormatBRL(t.StandardFee), t.PaymentDay,
			)},
		},
		{
			Title: "3. Cancelamentos e/ou faltas:",
			Paragraphs: []string{fmt.Sprintf(
				"Para que nosso processo tenha continuidade e respeito ao tempo de ambos: Se precisar cancelar, "+
					"avise com no mínimo %d horas de antecedência. Cancelamentos fora desse prazo ou faltas sem "+
					"aviso terão a cobrança integral da sessão.",
				t.CancelNoticeHours,
			)},
		},
		{
			Title: "4. Sigilo e ética:",
			Paragraphs: []string{
				"Tudo o que você compartilhar nas sessões será mantido em sigilo absoluto, conforme previsto no " +
					"Código de Ética Profissional do Psicólogo. Somente em situações previstas por lei (ex.: risco " +
					"à sua vida ou à de terceiros) o sigilo poderá ser quebrado.",
				"Em relação a psicoterapia realizada online, é necessário que o ambiente seja tranquilo, silencioso " +
					"e reservado. Use fones de ouvido para mais privacidade e concentração. Além disso, verifique se " +
					"a internet está funcionando bem e não esqueça de manter o celular ou computador carregado ou " +
					"conectado na energia.",
			},
		},
		{
			Title: "5. Encerramento do processo:",
			Paragraphs: []string{
				"A psicoterapia é um processo construído em conjunto. Tanto você quanto eu podemos decidir pelo " +
					"encerramento, sempre conversando abertamente sobre o momento mais adequado.",
			},
		},
		{
			Title: "6. Acordo de confiança:",
			Paragraphs: []string{
				"Este contrato não é apenas um documento, mas um acordo de confiança e respeito mútuo. Estamos " +
					"aqui para construir um espaço seguro, acolhedor e transformador.",
			},
		},
		{
			Title: "7. Aceite e assinatura digital:",
			Paragraphs: []string{
				"Ao assinar digitalmente este contrato, você confirma que leu e concorda com todos os termos " +
					"acima. Uma cópia em PDF fica com você e outra é arquivada pela psicóloga.",
			},
		},
	}
}

// ClientFields lists the labeled client data lines; the social name line is
// present only when filled in.
func ClientFields(rec entity.ClientRecord) [][2]string {
	fields := [][2]string{{"Nome: ", rec.Name}}

	if strings.TrimSpace(rec.SocialName) != "" {
		fields = append(fields, [2]string{"Nome social: ", rec.SocialName})
	}

	return append(fields,
		[2]string{"CPF: ", rec.CPF},
		[2]string{"RG: ", rec.RG},
		[2]string{"Telefone/WhatsApp: ", rec.Phone},
	)
}

func (t Template) PlaceAndDate(date string) string {
	return fmt.Sprintf("Local e data: %s, %s", t.City, date)
}

func (t Template) ProfessionalSignature() string {
	return fmt.Sprintf("%s – CRP-%s", t.ProfessionalName, t.Registration)
}

// FormatBRL formats an amount as Brazilian reais, e.g. R$ 1.234,50.
func FormatBRL(amount decimal.Decimal) string {
	s := amount.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder

	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}

		b.WriteRune(r)
	}

	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}

	return fmt.Sprintf("%sR$ %s,%s", sign, b.String(), frac)
}

// FormatDate renders a date in day/month/year order.
func FormatDate(date time.Time) string {
	return date.Format("02/01/2006")
}

// Text is the plain text of the contract for rec, as shown before signing.
func (t Template) Text(rec entity.ClientRecord, date time.Time) string {
	var b strings.Builder

	b.WriteString(Title + "\n\n")
	b.WriteString(t.Intro() + "\n\n")

	for _, f := range ClientFields(rec) {
		b.WriteString(f[0] + f[1] + "\n")
	}

	for _, c := range t.Clauses() {
		b.WriteString("\n" + c.Title + "\n")

		for _, p := range c.Paragraphs {
			b.WriteString(p + "\n")
		}
	}

	b.WriteString("\n" + t.PlaceAndDate(FormatDate(date)) + "\n")

	return b.String()
}
