package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/psigiovana/contratos-assinados/internal/entity"
	"github.com/psigiovana/contratos-assinados/internal/workflow"
	"github.com/psigiovana/contratos-assinados/pkg/logger"
)

// clearValue typed at a prompt empties the field.
const clearValue = "-"

var errQuit = errors.New("quit")

type Previewer interface {
	Text(rec entity.ClientRecord, date time.Time) string
}

var formFields = []struct {
	field entity.Field
	label string
}{
	{field: entity.FieldName, label: "Nome completo"},
	{field: entity.FieldSocialName, label: "Nome social (opcional)"},
	{field: entity.FieldCPF, label: "CPF"},
	{field: entity.FieldRG, label: "RG"},
	{field: entity.FieldPhone, label: "Telefone/WhatsApp"},
}

// App runs signing sessions over a line-oriented terminal.
type App struct {
	in      *bufio.Reader
	out     io.Writer
	c       *workflow.Controller
	preview Previewer
	clock   func() time.Time
}

func New(in io.Reader, out io.Writer, c *workflow.Controller, preview Previewer, clock func() time.Time) *App {
	if clock == nil {
		clock = time.Now
	}

	return &App{
		in:      bufio.NewReader(in),
		out:     out,
		c:       c,
		preview: preview,
		clock:   clock,
	}
}

// Run signs contracts one after another until the user quits or input ends.
func (a *App) Run(ctx context.Context) error {
	for {
		ctx := logger.SetSessionID(ctx, uuid.Must(uuid.NewV4()).String())

		err := a.session(ctx)
		if errors.Is(err, errQuit) {
			a.println("Até logo!")
			return nil
		}

		if err != nil {
			return err
		}
	}
}

func (a *App) session(ctx context.Context) error {
	slog.DebugContext(ctx, "session started")

	for {
		var err error

		switch a.c.Stage() {
		case workflow.StageEntry:
			err = a.entry()
		case workflow.StageReview:
			err = a.review(ctx)
		case workflow.StageConfirmed:
			return a.confirmed(ctx)
		}

		if err != nil {
			return err
		}
	}
}

func (a *App) entry() error {
	a.println("\n== Dados do(a) paciente ==")
	a.println(fmt.Sprintf("Enter mantém o valor atual, %q limpa o campo.", clearValue))

	for _, f := range formFields {
		prompt := f.label
		if current := a.c.Record().Get(f.field); current != "" {
			prompt += " [" + current + "]"
		}

		line, err := a.ask(prompt + ": ")
		if err != nil {
			return err
		}

		if line == "" {
			continue
		}

		if line == clearValue {
			line = ""
		}

		err = a.c.SetField(f.field, line)
		if err != nil {
			return err
		}
	}

	err := a.c.Review()

	var validationErr *entity.ValidationError
	if errors.As(err, &validationErr) {
		a.println("Preencha corretamente: " + labels(validationErr.Fields))
		return nil
	}

	return err
}

func (a *App) review(ctx context.Context) error {
	a.println("\n== Revise o contrato ==\n")
	a.println(a.preview.Text(a.c.Record(), a.clock()))

	for {
		choice, err := a.ask("[a] assinar  [e] editar  [s] sair: ")
		if err != nil {
			return err
		}

		switch strings.ToLower(choice) {
		case "a":
			a.println("Gerando o contrato...")

			err = a.c.Sign(ctx)
			if errors.Is(err, entity.ErrRender) {
				a.println("Não foi possível gerar o contrato: " + err.Error())
				continue
			}

			return err
		case "e":
			return a.c.Back()
		case "s":
			return errQuit
		default:
			a.println("Opção inválida.")
		}
	}
}

func (a *App) confirmed(ctx context.Context) error {
	conf, err := a.c.Confirmation()
	if err != nil {
		return err
	}

	a.println("\n== Contrato assinado ==")
	a.println("Arquivo: " + conf.FileName)

	switch conf.Outcome {
	case entity.OutcomeSaved:
		a.println("Salvo no repositório em " + conf.RemotePath)
	case entity.OutcomeFailed:
		a.println("Falha ao enviar ao repositório. A cópia local continua disponível.")
	case entity.OutcomeSkipped:
		a.println("Envio ao repositório desativado.")
	}

	if conf.LocalErr != nil {
		a.println("Falha ao salvar a cópia local: " + conf.LocalErr.Error())
	} else {
		a.println("Cópia local: " + conf.LocalPath)
	}

	a.println("Avise pelo WhatsApp: " + conf.DeepLink)

	for {
		choice, err := a.ask("[b] baixar novamente  [n] novo contrato  [s] sair: ")
		if err != nil {
			return err
		}

		switch strings.ToLower(choice) {
		case "b":
			local, err := a.c.SaveAgain(ctx)
			if err != nil {
				a.println("Falha ao salvar a cópia local: " + err.Error())
				continue
			}

			a.println("Cópia local: " + local)
		case "n":
			return a.c.Reset()
		case "s":
			return errQuit
		default:
			a.println("Opção inválida.")
		}
	}
}

// ask prints prompt and reads one trimmed line. End of input quits.
func (a *App) ask(prompt string) (string, error) {
	fmt.Fprint(a.out, prompt)

	line, err := a.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}

	if errors.Is(err, io.EOF) && line == "" {
		a.println("")
		return "", errQuit
	}

	return strings.TrimSpace(line), nil
}

func (a *App) println(s string) {
	fmt.Fprintln(a.out, s)
}

func labels(fields []entity.Field) string {
	names := make([]string, 0, len(fields))

	for _, f := range fields {
		for _, ff := range formFields {
			if ff.field == f {
				names = append(names, ff.label)
			}
		}
	}

	return strings.Join(names, ", ")
}
