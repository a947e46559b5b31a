package workflow

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/psigiovana/contratos-assinados/internal/entity"
)

const (
	codeMin      = 10000
	codeSpan     = 90000
	suffix       = "_Contrato.pdf"
	placeholder  = "Paciente"
	pathReplacer = "-"
)

// CodeSource yields uniform integers in [0, n). *rand.Rand satisfies it.
type CodeSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n) //nolint:gosec
}

// Namer derives artifact file names from a random 5-digit code and the
// client's name. Codes are not checked for collisions.
type Namer struct {
	src CodeSource
}

func NewNamer(src CodeSource) *Namer {
	if src == nil {
		src = globalSource{}
	}

	return &Namer{src: src}
}

func (n *Namer) Next(rec entity.ClientRecord) string {
	code := codeMin + n.src.IntN(codeSpan)

	return strconv.Itoa(code) + "_" + nameSegment(rec.Name) + suffix
}

func nameSegment(name string) string {
	name = strings.NewReplacer("/", pathReplacer, "\\", pathReplacer).Replace(name)

	segment := strings.Join(strings.Fields(name), "_")
	if segment == "" {
		return placeholder
	}

	return segment
}
