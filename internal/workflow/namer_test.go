package workflow_test

import (
	"math/rand/v2"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/psigiovana/contratos-assinados/internal/entity"
	"github.com/psigiovana/contratos-assinados/internal/workflow"
)

var artifactNameRE = regexp.MustCompile(`^(\d{5})_([^\s]+)_Contrato\.pdf$`)

type fixedSource int

func (f fixedSource) IntN(int) int { return int(f) }

func TestNamer_Next(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		clientName  string
		wantSegment string
	}{
		{name: "two words", clientName: "Ana Paula", wantSegment: "Ana_Paula"},
		{name: "whitespace runs", clientName: "Ana \t  Paula   Souza", wantSegment: "Ana_Paula_Souza"},
		{name: "surrounding whitespace", clientName: "  Maria Silva ", wantSegment: "Maria_Silva"},
		{name: "path separators", clientName: "Ana/Paula", wantSegment: "Ana-Paula"},
		{name: "blank name", clientName: "   ", wantSegment: "Paciente"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			namer := workflow.NewNamer(rand.New(rand.NewPCG(1, 2))) //nolint:gosec

			got := namer.Next(entity.ClientRecord{Name: tt.clientName})

			m := artifactNameRE.FindStringSubmatch(got)
			require.NotNil(t, m, got)
			require.Equal(t, tt.wantSegment, m[2])

			code, err := strconv.Atoi(m[1])
			require.NoError(t, err)
			require.GreaterOrEqual(t, code, 10000)
			require.LessOrEqual(t, code, 99999)
		})
	}
}

func TestNamer_CodeBounds(t *testing.T) {
	t.Parallel()

	rec := entity.ClientRecord{Name: "Ana Paula"}

	require.Equal(t, "10000_Ana_Paula_Contrato.pdf", workflow.NewNamer(fixedSource(0)).Next(rec))
	require.Equal(t, "99999_Ana_Paula_Contrato.pdf", workflow.NewNamer(fixedSource(89999)).Next(rec))
}

func TestNamer_DeterministicWithSeed(t *testing.T) {
	t.Parallel()

	rec := entity.ClientRecord{Name: "Ana Paula"}

	a := workflow.NewNamer(rand.New(rand.NewPCG(7, 7))) //nolint:gosec
	b := workflow.NewNamer(rand.New(rand.NewPCG(7, 7))) //nolint:gosec

	for range 10 {
		require.Equal(t, a.Next(rec), b.Next(rec))
	}

	require.Regexp(t, artifactNameRE, workflow.NewNamer(nil).Next(rec))
}
