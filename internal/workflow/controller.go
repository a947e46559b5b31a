package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/psigiovana/contratos-assinados/internal/entity"
	"github.com/psigiovana/contratos-assinados/internal/service"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=controller.go -destination=../mocks/workflow.go -package=mocks -typed

type Renderer interface {
	Render(ctx context.Context, rec entity.ClientRecord, date time.Time) ([]byte, error)
}

// Store persists the artifact remotely. Failures are reported as an outcome.
type Store interface {
	Store(ctx context.Context, path string, content []byte) entity.PersistenceOutcome
}

// LocalSaver hands the rendered bytes to the signer's environment and returns
// where they were written.
type LocalSaver interface {
	Save(ctx context.Context, name string, content []byte) (string, error)
}

type Linker interface {
	Link(rec entity.ClientRecord) string
}

type Stage string

const (
	StageEntry     Stage = "entry"
	StageReview    Stage = "review"
	StageConfirmed Stage = "confirmed"
)

// Confirmation is what the confirmed stage displays.
type Confirmation struct {
	FileName   string
	RemotePath string
	Outcome    entity.PersistenceOutcome
	LocalPath  string
	LocalErr   error
	DeepLink   string
}

type Options struct {
	RemoteDir string
	Clock     func() time.Time
}

// Controller drives one signing session at a time. It is not safe for
// concurrent use.
type Controller struct {
	renderer Renderer
	store    Store
	saver    LocalSaver
	linker   Linker
	namer    *Namer
	opts     Options

	stage    Stage
	record   entity.ClientRecord
	artifact *entity.Artifact
	outcome  entity.PersistenceOutcome
	local    string
	localErr error
	link     string
}

// New builds a controller. store may be nil, in which case persistence is
// skipped.
func New(renderer Renderer, store Store, saver LocalSaver, linker Linker, namer *Namer, opts Options) *Controller {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	return &Controller{
		renderer: renderer,
		store:    store,
		saver:    saver,
		linker:   linker,
		namer:    namer,
		opts:     opts,
		stage:    StageEntry,
	}
}

func (c *Controller) Stage() Stage {
	return c.stage
}

func (c *Controller) Record() entity.ClientRecord {
	return c.record
}

// SetField updates one field of the record; CPF and phone are masked.
func (c *Controller) SetField(field entity.Field, value string) error {
	if c.stage != StageEntry {
		return entity.ErrFrozen
	}

	if !field.IsValid() {
		return fmt.Errorf("%w: unknown field %q", entity.ErrIncorrectRequestBody, field)
	}

	c.record = c.record.With(field, value)

	return nil
}

// Review moves from data entry to review when the record is valid.
func (c *Controller) Review() error {
	if c.stage != StageEntry {
		return fmt.Errorf("%w: review from %s", entity.ErrInvalidTransition, c.stage)
	}

	err := service.ValidateClientRecord(c.record)
	if err != nil {
		return err
	}

	c.stage = StageReview

	return nil
}

// Back returns from review to data entry so the record can be edited.
func (c *Controller) Back() error {
	if c.stage != StageReview {
		return fmt.Errorf("%w: back from %s", entity.ErrInvalidTransition, c.stage)
	}

	c.stage = StageEntry

	return nil
}

// Sign renders, names, persists, saves locally and builds the notification
// link, in that order. Only a render failure aborts; the stage then stays
// in review and no artifact is kept.
func (c *Controller) Sign(ctx context.Context) error {
	if c.stage != StageReview {
		return fmt.Errorf("%w: sign from %s", entity.ErrInvalidTransition, c.stage)
	}

	err := service.ValidateClientRecord(c.record)
	if err != nil {
		return err
	}

	now := c.opts.Clock()

	content, err := c.renderer.Render(ctx, c.record, now)
	if err != nil {
		if !errors.Is(err, entity.ErrRender) {
			err = fmt.Errorf("%w: %w", entity.ErrRender, err)
		}

		return err
	}

	name := c.namer.Next(c.record)
	artifact := &entity.Artifact{
		Content:    content,
		FileName:   name,
		RemotePath: path.Join(c.opts.RemoteDir, name),
		CreatedAt:  now,
	}

	outcome := entity.OutcomeSkipped
	if c.store != nil {
		outcome = c.store.Store(ctx, artifact.RemotePath, content)
	}

	if outcome != entity.OutcomeSaved {
		slog.WarnContext(ctx, "contract not persisted remotely", "path", artifact.RemotePath, "outcome", outcome)
	}

	local, localErr := c.saver.Save(ctx, name, content)
	if localErr != nil {
		slog.ErrorContext(ctx, "save local copy", "file", name, "error", localErr)
	}

	c.artifact = artifact
	c.outcome = outcome
	c.local = local
	c.localErr = localErr
	c.link = c.linker.Link(c.record)
	c.stage = StageConfirmed

	slog.InfoContext(ctx, "contract signed", "file", name, "outcome", outcome)

	return nil
}

func (c *Controller) Confirmation() (Confirmation, error) {
	if c.stage != StageConfirmed || c.artifact == nil {
		return Confirmation{}, fmt.Errorf("%w: no confirmed contract", entity.ErrInvalidTransition)
	}

	return Confirmation{
		FileName:   c.artifact.FileName,
		RemotePath: c.artifact.RemotePath,
		Outcome:    c.outcome,
		LocalPath:  c.local,
		LocalErr:   c.localErr,
		DeepLink:   c.link,
	}, nil
}

// Artifact returns the current session's rendered contract, if any.
func (c *Controller) Artifact() (entity.Artifact, bool) {
	if c.artifact == nil {
		return entity.Artifact{}, false
	}

	return *c.artifact, true
}

// SaveAgain writes the confirmed contract to the local environment again.
func (c *Controller) SaveAgain(ctx context.Context) (string, error) {
	if c.stage != StageConfirmed || c.artifact == nil {
		return "", fmt.Errorf("%w: no confirmed contract", entity.ErrInvalidTransition)
	}

	local, err := c.saver.Save(ctx, c.artifact.FileName, c.artifact.Content)
	if err != nil {
		return "", fmt.Errorf("save local copy: %w", err)
	}

	c.local = local
	c.localErr = nil

	return local, nil
}

// Reset discards the confirmed session and starts a new, empty one.
func (c *Controller) Reset() error {
	if c.stage != StageConfirmed {
		return fmt.Errorf("%w: reset from %s", entity.ErrInvalidTransition, c.stage)
	}

	c.record = entity.ClientRecord{}
	c.artifact = nil
	c.outcome = ""
	c.local = ""
	c.localErr = nil
	c.link = ""
	c.stage = StageEntry

	return nil
}
