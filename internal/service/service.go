package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/psigiovana/contratos-assinados/internal/entity"
	"github.com/psigiovana/contratos-assinados/pkg/metrics"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks -typed

type GitHub interface {
	FileSHA(ctx context.Context, path string) (string, bool, error)
	PutFile(ctx context.Context, path, contentBase64, sha string) (entity.RemoteFile, error)
	List(ctx context.Context, dir string) ([]entity.RemoteFile, error)
	File(ctx context.Context, path string) (entity.RemoteFile, error)
}

type Repository interface {
	CreateUpload(ctx context.Context, upload entity.Upload) error
	UploadsListByFilter(ctx context.Context, filter entity.UploadsFilter) ([]entity.Upload, int, error)
}

type Publisher interface {
	SendContractUploaded(ctx context.Context, upload entity.Upload, file entity.RemoteFile)
}

type Options struct {
	// Dir is the repository directory every upload is stored under.
	Dir      string
	MaxBytes int64
	Clock    func() time.Time
}

// Service relays signed contracts into the GitHub repository.
type Service struct {
	github    GitHub
	repo      Repository
	publisher Publisher
	metrics   *metrics.Metrics
	opts      Options
}

// New builds the relay service. repo and publisher may be nil when the
// journal or the event stream is disabled.
func New(github GitHub, repo Repository, publisher Publisher, m *metrics.Metrics, opts Options) *Service {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	opts.Dir = strings.Trim(opts.Dir, "/")

	return &Service{
		github:    github,
		repo:      repo,
		publisher: publisher,
		metrics:   m,
		opts:      opts,
	}
}

// Upload creates or replaces name in the repository with the decoded content.
func (s *Service) Upload(ctx context.Context, name, contentBase64 string) (entity.Upload, error) {
	start := s.opts.Clock()

	if strings.TrimSpace(name) == "" || contentBase64 == "" {
		return entity.Upload{}, fmt.Errorf("%w: name and contentBase64 are required", entity.ErrIncorrectRequestBody)
	}

	filePath, err := s.RemotePath(name)
	if err != nil {
		return entity.Upload{}, err
	}

	content, err := base64.StdEncoding.DecodeString(contentBase64)
	if err != nil {
		return entity.Upload{}, fmt.Errorf("%w: decode content: %w", entity.ErrIncorrectRequestBody, err)
	}

	size := int64(len(content))
	if size > s.opts.MaxBytes {
		return entity.Upload{}, fmt.Errorf("%w: %d bytes, limit is %d", entity.ErrPayloadTooLarge, size, s.opts.MaxBytes)
	}

	upload := entity.Upload{
		ID:        uuid.Must(uuid.NewV4()),
		Path:      filePath,
		Size:      size,
		CreatedAt: start,
	}

	file, err := s.store(ctx, &upload, contentBase64)
	if err != nil {
		upload.Status = entity.UploadFailed
		upload.Error = err.Error()
		s.journal(ctx, upload)
		s.observe(start, upload)

		return upload, fmt.Errorf("%w: %w", entity.ErrPersistence, err)
	}

	upload.Status = entity.UploadStored
	upload.SHA = file.SHA
	s.journal(ctx, upload)
	s.observe(start, upload)

	if s.publisher != nil {
		s.publisher.SendContractUploaded(ctx, upload, file)
	}

	slog.InfoContext(ctx, "contract stored", "path", filePath, "size", size, "created", upload.Created)

	return upload, nil
}

func (s *Service) store(ctx context.Context, upload *entity.Upload, contentBase64 string) (entity.RemoteFile, error) {
	sha, found, err := s.github.FileSHA(ctx, upload.Path)
	if err != nil {
		return entity.RemoteFile{}, fmt.Errorf("probe %s: %w", upload.Path, err)
	}

	upload.Created = !found

	file, err := s.github.PutFile(ctx, upload.Path, contentBase64, sha)
	if err != nil {
		return entity.RemoteFile{}, fmt.Errorf("put %s: %w", upload.Path, err)
	}

	return file, nil
}

// RemotePath places name under the configured directory. Names that already
// carry the directory prefix are not prefixed twice.
func (s *Service) RemotePath(name string) (string, error) {
	name = strings.ReplaceAll(strings.TrimSpace(name), "\\", "/")

	for _, segment := range strings.Split(name, "/") {
		if segment == ".." {
			return "", fmt.Errorf("%w: name %q leaves the contracts directory", entity.ErrIncorrectRequestBody, name)
		}
	}

	cleaned := strings.TrimPrefix(path.Clean("/"+name), "/")
	if cleaned == "" || cleaned == s.opts.Dir {
		return "", fmt.Errorf("%w: name %q has no file name", entity.ErrIncorrectRequestBody, name)
	}

	if s.opts.Dir == "" || strings.HasPrefix(cleaned, s.opts.Dir+"/") {
		return cleaned, nil
	}

	return s.opts.Dir + "/" + cleaned, nil
}

func (s *Service) journal(ctx context.Context, upload entity.Upload) {
	if s.repo == nil {
		return
	}

	err := s.repo.CreateUpload(ctx, upload)
	if err != nil {
		slog.ErrorContext(ctx, "journal upload", "path", upload.Path, "error", err)
	}
}

func (s *Service) observe(start time.Time, upload entity.Upload) {
	if s.metrics == nil {
		return
	}

	s.metrics.ObserveUpload(start, string(upload.Status), upload.Created, upload.Size)
}

// ListContracts lists the files in the contracts directory.
func (s *Service) ListContracts(ctx context.Context) ([]entity.RemoteFile, error) {
	files, err := s.github.List(ctx, s.opts.Dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.opts.Dir, err)
	}

	return files, nil
}

// Contract returns the metadata of one stored contract by file name.
func (s *Service) Contract(ctx context.Context, name string) (entity.RemoteFile, error) {
	if strings.ContainsAny(name, "/\\") || name == ".." {
		return entity.RemoteFile{}, fmt.Errorf("%w: invalid contract name %q", entity.ErrIncorrectRequestBody, name)
	}

	filePath, err := s.RemotePath(name)
	if err != nil {
		return entity.RemoteFile{}, err
	}

	return s.github.File(ctx, filePath)
}

func (s *Service) UploadsList(ctx context.Context, filter entity.UploadsFilter) ([]entity.Upload, int, error) {
	if s.repo == nil {
		return []entity.Upload{}, 0, nil
	}

	return s.repo.UploadsListByFilter(ctx, filter)
}

// RefreshStoredContracts updates the stored contracts gauge from the
// repository listing.
func (s *Service) RefreshStoredContracts(ctx context.Context) error {
	files, err := s.ListContracts(ctx)
	if err != nil {
		return err
	}

	if s.metrics != nil {
		s.metrics.SetStoredContracts(len(files))
	}

	return nil
}
