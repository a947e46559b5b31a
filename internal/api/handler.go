package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/psigiovana/contratos-assinados/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/api.go -package=mocks -typed

// bodySlack covers the JSON envelope and the file name around the base64
// payload.
const bodySlack = 64 << 10

type Service interface {
	Upload(ctx context.Context, name, contentBase64 string) (entity.Upload, error)
	ListContracts(ctx context.Context) ([]entity.RemoteFile, error)
	Contract(ctx context.Context, name string) (entity.RemoteFile, error)
	UploadsList(ctx context.Context, filter entity.UploadsFilter) ([]entity.Upload, int, error)
}

// @title Contratos Assinados API
// @version 1.0
// @description Relay that stores signed contracts in a GitHub repository.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type Handler struct {
	s            Service
	maxBodyBytes int64
}

// NewHandler builds the handler. maxBytes is the decoded contract cap; the
// request body limit is derived from its base64 length.
func NewHandler(s Service, maxBytes int64) *Handler {
	return &Handler{
		s:            s,
		maxBodyBytes: (maxBytes+2)/3*4 + bodySlack,
	}
}

type HealthResponse struct {
	OK bool `json:"ok"`
}

// Health godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200 {object} HealthResponse
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	SendJSON(r.Context(), w, http.StatusOK, HealthResponse{OK: true})
}

// UploadRequest also accepts the field names sent by the first web form.
type UploadRequest struct {
	Name           string `json:"name"`
	ContentBase64  string `json:"contentBase64"`
	NomeArquivo    string `json:"nomeArquivo,omitempty"`
	ConteudoBase64 string `json:"conteudoBase64,omitempty"`
}

func (r UploadRequest) name() string {
	if r.Name != "" {
		return r.Name
	}

	return r.NomeArquivo
}

func (r UploadRequest) content() string {
	if r.ContentBase64 != "" {
		return r.ContentBase64
	}

	return r.ConteudoBase64
}

type UploadResponse struct {
	OK      bool   `json:"ok"`
	Path    string `json:"path"`
	SHA     string `json:"sha"`
	Created bool   `json:"created"`
}

// Upload godoc
// @Summary      Store a signed contract
// @Description  Creates or replaces the contract under the contracts directory
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        request body UploadRequest true "File name and base64 content"
// @Success      200 {object} UploadResponse
// @Failure      400 {object} ResponseError "Dados incompletos"
// @Failure      413 {object} ResponseError "Arquivo muito grande"
// @Failure      500 {object} ResponseError "Erro ao salvar no GitHub"
// @Router       /upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UploadRequest

	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBodyBytes)).Decode(&req)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			SendErr(ctx, w, http.StatusRequestEntityTooLarge, fmt.Errorf("%w: %w", entity.ErrPayloadTooLarge, err), "Arquivo muito grande")
			return
		}

		SendErr(ctx, w, http.StatusBadRequest, fmt.Errorf("%w: %w", entity.ErrIncorrectRequestBody, err), "Dados incompletos")

		return
	}

	upload, err := h.s.Upload(ctx, req.name(), req.content())
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrIncorrectRequestBody):
			SendErr(ctx, w, http.StatusBadRequest, err, "Dados incompletos")
		case errors.Is(err, entity.ErrPayloadTooLarge):
			SendErr(ctx, w, http.StatusRequestEntityTooLarge, err, "Arquivo muito grande")
		default:
			SendErr(ctx, w, http.StatusInternalServerError, err, "Erro ao salvar no GitHub")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, UploadResponse{
		OK:      true,
		Path:    upload.Path,
		SHA:     upload.SHA,
		Created: upload.Created,
	})
}

// ListContracts godoc
// @Summary      List stored contracts
// @Tags         contracts
// @Produce      json
// @Success      200 {array} entity.RemoteFile
// @Failure      401 {object} ResponseError "Não autorizado"
// @Failure      500 {object} ResponseError "Erro ao buscar contratos"
// @Security     BearerAuth
// @Router       /contratos [get]
func (h *Handler) ListContracts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	files, err := h.s.ListContracts(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Erro ao buscar contratos")
		return
	}

	admin, _ := entity.AdminFromContext(ctx)
	slog.InfoContext(ctx, "contracts listed", "admin", admin.Subject, "count", len(files))

	SendJSON(ctx, w, http.StatusOK, files)
}

// Contract godoc
// @Summary      Stored contract details
// @Tags         contracts
// @Produce      json
// @Param        name path string true "File name"
// @Success      200 {object} entity.RemoteFile
// @Failure      400 {object} ResponseError "Nome inválido"
// @Failure      401 {object} ResponseError "Não autorizado"
// @Failure      404 {object} ResponseError "Contrato não encontrado"
// @Failure      500 {object} ResponseError "Erro ao buscar contratos"
// @Security     BearerAuth
// @Router       /contratos/{name} [get]
func (h *Handler) Contract(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	file, err := h.s.Contract(ctx, chi.URLParam(r, "name"))
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrIncorrectRequestBody):
			SendErr(ctx, w, http.StatusBadRequest, err, "Nome inválido")
		case errors.Is(err, entity.ErrNotFound):
			SendErr(ctx, w, http.StatusNotFound, err, "Contrato não encontrado")
		default:
			SendErr(ctx, w, http.StatusInternalServerError, err, "Erro ao buscar contratos")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, file)
}

type UploadsListResponse struct {
	TotalUploads int             `json:"totalUploads"`
	Uploads      []entity.Upload `json:"uploads"`
}

// UploadsList godoc
// @Summary      Upload journal
// @Tags         uploads
// @Produce      json
// @Param        status query string false "Filter by status" Enums(stored, failed)
// @Param        limit query string false "Page size"
// @Param        page query string false "Page number"
// @Param        orderBy query string false "Order by creation time" Enums(asc, desc)
// @Success      200 {object} UploadsListResponse
// @Failure      400 {object} ResponseError "Parâmetros inválidos"
// @Failure      401 {object} ResponseError "Não autorizado"
// @Failure      500 {object} ResponseError "Erro ao buscar envios"
// @Security     BearerAuth
// @Router       /uploads [get]
func (h *Handler) UploadsList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := parseUploadsFilter(r.URL.Query())
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Parâmetros inválidos: "+err.Error())
		return
	}

	uploads, total, err := h.s.UploadsList(ctx, filter)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Erro ao buscar envios")
		return
	}

	SendJSON(ctx, w, http.StatusOK, UploadsListResponse{
		TotalUploads: total,
		Uploads:      uploads,
	})
}

func parseUploadsFilter(query url.Values) (entity.UploadsFilter, error) {
	status := entity.UploadStatus(query.Get("status"))
	orderBy := entity.OrderBy(query.Get("orderBy"))

	page, err := strconv.Atoi(query.Get("page"))
	if err != nil || page <= 0 || page > 100 {
		page = 1
	}

	limit, err := strconv.Atoi(query.Get("limit"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 20
	}

	if status != "" && status != entity.UploadStored && status != entity.UploadFailed {
		return entity.UploadsFilter{}, fmt.Errorf("%w: status %s", entity.ErrIncorrectRequestBody, status)
	}

	if orderBy == "" {
		orderBy = entity.DESC
	}

	if !orderBy.IsValid() {
		return entity.UploadsFilter{}, fmt.Errorf("%w: orderBy %s", entity.ErrIncorrectRequestBody, orderBy)
	}

	return entity.UploadsFilter{
		Status:  status,
		Page:    uint64(page),
		Limit:   uint64(limit),
		OrderBy: orderBy,
	}, nil
}
