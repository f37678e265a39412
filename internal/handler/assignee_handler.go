package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/asset-inventory-api/internal/domain"
	"github.com/asset-inventory-api/internal/dto"
	"github.com/asset-inventory-api/internal/service"
	"github.com/go-playground/validator/v10"
)

type AssigneeHandler struct {
	assigneeService service.AssigneeService
	validator       *validator.Validate
	logger          *slog.Logger
}

func NewAssigneeHandler(assigneeService service.AssigneeService, logger *slog.Logger) *AssigneeHandler {
	return &AssigneeHandler{
		assigneeService: assigneeService,
		validator:       validator.New(),
		logger:          logger,
	}
}

func (h *AssigneeHandler) List(w http.ResponseWriter, r *http.Request) {
	query := dto.ListQuery{
		Keyword: r.URL.Query().Get("keyword"),
		Page:    parsePositiveParam(r.URL.Query().Get("page"), defaultPage),
		Size:    parsePositiveParam(r.URL.Query().Get("size"), defaultSize),
	}
	if err := h.validator.Struct(&query); err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, "page and size must be positive integers", nil)
		return
	}

	assignees, total, err := h.assigneeService.List(r.Context(), &query)
	if err != nil {
		writeServiceError(w, h.logger, "list assignees", err)
		return
	}

	items := make([]dto.AssigneeResponse, len(assignees))
	for i := range assignees {
		items[i] = toAssigneeResponse(&assignees[i])
	}
	writeOK(w, h.logger, dto.PageResponse{List: items, Page: query.Page, Size: query.Size, Total: total})
}

func (h *AssigneeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.AssigneeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, "invalid request body", nil)
		return
	}

	req.Normalize()
	if err := h.validator.Struct(&req); err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, "empNo and name are required", nil)
		return
	}

	assignee, err := h.assigneeService.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.logger, "create assignee", err)
		return
	}

	h.logger.Info("assignee created",
		slog.Int64("id", assignee.ID),
		slog.String("empNo", assignee.EmpNo),
	)
	writeOK(w, h.logger, toAssigneeResponse(assignee))
}

func (h *AssigneeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, err.Error(), nil)
		return
	}

	assignee, err := h.assigneeService.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.logger, "get assignee", err)
		return
	}

	writeOK(w, h.logger, toAssigneeResponse(assignee))
}

func (h *AssigneeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, err.Error(), nil)
		return
	}

	var req dto.AssigneeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, "invalid request body", nil)
		return
	}

	req.Normalize()
	if err := h.validator.Struct(&req); err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, "empNo and name are required", nil)
		return
	}

	assignee, err := h.assigneeService.Update(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, h.logger, "update assignee", err)
		return
	}

	h.logger.Info("assignee updated", slog.Int64("id", id))
	writeOK(w, h.logger, toAssigneeResponse(assignee))
}

func (h *AssigneeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, err.Error(), nil)
		return
	}

	if err := h.assigneeService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, h.logger, "delete assignee", err)
		return
	}

	h.logger.Info("assignee deleted", slog.Int64("id", id))
	writeOK(w, h.logger, nil)
}

// Assets возвращает страницу активов, числящихся за сотрудником
func (h *AssigneeHandler) Assets(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, err.Error(), nil)
		return
	}

	query := dto.ListQuery{
		Page: parsePositiveParam(r.URL.Query().Get("page"), defaultPage),
		Size: parsePositiveParam(r.URL.Query().Get("size"), defaultSize),
	}
	if err := h.validator.Struct(&query); err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, "page and size must be positive integers", nil)
		return
	}

	assets, total, err := h.assigneeService.Assets(r.Context(), id, query.Page, query.Size)
	if err != nil {
		writeServiceError(w, h.logger, "list assignee assets", err)
		return
	}

	items := make([]dto.AssigneeAssetResponse, len(assets))
	for i, asset := range assets {
		items[i] = dto.AssigneeAssetResponse{
			ID:        asset.ID,
			AssetNo:   asset.AssetNo,
			AssetName: asset.AssetName,
			RoomNo:    asset.RoomNo,
			Status:    asset.Status,
		}
	}
	writeOK(w, h.logger, dto.PageResponse{List: items, Page: query.Page, Size: query.Size, Total: total})
}

func (h *AssigneeHandler) extractID(r *http.Request) (int64, error) {
	path := strings.TrimPrefix(r.URL.Path, "/api/assignees")
	path = strings.TrimSuffix(path, "/")
	path = strings.TrimSuffix(path, "/assets")
	return parseID(path)
}

func toAssigneeResponse(assignee *domain.Assignee) dto.AssigneeResponse {
	return dto.AssigneeResponse{
		ID:     assignee.ID,
		EmpNo:  assignee.EmpNo,
		Name:   assignee.Name,
		Phone:  assignee.Phone,
		Remark: assignee.Remark,
	}
}
