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

type DepartmentHandler struct {
	deptService service.DepartmentService
	validator   *validator.Validate
	logger      *slog.Logger
}

func NewDepartmentHandler(deptService service.DepartmentService, logger *slog.Logger) *DepartmentHandler {
	return &DepartmentHandler{
		deptService: deptService,
		validator:   validator.New(),
		logger:      logger,
	}
}

func (h *DepartmentHandler) List(w http.ResponseWriter, r *http.Request) {
	query := dto.ListQuery{
		Keyword: r.URL.Query().Get("keyword"),
		Page:    parsePositiveParam(r.URL.Query().Get("page"), defaultPage),
		Size:    parsePositiveParam(r.URL.Query().Get("size"), defaultSize),
	}
	if err := h.validator.Struct(&query); err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, "page and size must be positive integers", nil)
		return
	}

	departments, total, err := h.deptService.List(r.Context(), &query)
	if err != nil {
		writeServiceError(w, h.logger, "list departments", err)
		return
	}

	items := make([]dto.DepartmentResponse, len(departments))
	for i := range departments {
		items[i] = toDepartmentResponse(&departments[i])
	}
	writeOK(w, h.logger, dto.PageResponse{List: items, Page: query.Page, Size: query.Size, Total: total})
}

func (h *DepartmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.DepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, "invalid request body", nil)
		return
	}

	req.Normalize()
	if err := h.validator.Struct(&req); err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, "deptCode and deptName are required", nil)
		return
	}

	dept, err := h.deptService.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.logger, "create department", err)
		return
	}

	h.logger.Info("department created",
		slog.Int64("id", dept.ID),
		slog.String("deptCode", dept.DeptCode),
	)
	writeOK(w, h.logger, toDepartmentResponse(dept))
}

func (h *DepartmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, err.Error(), nil)
		return
	}

	dept, err := h.deptService.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.logger, "get department", err)
		return
	}

	writeOK(w, h.logger, toDepartmentResponse(dept))
}

func (h *DepartmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, err.Error(), nil)
		return
	}

	var req dto.DepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, "invalid request body", nil)
		return
	}

	req.Normalize()
	if err := h.validator.Struct(&req); err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, "deptCode and deptName are required", nil)
		return
	}

	dept, err := h.deptService.Update(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, h.logger, "update department", err)
		return
	}

	h.logger.Info("department updated", slog.Int64("id", id))
	writeOK(w, h.logger, toDepartmentResponse(dept))
}

func (h *DepartmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, err.Error(), nil)
		return
	}

	if err := h.deptService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, h.logger, "delete department", err)
		return
	}

	h.logger.Info("department deleted", slog.Int64("id", id))
	writeOK(w, h.logger, nil)
}

// Locations возвращает помещения подразделения
func (h *DepartmentHandler) Locations(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, err.Error(), nil)
		return
	}

	locations, err := h.deptService.Locations(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.logger, "list department locations", err)
		return
	}

	items := make([]dto.DeptLocationResponse, len(locations))
	for i, loc := range locations {
		items[i] = dto.DeptLocationResponse{ID: loc.ID, RoomNo: loc.RoomNo}
	}
	writeOK(w, h.logger, items)
}

func (h *DepartmentHandler) extractID(r *http.Request) (int64, error) {
	path := strings.TrimPrefix(r.URL.Path, "/api/departments")
	path = strings.TrimSuffix(path, "/")
	path = strings.TrimSuffix(path, "/locations")
	return parseID(path)
}

func toDepartmentResponse(dept *domain.Department) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		ID:       dept.ID,
		DeptCode: dept.DeptCode,
		DeptName: dept.DeptName,
		Remark:   dept.Remark,
	}
}
