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

type LocationHandler struct {
	locService service.LocationService
	validator  *validator.Validate
	logger     *slog.Logger
}

func NewLocationHandler(locService service.LocationService, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{
		locService: locService,
		validator:  validator.New(),
		logger:     logger,
	}
}

func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	deptID, ok := parseLongParam(r.URL.Query().Get("deptId"))
	if !ok {
		writeEnvelope(w, h.logger, dto.CodeValidation, "deptId must be an integer", nil)
		return
	}

	query := dto.LocationListQuery{
		Keyword: r.URL.Query().Get("keyword"),
		DeptID:  deptID,
		Page:    parsePositiveParam(r.URL.Query().Get("page"), defaultPage),
		Size:    parsePositiveParam(r.URL.Query().Get("size"), defaultSize),
	}
	if err := h.validator.Struct(&query); err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, "page and size must be positive integers", nil)
		return
	}

	locations, total, err := h.locService.List(r.Context(), &query)
	if err != nil {
		writeServiceError(w, h.logger, "list locations", err)
		return
	}

	items := make([]dto.LocationDetailResponse, len(locations))
	for i := range locations {
		items[i] = toLocationDetailResponse(&locations[i])
	}
	writeOK(w, h.logger, dto.PageResponse{List: items, Page: query.Page, Size: query.Size, Total: total})
}

func (h *LocationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.LocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, "invalid request body", nil)
		return
	}

	req.Normalize()
	if err := h.validator.Struct(&req); err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, "deptId, roomNo and area are required", nil)
		return
	}

	loc, err := h.locService.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.logger, "create location", err)
		return
	}

	h.logger.Info("location created",
		slog.Int64("id", loc.ID),
		slog.String("roomNo", loc.RoomNo),
	)
	writeOK(w, h.logger, toLocationResponse(loc))
}

func (h *LocationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, err.Error(), nil)
		return
	}

	detail, err := h.locService.GetDetail(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.logger, "get location", err)
		return
	}

	writeOK(w, h.logger, toLocationDetailResponse(detail))
}

func (h *LocationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, err.Error(), nil)
		return
	}

	var req dto.LocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, "invalid request body", nil)
		return
	}

	req.Normalize()
	if err := h.validator.Struct(&req); err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, "deptId, roomNo and area are required", nil)
		return
	}

	loc, err := h.locService.Update(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, h.logger, "update location", err)
		return
	}

	h.logger.Info("location updated", slog.Int64("id", id))
	writeOK(w, h.logger, toLocationResponse(loc))
}

func (h *LocationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, err.Error(), nil)
		return
	}

	if err := h.locService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, h.logger, "delete location", err)
		return
	}

	h.logger.Info("location deleted", slog.Int64("id", id))
	writeOK(w, h.logger, nil)
}

func (h *LocationHandler) extractID(r *http.Request) (int64, error) {
	return parseID(strings.TrimPrefix(r.URL.Path, "/api/locations"))
}

func toLocationResponse(loc *domain.LocationSpace) dto.LocationResponse {
	return dto.LocationResponse{
		ID:     loc.ID,
		DeptID: loc.DeptID,
		RoomNo: loc.RoomNo,
		Area:   loc.Area,
		Remark: loc.Remark,
	}
}

func toLocationDetailResponse(detail *domain.LocationDetail) dto.LocationDetailResponse {
	return dto.LocationDetailResponse{
		ID:       detail.ID,
		DeptID:   detail.DeptID,
		DeptName: detail.DeptName,
		RoomNo:   detail.RoomNo,
		Area:     detail.Area,
		Remark:   detail.Remark,
	}
}
