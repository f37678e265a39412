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

type AssetHandler struct {
	assetService service.AssetService
	validator    *validator.Validate
	logger       *slog.Logger
}

func NewAssetHandler(assetService service.AssetService, logger *slog.Logger) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
		validator:    validator.New(),
		logger:       logger,
	}
}

func (h *AssetHandler) List(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	deptID, ok := parseLongParam(params.Get("deptId"))
	if !ok {
		writeEnvelope(w, h.logger, dto.CodeValidation, "deptId must be an integer", nil)
		return
	}
	locationID, ok := parseLongParam(params.Get("locationId"))
	if !ok {
		writeEnvelope(w, h.logger, dto.CodeValidation, "locationId must be an integer", nil)
		return
	}
	assigneeID, ok := parseLongParam(params.Get("assigneeId"))
	if !ok {
		writeEnvelope(w, h.logger, dto.CodeValidation, "assigneeId must be an integer", nil)
		return
	}
	status, ok := parseIntParam(params.Get("status"))
	if !ok {
		writeEnvelope(w, h.logger, dto.CodeValidation, "status must be an integer", nil)
		return
	}

	query := dto.AssetListQuery{
		Keyword:    params.Get("keyword"),
		DeptID:     deptID,
		LocationID: locationID,
		AssigneeID: assigneeID,
		Status:     status,
		Page:       parsePositiveParam(params.Get("page"), defaultPage),
		Size:       parsePositiveParam(params.Get("size"), defaultSize),
	}
	if err := h.validator.Struct(&query); err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, "status must be 0 or 1, page and size must be positive integers", nil)
		return
	}

	assets, total, err := h.assetService.List(r.Context(), &query)
	if err != nil {
		writeServiceError(w, h.logger, "list assets", err)
		return
	}

	items := make([]dto.AssetDetailResponse, len(assets))
	for i := range assets {
		items[i] = toAssetDetailResponse(&assets[i])
	}
	writeOK(w, h.logger, dto.PageResponse{List: items, Page: query.Page, Size: query.Size, Total: total})
}

func (h *AssetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.AssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, "invalid request body", nil)
		return
	}

	req.Normalize()
	if err := h.validator.Struct(&req); err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, "assetNo, assetName, value and locationId are required", nil)
		return
	}

	asset, err := h.assetService.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.logger, "create asset", err)
		return
	}

	h.logger.Info("asset created",
		slog.Int64("id", asset.ID),
		slog.String("assetNo", asset.AssetNo),
	)
	writeOK(w, h.logger, toAssetResponse(asset))
}

func (h *AssetHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, err.Error(), nil)
		return
	}

	detail, err := h.assetService.GetDetail(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.logger, "get asset", err)
		return
	}

	writeOK(w, h.logger, toAssetDetailResponse(detail))
}

func (h *AssetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, err.Error(), nil)
		return
	}

	var req dto.AssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, "invalid request body", nil)
		return
	}

	req.Normalize()
	if err := h.validator.Struct(&req); err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, "assetNo, assetName, value and locationId are required", nil)
		return
	}

	asset, err := h.assetService.Update(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, h.logger, "update asset", err)
		return
	}

	h.logger.Info("asset updated", slog.Int64("id", id))
	writeOK(w, h.logger, toAssetResponse(asset))
}

func (h *AssetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, err.Error(), nil)
		return
	}

	if err := h.assetService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, h.logger, "delete asset", err)
		return
	}

	h.logger.Info("asset deleted", slog.Int64("id", id))
	writeOK(w, h.logger, nil)
}

// Assign выдаёт актив сотруднику
func (h *AssetHandler) Assign(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, err.Error(), nil)
		return
	}

	var req dto.AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, "invalid request body", nil)
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, "assigneeId is required", nil)
		return
	}

	if err := h.assetService.Assign(r.Context(), id, *req.AssigneeID); err != nil {
		writeServiceError(w, h.logger, "assign asset", err)
		return
	}

	h.logger.Info("asset assigned",
		slog.Int64("id", id),
		slog.Int64("assigneeId", *req.AssigneeID),
	)
	writeOK(w, h.logger, nil)
}

// Return возвращает актив в состояние «свободен»
func (h *AssetHandler) Return(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		writeEnvelope(w, h.logger, dto.CodeValidation, err.Error(), nil)
		return
	}

	if err := h.assetService.Return(r.Context(), id); err != nil {
		writeServiceError(w, h.logger, "return asset", err)
		return
	}

	h.logger.Info("asset returned", slog.Int64("id", id))
	writeOK(w, h.logger, nil)
}

func (h *AssetHandler) extractID(r *http.Request) (int64, error) {
	path := strings.TrimPrefix(r.URL.Path, "/api/assets")
	path = strings.TrimSuffix(path, "/")
	path = strings.TrimSuffix(path, "/assign")
	path = strings.TrimSuffix(path, "/return")
	return parseID(path)
}

func toAssetResponse(asset *domain.Asset) dto.AssetResponse {
	return dto.AssetResponse{
		ID:         asset.ID,
		AssetNo:    asset.AssetNo,
		AssetName:  asset.AssetName,
		Value:      asset.Value,
		LocationID: asset.LocationID,
		AssigneeID: asset.AssigneeID,
		Status:     asset.Status,
		Remark:     asset.Remark,
	}
}

func toAssetDetailResponse(detail *domain.AssetDetail) dto.AssetDetailResponse {
	return dto.AssetDetailResponse{
		ID:           detail.ID,
		AssetNo:      detail.AssetNo,
		AssetName:    detail.AssetName,
		Value:        detail.Value,
		LocationID:   detail.LocationID,
		RoomNo:       detail.RoomNo,
		DeptID:       detail.DeptID,
		DeptName:     detail.DeptName,
		AssigneeID:   detail.AssigneeID,
		AssigneeName: detail.AssigneeName,
		Status:       detail.Status,
		Remark:       detail.Remark,
	}
}
