package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/asset-inventory-api/internal/domain"
	"github.com/asset-inventory-api/internal/dto"
)

const (
	defaultPage = 1
	defaultSize = 10
)

// writeEnvelope пишет единый конверт ответа {code, msg, data}.
// Доменный исход всегда отдаётся с HTTP 200: класс ошибки несёт code.
func writeEnvelope(w http.ResponseWriter, logger *slog.Logger, code int, msg string, data any) {
	w.WriteHeader(http.StatusOK)
	resp := dto.Response{Code: code, Msg: msg, Data: data}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
	}
}

// writeOK пишет успешный ответ
func writeOK(w http.ResponseWriter, logger *slog.Logger, data any) {
	writeEnvelope(w, logger, dto.CodeOK, "ok", data)
}

// writeServiceError транслирует доменную ошибку в код конверта.
// Неизвестные ошибки логируются и уходят наружу обезличенными.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrDepartmentNotFound),
		errors.Is(err, domain.ErrLocationNotFound),
		errors.Is(err, domain.ErrAssigneeNotFound),
		errors.Is(err, domain.ErrAssetNotFound),
		errors.Is(err, domain.ErrAssetRefNotFound):
		writeEnvelope(w, logger, dto.CodeNotFound, err.Error(), nil)
	case errors.Is(err, domain.ErrDuplicateDeptCode),
		errors.Is(err, domain.ErrDuplicateRoomNo),
		errors.Is(err, domain.ErrDuplicateEmpNo),
		errors.Is(err, domain.ErrDuplicateAssetNo):
		writeEnvelope(w, logger, dto.CodeConflict, err.Error(), nil)
	case errors.Is(err, domain.ErrDepartmentHasLocations),
		errors.Is(err, domain.ErrLocationHasAssets),
		errors.Is(err, domain.ErrAssigneeHasAssets),
		errors.Is(err, domain.ErrAssetAlreadyAssigned),
		errors.Is(err, domain.ErrAssetAlreadyIdle):
		writeEnvelope(w, logger, dto.CodeForbidden, err.Error(), nil)
	default:
		logger.Error("internal error", slog.String("op", op), slog.Any("error", err))
		writeEnvelope(w, logger, dto.CodeInternal, "internal server error", nil)
	}
}

// parseID разбирает идентификатор из сегмента пути: после снятия одного
// ведущего и одного замыкающего слэша остаётся непустая цепочка цифр
func parseID(raw string) (int64, error) {
	value := strings.TrimSpace(raw)
	value = strings.TrimPrefix(value, "/")
	value = strings.TrimSuffix(value, "/")
	if value == "" {
		return 0, errors.New("id is required")
	}
	id, err := strconv.ParseUint(value, 10, 63)
	if err != nil {
		return 0, errors.New("id must be a positive integer")
	}
	return int64(id), nil
}

// parsePositiveParam разбирает page/size: пустое значение даёт значение по
// умолчанию, нечисловое - сигнальное -1, которое не пройдёт валидацию
func parsePositiveParam(value string, defaultValue int) int {
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return -1
	}
	return parsed
}

// parseLongParam разбирает необязательный числовой фильтр.
// Присутствующее, но неразбираемое значение - ошибка, а не отсутствие.
func parseLongParam(value string) (*int64, bool) {
	if strings.TrimSpace(value) == "" {
		return nil, true
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, false
	}
	return &parsed, true
}

// parseIntParam разбирает необязательный целочисленный фильтр
func parseIntParam(value string) (*int, bool) {
	if strings.TrimSpace(value) == "" {
		return nil, true
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return nil, false
	}
	return &parsed, true
}
