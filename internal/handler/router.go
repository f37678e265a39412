package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/asset-inventory-api/internal/dto"
	"github.com/asset-inventory-api/internal/middleware"
)

// Router настраивает маршруты API
type Router struct {
	mux             *http.ServeMux
	logger          *slog.Logger
	deptHandler     *DepartmentHandler
	locHandler      *LocationHandler
	assigneeHandler *AssigneeHandler
	assetHandler    *AssetHandler
}

// NewRouter создаёт новый роутер
func NewRouter(
	deptHandler *DepartmentHandler,
	locHandler *LocationHandler,
	assigneeHandler *AssigneeHandler,
	assetHandler *AssetHandler,
	logger *slog.Logger,
) *Router {
	return &Router{
		mux:             http.NewServeMux(),
		logger:          logger,
		deptHandler:     deptHandler,
		locHandler:      locHandler,
		assigneeHandler: assigneeHandler,
		assetHandler:    assetHandler,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	// Регистрируем обработчики
	r.handle("/api/departments", r.departmentsRouter)
	r.handle("/api/locations", r.locationsRouter)
	r.handle("/api/assignees", r.assigneesRouter)
	r.handle("/api/assets", r.assetsRouter)

	// Health check
	r.mux.HandleFunc("/api/health", func(w http.ResponseWriter, req *http.Request) {
		writeOK(w, r.logger, dto.HealthResponse{Status: "UP"})
	})

	// Применяем middleware
	handler := middleware.ContentType(r.mux)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.Recoverer(r.logger)(handler)

	return handler
}

// handle регистрирует коллекцию с замыкающим слэшем и без него,
// чтобы POST /api/departments не уходил в редирект
func (r *Router) handle(prefix string, fn http.HandlerFunc) {
	r.mux.HandleFunc(prefix, fn)
	r.mux.HandleFunc(prefix+"/", fn)
}

// departmentsRouter обрабатывает все запросы к /api/departments
func (r *Router) departmentsRouter(w http.ResponseWriter, req *http.Request) {
	parts := pathParts(req.URL.Path, "/api/departments")

	// Коллекция: список и создание
	if len(parts) == 0 {
		switch req.Method {
		case http.MethodGet:
			r.deptHandler.List(w, req)
		case http.MethodPost:
			r.deptHandler.Create(w, req)
		default:
			methodNotAllowed(w)
		}
		return
	}

	// /api/departments/{id}
	if len(parts) == 1 {
		switch req.Method {
		case http.MethodGet:
			r.deptHandler.GetByID(w, req)
		case http.MethodPut:
			r.deptHandler.Update(w, req)
		case http.MethodDelete:
			r.deptHandler.Delete(w, req)
		default:
			methodNotAllowed(w)
		}
		return
	}

	// /api/departments/{id}/locations
	if len(parts) == 2 && parts[1] == "locations" {
		if req.Method == http.MethodGet {
			r.deptHandler.Locations(w, req)
			return
		}
		methodNotAllowed(w)
		return
	}

	notFound(w)
}

// locationsRouter обрабатывает все запросы к /api/locations
func (r *Router) locationsRouter(w http.ResponseWriter, req *http.Request) {
	parts := pathParts(req.URL.Path, "/api/locations")

	if len(parts) == 0 {
		switch req.Method {
		case http.MethodGet:
			r.locHandler.List(w, req)
		case http.MethodPost:
			r.locHandler.Create(w, req)
		default:
			methodNotAllowed(w)
		}
		return
	}

	if len(parts) == 1 {
		switch req.Method {
		case http.MethodGet:
			r.locHandler.GetByID(w, req)
		case http.MethodPut:
			r.locHandler.Update(w, req)
		case http.MethodDelete:
			r.locHandler.Delete(w, req)
		default:
			methodNotAllowed(w)
		}
		return
	}

	notFound(w)
}

// assigneesRouter обрабатывает все запросы к /api/assignees
func (r *Router) assigneesRouter(w http.ResponseWriter, req *http.Request) {
	parts := pathParts(req.URL.Path, "/api/assignees")

	if len(parts) == 0 {
		switch req.Method {
		case http.MethodGet:
			r.assigneeHandler.List(w, req)
		case http.MethodPost:
			r.assigneeHandler.Create(w, req)
		default:
			methodNotAllowed(w)
		}
		return
	}

	if len(parts) == 1 {
		switch req.Method {
		case http.MethodGet:
			r.assigneeHandler.GetByID(w, req)
		case http.MethodPut:
			r.assigneeHandler.Update(w, req)
		case http.MethodDelete:
			r.assigneeHandler.Delete(w, req)
		default:
			methodNotAllowed(w)
		}
		return
	}

	// /api/assignees/{id}/assets
	if len(parts) == 2 && parts[1] == "assets" {
		if req.Method == http.MethodGet {
			r.assigneeHandler.Assets(w, req)
			return
		}
		methodNotAllowed(w)
		return
	}

	notFound(w)
}

// assetsRouter обрабатывает все запросы к /api/assets
func (r *Router) assetsRouter(w http.ResponseWriter, req *http.Request) {
	parts := pathParts(req.URL.Path, "/api/assets")

	if len(parts) == 0 {
		switch req.Method {
		case http.MethodGet:
			r.assetHandler.List(w, req)
		case http.MethodPost:
			r.assetHandler.Create(w, req)
		default:
			methodNotAllowed(w)
		}
		return
	}

	if len(parts) == 1 {
		switch req.Method {
		case http.MethodGet:
			r.assetHandler.GetByID(w, req)
		case http.MethodPut:
			r.assetHandler.Update(w, req)
		case http.MethodDelete:
			r.assetHandler.Delete(w, req)
		default:
			methodNotAllowed(w)
		}
		return
	}

	// /api/assets/{id}/assign и /api/assets/{id}/return
	if len(parts) == 2 && (parts[1] == "assign" || parts[1] == "return") {
		if req.Method == http.MethodPost {
			if parts[1] == "assign" {
				r.assetHandler.Assign(w, req)
			} else {
				r.assetHandler.Return(w, req)
			}
			return
		}
		methodNotAllowed(w)
		return
	}

	notFound(w)
}

// pathParts возвращает сегменты пути после префикса коллекции
func pathParts(path, prefix string) []string {
	trimmed := strings.Trim(strings.TrimPrefix(path, prefix), "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func methodNotAllowed(w http.ResponseWriter) {
	http.Error(w, `{ "code": 4001, "msg": "method not allowed", "data": null }`, http.StatusMethodNotAllowed)
}

func notFound(w http.ResponseWriter) {
	http.Error(w, `{ "code": 4004, "msg": "not found", "data": null }`, http.StatusNotFound)
}
