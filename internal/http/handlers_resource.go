package httpx

import (
	"errors"
	"net/http"

	"github.com/hr3-suite/hr3-admin/internal/data"
	"github.com/hr3-suite/hr3-admin/internal/service"
)

// ResourceHandlers is the one CRUD handler set shared by every management
// resource. Instantiate per entity; the service and storage layers carry the
// entity-specific behavior.
type ResourceHandlers[T any, C any, U any] struct {
	Svc *service.ResourceService[T, C, U]
	// Key names the collection in list responses, e.g. "benefits" for
	// {"benefits": [...]}.
	Key string
	// NotFound is the entity's storage sentinel, mapped to 404.
	NotFound error
	// Conflict is an optional entity-specific uniqueness sentinel, mapped to 409.
	Conflict error
}

// Create handles POST {base}.
func (h *ResourceHandlers[T, C, U]) Create(w http.ResponseWriter, r *http.Request) {
	var req C
	if !DecodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	out, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		h.writeStorageError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, out)
}

// List handles GET {base}. The full ordered collection is returned under the
// resource key; clients page over it locally.
func (h *ResourceHandlers[T, C, U]) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Svc.List(r.Context())
	if err != nil {
		h.writeStorageError(w, err)
		return
	}
	if items == nil {
		items = []T{}
	}

	WriteJSON(w, http.StatusOK, map[string]any{h.Key: items})
}

// Get handles GET {base}/{id}.
func (h *ResourceHandlers[T, C, U]) Get(w http.ResponseWriter, r *http.Request) {
	out, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeStorageError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, out)
}

// Update handles PUT {base}/{id}.
func (h *ResourceHandlers[T, C, U]) Update(w http.ResponseWriter, r *http.Request) {
	var req U
	if !DecodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	out, err := h.Svc.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		h.writeStorageError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, out)
}

// Delete handles DELETE {base}/{id}.
func (h *ResourceHandlers[T, C, U]) Delete(w http.ResponseWriter, r *http.Request) {
	ok, err := h.Svc.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeStorageError(w, err)
		return
	}
	if !ok {
		h.writeStorageError(w, h.NotFound)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// validateRequest runs the request type's Validate method when it has one and
// writes a 400 on failure. Returns true when the request may proceed.
func validateRequest(w http.ResponseWriter, req any) bool {
	v, ok := req.(interface{ Validate() error })
	if !ok {
		return true
	}
	if err := v.Validate(); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		return false
	}
	return true
}

// writeStorageError maps storage-layer errors onto the JSON error surface.
func (h *ResourceHandlers[T, C, U]) writeStorageError(w http.ResponseWriter, err error) {
	switch {
	case h.NotFound != nil && errors.Is(err, h.NotFound):
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: err})
	case h.Conflict != nil && errors.Is(err, h.Conflict):
		WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "conflict", Err: err})
	case errors.Is(err, data.ErrInvalidReference):
		WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "invalid_reference", Err: err})
	default:
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "internal_error",
			Err:     errors.New("internal error"),
		})
	}
}
