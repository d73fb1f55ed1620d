package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/Lersubem/foodstack/internal/domain"
)

// MenuReader is the minimal interface needed for menu endpoints.
type MenuReader interface {
	GetAllMenus(ctx context.Context) ([]domain.Menu, error)
	GetMenu(ctx context.Context, menuID string) (domain.Menu, error)
}

// HandleListMenus returns an HTTP handler for GET /api/menu.
func HandleListMenus(svc MenuReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		menus, err := svc.GetAllMenus(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}
		if menus == nil {
			menus = []domain.Menu{}
		}
		writeJSON(w, http.StatusOK, menus)
	}
}

// HandleGetMenu returns an HTTP handler for GET /api/menu/{menuID}.
func HandleGetMenu(svc MenuReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		menuID, ok := parseMenuPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		menu, err := svc.GetMenu(r.Context(), menuID)
		if err != nil {
			switch err {
			case domain.ErrMenuNotFound:
				writeError(w, http.StatusNotFound, codeMenuNotFound, err.Error())
			case domain.ErrInvalidID:
				writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}
		writeJSON(w, http.StatusOK, menu)
	}
}

func parseMenuPath(path string) (string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 3 || parts[0] != "api" || parts[1] != "menu" || parts[2] == "" {
		return "", false
	}
	return parts[2], true
}
