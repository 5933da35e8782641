package httpx

import (
	"net/http"

	"local.dev/lennysocial/internal/models"
	"local.dev/lennysocial/internal/store"
)

// POST /admin/reload — re-read the data file from disk. Admin role only.
// A corrupt file reports 500 and leaves the in-memory document untouched.
func HandleAdminReload(app *AppCtx) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := app.Store.GetUser(currentUser(r))
		if err != nil || u.Role != models.RoleAdmin {
			writeStoreError(w, store.ErrUnauthorized)
			return
		}
		if err := app.Store.Reload(); err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}
