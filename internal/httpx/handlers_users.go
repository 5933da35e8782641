package httpx

import (
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"local.dev/lennysocial/internal/models"
)

// GET /users?q= — case-insensitive substring search over usernames.
func HandleSearchUsers(app *AppCtx) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users := app.Store.SearchUsers(r.URL.Query().Get("q"))
		out := make([]models.PublicUser, 0, len(users))
		for _, u := range users {
			out = append(out, u.Public())
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// GET /users/{username} — profile plus social stats for the viewer.
func HandleUserProfile(app *AppCtx) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := mux.Vars(r)["username"]
		u, err := app.Store.GetUser(username)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		stats := app.Store.ProfileStats(username, currentUser(r))
		writeJSON(w, http.StatusOK, map[string]any{
			"user":  u.Public(),
			"stats": stats,
		})
	}
}

// POST /users/{username}/follow — toggle.
func HandleToggleFollow(app *AppCtx) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := mux.Vars(r)["username"]
		following, err := app.Store.ToggleFollow(currentUser(r), username)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"following": following})
	}
}

// GET /users/{username}/posts
func HandleUserPosts(app *AppCtx) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := mux.Vars(r)["username"]
		writeJSON(w, http.StatusOK, app.Store.UserPosts(username, currentUser(r)))
	}
}

// HandleMe serves the caller's own profile. PATCH takes a multipart form
// with a bio field and an optional profile picture, which always overwrites
// the same per-user path.
func HandleMe(app *AppCtx) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := currentUser(r)
		switch r.Method {
		case http.MethodGet:
			u, err := app.Store.GetUser(username)
			if err != nil {
				writeStoreError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, u.Public())

		case http.MethodPatch:
			r.Body = http.MaxBytesReader(w, r.Body, 20<<20)
			if err := r.ParseMultipartForm(25 << 20); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "parse form: " + err.Error()})
				return
			}
			bio := r.FormValue("bio")

			pic := ""
			if file, hdr, err := r.FormFile("profile_pic"); err == nil {
				defer file.Close()
				if hdr.Filename != "" {
					pic = "profile_" + safeName(username) + ".png"
					if err := writeUpload(filepath.Join(app.Paths.UploadsDir, pic), file); err != nil {
						writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
						return
					}
				}
			}

			u, err := app.Store.UpdateProfile(username, bio, pic)
			if err != nil {
				writeStoreError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, u.Public())

		default:
			writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		}
	}
}
