package httpx

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"
)

func HandleFeed(app *AppCtx) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer := currentUser(r)
		writeJSON(w, http.StatusOK, app.Store.DecoratedFeed(viewer))
	}
}

func HandleCreatePost(app *AppCtx) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Content string `json:"content"`
			FileURL string `json:"fileUrl"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
			return
		}
		// The media type is re-derived from the stored filename rather than
		// trusted from the client.
		fileURL := strings.TrimSpace(req.FileURL)
		p, ok, err := app.Store.CreatePost(currentUser(r), req.Content, fileURL, mediaType(fileURL))
		if err != nil {
			writeStoreError(w, err)
			return
		}
		if !ok {
			// Neither content nor file: silently dropped.
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusCreated, p)
	}
}

func HandleDeletePost(app *AppCtx) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		p, err := app.Store.DeletePost(id, currentUser(r))
		if err != nil {
			writeStoreError(w, err)
			return
		}
		if p.FileURL != "" {
			_ = os.Remove(filepath.Join(app.Paths.UploadsDir, filepath.Base(p.FileURL)))
		}
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}

func HandleToggleLike(app *AppCtx) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		liked, count, err := app.Store.ToggleLike(id, currentUser(r))
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"liked": liked, "likeCount": count})
	}
}

func HandleAddComment(app *AppCtx) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		var req struct {
			Content string `json:"content"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
			return
		}
		c, ok, err := app.Store.AddComment(id, currentUser(r), req.Content)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusCreated, c)
	}
}
