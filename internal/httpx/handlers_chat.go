package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

// GET /chats — the caller's chat overview: distinct partners plus every
// message the caller is part of.
func HandleChats(app *AppCtx) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := currentUser(r)
		writeJSON(w, http.StatusOK, map[string]any{
			"partners": app.Store.ChatPartners(username),
			"messages": app.Store.UserChats(username),
		})
	}
}

// GET  /chats/{friend} — the conversation with friend, insertion order.
// POST /chats/{friend} — send a message; empty bodies are dropped silently.
func HandleConversation(app *AppCtx) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := currentUser(r)
		friend := mux.Vars(r)["friend"]

		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, app.Store.ListConversation(username, friend))

		case http.MethodPost:
			var in struct {
				Message string `json:"message"`
			}
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
				return
			}
			m, ok, err := app.Store.SendChatMessage(username, friend, in.Message)
			if err != nil {
				writeStoreError(w, err)
				return
			}
			if !ok {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			writeJSON(w, http.StatusCreated, m)

		default:
			writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		}
	}
}
