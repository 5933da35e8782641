package httpx

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires every route. Everything past /auth and /healthz requires
// a session token.
func NewRouter(app *AppCtx) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestLog)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods("GET")

	router.HandleFunc("/auth/register", HandleRegister(app)).Methods("POST")
	router.HandleFunc("/auth/login", HandleLogin(app)).Methods("POST")

	router.HandleFunc("/feed", WithAuth(app, HandleFeed(app))).Methods("GET")
	router.HandleFunc("/posts", WithAuth(app, HandleCreatePost(app))).Methods("POST")
	router.HandleFunc("/posts/{id}", WithAuth(app, HandleDeletePost(app))).Methods("DELETE")
	router.HandleFunc("/posts/{id}/like", WithAuth(app, HandleToggleLike(app))).Methods("POST")
	router.HandleFunc("/posts/{id}/comments", WithAuth(app, HandleAddComment(app))).Methods("POST")

	router.HandleFunc("/users", WithAuth(app, HandleSearchUsers(app))).Methods("GET")
	router.HandleFunc("/users/{username}", WithAuth(app, HandleUserProfile(app))).Methods("GET")
	router.HandleFunc("/users/{username}/follow", WithAuth(app, HandleToggleFollow(app))).Methods("POST")
	router.HandleFunc("/users/{username}/posts", WithAuth(app, HandleUserPosts(app))).Methods("GET")

	router.HandleFunc("/me", WithAuth(app, HandleMe(app))).Methods("GET", "PATCH")

	router.HandleFunc("/chats", WithAuth(app, HandleChats(app))).Methods("GET")
	router.HandleFunc("/chats/{friend}", WithAuth(app, HandleConversation(app))).Methods("GET", "POST")

	router.HandleFunc("/upload", WithAuth(app, HandleUpload(app))).Methods("POST")
	router.HandleFunc("/admin/reload", WithAuth(app, HandleAdminReload(app))).Methods("POST")

	router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(app.Paths.UploadsDir))))

	return router
}
