package router

import (
	"net/http"

	"boardhub/app/controllers"
	"boardhub/app/middleware"
)

// New assembles the API surface. The auth limiter wraps only the credential
// endpoints; the general limiter and request logging wrap everything in
// initialize.Build.
func New(
	authCtrl *controllers.AuthController,
	boardCtrl *controllers.BoardController,
	msgCtrl *controllers.MessageController,
	masterCtrl *controllers.MasterController,
	mw *middleware.Auth,
	authLimiter *middleware.RateLimiter,
) http.Handler {
	mux := http.NewServeMux()

	// auth
	mux.Handle("POST /api/auth/register", authLimiter.Wrap(http.HandlerFunc(authCtrl.Register)))
	mux.Handle("POST /api/auth/login", authLimiter.Wrap(http.HandlerFunc(authCtrl.Login)))
	mux.Handle("GET /api/auth/me", mw.RequireAuth(http.HandlerFunc(authCtrl.Me)))

	// boards
	mux.Handle("POST /api/boards", mw.RequireAuth(http.HandlerFunc(boardCtrl.Create)))
	mux.Handle("GET /api/boards", mw.RequireAuth(http.HandlerFunc(boardCtrl.List)))
	mux.Handle("GET /api/boards/joined", mw.RequireAuth(http.HandlerFunc(boardCtrl.ListJoined)))
	mux.Handle("PUT /api/boards/{boardID}", mw.RequireAuth(http.HandlerFunc(boardCtrl.Update)))
	mux.Handle("DELETE /api/boards/{boardID}", mw.RequireAuth(http.HandlerFunc(boardCtrl.Delete)))
	mux.Handle("POST /api/boards/{boardID}/join", mw.RequireAuth(http.HandlerFunc(boardCtrl.Join)))
	mux.Handle("DELETE /api/boards/{boardID}/join", mw.RequireAuth(http.HandlerFunc(boardCtrl.Leave)))
	mux.Handle("POST /api/boards/{boardID}/members", mw.RequireAuth(http.HandlerFunc(boardCtrl.AddMember)))
	mux.Handle("GET /api/boards/{boardID}/members", mw.RequireAuth(http.HandlerFunc(boardCtrl.ListMembers)))
	mux.Handle("POST /api/boards/{boardID}/ban/{userID}", mw.RequireAuth(http.HandlerFunc(boardCtrl.Ban)))
	mux.Handle("DELETE /api/boards/{boardID}/ban/{userID}", mw.RequireAuth(http.HandlerFunc(boardCtrl.Unban)))

	// messages
	mux.Handle("GET /api/messages", mw.RequireAuth(http.HandlerFunc(msgCtrl.ListAccessible)))
	mux.Handle("GET /api/boards/{boardID}/messages", mw.RequireAuth(http.HandlerFunc(msgCtrl.ListBoard)))
	mux.Handle("POST /api/messages", mw.RequireAuth(http.HandlerFunc(msgCtrl.Post)))
	mux.Handle("POST /api/messages/{messageID}/reply", mw.RequireAuth(http.HandlerFunc(msgCtrl.Reply)))

	// master-only
	mux.Handle("GET /api/master/users", mw.RequireMaster(http.HandlerFunc(masterCtrl.ListUsers)))
	mux.Handle("PUT /api/master/users/{userID}", mw.RequireMaster(http.HandlerFunc(masterCtrl.UpdateUser)))
	mux.Handle("PUT /api/master/boards/{boardID}", mw.RequireMaster(http.HandlerFunc(masterCtrl.UpdateBoard)))

	return mux
}
