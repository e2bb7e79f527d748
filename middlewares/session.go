package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zaliyastore/shopit-gateway/store"
)

const (
	// SessionCookie identifies the browser session that owns a cart.
	SessionCookie = "sid"

	ContextSessionID = "sessionId"
	ContextStore     = "sessionStore"
)

// Session ensures every request carries a session id and attaches the
// session's store to the context.
func Session(manager *store.SessionManager, maxAge int, secure bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sid, err := ctx.Cookie(SessionCookie)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			ctx.SetSameSite(http.SameSiteStrictMode)
			ctx.SetCookie(SessionCookie, sid, maxAge, "/", "", secure, true)
		}
		ctx.Set(ContextSessionID, sid)
		ctx.Set(ContextStore, manager.Get(ctx.Request.Context(), sid))
		ctx.Next()
	}
}

// SessionID returns the request's session id.
func SessionID(ctx *gin.Context) string {
	return ctx.GetString(ContextSessionID)
}

// SessionStore returns the store attached by Session.
func SessionStore(ctx *gin.Context) *store.Store {
	st, _ := ctx.Get(ContextStore)
	return st.(*store.Store)
}
