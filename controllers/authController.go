package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/zaliyastore/shopit-gateway/backend"
	"github.com/zaliyastore/shopit-gateway/middlewares"
	"github.com/zaliyastore/shopit-gateway/models"
)

// accessTokenTTL matches the upstream session lifetime.
const accessTokenTTL = 48 * time.Hour

type AuthController struct {
	Backend      *backend.Client
	JWTSecret    string
	CookieSecure bool
	Log          *zap.Logger
}

func (a *AuthController) generateJWT(user models.User, backendToken string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"bt":    backendToken,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(accessTokenTTL).Unix(),
	})
	return token.SignedString([]byte(a.JWTSecret))
}

// AuthenticateUser exchanges a third-party id token upstream, mints the
// session JWT and caches the user on the session store. On failure the
// callbackUrl is echoed so the UI can send the visitor back to sign-in.
func (a *AuthController) AuthenticateUser(ctx *gin.Context) {
	var body struct {
		AccessToken string `json:"accessToken" binding:"required"`
		CallbackURL string `json:"callbackUrl"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, backendToken, err := a.Backend.AuthenticateUser(ctx.Request.Context(), body.AccessToken)
	if err != nil {
		a.Log.Warn("authentication exchange failed", zap.Error(err))
		sendJSONResponse(ctx, http.StatusUnauthorized, gin.H{
			"message":     msgAuthFailed,
			"callbackUrl": body.CallbackURL,
		})
		return
	}

	tokenString, err := a.generateJWT(user, backendToken)
	if err != nil {
		a.Log.Error("jwt signing failed", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, "failed to generate token")
		return
	}

	ctx.SetSameSite(http.SameSiteStrictMode)
	ctx.SetCookie(middlewares.AccessTokenCookie, tokenString, int(accessTokenTTL.Seconds()), "/", "", a.CookieSecure, true)

	middlewares.SessionStore(ctx).SetUser(&user)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"user": user})
}

// GetUser re-fetches the authenticated user from upstream, refreshing the
// session cache. The UI calls this on load as its auth check.
func (a *AuthController) GetUser(ctx *gin.Context) {
	user, err := a.Backend.GetUser(ctx.Request.Context(), middlewares.BackendToken(ctx))
	if err != nil {
		respondBackendError(ctx, a.Log, err)
		return
	}
	middlewares.SessionStore(ctx).SetUser(&user)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"user": user})
}

// EditAddress updates the default delivery address upstream and mirrors
// the result onto the session.
func (a *AuthController) EditAddress(ctx *gin.Context) {
	var req backend.EditAddressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := a.Backend.EditAddress(ctx.Request.Context(), middlewares.BackendToken(ctx), req)
	if err != nil {
		respondBackendError(ctx, a.Log, err)
		return
	}
	if !req.AsAdmin {
		middlewares.SessionStore(ctx).SetUser(&user)
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"user": user})
}

// GetExpenseInsight returns the customer's per-collection spend breakdown.
func (a *AuthController) GetExpenseInsight(ctx *gin.Context) {
	insight, err := a.Backend.GetExpenseInsight(ctx.Request.Context(), middlewares.BackendToken(ctx))
	if err != nil {
		respondBackendError(ctx, a.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, insight)
}
