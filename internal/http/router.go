package httpx

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aniruddha1321/WellNest/internal/http/handlers"
	"github.com/aniruddha1321/WellNest/internal/http/middleware"
)

func BuildRouter(ah *handlers.AccountHandlers, authMW gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Metrics())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := r.Group("/api/auth")
	auth.GET("/test", ah.Test)
	auth.POST("/signup", ah.Signup)
	auth.POST("/send-verification", ah.SendVerification)
	auth.GET("/send-verification", ah.SendVerification)
	auth.POST("/verify-email", ah.VerifyEmail)
	auth.GET("/verify-email", ah.VerifyEmail)
	auth.POST("/login", ah.Login)
	auth.POST("/forgot-password", ah.ForgotPassword)
	auth.POST("/reset-password", ah.ResetPassword)

	me := r.Group("/api/auth").Use(authMW)
	me.GET("/me", ah.Me)

	return r
}
