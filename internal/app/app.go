package app

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aniruddha1321/WellNest/internal/config"
	httpx "github.com/aniruddha1321/WellNest/internal/http"
	"github.com/aniruddha1321/WellNest/internal/http/middleware"
	"github.com/aniruddha1321/WellNest/internal/observability/metrics"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	metrics.MustRegister("accountsvc")

	container, err := NewContainer(cfg)
	if err != nil {
		return err
	}

	authMW := middleware.AuthMiddleware(container.TokenSvc)
	r := httpx.BuildRouter(container.AccountH, authMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
