package modules

import (
	"expvar"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SystemModule serves /healthz always, and /debug/vars (expvar) plus
// /metrics (prometheus) when debug metrics are enabled.
type SystemModule struct {
	Gatherer       prometheus.Gatherer
	MetricsEnabled bool
}

func NewSystemModule(g prometheus.Gatherer, metricsEnabled bool) *SystemModule {
	return &SystemModule{Gatherer: g, MetricsEnabled: metricsEnabled}
}

func (m *SystemModule) Register(rg *gin.RouterGroup) {
	rg.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if !m.MetricsEnabled {
		return
	}
	rg.GET("/debug/vars", gin.WrapH(expvar.Handler()))
	rg.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Gatherer, promhttp.HandlerOpts{})))
}
