package serve

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	supporthttp "github.com/stellar/go-stellar-sdk/support/http"
	"github.com/stellar/go-stellar-sdk/support/log"

	"github.com/yohaboy/cbe-verifier/internal/monitor"
)

const metricsWriteTimeout = 10 * time.Second

// MetricsServeOptions configures the metrics server, which runs on its own port next to the
// verification API.
type MetricsServeOptions struct {
	Port        int
	Environment string

	MonitorService monitor.MonitorServiceInterface
	MetricType     monitor.MetricType
}

func MetricsServe(opts MetricsServeOptions, httpServer HTTPServerInterface) error {
	router, err := metricsRouter(opts.MonitorService)
	if err != nil {
		return fmt.Errorf("setting up the metrics handler: %w", err)
	}

	listenAddr := fmt.Sprintf(":%d", opts.Port)
	httpServer.Run(supporthttp.Config{
		ListenAddr:   listenAddr,
		Handler:      router,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: metricsWriteTimeout,
		IdleTimeout:  serverIdleTimeout,
		OnStarting: func() {
			log.Infof("Starting the %s metrics server on %s", opts.MetricType, listenAddr)
		},
		OnStopping: func() {
			log.Infof("Stopping the %s metrics server", opts.MetricType)
		},
	})
	return nil
}

// metricsRouter only serves GET /metrics.
func metricsRouter(monitorService monitor.MonitorServiceInterface) (http.Handler, error) {
	metricsHandler, err := monitorService.GetMetricHTTPHandler()
	if err != nil {
		return nil, fmt.Errorf("getting metric http.Handler: %w", err)
	}

	router := chi.NewRouter()
	router.Method(http.MethodGet, "/metrics", metricsHandler)
	return router, nil
}
