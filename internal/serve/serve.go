package serve

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	supporthttp "github.com/stellar/go-stellar-sdk/support/http"
	"github.com/stellar/go-stellar-sdk/support/log"

	"github.com/yohaboy/cbe-verifier/internal/crashtracker"
	"github.com/yohaboy/cbe-verifier/internal/monitor"
	"github.com/yohaboy/cbe-verifier/internal/serve/httperror"
	"github.com/yohaboy/cbe-verifier/internal/serve/httphandler"
	"github.com/yohaboy/cbe-verifier/internal/serve/middleware"
	"github.com/yohaboy/cbe-verifier/internal/serve/resultcache"
	"github.com/yohaboy/cbe-verifier/internal/verifier"
)

const (
	ServiceID = "cbe-verifier"

	// Covers a verification whose every attempt times out.
	serverWriteTimeout  = 3 * time.Minute
	serverReadTimeout   = 5 * time.Second
	serverIdleTimeout   = 2 * time.Minute
	maxRequestBodyBytes = 4 * 1024
	rateLimitWindow     = time.Minute

	crashTrackerFlushTimeout = 2 * time.Second
)

type HTTPServerInterface interface {
	Run(conf supporthttp.Config)
}

type HTTPServer struct{}

func (h *HTTPServer) Run(conf supporthttp.Config) {
	supporthttp.Run(conf)
}

type ServeOptions struct {
	Environment        string
	GitCommit          string
	Port               int
	Version            string
	MonitorService     monitor.MonitorServiceInterface
	CorsAllowedOrigins []string
	CrashTrackerClient crashtracker.CrashTrackerClient
	Verifier           verifier.VerifierInterface
	// ResultCacheTTL is how long successful results are cached. Zero disables the cache.
	ResultCacheTTL time.Duration
	resultCache    *resultcache.ResultCache
	// RateLimitPerMinute is the number of verification requests a client IP can make per minute.
	// Zero disables rate limiting.
	RateLimitPerMinute int
}

func (opts *ServeOptions) Validate() error {
	if opts.Verifier == nil {
		return fmt.Errorf("verifier cannot be nil")
	}
	if opts.CrashTrackerClient == nil {
		return fmt.Errorf("crash tracker client cannot be nil")
	}
	if opts.ResultCacheTTL < 0 {
		return fmt.Errorf("result cache TTL cannot be negative")
	}
	if opts.RateLimitPerMinute < 0 {
		return fmt.Errorf("rate limit cannot be negative")
	}
	return nil
}

// SetupDependencies uses the serve options to setup the dependencies for the server.
func (opts *ServeOptions) SetupDependencies() error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("validating serve options: %w", err)
	}

	// Set crash tracker LogAndReportErrors as DefaultReportErrorFunc
	httperror.SetDefaultReportErrorFunc(opts.CrashTrackerClient.LogAndReportErrors)

	// Setup result cache
	if opts.ResultCacheTTL > 0 {
		resultCache, err := resultcache.NewResultCache(resultcache.Options{
			TTL:            opts.ResultCacheTTL,
			MonitorService: opts.MonitorService,
		})
		if err != nil {
			return fmt.Errorf("creating result cache: %w", err)
		}
		opts.resultCache = resultCache
		log.Infof("Caching successful verifications for %s", opts.ResultCacheTTL)
	}

	return nil
}

func Serve(opts ServeOptions, httpServer HTTPServerInterface) error {
	err := opts.SetupDependencies()
	if err != nil {
		return fmt.Errorf("error starting dependencies: %w", err)
	}
	defer opts.CrashTrackerClient.Recover()

	// Start the server
	listenAddr := fmt.Sprintf(":%d", opts.Port)
	serverConfig := supporthttp.Config{
		ListenAddr:          listenAddr,
		Handler:             handleHTTP(opts),
		TCPKeepAlive:        time.Minute * 3,
		ShutdownGracePeriod: time.Second * 50,
		ReadTimeout:         serverReadTimeout,
		WriteTimeout:        serverWriteTimeout,
		IdleTimeout:         serverIdleTimeout,
		OnStarting: func() {
			log.Info("Starting CBE Receipt Verifier Server")
			log.Infof("Listening on %s", listenAddr)
		},
		OnStopping: func() {
			if opts.resultCache != nil {
				log.Info("Closing the result cache...")
				opts.resultCache.Close()
			}
			opts.CrashTrackerClient.FlushEvents(crashTrackerFlushTimeout)

			log.Info("Stopping CBE Receipt Verifier Server")
		},
	}
	httpServer.Run(serverConfig)
	return nil
}

func handleHTTP(o ServeOptions) *chi.Mux {
	mux := chi.NewMux()

	// Middleware
	mux.Use(middleware.CorsMiddleware(o.CorsAllowedOrigins))
	mux.Use(chimiddleware.RequestID)
	mux.Use(chimiddleware.RealIP)
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.RecoverHandler)
	if o.MonitorService != nil {
		mux.Use(middleware.MetricsRequestHandler(o.MonitorService))
	}
	mux.Use(middleware.MaxBodySize(maxRequestBodyBytes))

	mux.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httperror.NotFound("", nil, nil).Render(w)
	})
	mux.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httperror.MethodNotAllowed("", nil, nil).Render(w)
	})

	mux.Get("/health", httphandler.HealthHandler{
		Version:   o.Version,
		ServiceID: ServiceID,
		ReleaseID: o.GitCommit,
	}.ServeHTTP)

	verifyHandler := httphandler.VerifyHandler{
		Verifier:           o.Verifier,
		CrashTrackerClient: o.CrashTrackerClient,
	}
	if o.resultCache != nil {
		verifyHandler.ResultCache = o.resultCache
	}

	mux.Route("/verify", func(r chi.Router) {
		if o.RateLimitPerMinute > 0 {
			r.Use(middleware.RateLimitByIP(o.RateLimitPerMinute, rateLimitWindow))
		}

		r.Post("/", verifyHandler.PostVerify)
		r.Get("/{reference}/{account_suffix}", verifyHandler.GetVerify)
	})

	return mux
}
