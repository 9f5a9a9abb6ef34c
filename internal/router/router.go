package router

import (
	"net/url"
	"os"
	"strings"

	"github.com/Farhad030619/UniWallet/internal/controllers/healthz"
	"github.com/Farhad030619/UniWallet/internal/controllers/root"
	v1 "github.com/Farhad030619/UniWallet/internal/controllers/v1"
	"github.com/Farhad030619/UniWallet/internal/controllers/version"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// This is set at build time, see Makefile.
var apiVersion = "0.0.0"

// Config sets up the router and middlewares. The returned teardown function
// must be called before the process (or test) discards the router.
func Config(url *url.URL) (*gin.Engine, func(), error) {
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(url))
	r.Use(MetricsMiddleware())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("CORS Allowed Origins", allowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	if err := registerPrometheusMetrics(); err != nil {
		return nil, func() {}, err
	}

	log.Debug().Str("API Base URL", url.String()).Str("Host", url.Host).Str("Path", url.Path).Msg("Router")
	log.Info().Str("version", apiVersion).Msg("Router")

	return r, func() { unregisterPrometheusMetrics() }, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in
// Separating this from Config() allows us to attach it to different
// paths for different use cases.
func AttachRoutes(group *gin.RouterGroup) {
	root.RegisterRoutes(group)
	version.RegisterRoutes(group.Group("/version"), apiVersion)
	healthz.RegisterRoutes(group.Group("/healthz"))

	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.RouteRegister(group, "debug/pprof")
	}

	// API v1 setup
	v1Group := group.Group("/v1")
	{
		v1Group.GET("", v1.Get)
		v1Group.DELETE("", v1.Cleanup)
		v1Group.OPTIONS("", v1.Options)
	}

	v1.RegisterTransactionRoutes(v1Group.Group("/transactions"))
	v1.RegisterGoalRoutes(v1Group.Group("/goals"))
	v1.RegisterSummaryRoutes(v1Group.Group("/summary"))
	v1.RegisterProfileRoutes(v1Group.Group("/profile"))
	v1.RegisterBadgeRoutes(v1Group.Group("/badges"))
	v1.RegisterPostRoutes(v1Group.Group("/posts"))
	v1.RegisterDealRoutes(v1Group.Group("/deals"))
	v1.RegisterChatRoutes(v1Group.Group("/chat"))
}
