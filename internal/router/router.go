package router

import (
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	docs "github.com/wishweek/backend/api"
	"github.com/wishweek/backend/internal/controllers/healthz"
	"github.com/wishweek/backend/internal/controllers/root"
	v1 "github.com/wishweek/backend/internal/controllers/v1"
	"github.com/wishweek/backend/internal/controllers/version"
	"github.com/wishweek/backend/internal/httputil"
	"github.com/wishweek/backend/internal/models"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time, see Makefile.
var apiVersion = "0.0.0"

// Config sets up the router with all middlewares. The returned teardown
// function must be called before the router is discarded, it unregisters
// the Prometheus metrics so that a new router can be configured.
func Config(url *url.URL) (*gin.Engine, func(), error) {
	// Set up the router and middlewares
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

	if err := registerPrometheusMetrics(); err != nil {
		return nil, func() {}, err
	}
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

	log.Debug().Str("API Base URL", url.String()).Str("Host", url.Host).Str("Path", url.Path).Msg("Router")
	log.Info().Str("version", apiVersion).Msg("Router")

	docs.SwaggerInfo.Host = url.Host
	docs.SwaggerInfo.BasePath = url.Path
	docs.SwaggerInfo.Title = "WishWeek"
	docs.SwaggerInfo.Version = apiVersion
	docs.SwaggerInfo.Description = "The backend for WishWeek, a weekly allowance and wish pool tracker."

	return r, func() { unregisterPrometheusMetrics() }, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in.
// Separating this from Config() allows attaching them to different paths for
// different use cases.
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

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 setup
	v1Group := group.Group("/v1")
	{
		v1Group.GET("", GetV1)
		v1Group.OPTIONS("", OptionsV1)
	}

	v1.RegisterBudgetRoutes(v1Group.Group("/budgets"))
	v1.RegisterTransactionRoutes(v1Group.Group("/transactions"))
	v1.RegisterWishRoutes(v1Group.Group("/wishes"))
	v1.RegisterPoolRoutes(v1Group.Group("/pool"))
	v1.RegisterFixedExpenseRoutes(v1Group.Group("/fixed-expenses"))
	v1.RegisterSpecialBudgetRoutes(v1Group.Group("/special-budgets"))
	v1.RegisterSpecialBudgetItemRoutes(v1Group.Group("/special-budget-items"))
}

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	Budgets            string `json:"budgets" example:"https://example.com/api/v1/budgets"`                         // Weekly budgets
	Transactions       string `json:"transactions" example:"https://example.com/api/v1/transactions"`               // Transactions
	Wishes             string `json:"wishes" example:"https://example.com/api/v1/wishes"`                           // Wishes
	Pool               string `json:"pool" example:"https://example.com/api/v1/pool"`                               // The wish pool
	FixedExpenses      string `json:"fixedExpenses" example:"https://example.com/api/v1/fixed-expenses"`            // Fixed monthly expenses
	SpecialBudgets     string `json:"specialBudgets" example:"https://example.com/api/v1/special-budgets"`          // Special budgets
	SpecialBudgetItems string `json:"specialBudgetItems" example:"https://example.com/api/v1/special-budget-items"` // Special budget items
}

// GetV1 returns the link list for the v1 API
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			General
//	@Success		200	{object}	V1Response
//	@Router			/v1 [get]
func GetV1(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Budgets:            url + "/v1/budgets",
			Transactions:       url + "/v1/transactions",
			Wishes:             url + "/v1/wishes",
			Pool:               url + "/v1/pool",
			FixedExpenses:      url + "/v1/fixed-expenses",
			SpecialBudgets:     url + "/v1/special-budgets",
			SpecialBudgetItems: url + "/v1/special-budget-items",
		},
	})
}

// OptionsV1 returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
