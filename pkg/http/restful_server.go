package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"liyu1981.xyz/aquarium-service/pkg/aqua"
	"liyu1981.xyz/aquarium-service/pkg/common"
	"liyu1981.xyz/aquarium-service/pkg/metrics"
)

type RestfulServer struct {
	Server           *gin.Engine
	Aqua             *aqua.Aqua
	RateLimiterStore *aqua.RateLimiterStore
	Metrics          *metrics.Metrics
	// RequireAuth puts the aquarium and fish routes behind the bearer-token gate.
	RequireAuth bool
}

func (rs *RestfulServer) logger() *zap.Logger {
	return common.GetLoggerWith(common.LoggerNameRestfulServer)
}

func (rs *RestfulServer) CheckClientLimiter(c *gin.Context) bool {
	return rs.RateLimiterStore.Allow(c.ClientIP())
}

func (rs *RestfulServer) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rs.CheckClientLimiter(c) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}

func (rs *RestfulServer) recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		rs.logger().Error("Recovered from panic",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": errInternalMessage})
	})
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AddAllowHeaders("Authorization")
	return cfg
}

func (rs *RestfulServer) Setup() {
	if rs.Metrics == nil {
		rs.Metrics = metrics.New()
	}

	rs.Server.Use(gin.Logger(), rs.recovery(), cors.New(corsConfig()), rs.Metrics.Middleware())

	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/metrics", gin.WrapH(rs.Metrics.Handler()))

	api := rs.Server.Group("/api")
	{
		api.POST("/login", rs.RateLimit(), rs.Login)
		api.POST("/register", rs.RateLimit(), rs.Register)
		api.POST("/logout", rs.AuthGate(), rs.Logout)
		api.GET("/me", rs.AuthGate(), rs.Me)
	}

	records := api.Group("")
	if rs.RequireAuth {
		records.Use(rs.AuthGate())
	}
	{
		records.GET("/aquariums", rs.ListAquariums)
		records.POST("/aquariums", rs.RateLimit(), rs.CreateAquarium)
		records.DELETE("/aquariums/:id", rs.RateLimit(), rs.DeleteAquarium)
		records.GET("/aquariums/:id/params", rs.ListMeasurements)
		records.POST("/aquariums/:id/params", rs.RateLimit(), rs.AddMeasurement)

		records.GET("/fish", rs.ListFish)
		records.POST("/fish", rs.RateLimit(), rs.CreateFish)
		records.DELETE("/fish/:id", rs.RateLimit(), rs.DeleteFish)
	}
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	if err := rs.Aqua.Db.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
