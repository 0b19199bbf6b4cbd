package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/boxstory/yk/config"
	"github.com/boxstory/yk/internal/api/handler"
	"github.com/boxstory/yk/internal/api/middleware"
	"github.com/boxstory/yk/internal/model"
	"github.com/boxstory/yk/internal/service"
	"github.com/boxstory/yk/pkg/jwt"
	"github.com/boxstory/yk/pkg/redis"
)

// Setup builds the gin engine. rdb may be nil; blacklist checks and rate
// limiting are then skipped.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, db *gorm.DB, logger *zap.Logger) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := service.RegisterValidators(v); err != nil {
			return nil, err
		}
	}

	var (
		revoked middleware.RevocationChecker
		limiter middleware.Limiter
	)
	if rdb != nil {
		revoked, limiter = rdb, rdb
	}

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	r.GET("/health", health(db, rdb))

	landlord := []gin.HandlerFunc{middleware.RoleAuth(model.RoleLandlord, model.RoleAdmin), middleware.BusinessOnly()}
	realtor := middleware.RoleAuth(model.RoleRealtor, model.RoleAdmin)

	v1 := r.Group("/api/v1")
	{
		// public
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/register", h.Auth.Register)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}
		v1.POST("/inquiries",
			middleware.RateLimit(limiter, cfg.RateLimit.InquiryLimit, cfg.RateLimit.InquiryWindow),
			h.Inquiry.SubmitInquiry)

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, revoked, logger))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.GetCurrentUser)

			properties := authorized.Group("/properties", landlord...)
			{
				properties.GET("", h.Property.ListProperties)
				properties.POST("", h.Property.CreateProperty)
				properties.GET("/:id", h.Property.GetProperty)
				properties.PUT("/:id", h.Property.UpdateProperty)
				properties.DELETE("/:id", h.Property.DeleteProperty)
				properties.GET("/:id/units", h.Unit.ListUnits)
				properties.POST("/:id/units", h.Unit.CreateUnit)
			}

			units := authorized.Group("/units", landlord...)
			{
				units.GET("/:id", h.Unit.GetUnit)
				units.PUT("/:id", h.Unit.UpdateUnit)
				units.DELETE("/:id", h.Unit.DeleteUnit)
				units.GET("/:id/status", h.Vacancy.GetStatus)
				units.PUT("/:id/status", h.Vacancy.UpdateStatus)
			}

			dashboard := authorized.Group("/dashboard", landlord...)
			{
				dashboard.GET("/summary", h.Dashboard.Summary)
				dashboard.GET("/vacant", h.Dashboard.Vacant)
				dashboard.GET("/vacant-soon", h.Dashboard.VacantSoon)
				dashboard.GET("/occupied", h.Dashboard.Occupied)
				dashboard.GET("/unlisted", h.Dashboard.Unlisted)
				dashboard.GET("/status/:status", h.Dashboard.ByStatus)
				dashboard.GET("/export", h.Dashboard.Export)
				dashboard.GET("/calendar.ics", h.Dashboard.Calendar)
			}

			authorized.GET("/market", realtor, h.Market.ListMarket)
			authorized.GET("/inquiries", realtor, h.Inquiry.ListInquiries)
		}
	}

	return r, nil
}

// health reports database reachability; redis is informational only.
func health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		body := gin.H{"status": "ok", "database": "ok", "redis": "disabled"}

		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			body["status"], body["database"] = "degraded", "unreachable"
			c.JSON(http.StatusServiceUnavailable, body)
			return
		}
		if rdb != nil {
			body["redis"] = "ok"
			if err := rdb.Ping(ctx); err != nil {
				body["redis"] = "unreachable"
			}
		}
		c.JSON(http.StatusOK, body)
	}
}
