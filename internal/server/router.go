package server

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/coursematch/coursematch-backend/internal/handlers"
	"github.com/coursematch/coursematch-backend/internal/logger"
	"github.com/coursematch/coursematch-backend/internal/middleware"
)

type RouterConfig struct {
	Log *logger.Logger

	HealthHandler   *handlers.HealthHandler
	ChatHandler     *handlers.ChatHandler
	FeedbackHandler *handlers.FeedbackHandler
	ProfileHandler  *handlers.ProfileHandler
	CourseHandler   *handlers.CourseHandler
	SyllabusHandler *handlers.SyllabusHandler

	TracingEnabled bool
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(cfg.Log))
	r.Use(middleware.CORS())
	if cfg.TracingEnabled {
		r.Use(otelgin.Middleware("coursematch-backend"))
	}

	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		if cfg.ChatHandler != nil {
			api.POST("/chat", cfg.ChatHandler.Chat)
		}

		if cfg.FeedbackHandler != nil {
			api.POST("/feedback", cfg.FeedbackHandler.Record)
			api.GET("/analytics", cfg.FeedbackHandler.Analytics)
		}

		if cfg.ProfileHandler != nil {
			api.GET("/profile", cfg.ProfileHandler.Get)
			api.POST("/profile", cfg.ProfileHandler.Save)
		}

		if cfg.CourseHandler != nil {
			api.GET("/courses", cfg.CourseHandler.ListCourses)
			api.GET("/professors", cfg.CourseHandler.ListProfessors)
		}

		if cfg.SyllabusHandler != nil {
			api.POST("/syllabus/upload", cfg.SyllabusHandler.Upload)
			api.GET("/syllabus/:courseId", cfg.SyllabusHandler.Get)
		}
	}

	return r
}
