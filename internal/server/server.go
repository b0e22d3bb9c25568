package server

import (
	"context"
	"net/http"

	"clubdeportivo/internal/activity"
	"clubdeportivo/internal/class"
	"clubdeportivo/internal/config"
	"clubdeportivo/internal/enrollment"
	"clubdeportivo/internal/equipment"
	"clubdeportivo/internal/instructor"
	"clubdeportivo/internal/student"
	"clubdeportivo/internal/timeslot"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	db     *sqlx.DB
	config *config.Config
	http   *http.Server
}

func New(db *sqlx.DB, cfg *config.Config) *Server {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(ErrorMiddleware())

	activityHandler := activity.NewHandler(db)
	timeslotHandler := timeslot.NewHandler(db)
	studentHandler := student.NewHandler(db)
	instructorHandler := instructor.NewHandler(db)
	classHandler := class.NewHandler(db)
	enrollmentHandler := enrollment.NewHandler(db)
	equipmentHandler := equipment.NewHandler(db)

	actividades := router.Group("/actividades")
	{
		actividades.GET("", activityHandler.List)
		actividades.POST("", activityHandler.Create)
		actividades.GET("/populares", activityHandler.Popular)
		actividades.PUT("/:id", activityHandler.Update)
		actividades.DELETE("/:id", activityHandler.Delete)
	}

	turnos := router.Group("/turnos")
	{
		turnos.GET("", timeslotHandler.List)
		turnos.POST("", timeslotHandler.Create)
		turnos.GET("/clases", timeslotHandler.Usage)
		turnos.DELETE("/:id", timeslotHandler.Delete)
	}

	alumnos := router.Group("/alumnos")
	{
		alumnos.GET("", studentHandler.List)
		alumnos.POST("", studentHandler.Create)
		alumnos.PUT("/:ci", studentHandler.Update)
		alumnos.DELETE("/:ci", studentHandler.Delete)
	}

	authLimiter := RateLimitMiddleware(5, 10)
	router.POST("/register", authLimiter, studentHandler.Register)
	router.POST("/login", authLimiter, studentHandler.Login)
	router.DELETE("/login/:ci", studentHandler.DeleteCredential)

	instructores := router.Group("/instructores")
	{
		instructores.GET("", instructorHandler.List)
		instructores.POST("", instructorHandler.Create)
	}

	clases := router.Group("/clases")
	{
		clases.GET("", classHandler.List)
		clases.POST("", classHandler.Create)
	}
	router.GET("/clases_alumno/:ci", classHandler.ListByStudent)

	router.POST("/inscribir_alumno", enrollmentHandler.Enroll)
	router.DELETE("/desinscribir_alumno/:id_clase/:ci", enrollmentHandler.Unenroll)

	router.GET("/equipamiento", equipmentHandler.List)

	router.GET("/health", Health(db))
	router.GET("/metrics", Metrics())

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
