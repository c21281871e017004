package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/campusgg/events-api/docs"
	v1 "github.com/campusgg/events-api/internal/api/handler/v1"
	"github.com/campusgg/events-api/internal/api/middleware"
	"github.com/campusgg/events-api/internal/config"
	"github.com/campusgg/events-api/internal/repository"
	"github.com/campusgg/events-api/internal/repository/dao"
	"github.com/campusgg/events-api/internal/service"
)

type Server struct {
	Config    *config.AppConfig
	Router    *gin.Engine
	PageViews *service.PageViewCounter
	Live      *v1.LiveHandler
}

type handlers struct {
	auth  *v1.AuthHandler
	user  *v1.UserHandler
	event *v1.EventHandler
	rsvp  *v1.RSVPHandler
	live  *v1.LiveHandler
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()
	s.MountHandlers(s.initHandlers(db))

	return s
}

func (s *Server) initHandlers(db *gorm.DB) handlers {
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db), dao.NewEventResponseDAO(db))

	s.PageViews = service.NewPageViewCounter(eventRepo)

	eventSvc := service.NewEventService(eventRepo, userRepo, s.PageViews)
	rsvpSvc := service.NewRSVPService(eventRepo, userRepo)

	s.Live = v1.NewLiveHandler(eventSvc, s.Config.API.AllowedCORSDomains)

	return handlers{
		auth:  v1.NewAuthHandler(s.Config.API, service.NewAuthService(userRepo)),
		user:  v1.NewUserHandler(service.NewUserService(userRepo)),
		event: v1.NewEventHandler(eventSvc),
		rsvp:  v1.NewRSVPHandler(rsvpSvc, eventSvc, s.Live),
		live:  s.Live,
	}
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(h handlers) {
	const basePath = "/api/v1"

	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey, s.Config.API.AuthCookieName)

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/signup", h.auth.HandleSignup)
		public.POST("/auth/login", h.auth.HandleLogin)
		public.POST("/auth/logout", h.auth.HandleLogout)

		public.GET("/users/recent", h.user.HandleGetRecentUsers)
		public.GET("/schools/:schoolID/users", h.user.HandleGetSchoolUsers)

		public.GET("/schedule/options", h.event.HandleGetScheduleOptions)
		public.GET("/events/:eventID/attendees", h.event.HandleGetAttendees)
		public.GET("/events/:eventID/calendar.ics", h.event.HandleExportCalendar)
		public.GET("/events/:eventID/live", h.live.HandleLive)
	}

	pages := s.Router.Group(basePath, authenticator.IdentifyFromCookie("eventID"))
	{
		pages.GET("/events/:eventID", h.event.HandleGetEventPage)
	}

	private := s.Router.Group(basePath, authenticator.VerifyJWT())
	{
		private.POST("/auth/refresh", h.auth.HandleRefresh)
		private.GET("/users/:userID", h.user.HandleGetUser)
		private.POST("/events/:eventID/rsvp", h.rsvp.HandleRespond)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "campusgg events API"
	docs.SwaggerInfo.Description = "Event pages, attendee lists and RSVPs."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
