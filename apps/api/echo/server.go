package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/trezcool/horario/core"
	"github.com/trezcool/horario/core/calendar"
	"github.com/trezcool/horario/core/grade"
	"github.com/trezcool/horario/core/schedule"
)

type (
	Deps struct {
		Logger      core.Logger
		Translator  ut.Translator
		ScheduleSvc schedule.ServiceInterface
		GradeSvc    grade.ServiceInterface
		CalendarSvc calendar.ServiceInterface
	}

	Server struct {
		conf         *core.Config
		deps         *Deps
		app          *echo.Echo
		serverErrors chan error
		shutdown     chan os.Signal
	}
)

func NewServer(conf *core.Config, deps *Deps) *Server {
	s := &Server{
		conf:         conf,
		deps:         deps,
		app:          echo.New(),
		serverErrors: make(chan error, 1),
		shutdown:     make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *Server) setup() {
	s.app.HideBanner = true
	s.app.Debug = s.conf.Debug
	s.app.Server.ReadTimeout = s.conf.Server.ReadTimeout
	s.app.Server.WriteTimeout = s.conf.Server.WriteTimeout

	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	if !s.conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(s.conf.Debug || s.conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}
	if len(s.conf.Server.CORSOrigins) > 0 {
		s.app.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: s.conf.Server.CORSOrigins}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Translator, s.signalShutdown)

	s.app.GET("/", s.home)

	api := s.app.Group("/api")
	registerScheduleAPI(api, s.deps.ScheduleSvc)
	registerGradeAPI(api, s.deps.GradeSvc)
	registerCalendarAPI(api, s.deps.CalendarSvc)
}

// Start blocks until the server stops. Errors other than a clean shutdown are sent to Errors.
func (s *Server) Start() {
	if err := s.app.Start(s.conf.Server.Address); err != nil && err != http.ErrServerClosed {
		s.serverErrors <- err
	}
}

func (s *Server) Errors() <-chan error {
	return s.serverErrors
}

func (s *Server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

func (s *Server) signalShutdown() {
	select {
	case s.shutdown <- syscall.SIGTERM:
	default: // a shutdown is already pending
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	return s.app.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func (s *Server) home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to "+s.conf.AppName+" API!")
}
