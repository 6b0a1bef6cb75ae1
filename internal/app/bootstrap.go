package app

import (
	"fmt"
	"log"
	"os"
	"strings"

	"talentmate/internal/config"
	"talentmate/internal/delivery/http/handler"
	"talentmate/internal/delivery/http/middleware"
	"talentmate/internal/delivery/http/routes"
	v1 "talentmate/internal/delivery/http/routes/v1"
	"talentmate/internal/domain/interview"
	"talentmate/internal/extract"
	"talentmate/internal/jobimport"
	"talentmate/internal/mail"
	"talentmate/internal/pkg/jwt"
	"talentmate/internal/report"
	"talentmate/internal/repository"
	"talentmate/internal/sentiment"
	"talentmate/internal/usecase"
	"talentmate/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
	Hub   *ws.Hub
}

func New(c *Container) *App {
	cfg := c.Config
	logger := c.Logger

	f := fiber.New(fiber.Config{
		AppName:   cfg.App.AppName,
		BodyLimit: bodyLimit(cfg.Upload.MaxSizeBytes),
	})

	errMw := middleware.NewErrorMiddleware(logger)
	f.Use(errMw.Middleware())
	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(c.DB)
	sessionRepo := repository.NewPostgresSessionRepository(c.DB)
	requestRepo := repository.NewPostgresRequestRepository(c.DB)
	notifRepo := repository.NewPostgresNotificationRepository(c.DB)

	hub := ws.NewHub(logger)
	go hub.Run()

	notifUC := usecase.NewNotificationUsecase(notifRepo, hub, c.Cache, logger)

	// sentiment.New returns a typed nil when the service is not
	// configured; the scorer must see an untyped nil instead.
	var analyzer interview.SentimentAnalyzer
	if sc := sentiment.New(cfg.Sentiment); sc != nil {
		analyzer = sc
	}

	generator := interview.NewGenerator(interview.DefaultBank())
	scorer := interview.NewScorer(analyzer)

	interviewUC := usecase.NewInterviewUsecase(
		sessionRepo,
		generator,
		scorer,
		extract.Text,
		c.Cache,
		notifUC,
		logger,
	)
	scheduleUC := usecase.NewScheduleUsecase(
		requestRepo,
		userRepo,
		notifUC,
		mail.NewLogMailer(logger, ""),
		logger,
	)
	userUC := usecase.NewUserUsecase(userRepo, sessionRepo, requestRepo)
	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)

	reports := report.NewGenerator(cfg.Report.Timeout, logger)
	importer := jobimport.NewImporter(logger)

	api := v1.Handlers{
		AuthMw:       authMw,
		Auth:         handler.NewAuthHandler(authUC),
		User:         handler.NewUserHandler(userUC),
		Interview:    handler.NewInterviewHandler(interviewUC, reports, cfg.Upload.MaxSizeBytes),
		Schedule:     handler.NewScheduleHandler(scheduleUC),
		Notification: handler.NewNotificationHandler(notifUC),
		Recruiter:    handler.NewRecruiterHandler(userUC, scheduleUC, importer),
	}

	routes.NewRegistry(api, ws.NewHandler(hub, jwtSvc, logger)).Register(f)

	return &App{Fiber: f, Hub: hub}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	app := New(c)
	return app, c.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}

// bodyLimit leaves headroom above the resume cap for the rest of the
// multipart body.
func bodyLimit(maxUpload int64) int {
	const slack = 1 << 20
	if maxUpload <= 0 {
		return 0
	}
	return int(maxUpload) + slack
}
