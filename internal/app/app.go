package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"thesistrack_backend/internal/config"
	"thesistrack_backend/internal/controller"
	"thesistrack_backend/internal/repository"
	"thesistrack_backend/internal/service"
	"thesistrack_backend/pkg/database"
	"thesistrack_backend/pkg/logger"
	"thesistrack_backend/pkg/monitoring"
	"thesistrack_backend/pkg/security"
	"thesistrack_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user         *repository.UserRepository
	session      *repository.SessionRepository
	student      *repository.StudentRepository
	rubric       *repository.RubricRepository
	score        *repository.ScoreRepository
	panel        *repository.PanelRepository
	defense      *repository.DefenseRepository
	notification *repository.NotificationRepository
	manuscript   *repository.ManuscriptRepository
}

type services struct {
	auth         *service.AuthService
	user         *service.UserService
	session      *service.SessionService
	student      *service.StudentService
	rubric       *service.RubricService
	scoring      *service.ScoringService
	progression  *service.ProgressionService
	panel        *service.PanelService
	defense      *service.DefenseService
	notification *service.NotificationService
	dashboard    *service.DashboardService
	storage      *service.StorageService
	manuscript   *service.ManuscriptService
}

type controllers struct {
	auth         *controller.AuthController
	user         *controller.UserController
	session      *controller.SessionController
	student      *controller.StudentController
	rubric       *controller.RubricController
	scoring      *controller.ScoringController
	progression  *controller.ProgressionController
	panel        *controller.PanelController
	defense      *controller.DefenseController
	notification *controller.NotificationController
	dashboard    *controller.DashboardController
	manuscript   *controller.ManuscriptController
	health       *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig takes over the reloadable parts of a freshly parsed config and
// fans it out to registered callbacks. Connection settings need a restart.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config.CORS = cfg.CORS
	a.Config.RateLimit = cfg.RateLimit
	a.Config.JWT = cfg.JWT
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		session:      repository.NewSessionRepository(db),
		student:      repository.NewStudentRepository(db),
		rubric:       repository.NewRubricRepository(db),
		score:        repository.NewScoreRepository(db),
		panel:        repository.NewPanelRepository(db),
		defense:      repository.NewDefenseRepository(db, rdb),
		notification: repository.NewNotificationRepository(db, rdb),
		manuscript:   repository.NewManuscriptRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) (*services, error) {
	s := &services{}

	storage, err := service.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}
	s.storage = storage

	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.session = service.NewSessionService(repos.session)
	s.student = service.NewStudentService(repos.student, repos.user, repos.session)
	s.rubric = service.NewRubricService(repos.rubric, repos.session)
	s.notification = service.NewNotificationService(repos.notification)
	s.panel = service.NewPanelService(repos.panel, repos.student, repos.user, s.notification)
	s.scoring = service.NewScoringService(repos.score, repos.student, s.rubric, s.panel)
	s.progression = service.NewProgressionService(repos.student, s.scoring, s.panel, s.notification)
	s.defense = service.NewDefenseService(repos.defense, repos.student, repos.user, repos.session, s.notification)
	s.dashboard = service.NewDashboardService(repos.student, repos.defense, repos.panel, repos.notification)
	s.manuscript = service.NewManuscriptService(repos.manuscript, repos.student, s.storage, s.panel, s.notification)

	return s, nil
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth),
		user:         controller.NewUserController(s.user),
		session:      controller.NewSessionController(s.session),
		student:      controller.NewStudentController(s.student, s.progression),
		rubric:       controller.NewRubricController(s.rubric),
		scoring:      controller.NewScoringController(s.scoring, s.student),
		progression:  controller.NewProgressionController(s.progression, s.auth),
		panel:        controller.NewPanelController(s.panel),
		defense:      controller.NewDefenseController(s.defense),
		notification: controller.NewNotificationController(s.notification),
		dashboard:    controller.NewDashboardController(s.dashboard, s.auth),
		manuscript:   controller.NewManuscriptController(s.manuscript, s.student),
		health:       controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 600
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// degraded mode: caches fall through to MySQL
		logger.Log.Warn("Redis unavailable, running without caches", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb)
	services, err := app.initServices(repos, cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("thesistrack", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
