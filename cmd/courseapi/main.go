package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"

	"github.com/amirhosseinghanipour/courseapi/internal/application/courses"
	"github.com/amirhosseinghanipour/courseapi/internal/application/users"
	"github.com/amirhosseinghanipour/courseapi/internal/config"
	httprouter "github.com/amirhosseinghanipour/courseapi/internal/infrastructure/http"
	"github.com/amirhosseinghanipour/courseapi/internal/infrastructure/http/handlers"
	"github.com/amirhosseinghanipour/courseapi/internal/infrastructure/http/middleware"
	"github.com/amirhosseinghanipour/courseapi/internal/infrastructure/persistence/db"
	"github.com/amirhosseinghanipour/courseapi/internal/infrastructure/persistence/migrations"
	"github.com/amirhosseinghanipour/courseapi/internal/infrastructure/persistence/postgres"
	"github.com/amirhosseinghanipour/courseapi/internal/infrastructure/security"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("ping database")
	}
	if err := runMigrations(ctx, cfg.Database.URL); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	queries := db.New(pool)
	userRepo := postgres.NewUserRepository(queries)
	courseRepo := postgres.NewCourseRepository(queries)

	hasher := security.NewArgon2Hasher(security.Argon2Params{
		Memory:      cfg.Argon2.Memory,
		Iterations:  cfg.Argon2.Iterations,
		Parallelism: cfg.Argon2.Parallelism,
	})

	registerUC := users.NewRegisterUser(userRepo, hasher)
	listUC := courses.NewListCourses(courseRepo)
	getUC := courses.NewGetCourse(courseRepo)
	createUC := courses.NewCreateCourse(courseRepo)
	updateUC := courses.NewUpdateCourse(courseRepo)
	deleteUC := courses.NewDeleteCourse(courseRepo)

	authenticator := middleware.NewBasicAuthenticator(userRepo, hasher, log)
	usersHandler := handlers.NewUsersHandler(registerUC, log, cfg.Logging.Errors)
	coursesHandler := handlers.NewCoursesHandler(listUC, getUC, createUC, updateUC, deleteUC, log, cfg.Logging.Errors)
	healthHandler := handlers.NewHealthHandler(pool)

	router := httprouter.NewRouter(httprouter.RouterConfig{
		UsersHandler:   usersHandler,
		CoursesHandler: coursesHandler,
		HealthHandler:  healthHandler,
		Authenticate:   authenticator.Handler,
		Secure:         middleware.NewSecure(middleware.SecureOptions(cfg.Secure.IsDevelopment)),
		CORS:           middleware.CORS(cfg.CORS.AllowedOrigins),
		Log:            log,
		LogErrors:      cfg.Logging.Errors,
		Metrics:        cfg.Metrics.Enabled,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	log.Info().Msg("server stopped")
}

// runMigrations applies the embedded goose migrations through a short-lived
// database/sql handle (goose does not speak pgxpool).
func runMigrations(ctx context.Context, databaseURL string) error {
	sqlDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer sqlDB.Close()
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, sqlDB, ".")
}
