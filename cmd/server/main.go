package main

import (
	"context"
	"net"
	"net/http"

	"coachpad/internal/models/config"
	"coachpad/internal/repository"
	agegroup_repo "coachpad/internal/repository/agegroup"
	attendance_repo "coachpad/internal/repository/attendance"
	coach_repo "coachpad/internal/repository/coach"
	plan_repo "coachpad/internal/repository/plan"
	player_repo "coachpad/internal/repository/player"
	session_repo "coachpad/internal/repository/session"
	"coachpad/internal/service"
	attendance_service "coachpad/internal/service/attendance"
	auth_service "coachpad/internal/service/auth"
	player_service "coachpad/internal/service/player"
	session_service "coachpad/internal/service/session"
	"coachpad/internal/web"
	database "coachpad/pkg"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			loadConfig,
			newLogger,
			database.NewPostgres,
			coach_repo.NewCoachRepository,
			agegroup_repo.NewAgeGroupRepository,
			player_repo.NewPlayerRepository,
			session_repo.NewSessionRepository,
			plan_repo.NewTrainingPlanRepository,
			attendance_repo.NewAttendanceRepository,
			newAuthService,
			attendance_service.NewAttendanceService,
			session_service.NewSessionService,
			player_service.NewPlayerService,
			web.NewHandler,
			web.NewRouter,
		),
		fx.Invoke(registerServer),
	).Run()
}

func loadConfig() (*config.Config, error) {
	if err := config.Load(); err != nil {
		return nil, err
	}
	return config.AppConfig, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func newAuthService(cfg *config.Config, coachRepo repository.CoachRepository) service.AuthService {
	return auth_service.NewAuthService(coachRepo, cfg.Auth)
}

func registerServer(lc fx.Lifecycle, cfg *config.Config, router *chi.Mux, db *sqlx.DB, log *zap.Logger) {
	srv := &http.Server{Addr: ":" + cfg.HTTPPort, Handler: router}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("http server listening", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
					log.Error("http server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down")
			if err := srv.Shutdown(ctx); err != nil {
				return err
			}
			return db.Close()
		},
	})
}
