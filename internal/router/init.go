package router

import (
	"github.com/hoagiehub/hoagie-api/internal/application"
	"github.com/hoagiehub/hoagie-api/internal/container"
	pginfra "github.com/hoagiehub/hoagie-api/internal/infrastructure/postgres"
	handlers "github.com/hoagiehub/hoagie-api/internal/interface/http"
	"github.com/hoagiehub/hoagie-api/internal/router/modules"
)

// InitModules builds the application services from the container singletons
// and registers every feature module with the router registry. Called once
// during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	hoagieRepo := pginfra.NewHoagieRepository(pool)
	commentRepo := pginfra.NewCommentRepository(pool)

	userSvc := application.NewUserService(
		userRepo,
		logger,
		container.GetRabbitPub(),
		cfg.MailSendEnabled,
		cfg.TestLoginEnabled,
		cfg.TestLoginEmail,
	)
	hoagieSvc := application.NewHoagieService(hoagieRepo, logger, container.GetGCS(), cfg.GCSBucket)
	// The comment service adjusts hoagie counters through the hoagie service,
	// never by writing the field itself.
	commentSvc := application.NewCommentService(commentRepo, hoagieSvc, logger, container.GetRedis())

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(userSvc, logger)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger)))
	r.Add(modules.NewHoagieModule(handlers.NewHoagieHandler(hoagieSvc, logger)))
	r.Add(modules.NewCommentModule(handlers.NewCommentHandler(commentSvc, logger)))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
