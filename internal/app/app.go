package app

import (
	"github.com/PheeraponT/nightnice/core/internal/config"
	http_auth "github.com/PheeraponT/nightnice/core/internal/delivery/http/auth"
	http_init "github.com/PheeraponT/nightnice/core/internal/delivery/http/init"
	http_auth_middleware "github.com/PheeraponT/nightnice/core/internal/delivery/http/middleware/auth"
	http_swagger "github.com/PheeraponT/nightnice/core/internal/delivery/http/swagger"
	http_venue "github.com/PheeraponT/nightnice/core/internal/delivery/http/venue"
	http_vibe "github.com/PheeraponT/nightnice/core/internal/delivery/http/vibe"
	ws_venue "github.com/PheeraponT/nightnice/core/internal/delivery/ws/venue"
	infra_postgres_feedback "github.com/PheeraponT/nightnice/core/internal/infra/postgres/feedback"
	infra_pg_init "github.com/PheeraponT/nightnice/core/internal/infra/postgres/init"
	infra_postgres_venue "github.com/PheeraponT/nightnice/core/internal/infra/postgres/venue"
	infra_redis_init "github.com/PheeraponT/nightnice/core/internal/infra/redis/init"
	infra_session_cache "github.com/PheeraponT/nightnice/core/internal/infra/redis/session"
	service_token_auth "github.com/PheeraponT/nightnice/core/internal/service/auth/token"
	"github.com/PheeraponT/nightnice/core/internal/service/synthetic_vibe"
	"github.com/PheeraponT/nightnice/core/internal/service/vibe_aggregate"
	"github.com/PheeraponT/nightnice/core/internal/service/vibe_catalog"
	usecase_feedback "github.com/PheeraponT/nightnice/core/internal/usecase/feedback"
	usecase_insight "github.com/PheeraponT/nightnice/core/internal/usecase/insight"
	usecase_venue "github.com/PheeraponT/nightnice/core/internal/usecase/venue"
)

func Go(cfg *config.Config) {
	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)

	venueRepository := infra_postgres_venue.New(pgConn)
	feedbackRepository := infra_postgres_feedback.New(pgConn)

	catalog := vibe_catalog.New()
	generator := synthetic_vibe.New(catalog)
	aggregator := vibe_aggregate.New(catalog)

	venueUC := usecase_venue.New(venueRepository)
	insightUC := usecase_insight.New(venueRepository, feedbackRepository, generator, aggregator)
	feedbackUC := usecase_feedback.New(feedbackRepository)

	sessionCache := infra_session_cache.New(redisConn, "session_cache")
	authService := service_token_auth.New(cfg.Auth.AdminSecret, sessionCache, cfg.Auth.SessionTTL)
	authMiddleware := http_auth_middleware.New(authService)

	hub := ws_venue.NewHub(nil)
	go hub.Run()

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_swagger.New())
	controllerPool.Add(http_auth.New(authService))
	controllerPool.Add(http_venue.New(venueUC, authMiddleware))
	controllerPool.Add(http_vibe.New(insightUC, feedbackUC, hub, authMiddleware))
	controllerPool.Add(ws_venue.NewController(hub))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
