package http

import (
	"context"

	"raffle/internal/application/deposit/usecases"
	"raffle/internal/application/notification"
	"raffle/internal/application/raffle/ticketalloc"
	raffleUsecases "raffle/internal/application/raffle/usecases"
	"raffle/internal/domain/raffle/valueobjects"
	sharedvo "raffle/internal/domain/shared/valueobjects"
	"raffle/internal/infrastructure/auth"
	"raffle/internal/infrastructure/cache"
	"raffle/internal/infrastructure/email"
	"raffle/internal/infrastructure/metrics"
	"raffle/internal/infrastructure/ratelimit"
	"raffle/internal/interfaces/http/middleware"
	"raffle/internal/shared/markdown"
	"raffle/internal/shared/rng"
)

// services holds the collaborators shared by several use cases.
type services struct {
	renderer       markdown.Renderer
	rng            rng.Source
	allocator      *ticketalloc.RepositoryAllocator
	dispatcher     *notification.Dispatcher
	depositLimiter usecases.SubmissionLimiter
	raffleSettings raffleUsecases.Settings
}

// initInfrastructure connects redis and builds auth, metrics and the
// redis-backed middlewares.
func (c *Container) initInfrastructure(ctx context.Context) {
	cfg := c.cfg

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		c.log.Warnw("redis unavailable, rate limits and notification dedup disabled", "error", err)
	} else {
		c.redis = redisClient
		c.log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())
	}

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer, cfg.Auth.JWT.TTL)
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log.Named("auth"))
	c.metrics = metrics.NewRecorder()

	if c.redis != nil && cfg.RateLimit.Enabled {
		limiter := ratelimit.NewRedisRateLimiter(c.redis, "raffle:ratelimit")
		c.rateLimiter = middleware.NewRateLimiter(limiter, cfg.RateLimit.Limit, cfg.RateLimit.Window, c.log)
	}
}

func (c *Container) newServices() *services {
	cfg := c.cfg
	log := c.log

	svcs := &services{
		renderer: markdown.NewRenderer(),
		rng:      rng.New(),
	}

	numbering, _ := valueobjects.ParseNumberingStrategy(cfg.Raffle.DefaultNumbering)
	svcs.raffleSettings = raffleUsecases.Settings{
		QuotaValue:       sharedvo.NewMoney(cfg.Raffle.QuotaValueCents, cfg.Raffle.Currency),
		DefaultNumbering: numbering,
	}

	svcs.allocator = ticketalloc.NewRepositoryAllocator(c.repos.entryRepo, svcs.rng, ticketalloc.Config{
		SparseMaxNumber:         cfg.Raffle.SparseMaxNumber,
		SparseAttemptsPerTicket: cfg.Raffle.SparseAttemptsPerTicket,
	}, log.Named("ticketalloc"))

	notifier := email.NewWinnerNotifier(email.NewSMTPEmailService(email.SMTPConfigFrom(cfg.Email)), svcs.renderer)

	var dedup notification.Deduplicator
	if c.redis != nil {
		dedup = cache.NewNotificationDedup(c.redis)
		if cfg.RateLimit.Enabled {
			svcs.depositLimiter = ratelimit.NewDepositLimiter(
				ratelimit.NewRedisRateLimiter(c.redis, "raffle:ratelimit"), cfg.RateLimit)
		}
	}

	svcs.dispatcher = notification.NewDispatcher(
		notifier,
		c.repos.participantRepo,
		c.repos.raffleRepo,
		dedup,
		c.metrics,
		notification.DispatcherConfig{
			WaitTimeout: cfg.Notification.WaitTimeout,
			DedupTTL:    cfg.Notification.DedupTTL,
		},
		log.Named("notification"),
	)

	return svcs
}
