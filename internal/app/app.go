package app

import (
	"context"
	"math/rand"
	"os"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"ticketing/internal/application/usecases/booking"
	eventsUsecase "ticketing/internal/application/usecases/events"
	"ticketing/internal/application/usecases/payment"
	"ticketing/internal/clock"
	"ticketing/internal/config"
	"ticketing/internal/infrastructure/gateway"
	"ticketing/internal/interfaces/events"
	"ticketing/internal/interfaces/http"
	"ticketing/internal/logctx"
	"ticketing/internal/outbox"
	"ticketing/internal/repository"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type App struct {
	watermillLogger watermill.LoggerAdapter
	logger          zerolog.Logger
	router          *message.Router
	forwarder       *outbox.Forwarder
	srv             *http.Server
	db              *sqlx.DB
}

func NewApp(
	logger *logrus.Logger,
	cfg *config.Config,
	notifier events.Notifier,
	redisClient *redis.Client,
	db *sqlx.DB,
	rng *rand.Rand,
) (*App, error) {
	watermillLogger := logctx.NewWatermillAdapter(logger)

	getter := trmsqlx.DefaultCtxGetter
	trManager := manager.Must(trmsqlx.NewDefaultFactory(db))

	eventsRepo := repository.NewEventsRepo(db, getter)
	ticketTypesRepo := repository.NewTicketTypesRepo(db, getter)
	bookingsRepo := repository.NewBookingsRepo(db, getter)
	paymentsRepo := repository.NewPaymentsRepo(db, getter)

	clk := clock.NewSystem()
	simulator := gateway.NewSimulator(rng, cfg.GatewaySuccessRate, cfg.GatewayProcessingDelay)
	publisher := outbox.NewEventPublisher(getter, watermillLogger)

	eventsService := eventsUsecase.NewUsecase(logger, eventsRepo, ticketTypesRepo)
	bookingsService := booking.NewUsecase(logger, bookingsRepo, ticketTypesRepo, eventsRepo, paymentsRepo, trManager, clk)
	paymentsService := payment.NewUsecase(logger, bookingsRepo, paymentsRepo, ticketTypesRepo, eventsRepo, trManager, simulator, publisher, clk)

	router, err := message.NewRouter(message.RouterConfig{}, watermillLogger)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	srv := http.NewServer(
		e,
		":"+cfg.Port,
		logger,
		eventsService,
		bookingsService,
		paymentsService,
		router.IsRunning,
	)

	router.AddMiddleware(middleware.Recoverer)
	router.AddMiddleware(events.CorrelationIDMiddleware)
	router.AddMiddleware(events.LoggingMiddleware)

	router.AddMiddleware(middleware.Retry{
		MaxRetries:      10,
		InitialInterval: time.Millisecond * 100,
		MaxInterval:     time.Second,
		Multiplier:      2,
		Logger:          watermillLogger,
	}.Middleware)

	marshaler := cqrs.JSONMarshaler{
		GenerateName: cqrs.StructName,
	}
	processor, err := events.NewEventProcessor(router, redisClient, marshaler, watermillLogger)
	if err != nil {
		return nil, err
	}
	err = processor.AddHandlers(
		events.BookingConfirmedNotificationHandler(notifier),
		events.BookingRefundedAuditHandler(),
	)
	if err != nil {
		return nil, err
	}

	fwd, err := outbox.NewForwarder(db, redisClient, watermillLogger)
	if err != nil {
		return nil, err
	}

	return &App{
		watermillLogger: watermillLogger,
		logger:          zerolog.New(os.Stdout),
		router:          router,
		forwarder:       fwd,
		srv:             srv,
		db:              db,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	err := repository.InitializeDBSchema(a.db)
	if err != nil {
		return err
	}

	a.forwarder.RunForwarder(ctx)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info().Msg("starting router")

		return a.router.Run(ctx)
	})

	g.Go(func() error {
		<-a.router.Running()
		a.logger.Info().Msg("router is running")

		a.logger.Info().Msg("starting server")
		return a.srv.Start()
	})

	g.Go(func() error {
		// Shut down
		<-ctx.Done()

		err := a.srv.Stop(ctx)
		if err != nil {
			a.logger.Err(err).Msg("error stopping server")
		}

		return err
	})

	return g.Wait()
}
