//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	booking_post "containerhub/internal/handlers/rest/booking_post"
	booking_put "containerhub/internal/handlers/rest/booking_put"
	bookings_get "containerhub/internal/handlers/rest/bookings_get"
	cod_quote_post "containerhub/internal/handlers/rest/cod_quote_post"
	container_get "containerhub/internal/handlers/rest/container_get"
	container_post "containerhub/internal/handlers/rest/container_post"
	container_put "containerhub/internal/handlers/rest/container_put"
	containers_get "containerhub/internal/handlers/rest/containers_get"
	depots_get "containerhub/internal/handlers/rest/depots_get"
	matching_suggestions_get "containerhub/internal/handlers/rest/matching_suggestions_get"
	"containerhub/internal/handlers/tasks/feematrix_refresh"
	"containerhub/internal/handlers/tasks/listing_expire"
	"containerhub/internal/pkg/config"
	"containerhub/internal/pkg/factory/container_handle"
	"containerhub/internal/pkg/factory/street_turn_distance"

	bookingRepo "containerhub/internal/repository/booking"
	containerRepo "containerhub/internal/repository/container"
	depotRepo "containerhub/internal/repository/depot"
	feematrixRepo "containerhub/internal/repository/feematrix"
	organizationRepo "containerhub/internal/repository/organization"
	bookingService "containerhub/internal/service/booking"
	codfeeService "containerhub/internal/service/codfee"
	containerService "containerhub/internal/service/container"
	containereventService "containerhub/internal/service/containerevent"
	depotService "containerhub/internal/service/depot"
	matchingService "containerhub/internal/service/matching"

	"containerhub/pkg/background"
	"containerhub/pkg/logger"
	"containerhub/pkg/querier"
	"containerhub/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	ListingExpireInterval    time.Duration
	FeeMatrixRefreshInterval time.Duration
)

type Application struct {
	ServiceContainer  ServiceContainer
	ServiceBooking    ServiceBooking
	ServiceDepot      ServiceDepot
	ServiceMatching   ServiceMatching
	ServiceCodFee     ServiceCodFee
	BackgroundWorkers *background.Worker
}

type ServiceContainer interface {
	container_get.Service
	container_post.Service
	container_put.Service
	containers_get.Service
}

type ServiceBooking interface {
	booking_post.Service
	booking_put.Service
	bookings_get.Service
}

type ServiceDepot interface {
	depots_get.Service
}

type ServiceMatching interface {
	matching_suggestions_get.Service
}

type ServiceCodFee interface {
	cod_quote_post.Service
}

// InitializeApplication wires the HTTP service (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideListingExpireInterval,
		provideFeeMatrixRefreshInterval,
		provideSavingsRates,

		provideContainerRepository,
		provideBookingRepository,
		provideDepotRepository,
		provideFeeMatrixRepository,
		provideOrganizationRepository,

		provideServiceContainer,
		provideServiceBooking,
		provideServiceDepot,
		provideServiceMatching,
		provideServiceCodFee,
		street_turn_distance.New,
		matchingService.NewDepotScenarioPolicy,

		provideListingExpireTask,
		provideFeeMatrixRefreshTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceContainer), new(*containerService.Container)),
		wire.Bind(new(ServiceBooking), new(*bookingService.Booking)),
		wire.Bind(new(ServiceDepot), new(*depotService.Depot)),
		wire.Bind(new(ServiceMatching), new(*matchingService.Matching)),
		wire.Bind(new(ServiceCodFee), new(*codfeeService.CodFee)),

		wire.Bind(new(containerService.Repository), new(*containerRepo.Repository)),
		wire.Bind(new(bookingService.Repository), new(*bookingRepo.Repository)),
		wire.Bind(new(depotService.Repository), new(*depotRepo.Repository)),
		wire.Bind(new(matchingService.ContainerRepository), new(*containerRepo.Repository)),
		wire.Bind(new(matchingService.BookingRepository), new(*bookingRepo.Repository)),
		wire.Bind(new(matchingService.DepotRepository), new(*depotRepo.Repository)),
		wire.Bind(new(matchingService.RatingSource), new(*organizationRepo.Repository)),
		wire.Bind(new(matchingService.ScenarioPolicy), new(*matchingService.DepotScenarioPolicy)),
		wire.Bind(new(matchingService.DistanceEstimator), new(*street_turn_distance.DistanceFactory)),
		wire.Bind(new(codfeeService.MatrixRepository), new(*feematrixRepo.Repository)),
		wire.Bind(new(codfeeService.DepotRepository), new(*depotRepo.Repository)),

		wire.Bind(new(containerService.TxManager), new(*tx.Manager)),
		wire.Bind(new(bookingService.TxManager), new(*tx.Manager)),
		wire.Bind(new(codfeeService.TxManager), new(*tx.Manager)),

		wire.Bind(new(listing_expire.Service), new(*containerService.Container)),
		wire.Bind(new(feematrix_refresh.Service), new(*codfeeService.CodFee)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	ContainerEventService *containereventService.Service
}

// InitializeKafkaWorkerApp wires the Kafka worker (cmd/worker-container-status-changed).
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideContainerRepository,
		provideServiceContainer,

		provideStatusHandlerFactory,
		provideContainerEventService,

		wire.Bind(new(containerService.Repository), new(*containerRepo.Repository)),
		wire.Bind(new(containerService.TxManager), new(*tx.Manager)),
		wire.Bind(new(containereventService.ContainerService), new(*containerService.Container)),
		wire.Bind(new(containereventService.HandlerFactory), new(*container_handle.StatusHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

type FeeMatrixApp struct {
	ServiceCodFee *codfeeService.CodFee
}

// InitializeFeeMatrixApp wires the one-shot matrix generator (cmd/feematrix-generate).
func InitializeFeeMatrixApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*FeeMatrixApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideDepotRepository,
		provideFeeMatrixRepository,
		provideServiceCodFee,

		wire.Bind(new(codfeeService.MatrixRepository), new(*feematrixRepo.Repository)),
		wire.Bind(new(codfeeService.DepotRepository), new(*depotRepo.Repository)),
		wire.Bind(new(codfeeService.TxManager), new(*tx.Manager)),

		wire.Struct(new(FeeMatrixApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideContainerRepository(querier *querier.Querier) *containerRepo.Repository {
	return containerRepo.New(querier)
}

func provideBookingRepository(querier *querier.Querier) *bookingRepo.Repository {
	return bookingRepo.New(querier)
}

func provideDepotRepository(querier *querier.Querier) *depotRepo.Repository {
	return depotRepo.New(querier)
}

func provideFeeMatrixRepository(querier *querier.Querier) *feematrixRepo.Repository {
	return feematrixRepo.New(querier)
}

func provideOrganizationRepository(querier *querier.Querier) *organizationRepo.Repository {
	return organizationRepo.New(querier)
}

func provideServiceContainer(
	repository containerService.Repository,
	txManager containerService.TxManager,
) *containerService.Container {
	return containerService.New(repository, txManager)
}

func provideServiceBooking(
	repository bookingService.Repository,
	txManager bookingService.TxManager,
) *bookingService.Booking {
	return bookingService.New(repository, txManager)
}

func provideServiceDepot(repository depotService.Repository) *depotService.Depot {
	return depotService.New(repository)
}

func provideServiceMatching(
	containerRepository matchingService.ContainerRepository,
	bookingRepository matchingService.BookingRepository,
	depotRepository matchingService.DepotRepository,
	ratingSource matchingService.RatingSource,
	policy matchingService.ScenarioPolicy,
	estimator matchingService.DistanceEstimator,
	rates matchingService.SavingsRates,
) *matchingService.Matching {
	return matchingService.New(
		containerRepository,
		bookingRepository,
		depotRepository,
		ratingSource,
		policy,
		estimator,
		rates,
	)
}

func provideServiceCodFee(
	matrixRepository codfeeService.MatrixRepository,
	depotRepository codfeeService.DepotRepository,
	txManager codfeeService.TxManager,
) *codfeeService.CodFee {
	return codfeeService.New(matrixRepository, depotRepository, txManager)
}

func provideSavingsRates(cfg *config.Config) matchingService.SavingsRates {
	return matchingService.SavingsRates{
		CostPerMatch:  cfg.Matching.CostSavingPerMatch,
		CO2KgPerMatch: cfg.Matching.CO2SavingKgPerMatch,
	}
}

func provideListingExpireInterval(cfg *config.Config) ListingExpireInterval {
	return ListingExpireInterval(cfg.Tasks.ListingExpireInterval)
}

func provideFeeMatrixRefreshInterval(cfg *config.Config) FeeMatrixRefreshInterval {
	return FeeMatrixRefreshInterval(cfg.Tasks.FeeMatrixRefreshInterval)
}

func provideStatusHandlerFactory(containerSvc containereventService.ContainerService) *container_handle.StatusHandlerFactory {
	return container_handle.NewStatusHandlerFactory(containerSvc)
}

func provideContainerEventService(
	containerSvc containereventService.ContainerService,
	handlerFactory containereventService.HandlerFactory,
) *containereventService.Service {
	return containereventService.New(containerSvc, handlerFactory)
}

func provideListingExpireTask(
	log logger.Logger,
	containerSvc listing_expire.Service,
	interval ListingExpireInterval,
) *listing_expire.ListingExpire {
	return listing_expire.NewListingExpire(log, containerSvc, time.Duration(interval))
}

func provideFeeMatrixRefreshTask(
	log logger.Logger,
	codFeeSvc feematrix_refresh.Service,
	interval FeeMatrixRefreshInterval,
) *feematrix_refresh.FeeMatrixRefresh {
	return feematrix_refresh.NewFeeMatrixRefresh(log, codFeeSvc, time.Duration(interval))
}

func provideTaskList(
	listingExpireTask *listing_expire.ListingExpire,
	feeMatrixRefreshTask *feematrix_refresh.FeeMatrixRefresh,
) []background.Task {
	return []background.Task{
		listingExpireTask,
		feeMatrixRefreshTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
