package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	complaintUsecases "civicroute/internal/application/complaint/usecases"
	incidentUsecases "civicroute/internal/application/incident/usecases"
	"civicroute/internal/domain/shared/events"
	"civicroute/internal/infrastructure/cache"
	"civicroute/internal/infrastructure/config"
	"civicroute/internal/infrastructure/repository"
	"civicroute/internal/infrastructure/services"
	complainthandlers "civicroute/internal/interfaces/http/handlers/complaint"
	incidenthandlers "civicroute/internal/interfaces/http/handlers/incident"
	"civicroute/internal/interfaces/http/middleware"
	"civicroute/internal/interfaces/http/routes"
	"civicroute/internal/shared/db"
	"civicroute/internal/shared/logger"
)

// Container wires repositories, use cases, and handlers together and owns the
// Gin engine. It provides a Shutdown() method for graceful termination.
type Container struct {
	engine          *gin.Engine
	db              *gorm.DB
	cfg             *config.Config
	log             logger.Interface
	redis           *redis.Client
	eventDispatcher events.EventDispatcher

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers
}

type repositories struct {
	complaint     *repository.ComplaintRepository
	followUp      *repository.FollowUpRepository
	reroute       *repository.RerouteRepository
	normalization *repository.NormalizationRepository
	incident      *repository.IncidentRepository
	department    *repository.DepartmentRepository
}

type allUseCases struct {
	receiveComplaint    *complaintUsecases.ReceiveComplaintUseCase
	assignComplaint     *complaintUsecases.AssignComplaintUseCase
	releaseComplaint    *complaintUsecases.ReleaseComplaintUseCase
	saveDraftAnswer     *complaintUsecases.SaveDraftAnswerUseCase
	completeAnswer      *complaintUsecases.CompleteAnswerUseCase
	archiveComplaint    *complaintUsecases.ArchiveComplaintUseCase
	cancelComplaint     *complaintUsecases.CancelComplaintUseCase
	createFollowUp      *complaintUsecases.CreateFollowUpUseCase
	requestReroute      *complaintUsecases.RequestRerouteUseCase
	approveReroute      *complaintUsecases.ApproveRerouteUseCase
	rejectReroute       *complaintUsecases.RejectRerouteUseCase
	recordNormalization *complaintUsecases.RecordNormalizationUseCase
	getComplaint        *complaintUsecases.GetComplaintUseCase
	listComplaints      *complaintUsecases.ListComplaintsUseCase

	linkIncident  *incidentUsecases.LinkIncidentUseCase
	getIncident   *incidentUsecases.GetIncidentUseCase
	listIncidents *incidentUsecases.ListIncidentsUseCase
}

type allHandlers struct {
	complaint *complainthandlers.ComplaintHandler
	incident  *incidenthandlers.IncidentHandler
}

// NewContainer creates a new Container with all dependencies wired together.
func NewContainer(database *gorm.DB, cfg *config.Config, log logger.Interface, eventDispatcher events.EventDispatcher) *Container {
	c := &Container{
		engine:          gin.New(),
		db:              database,
		cfg:             cfg,
		log:             log,
		eventDispatcher: eventDispatcher,
	}

	c.initInfrastructure()
	c.initUseCases()
	c.initHandlers()
	c.setupRoutes()

	return c
}

func (c *Container) initInfrastructure() {
	c.redis = redis.NewClient(&redis.Options{
		Addr:     c.cfg.Redis.GetAddr(),
		Password: c.cfg.Redis.Password,
		DB:       c.cfg.Redis.DB,
	})

	c.repos = &repositories{
		complaint:     repository.NewComplaintRepository(c.db),
		followUp:      repository.NewFollowUpRepository(c.db),
		reroute:       repository.NewRerouteRepository(c.db),
		normalization: repository.NewNormalizationRepository(c.db),
		incident:      repository.NewIncidentRepository(c.db),
		department:    repository.NewDepartmentRepository(c.db),
	}
}

func (c *Container) initUseCases() {
	txManager := db.NewTransactionManager(c.db)
	numberGenerator := services.NewDBNumberGenerator(c.db)

	oracle := services.NewHTTPSimilarityOracle(&c.cfg.Oracle, c.log.Named("oracle"))
	cachedOracle := cache.NewCachingSimilarityOracle(
		oracle,
		c.redis,
		time.Duration(c.cfg.Oracle.CacheTTLSecs)*time.Second,
		c.log.Named("oracle.cache"),
	)

	linkIncident := incidentUsecases.NewLinkIncidentUseCase(
		c.repos.complaint,
		c.repos.incident,
		cachedOracle,
		txManager,
		c.cfg.Incident.LinkThreshold,
		c.cfg.Oracle.TopK,
		c.log,
	)

	c.ucs = &allUseCases{
		receiveComplaint:    complaintUsecases.NewReceiveComplaintUseCase(c.repos.complaint, numberGenerator, c.eventDispatcher, c.log),
		assignComplaint:     complaintUsecases.NewAssignComplaintUseCase(c.repos.complaint, c.eventDispatcher, c.log),
		releaseComplaint:    complaintUsecases.NewReleaseComplaintUseCase(c.repos.complaint, c.eventDispatcher, c.log),
		saveDraftAnswer:     complaintUsecases.NewSaveDraftAnswerUseCase(c.repos.complaint, c.repos.followUp, c.log),
		completeAnswer:      complaintUsecases.NewCompleteAnswerUseCase(c.repos.complaint, c.repos.followUp, txManager, c.eventDispatcher, c.log),
		archiveComplaint:    complaintUsecases.NewArchiveComplaintUseCase(c.repos.complaint, c.eventDispatcher, c.log),
		cancelComplaint:     complaintUsecases.NewCancelComplaintUseCase(c.repos.complaint, c.repos.reroute, c.eventDispatcher, c.log),
		createFollowUp:      complaintUsecases.NewCreateFollowUpUseCase(c.repos.complaint, c.repos.followUp, txManager, c.eventDispatcher, c.log),
		requestReroute:      complaintUsecases.NewRequestRerouteUseCase(c.repos.complaint, c.repos.reroute, c.repos.department, txManager, c.eventDispatcher, c.log),
		approveReroute:      complaintUsecases.NewApproveRerouteUseCase(c.repos.complaint, c.repos.reroute, txManager, c.eventDispatcher, c.log),
		rejectReroute:       complaintUsecases.NewRejectRerouteUseCase(c.repos.complaint, c.repos.reroute, txManager, c.eventDispatcher, c.log),
		recordNormalization: complaintUsecases.NewRecordNormalizationUseCase(c.repos.complaint, c.repos.normalization, linkIncident, txManager, c.log),
		getComplaint:        complaintUsecases.NewGetComplaintUseCase(c.repos.complaint, c.repos.followUp, c.log),
		listComplaints:      complaintUsecases.NewListComplaintsUseCase(c.repos.complaint, c.log),

		linkIncident:  linkIncident,
		getIncident:   incidentUsecases.NewGetIncidentUseCase(c.repos.incident, c.repos.complaint, c.log),
		listIncidents: incidentUsecases.NewListIncidentsUseCase(c.repos.incident, c.log),
	}
}

func (c *Container) initHandlers() {
	c.hdlrs = &allHandlers{
		complaint: complainthandlers.NewComplaintHandler(
			c.ucs.receiveComplaint,
			c.ucs.assignComplaint,
			c.ucs.releaseComplaint,
			c.ucs.saveDraftAnswer,
			c.ucs.completeAnswer,
			c.ucs.archiveComplaint,
			c.ucs.cancelComplaint,
			c.ucs.createFollowUp,
			c.ucs.requestReroute,
			c.ucs.approveReroute,
			c.ucs.rejectReroute,
			c.ucs.recordNormalization,
			c.ucs.getComplaint,
			c.ucs.listComplaints,
		),
		incident: incidenthandlers.NewIncidentHandler(
			c.ucs.linkIncident,
			c.ucs.getIncident,
			c.ucs.listIncidents,
		),
	}
}

func (c *Container) setupRoutes() {
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.Recovery())
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))

	c.engine.GET("/health", c.healthCheck)

	routes.SetupComplaintRoutes(c.engine, &routes.ComplaintRouteConfig{
		ComplaintHandler: c.hdlrs.complaint,
	})
	routes.SetupIncidentRoutes(c.engine, &routes.IncidentRouteConfig{
		IncidentHandler: c.hdlrs.incident,
	})
}

// GetEngine returns the configured Gin engine
func (c *Container) GetEngine() *gin.Engine {
	return c.engine
}

// Shutdown releases container-owned resources.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
