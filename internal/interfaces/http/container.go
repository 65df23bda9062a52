package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	auditUsecases "vendra/internal/application/audit/usecases"
	authUsecases "vendra/internal/application/auth/usecases"
	catalogUsecases "vendra/internal/application/catalog/usecases"
	roleUsecases "vendra/internal/application/role/usecases"
	sequenceUsecases "vendra/internal/application/sequence/usecases"
	settingUsecases "vendra/internal/application/setting/usecases"
	userUsecases "vendra/internal/application/user/usecases"

	appaudit "vendra/internal/application/audit"
	"vendra/internal/domain/catalog"
	"vendra/internal/domain/role"
	"vendra/internal/domain/user"
	"vendra/internal/infrastructure/auth"
	"vendra/internal/infrastructure/config"
	"vendra/internal/infrastructure/permission"
	"vendra/internal/infrastructure/ratelimit"
	"vendra/internal/infrastructure/repository"
	"vendra/internal/infrastructure/sanitize"
	"vendra/internal/interfaces/http/handlers"
	"vendra/internal/interfaces/http/middleware"
	"vendra/internal/shared/constants"
	"vendra/internal/shared/db"
	"vendra/internal/shared/logger"
)

// BrandDescriptor parametrizes the catalog engine for brands.
var BrandDescriptor = catalog.Descriptor{
	Type:         "brand",
	Table:        constants.TableBrands,
	UniqueFields: []string{"code"},
	SearchFields: []string{"code", "name"},
	OrderField:   "name",
}

// CategoryDescriptor parametrizes the catalog engine for categories.
var CategoryDescriptor = catalog.Descriptor{
	Type:         "category",
	Table:        constants.TableCategories,
	UniqueFields: []string{"code"},
	SearchFields: []string{"code", "name"},
	OrderField:   "name",
}

// Container wires repositories, use cases, handlers, and middleware
// together and exposes the assembled gin engine.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	userRepo user.Repository
	roleRepo role.Repository

	jwtSvc     *auth.JWTService
	enforcer   *permission.Enforcer
	policySync *permission.PolicySync
	sanitizer  *sanitize.Sanitizer

	authMiddleware      *middleware.AuthMiddleware
	scopeMiddleware     *middleware.ScopeMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	sanitizeMiddleware  *middleware.SanitizeMiddleware

	healthHandler   *handlers.HealthHandler
	authHandler     *handlers.AuthHandler
	brandHandler    *handlers.CatalogHandler
	categoryHandler *handlers.CatalogHandler
	auditHandler    *handlers.AuditHandler
	settingHandler  *handlers.SettingHandler
	sequenceHandler *handlers.SequenceHandler
	userHandler     *handlers.UserHandler
	roleHandler     *handlers.RoleHandler
}

// NewContainer builds the full dependency graph. redisClient may be
// nil; the rate limiter then falls back to the in-memory backend.
func NewContainer(database *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     database,
		cfg:    cfg,
		log:    log,
		redis:  redisClient,
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	if err := c.initHandlers(); err != nil {
		return nil, err
	}
	c.setupRoutes()

	return c, nil
}

func (c *Container) initInfrastructure() error {
	c.userRepo = repository.NewUserRepository(c.db, c.log)
	c.roleRepo = repository.NewRoleRepository(c.db, c.log)

	c.jwtSvc = auth.NewJWTService(
		c.cfg.Auth.JWT.Secret,
		c.cfg.Auth.JWT.AccessExpMinutes,
		c.cfg.Auth.JWT.RefreshExpDays,
	)

	enforcer, err := permission.NewEnforcer(c.db, c.log)
	if err != nil {
		return fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}
	c.enforcer = enforcer
	c.policySync = permission.NewPolicySync(c.db, enforcer, c.log)

	c.sanitizer = sanitize.New(sanitize.DefaultFieldLimits)

	limiterCfg := ratelimit.Config{
		RequestsPerMinute: c.cfg.RateLimit.RequestsPerMinute,
		Burst:             c.cfg.RateLimit.Burst,
		BlockDuration:     time.Duration(c.cfg.RateLimit.BlockSeconds) * time.Second,
	}
	var limiter ratelimit.Limiter
	if c.cfg.RateLimit.Backend == "redis" && c.redis != nil {
		limiter = ratelimit.NewRedisLimiter(c.redis, limiterCfg)
	} else {
		limiter = ratelimit.NewMemoryLimiter(limiterCfg)
	}

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.userRepo, c.log)
	c.scopeMiddleware = middleware.NewScopeMiddleware(c.enforcer, c.userRepo, c.resolveRole, c.log)
	c.rateLimitMiddleware = middleware.NewRateLimitMiddleware(limiter, c.log)
	c.sanitizeMiddleware = middleware.NewSanitizeMiddleware(c.sanitizer, c.cfg.Security.MaxUploadBytes, c.log)

	return nil
}

func (c *Container) initHandlers() error {
	auditRepo := repository.NewAuditLogRepository(c.db, c.log)
	settingRepo := repository.NewSystemSettingRepository(c.db, c.log)
	sequenceRepo := repository.NewSequenceRepository(c.db, c.log)

	txManager := db.NewTransactionManager(c.db)
	resolver := appaudit.NewSettingLevelResolver(settingRepo, c.log)
	recorder := appaudit.NewRecorder(auditRepo, resolver, c.log)
	hasher := auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost)

	c.healthHandler = handlers.NewHealthHandler(c.db, c.log)

	loginUC := authUsecases.NewLoginUseCase(c.userRepo, c.roleRepo, hasher, c.jwtSvc, c.log)
	refreshUC := authUsecases.NewRefreshTokenUseCase(c.userRepo, c.roleRepo, c.jwtSvc, c.log)
	logoutUC := authUsecases.NewLogoutUseCase(c.jwtSvc, c.log)
	c.authHandler = handlers.NewAuthHandler(loginUC, refreshUC, logoutUC, c.log)

	for _, desc := range []catalog.Descriptor{BrandDescriptor, CategoryDescriptor} {
		handler, err := c.buildCatalogHandler(desc, recorder, txManager)
		if err != nil {
			return err
		}
		switch desc.Type {
		case BrandDescriptor.Type:
			c.brandHandler = handler
		case CategoryDescriptor.Type:
			c.categoryHandler = handler
		}
	}

	listAuditUC := auditUsecases.NewListAuditLogsUseCase(auditRepo, c.log)
	c.auditHandler = handlers.NewAuditHandler(listAuditUC, c.log)

	getLevelUC := settingUsecases.NewGetAuditLevelUseCase(settingRepo, c.log)
	updateLevelUC := settingUsecases.NewUpdateAuditLevelUseCase(settingRepo, c.log)
	c.settingHandler = handlers.NewSettingHandler(getLevelUC, updateLevelUC, c.log)

	createTypeUC := sequenceUsecases.NewCreateDocumentTypeUseCase(sequenceRepo, c.log)
	listTypesUC := sequenceUsecases.NewListDocumentTypesUseCase(sequenceRepo, c.log)
	allocateUC := sequenceUsecases.NewAllocateNumberUseCase(sequenceRepo, recorder, c.log)
	c.sequenceHandler = handlers.NewSequenceHandler(createTypeUC, listTypesUC, allocateUC, c.log)

	createUserUC := userUsecases.NewCreateUserUseCase(c.userRepo, hasher, c.log)
	listUsersUC := userUsecases.NewListUsersUseCase(c.userRepo, c.log)
	assignRoleUC := userUsecases.NewAssignRoleUseCase(c.userRepo, c.roleRepo, c.log)
	c.userHandler = handlers.NewUserHandler(createUserUC, listUsersUC, assignRoleUC, c.log)

	createRoleUC := roleUsecases.NewCreateRoleUseCase(c.roleRepo, c.enforcer, c.log)
	listRolesUC := roleUsecases.NewListRolesUseCase(c.roleRepo, c.log)
	c.roleHandler = handlers.NewRoleHandler(createRoleUC, listRolesUC, c.log)

	return nil
}

func (c *Container) buildCatalogHandler(
	desc catalog.Descriptor,
	recorder *appaudit.Recorder,
	txManager *db.TransactionManager,
) (*handlers.CatalogHandler, error) {
	repo, err := repository.NewCatalogRepository(c.db, desc, c.log)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s repository: %w", desc.Type, err)
	}

	createUC := catalogUsecases.NewCreateItemUseCase(repo, desc, recorder, c.sanitizer, txManager, c.log)
	getUC := catalogUsecases.NewGetItemUseCase(repo, desc, recorder, c.log)
	listUC := catalogUsecases.NewListItemsUseCase(repo, desc, recorder, c.sanitizer, c.log)
	updateUC := catalogUsecases.NewUpdateItemUseCase(repo, desc, recorder, c.sanitizer, txManager, c.log)
	patchUC := catalogUsecases.NewPatchItemUseCase(repo, desc, recorder, c.sanitizer, txManager, c.log)
	deleteUC := catalogUsecases.NewDeleteItemUseCase(repo, desc, recorder, txManager, c.log)
	importUC := catalogUsecases.NewImportItemsUseCase(
		repo, desc, recorder, c.sanitizer, txManager, c.cfg.Security.MaxImportRows, c.log)

	return handlers.NewCatalogHandler(
		desc, createUC, getUC, listUC, updateUC, patchUC, deleteUC, importUC, c.log), nil
}

// resolveRole maps an authenticated user to its stored role for
// enforcer and role-type lookups. Users without an active role come
// back nil and fail checks unless the token carries the scope.
func (c *Container) resolveRole(ctx *gin.Context, userID uint) (*role.Role, error) {
	u, err := c.userRepo.GetByID(ctx.Request.Context(), userID)
	if err != nil {
		return nil, err
	}
	if u == nil || u.RoleID() == nil {
		return nil, nil
	}

	r, err := c.roleRepo.GetByID(ctx.Request.Context(), *u.RoleID())
	if err != nil {
		return nil, err
	}
	if r == nil || !r.Active() {
		return nil, nil
	}
	return r, nil
}

// SyncPolicies loads role scopes from storage into the enforcer.
// Called once at startup, after migrations.
func (c *Container) SyncPolicies() error {
	return c.policySync.SyncAll()
}

// Engine returns the assembled gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}
