package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultSkip  = 0
	DefaultLimit = 20
	MaxLimit     = 100

	// HTTP Headers
	HeaderContentType     = "Content-Type"
	HeaderAuthorization   = "Authorization"
	HeaderWWWAuthenticate = "WWW-Authenticate"
	HeaderXRequestID      = "X-Request-ID"
	HeaderXForwardedFor   = "X-Forwarded-For"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyScopes    = "scopes"
	ContextKeySuperuser = "is_superuser"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableUsers          = "users"
	TableRoles          = "roles"
	TableBrands         = "brands"
	TableCategories     = "categories"
	TableAuditLogs      = "audit_logs"
	TableSystemSettings = "system_settings"
	TableDocumentTypes  = "document_types"
	TableDocuments      = "documents"

	// Catalog entity type tags
	EntityTypeBrand    = "brand"
	EntityTypeCategory = "category"

	// Runtime settings keys
	SettingAuditLevel = "audit_level"

	// Audit level thresholds per action class
	AuditLevelMutations = 1
	AuditLevelCreates   = 2
	AuditLevelReads     = 3

	// CSV import
	DefaultMaxImportRows = 1000

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgInvalidInput        = "invalid input"
	ErrMsgRateLimited         = "rate limit exceeded, please try again later"
)
