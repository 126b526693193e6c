package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyRequestID   contextKey = "request_id"
	ContextKeyReadPrimary contextKey = "read_primary"
)

const (
	RequestParamID     = "id"
	RequestParamSearch = "search"
	RequestParamTerm   = "term"
)

const (
	PqErrorClassDataException       = "22"
	PqErrorClassIntegrityConstraint = "23"
)

const (
	DateFormat      = "2006-01-02"
	TimeFormat      = "15:04"
	TimeFormatLong  = "15:04:05"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderUserAgent   = "User-Agent"
	RequestHeaderContentType = "Content-Type"
	RequestHeaderRequestID   = "X-Request-ID"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy       = "SERVER UNHEALTHY"
)

const (
	ServerEnvDevelopment = "development"
)

const (
	Empty = ""
)
