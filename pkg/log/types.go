package log

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string
	Mode         string // "production" selects the JSON encoder defaults
	Encoding     string // "console" or "json"
	ColorEnabled bool
}

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingConsole = "console"
	EncodingJSON    = "json"
)

type ctxKey struct{}

// requestIDKey is the context key holding the request id.
var requestIDKey = ctxKey{}

// FieldRequestID is the structured field name attached to every entry
// logged with a context carrying a request id.
const FieldRequestID = "request_id"
