package boundary

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/faultkit/apperr"
	"github.com/kbukum/faultkit/catalog"
	"github.com/kbukum/faultkit/code"
	"github.com/kbukum/faultkit/logger"
)

// FallbackMessage is the locale-independent message used when the catalog
// cannot resolve a template. Startup validation makes this unreachable for
// registered codes; it exists so the handler can never fail.
const FallbackMessage = "An unexpected error occurred. Please try again later."

// Response is the external view of a handled failure. It carries only the
// localized user message, the documented code, and a correlation id —
// never the developer message, cause chain, or stack information.
type Response struct {
	UserMessage string    `json:"message"`
	Code        code.Code `json:"code"`
	IncidentID  string    `json:"incident_id"`
}

// Handler converts failures reaching the boundary into safe responses.
type Handler struct {
	catalog *catalog.Catalog
	log     *logger.Logger
	handled metric.Int64Counter
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger used for the single per-failure log write.
func WithLogger(l *logger.Logger) Option {
	return func(h *Handler) { h.log = l }
}

// NewHandler creates a boundary handler over the given catalog.
func NewHandler(cat *catalog.Catalog, opts ...Option) *Handler {
	h := &Handler{catalog: cat}
	for _, opt := range opts {
		opt(h)
	}
	if h.log == nil {
		h.log = logger.GetGlobalLogger().WithComponent("boundary")
	}
	meter := otel.Meter("github.com/kbukum/faultkit/boundary")
	h.handled, _ = meter.Int64Counter("faultkit.failures.handled",
		metric.WithDescription("Failures converted to external responses at the boundary"))
	return h
}

// Handle converts err into an external response for the given locale.
// Unclassified failures are reported under code.General. Handle performs
// exactly one error-severity log write per failure and never panics.
func (h *Handler) Handle(ctx context.Context, err error, locale string) Response {
	appErr := apperr.From(err, code.General)
	if appErr == nil {
		appErr = apperr.New(code.General)
		err = appErr
	}

	userMessage := h.resolveMessage(appErr, locale)
	incidentID := uuid.NewString()

	// The chain is walked from err, not appErr: classification may come
	// from an inner *apperr.Error, and the wrappers above it still belong
	// in the log.
	h.log.Error("failure handled", map[string]interface{}{
		logger.FieldCode:        string(appErr.Code()),
		logger.FieldLocale:      locale,
		logger.FieldIncidentID:  incidentID,
		logger.FieldUserMessage: userMessage,
		logger.FieldDevMessage:  appErr.DevMessage(),
		logger.FieldCauseChain:  apperr.Chain(err),
	})
	h.record(ctx, appErr)

	return Response{
		UserMessage: userMessage,
		Code:        appErr.Code(),
		IncidentID:  incidentID,
	}
}

// resolveMessage renders the localized user message, falling back to the
// hardcoded generic message when the catalog cannot resolve the code.
func (h *Handler) resolveMessage(appErr *apperr.Error, locale string) string {
	if h.catalog == nil {
		return FallbackMessage
	}
	tpl, ok := h.catalog.Resolve(appErr.Code(), locale)
	if !ok {
		return FallbackMessage
	}
	return catalog.Interpolate(tpl, appErr.Params()...)
}

// record marks the active span and bumps the handled counter. Both are
// no-ops when no SDK is installed.
func (h *Handler) record(ctx context.Context, appErr *apperr.Error) {
	attr := attribute.String("faultkit.code", string(appErr.Code()))
	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.RecordError(appErr, trace.WithAttributes(attr))
		span.SetStatus(codes.Error, string(appErr.Code()))
	}
	if h.handled != nil {
		h.handled.Add(ctx, 1, metric.WithAttributes(attr))
	}
}
