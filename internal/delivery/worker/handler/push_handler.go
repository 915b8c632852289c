// Package handler holds the Pub/Sub push endpoint of the review worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"steamcache/config"
	deliverycontext "steamcache/internal/delivery/context"
	"steamcache/internal/domain/constants"
	domainerrors "steamcache/internal/domain/errors"
	"steamcache/internal/domain/service"
	"steamcache/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// PushHandler refreshes one application per Pub/Sub push message.
type PushHandler struct {
	verifyPushAuth bool
	verifyToken    func(*http.Request) error
	logger         *slog.Logger
	catalogUC      usecase.CatalogUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	CatalogUC usecase.CatalogUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only pushes from Google carry an OIDC token
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verifyToken:    verifyPubSubToken,
		logger:         params.Logger,
		catalogUC:      params.CatalogUC,
	}
}

// HandlePush answers 503 for retryable failures so Pub/Sub redelivers, and 200 otherwise.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// A message that cannot be decoded never will be, so it is acknowledged
	event, err := decodeRefreshEvent(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Dropping malformed refresh event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if event.Type != constants.EventTypeRefreshRequested {
		reqLogger.Warn("[Worker] Ignoring unknown event type",
			slog.String("event_id", event.EventID),
			slog.String("type", event.Type),
		)

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Processing refresh event",
		slog.String("event_id", event.EventID),
		slog.String("app_id", event.AppID),
		slog.String("reason", event.Reason),
	)

	result, err := h.catalogUC.RefreshApp(ctx, event.AppID)
	if err != nil {
		retryable := domainerrors.IsRetryable(err)
		reqLogger.Error("[Worker] Failed to refresh app",
			slog.String("event_id", event.EventID),
			slog.String("app_id", event.AppID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Refresh finished",
		slog.String("app_id", result.AppID),
		slog.Int("inserted_reviews", result.InsertedReviews),
		slog.Bool("placeholder", result.MetadataFetch.Placeholder),
	)

	return c.NoContent(http.StatusOK)
}

func decodeRefreshEvent(data string) (*service.RefreshEvent, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}

	var event service.RefreshEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, errors.Wrap(err, "failed to parse refresh event")
	}

	if strings.TrimSpace(event.AppID) == "" {
		return nil, errors.New("refresh event has no app id")
	}

	return &event, nil
}

// extractRequestID prefers message attributes, then the event, then the X-Request-Id header.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.RefreshEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken validates the OIDC token Google attaches to push requests.
func verifyPubSubToken(req *http.Request) error {
	const bearerPrefix = "Bearer "

	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("missing bearer token")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the push endpoint URL
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := scheme + "://" + req.Host + req.URL.Path

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
