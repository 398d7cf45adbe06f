// Package crew serves the crew-by-role lookup: given a movie and a crew role
// it returns the names stored for that pair, optionally narrowed by a
// case-insensitive name filter.
package crew

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/rs/zerolog"
)

// Request parameter names.
const (
	ParamRole    = "role"
	ParamMovieID = "movieId"
	ParamName    = "name"
)

// Handler answers GET /crew/{role}/movies/{movieId} style requests.
type Handler struct {
	store           Store
	log             zerolog.Logger
	hideErrorDetail bool
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger. Handlers log nothing by default.
func WithLogger(log zerolog.Logger) Option {
	return func(h *Handler) { h.log = log }
}

// WithOpaqueErrors makes 500 responses carry the request ID instead of the
// underlying error text.
func WithOpaqueErrors() Option {
	return func(h *Handler) { h.hideErrorDetail = true }
}

// NewHandler returns a Handler reading from store. The store is shared by
// all invocations.
func NewHandler(store Store, opts ...Option) *Handler {
	h := &Handler{
		store: store,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle is the Lambda entrypoint. Every outcome, failures included, is
// reported through the response, so the returned error is always nil.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (res events.APIGatewayV2HTTPResponse, err error) {
	reqID := requestID(ctx, req)
	log := h.log.With().Str("requestId", reqID).Logger()

	defer func() {
		if r := recover(); r != nil {
			res = h.fail(log, reqID, fmt.Errorf("panic: %v", r))
			err = nil
		}
	}()

	role := req.PathParameters[ParamRole]
	rawID := req.PathParameters[ParamMovieID]
	if role == "" || rawID == "" {
		log.Warn().Str("role", role).Str("movieId", rawID).Msg("missing path parameters")
		return badRequest(msgMissingParams), nil
	}

	movieID, err := parseMovieID(rawID)
	if err != nil {
		log.Warn().Str("movieId", rawID).Msg("invalid movie id")
		return badRequest(msgInvalidID), nil
	}

	filter := req.QueryStringParameters[ParamName]
	log.Debug().Int64("movieId", movieID).Str("role", role).Str("filter", filter).Msg("looking up crew")

	records, err := h.store.FindCrew(ctx, movieID, role)
	if err != nil {
		return h.fail(log, reqID, err), nil
	}

	if len(records) == 0 {
		return notFound(), nil
	}

	return success(crewNames(records, filter)), nil
}

func (h *Handler) fail(log zerolog.Logger, id string, err error) events.APIGatewayV2HTTPResponse {
	log.Error().Err(err).Msg("crew lookup failed")

	if h.hideErrorDetail {
		return internalError(id)
	}
	return internalError(err.Error())
}

func requestID(ctx context.Context, req events.APIGatewayV2HTTPRequest) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	return req.RequestContext.RequestID
}
