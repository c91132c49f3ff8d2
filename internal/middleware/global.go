package middleware

import (
	"net/http"

	"github.com/deppfellow/acervo-api/internal/errs"
	"github.com/deppfellow/acervo-api/internal/server"
	"github.com/deppfellow/acervo-api/internal/sqlerr"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	routeNotFoundMessage    = "Rota não encontrada"
	methodNotAllowedMessage = "Método não permitido"
)

// GlobalMiddlewares groups the middleware every route runs through and the
// global error handler.
type GlobalMiddlewares struct {
	server *server.Server
}

// NewGlobalMiddlewares returns the global middleware set for s.
func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// CORS allows the origins listed in server.cors_allowed_origins.
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
	})
}

// RequestLogger writes one "API" line per request, at a level chosen by
// the final status.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := v.Status

			// The error handler has not written the response yet when a
			// handler returns an error, so v.Status would still read 200.
			// See https://github.com/labstack/echo/issues/2310#issuecomment-1288196898
			if v.Error != nil {
				statusCode = statusOf(v.Error)
			}

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// Recover turns a panic into an error for GlobalErrorHandler, so a panicking
// handler still answers with the generic 500 body.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

// Secure sets echo's default protective response headers.
func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// statusOf predicts the status the error handler will answer with.
func statusOf(err error) int {
	return toHTTPError(err).Status
}

// toHTTPError converts any error into the classified HTTPError. Its
// Message may still come from a lower layer; clientError decides what the
// client actually reads.
func toHTTPError(err error) *errs.HTTPError {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		switch echoErr.Code {
		case http.StatusNotFound:
			return errs.NewNotFoundError(routeNotFoundMessage, true, nil)
		case http.StatusMethodNotAllowed:
			return &errs.HTTPError{
				Code:     errs.MakeUpperCaseWithUnderscores(http.StatusText(http.StatusMethodNotAllowed)),
				Message:  methodNotAllowedMessage,
				Status:   http.StatusMethodNotAllowed,
				Override: true,
			}
		}

		if echoErr.Code >= http.StatusInternalServerError {
			return errs.NewInternalServerError()
		}

		// Echo's own messages are English framework text.
		message := http.StatusText(echoErr.Code)
		if msg, ok := echoErr.Message.(string); ok {
			message = msg
		}
		return &errs.HTTPError{
			Code:    errs.MakeUpperCaseWithUnderscores(http.StatusText(echoErr.Code)),
			Message: message,
			Status:  echoErr.Code,
		}
	}

	var converted *errs.HTTPError
	if errors.As(sqlerr.HandleError(err), &converted) {
		return converted
	}

	return errs.NewInternalServerError()
}

// statusMessages are the client-facing messages used when an HTTPError
// does not carry Override.
var statusMessages = map[int]string{
	http.StatusBadRequest:            "Requisição inválida",
	http.StatusNotFound:              "Recurso não encontrado",
	http.StatusMethodNotAllowed:      methodNotAllowedMessage,
	http.StatusRequestEntityTooLarge: "Corpo da requisição muito grande",
	http.StatusUnsupportedMediaType:  "Tipo de mídia não suportado",
	http.StatusInternalServerError:   errs.InternalServerErrorMessage,
}

// clientError returns the body written to the client. A message marked
// Override is shown as-is; any other message is replaced by the standard
// message for its status, keeping the field errors.
func clientError(httpErr *errs.HTTPError) *errs.HTTPError {
	if httpErr.Override {
		return httpErr
	}

	message, ok := statusMessages[httpErr.Status]
	if !ok {
		if httpErr.Status >= http.StatusInternalServerError {
			message = errs.InternalServerErrorMessage
		} else {
			message = http.StatusText(httpErr.Status)
		}
	}

	return &errs.HTTPError{
		Code:    httpErr.Code,
		Message: message,
		Status:  httpErr.Status,
		Errors:  httpErr.Errors,
	}
}

// GlobalErrorHandler is the single funnel every handler error goes through.
// It logs the original error with the classified message, then writes the
// sanitized JSON body built by clientError.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	httpErr := toHTTPError(err)

	logger := GetLogger(c)

	var event *zerolog.Event
	if httpErr.Status >= http.StatusInternalServerError {
		event = logger.Error().Stack()
	} else {
		event = logger.Warn()
	}
	if details := sqlerr.Details(err); details != nil {
		event = event.Fields(details)
	}

	event.
		Err(err).
		Int("status", httpErr.Status).
		Str("error_code", httpErr.Code).
		Msg(httpErr.Message)

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(httpErr.Status)
		return
	}

	_ = c.JSON(httpErr.Status, clientError(httpErr))
}
