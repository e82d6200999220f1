package echoapi

import (
	"fmt"
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/campusmark/rollcall/core"
)

var (
	errInvalidCredentials = echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials or role.")
	errTimetableNotFound  = echo.NewHTTPError(http.StatusNotFound, "Time table not found for this section.")

	invalidFieldsMsg = "Missing or invalid fields."
)

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how
// to handle our errors. signalShutdown is called in order to gracefully
// shutdown the Server whenever a core shutdown error is caught.
func newAppHTTPErrorHandler(logger core.Logger, translator ut.Translator, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message string
		var fields map[string]string

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			message = fmt.Sprintf("%v", origErr.Message)
		case validator.ValidationErrors:
			fields = make(map[string]string, len(origErr))
			for _, vErr := range origErr {
				fields[vErr.Field()] = vErr.Translate(translator)
			}
			code = http.StatusBadRequest
			message = invalidFieldsMsg
		case *core.ValidationError:
			if origErr.Fields != nil {
				fields = make(map[string]string, len(origErr.Fields))
				for _, fErr := range origErr.Fields {
					fields[fErr.Field] = fErr.Error
				}
			}
			code = http.StatusBadRequest
			message = origErr.Error()
			if message == "" {
				message = invalidFieldsMsg
			}
		default: // any other error is a server error
			code = http.StatusInternalServerError
			message = http.StatusText(http.StatusInternalServerError)
			logger.Error(message, errors.Wrap(err, message))

			// shutting down...
			if core.IsShutdown(err) {
				signalShutdown()
			}
		}

		// Send response
		if !ctx.Response().Committed {
			body := echo.Map{"success": false, "message": message}
			if fields != nil {
				body["fields"] = fields
			}
			var werr error
			if ctx.Request().Method == http.MethodHead { // Issue #608
				werr = ctx.NoContent(code)
			} else {
				werr = ctx.JSON(code, body)
			}
			if werr != nil {
				ctx.Echo().Logger.Error(werr)
			}
		}
	}
}
