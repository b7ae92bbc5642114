package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/prompt-studio/internal/modules/logs"
	"github.com/reusedev/prompt-studio/internal/modules/session"
	"github.com/reusedev/prompt-studio/internal/service/http/middleware"
	"github.com/reusedev/prompt-studio/internal/service/http/response"
)

var studio *session.Controller

func Init(controller *session.Controller) {
	studio = controller
}

func sessionID(c *gin.Context) string {
	return c.GetString(middleware.SessionKey)
}

func wantsJSON(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}

// respond answers a session action. Browser form posts are redirected back to
// the page, which shows the state's message or error; API callers get the
// state envelope.
func respond(c *gin.Context, state session.State, err error) {
	if err != nil {
		logs.Logger.Warn().Err(err).Str("session", sessionID(c)).Str("path", c.Request.URL.Path).Msg("session action failed")
	}
	if !wantsJSON(c) {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	switch {
	case err == nil:
		c.JSON(http.StatusOK, response.SuccessWithData(state.View()))
	case errors.Is(err, session.ErrBusy):
		c.JSON(http.StatusConflict, response.BusyError)
	case errors.Is(err, session.ErrValidation):
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage(state.Error))
	case errors.Is(err, session.ErrRejected):
		c.JSON(http.StatusBadGateway, response.InternalErrorWithMessage(state.Error))
	default:
		c.JSON(http.StatusInternalServerError, response.InternalErrorWithMessage(state.Error))
	}
}
