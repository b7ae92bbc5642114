package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/prompt-studio/internal/modules/logs"
	"github.com/reusedev/prompt-studio/internal/service/http/response"
)

func Labels(c *gin.Context) {
	labels, err := studio.Labels(c.Request.Context())
	if err != nil {
		logs.Logger.Err(err).Msg("scan labels")
		c.JSON(http.StatusInternalServerError, response.InternalError)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithData(labels))
}

func Prompts(c *gin.Context) {
	prompts, err := studio.Prompts(c.Request.Context())
	if err != nil {
		logs.Logger.Err(err).Msg("scan prompts")
		c.JSON(http.StatusInternalServerError, response.InternalError)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithData(prompts))
}
