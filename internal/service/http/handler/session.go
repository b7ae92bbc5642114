package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/prompt-studio/internal/modules/logs"
	"github.com/reusedev/prompt-studio/internal/modules/payload"
	"github.com/reusedev/prompt-studio/internal/modules/session"
	"github.com/reusedev/prompt-studio/internal/service/http/response"
	"github.com/reusedev/prompt-studio/tools"
)

const thumbnailSide = 256

func GetState(c *gin.Context) {
	c.JSON(http.StatusOK, response.SuccessWithData(studio.State(sessionID(c)).View()))
}

func UploadSource(c *gin.Context) {
	upload(c, studio.UploadSource)
}

func UploadMask(c *gin.Context) {
	upload(c, studio.UploadMask)
}

func upload(c *gin.Context, save func(id, name string, data []byte) (session.State, error)) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError)
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		logs.Logger.Err(err).Msg("read upload")
		c.JSON(http.StatusInternalServerError, response.InternalError)
		return
	}
	state, err := save(sessionID(c), header.Filename, data)
	respond(c, state, err)
}

func UpdateFields(c *gin.Context) {
	var f session.Fields
	if err := c.ShouldBind(&f); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage(err.Error()))
		return
	}
	state, err := studio.UpdateFields(sessionID(c), f)
	respond(c, state, err)
}

func Generate(c *gin.Context) {
	action(c, studio.Generate)
}

func Outpaint(c *gin.Context) {
	action(c, studio.Outpaint)
}

func Optimize(c *gin.Context) {
	action(c, studio.Optimize)
}

func Save(c *gin.Context) {
	action(c, studio.Save)
}

// action runs a remote action with the form values submitted alongside it.
func action(c *gin.Context, run func(ctx context.Context, id string, f session.Fields) (session.State, error)) {
	var f session.Fields
	if err := c.ShouldBind(&f); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage(err.Error()))
		return
	}
	state, err := run(c.Request.Context(), sessionID(c), f)
	respond(c, state, err)
}

type addLabel struct {
	session.Fields
	LabelName string `form:"label_name" json:"label_name"`
}

func AddLabel(c *gin.Context) {
	var req addLabel
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage(err.Error()))
		return
	}
	state, err := studio.AddLabel(c.Request.Context(), sessionID(c), req.LabelName, req.Fields)
	respond(c, state, err)
}

func Reset(c *gin.Context) {
	state, err := studio.Reset(sessionID(c))
	respond(c, state, err)
}

type imageQuery struct {
	Kind      string `form:"kind" binding:"required,oneof=generated source mask"`
	Thumbnail bool   `form:"thumbnail"`
}

// Image serves one of the session's images, decoded from its base64 form.
func Image(c *gin.Context) {
	var q imageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage(err.Error()))
		return
	}
	state := studio.State(sessionID(c))
	encoded := map[string]string{
		"generated": state.GeneratedImage,
		"source":    state.SourceImage,
		"mask":      state.MaskImage,
	}[q.Kind]
	if encoded == "" {
		c.JSON(http.StatusNotFound, response.NotFound)
		return
	}
	data, err := payload.Decode(encoded)
	if err != nil {
		logs.Logger.Err(err).Str("kind", q.Kind).Msg("decode session image")
		c.JSON(http.StatusInternalServerError, response.InternalError)
		return
	}
	contentType := tools.DetectImageType(data).ContentType()
	if q.Thumbnail {
		if data, err = tools.Thumbnail(data, thumbnailSide); err != nil {
			logs.Logger.Err(err).Str("kind", q.Kind).Msg("thumbnail")
			c.JSON(http.StatusInternalServerError, response.InternalError)
			return
		}
		contentType = tools.ImageTypeJPEG.ContentType()
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, contentType, data)
}
