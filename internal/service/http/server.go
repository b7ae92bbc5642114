package http

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/prompt-studio/internal/modules/logs"
	"github.com/reusedev/prompt-studio/internal/modules/session"
	"github.com/reusedev/prompt-studio/internal/service/http/handler"
	"github.com/reusedev/prompt-studio/internal/service/http/middleware"
)

//go:embed templates/*.html
var templates embed.FS

// Serve blocks until ctx is cancelled, then drains in-flight requests.
func Serve(ctx context.Context, port string, controller *session.Controller, sessionTTL time.Duration) error {
	srv := &http.Server{
		Addr:    port,
		Handler: NewEngine(controller, sessionTTL),
	}
	errCh := make(chan error, 1)
	go func() {
		logs.Logger.Info().Str("addr", port).Msg("http server start")
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func NewEngine(controller *session.Controller, sessionTTL time.Duration) *gin.Engine {
	handler.Init(controller)
	e := gin.New()
	e.SetHTMLTemplate(template.Must(template.ParseFS(templates, "templates/*.html")))
	initRouter(e, int(sessionTTL.Seconds()))
	return e
}

func initRouter(e *gin.Engine, cookieMaxAge int) {
	e.Use(gin.Recovery(), middleware.Session(cookieMaxAge), middleware.RequestLogger())
	e.GET("/", handler.Index)
	v1 := e.Group("/v1")
	s := v1.Group("/session")
	{
		s.GET("", handler.GetState)
		s.GET("/image", handler.Image)
		s.POST("/source", handler.UploadSource)
		s.POST("/mask", handler.UploadMask)
		s.POST("/fields", handler.UpdateFields)
		s.POST("/generate", handler.Generate)
		s.POST("/outpaint", handler.Outpaint)
		s.POST("/optimize", handler.Optimize)
		s.POST("/save", handler.Save)
		s.POST("/labels", handler.AddLabel)
		s.POST("/reset", handler.Reset)
	}
	v1.GET("/labels", handler.Labels)
	v1.GET("/prompts", handler.Prompts)
}
