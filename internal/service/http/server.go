package http

import (
	"github.com/gin-gonic/gin"
	"github.com/reusedev/pattern-hub/config"
	"github.com/reusedev/pattern-hub/internal/modules/logs"
	"github.com/reusedev/pattern-hub/internal/modules/observer"
	"github.com/reusedev/pattern-hub/internal/service/http/handler"
	"github.com/reusedev/pattern-hub/internal/service/http/middleware"
)

func Serve(port string, cfg *config.Config) error {
	e, err := NewEngine(cfg)
	if err != nil {
		return err
	}
	return e.Run(port)
}

func NewEngine(cfg *config.Config) (*gin.Engine, error) {
	subject := observer.NewSubject(observer.NewRegistry(observer.WithLogger(logs.Logger)))
	sh, err := handler.NewSubject(subject, cfg.CacheExpiration())
	if err != nil {
		return nil, err
	}
	e := gin.New()
	initRouter(e, handler.NewExample(cfg), sh)
	return e, nil
}

func initRouter(e *gin.Engine, eh *handler.Example, sh *handler.Subject) {
	e.Use(gin.Recovery(), middleware.RequestLogger(logs.Logger))
	v1 := e.Group("/v1")
	ex := v1.Group("/examples")
	{
		ex.GET("", eh.List)
		ex.POST("/:pattern/:kind", eh.Run)
	}
	subject := v1.Group("/subject")
	{
		subject.GET("/state", sh.State)
		subject.PUT("/state", sh.SetState)
	}
}
