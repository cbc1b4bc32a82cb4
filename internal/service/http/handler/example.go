package handler

import (
	"bytes"
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/reusedev/pattern-hub/config"
	"github.com/reusedev/pattern-hub/internal/examples"
	"github.com/reusedev/pattern-hub/internal/modules/logs"
	"github.com/reusedev/pattern-hub/internal/service/http/handler/response"
	"github.com/reusedev/pattern-hub/internal/service/http/middleware"
	"net/http"
)

type Example struct {
	cfg *config.Config
}

func NewExample(cfg *config.Config) *Example {
	return &Example{cfg: cfg}
}

func (h *Example) List(c *gin.Context) {
	c.JSON(http.StatusOK, response.SuccessWithData(examples.List()))
}

// Run executes one example. Every run gets its own journal so repeated
// requests do not accumulate entries.
func (h *Example) Run(c *gin.Context) {
	pattern, kind := c.Param("pattern"), c.Param("kind")
	c.Set(middleware.ExampleKey, examples.Key(pattern, kind))
	out := &bytes.Buffer{}
	env := &examples.Env{Out: out, Config: h.cfg, Journal: logs.NewJournal()}
	err := examples.Run(c.Request.Context(), pattern, kind, env)
	switch {
	case errors.Is(err, examples.ErrUnknownExample):
		c.JSON(http.StatusNotFound, response.NotFoundWithMessage(err.Error()))
		return
	case errors.Is(err, examples.ErrMissingArguments):
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage(err.Error()))
		return
	case err != nil:
		logs.Logger.Error().Err(err).Str("pattern", pattern).Str("kind", kind).Msg("example failed")
		c.JSON(http.StatusInternalServerError, response.InternalError)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithData(gin.H{
		"key":    examples.Key(pattern, kind),
		"output": out.String(),
	}))
}
