package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/reusedev/pattern-hub/internal/modules/cache"
	"github.com/reusedev/pattern-hub/internal/modules/observer"
	"github.com/reusedev/pattern-hub/internal/service/http/handler/response"
	"github.com/reusedev/pattern-hub/internal/service/http/middleware"
	"net/http"
	"time"
)

// Subject exposes one process wide subject over HTTP. Its state is mirrored
// into a cache by a subscribed observer and read back from there.
type Subject struct {
	subject *observer.Subject
	mirror  *cache.StateObserver
}

func NewSubject(subject *observer.Subject, expire time.Duration) (*Subject, error) {
	mirror := cache.NewStateObserver(cache.NewManager[int](expire), subject, "subject_state", expire)
	if _, err := subject.Subscribe(mirror); err != nil {
		return nil, err
	}
	return &Subject{subject: subject, mirror: mirror}, nil
}

type setStateRequest struct {
	State *int `json:"state" binding:"required"`
}

func (s *Subject) SetState(c *gin.Context) {
	var req setStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage(err.Error()))
		return
	}
	c.Set(middleware.SubjectStateKey, *req.State)
	data := gin.H{"state": *req.State, "observers": s.subject.Len()}
	if err := s.subject.SetState(*req.State); err != nil {
		c.Set(middleware.DeliveryErrorKey, err.Error())
		data["delivery_error"] = err.Error()
	}
	c.JSON(http.StatusOK, response.SuccessWithData(data))
}

func (s *Subject) State(c *gin.Context) {
	v, found, err := s.mirror.Last()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithData(gin.H{"state": v, "cached": found}))
}
