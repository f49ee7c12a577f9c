package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/gin-gonic/gin"
)

// SessionCookie carries the visitor's contact-form session id.
const SessionCookie = "portfolio_session"

type fieldsRequest struct {
	Name    *string `json:"name" form:"name"`
	Email   *string `json:"email" form:"email"`
	Subject *string `json:"subject" form:"subject"`
	Message *string `json:"message" form:"message"`
}

func (r fieldsRequest) value(f contact.Field) *string {
	switch f {
	case contact.FieldName:
		return r.Name
	case contact.FieldEmail:
		return r.Email
	case contact.FieldSubject:
		return r.Subject
	case contact.FieldMessage:
		return r.Message
	}
	return nil
}

// apply copies the provided fields onto ctrl in form order.
func (r fieldsRequest) apply(ctrl *contact.Controller) error {
	for _, f := range contact.AllFields {
		v := r.value(f)
		if v == nil {
			continue
		}
		if err := ctrl.Update(f, *v); err != nil {
			return err
		}
	}
	return nil
}

// controller resolves the visitor's form, issuing a session cookie if needed.
func (s *Server) controller(c *gin.Context) *contact.Controller {
	id, _ := c.Cookie(SessionCookie)
	id, ctrl, created := s.sessions.Get(id)
	if created {
		c.SetCookie(SessionCookie, id, 0, "/", "", s.opts.SecureCookies, true)
	}
	return ctrl
}

func (s *Server) getContact(c *gin.Context) {
	c.JSON(http.StatusOK, s.controller(c).State())
}

func (s *Server) updateContact(c *gin.Context) {
	ctrl := s.controller(c)

	var req fieldsRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form body"})
		return
	}
	if err := req.apply(ctrl); err != nil {
		s.contactError(c, ctrl, err)
		return
	}
	c.JSON(http.StatusOK, ctrl.State())
}

// submitContact optionally applies fields from the body, then runs the
// submission and waits for it. A dropped client does not abort the send;
// only SubmitTimeout bounds it.
func (s *Server) submitContact(c *gin.Context) {
	ctrl := s.controller(c)

	if c.Request.ContentLength != 0 {
		var req fieldsRequest
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form body"})
			return
		}
		if err := req.apply(ctrl); err != nil {
			s.contactError(c, ctrl, err)
			return
		}
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), s.opts.SubmitTimeout)
	defer cancel()

	state, err := ctrl.Submit(ctx)
	if err != nil {
		s.contactError(c, ctrl, err)
		return
	}
	if !state.Errors.Empty() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": state.Errors, "state": state})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": contact.SuccessMessage, "state": state})
}

func (s *Server) acknowledgeContact(c *gin.Context) {
	ctrl := s.controller(c)
	if err := ctrl.Acknowledge(); err != nil {
		s.contactError(c, ctrl, err)
		return
	}
	c.JSON(http.StatusOK, ctrl.State())
}

func (s *Server) contactError(c *gin.Context, ctrl *contact.Controller, err error) {
	state := ctrl.State()
	switch {
	case errors.Is(err, contact.ErrUnknownField):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "state": state})
	case errors.Is(err, contact.ErrSubmitInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": "Your message is already being sent.", "state": state})
	case errors.Is(err, contact.ErrClosed):
		c.JSON(http.StatusGone, gin.H{"error": "This form has expired. Please reload the page.", "state": state})
	case errors.Is(err, contact.ErrSubmitFailed):
		s.logger.Error().Err(err).Msg("contact submission failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": contact.FailureMessage, "state": state})
	default:
		s.logger.Error().Err(err).Msg("contact request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "state": state})
	}
}
