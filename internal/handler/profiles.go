package handler

import (
	"net/http"

	"lavkapos/internal/dto"
	"lavkapos/internal/service"

	"github.com/gin-gonic/gin"
)

type ProfilesHandler struct{ svc service.ProfileService }

func NewProfilesHandler(svc service.ProfileService) *ProfilesHandler {
	return &ProfilesHandler{svc: svc}
}

func (h *ProfilesHandler) List(c *gin.Context) {
	resp, err := h.svc.List()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfilesHandler) Create(c *gin.Context) {
	var req dto.CreateProfileRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProfilesHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("profile")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
