package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/muftipurwa/portfolio-api/internal/application/usecase/profile"
	"github.com/muftipurwa/portfolio-api/pkg/apperror"
	"github.com/muftipurwa/portfolio-api/pkg/logger"
)

type ProfileHandler struct {
	getProfileUseCase    *profileUC.GetProfileUseCase
	updateProfileUseCase *profileUC.UpdateProfileUseCase
	logger               logger.Logger
}

func NewProfileHandler(getUC *profileUC.GetProfileUseCase, updateUC *profileUC.UpdateProfileUseCase, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		getProfileUseCase:    getUC,
		updateProfileUseCase: updateUC,
		logger:               log,
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	output, err := h.getProfileUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	if output.Profile == nil {
		// No profile has been created yet; the contract is an explicit null.
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for profile update", err))
		return
	}
	if err := req.Validate(); err != nil {
		c.Error(err)
		return
	}

	input := profileUC.UpdateProfileInput{Changes: req.ToChanges()}
	output, err := h.updateProfileUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}
