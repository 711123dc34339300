package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	skillUC "github.com/muftipurwa/portfolio-api/internal/application/usecase/skill"
	"github.com/muftipurwa/portfolio-api/pkg/apperror"
	"github.com/muftipurwa/portfolio-api/pkg/logger"
)

type SkillHandler struct {
	createSkillUseCase *skillUC.CreateSkillUseCase
	listSkillsUseCase  *skillUC.ListSkillsUseCase
	logger             logger.Logger
}

func NewSkillHandler(createUC *skillUC.CreateSkillUseCase, listUC *skillUC.ListSkillsUseCase, log logger.Logger) *SkillHandler {
	return &SkillHandler{
		createSkillUseCase: createUC,
		listSkillsUseCase:  listUC,
		logger:             log,
	}
}

func (h *SkillHandler) CreateSkill(c *gin.Context) {
	var req CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := skillUC.CreateSkillInput{Name: req.Name, Category: req.Category}
	output, err := h.createSkillUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, ToSkillDTO(output.Skill))
}

func (h *SkillHandler) ListSkills(c *gin.Context) {
	output, err := h.listSkillsUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]SkillDTO, len(output.Skills))
	for i, s := range output.Skills {
		dtos[i] = ToSkillDTO(s)
	}
	c.JSON(http.StatusOK, dtos)
}
