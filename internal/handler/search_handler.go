package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/examfinder/examfinder-backend/internal/model"
	"github.com/examfinder/examfinder-backend/internal/response"
	"github.com/examfinder/examfinder-backend/internal/service"
	"github.com/examfinder/examfinder-backend/internal/store"
	"github.com/examfinder/examfinder-backend/internal/validator"
)

type SearchHandler struct {
	searchService *service.SearchService
}

func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Search godoc
// GET /api/search?qualification=<name>&searchTerm=<text>
func (h *SearchHandler) Search(c *gin.Context) {
	var req model.SearchRequest
	if fields := validator.BindQuery(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	exams, err := h.searchService.Search(c.Request.Context(), req.Qualification, req.SearchTerm)
	switch {
	case errors.Is(err, store.ErrUnknownQualification):
		response.Fail(c, http.StatusNotFound, response.ErrUnknownQualification)
		return
	case errors.Is(err, store.ErrSourceUnavailable):
		response.Fail(c, http.StatusInternalServerError, response.ErrExamDataUnavailable)
		return
	case err != nil:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if exams == nil {
		exams = []model.ExamRecord{}
	}
	response.Success(c, http.StatusOK, exams)
}

// Qualifications godoc
// GET /api/qualifications
func (h *SearchHandler) Qualifications(c *gin.Context) {
	response.Success(c, http.StatusOK, h.searchService.Qualifications())
}
