package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/application/placement"
	domainplacement "github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/placement"
)

// YearHandler handles placement year analytics requests
type YearHandler struct {
	BaseHandler
	yearService *placement.YearService
}

// NewYearHandler creates a new year handler
func NewYearHandler(yearService *placement.YearService) *YearHandler {
	return &YearHandler{
		yearService: yearService,
	}
}

// YearResponse is the API view of a placement year
type YearResponse struct {
	Year                      int                                         `json:"year"`
	TotalStudentsParticipated int                                         `json:"totalStudentsParticipated"`
	TotalPlaced               int                                         `json:"totalPlaced"`
	CompanyWise               map[string]domainplacement.CompanyYearStats `json:"companyWise"`
}

// ListYears returns all placement years, newest first, each with its
// per-company breakdown
func (h *YearHandler) ListYears(c *gin.Context) {
	years, err := h.yearService.ListYears(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	result := make([]YearResponse, 0, len(years))
	for _, y := range years {
		result = append(result, YearResponse{
			Year:                      y.Year,
			TotalStudentsParticipated: y.TotalStudentsParticipated,
			TotalPlaced:               y.TotalPlaced,
			CompanyWise:               y.CompanyWise,
		})
	}

	h.Success(c, result)
}
