package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/application/placement"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/shared"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/interfaces/http/dto"
)

// CompanyHandler handles company drive requests
type CompanyHandler struct {
	BaseHandler
	companyService *placement.CompanyService
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService *placement.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
	}
}

// CompanyResponse is the API view of a company drive
type CompanyResponse struct {
	ID           string    `json:"id"`
	CompanyName  string    `json:"companyName"`
	Year         int       `json:"year"`
	Status       string    `json:"status"`
	TotalApplied int       `json:"totalApplied"`
	TotalPlaced  int       `json:"totalPlaced"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PlacementEntryResponse is a single final selection in a company's placements map
type PlacementEntryResponse struct {
	StudentName string `json:"studentName"`
	Package     string `json:"package"`
}

// CompanyDetailResponse is a company together with its final placements
// keyed by student ID
type CompanyDetailResponse struct {
	Company    CompanyResponse                   `json:"company"`
	Placements map[string]PlacementEntryResponse `json:"placements"`
}

// RoundResponse is a hiring round with its per-student results keyed by student ID
type RoundResponse struct {
	ID          string            `json:"id"`
	RoundNumber int               `json:"roundNumber"`
	Name        string            `json:"name"`
	Data        map[string]string `json:"data"`
}

func toCompanyResponse(c placement.CompanyDTO) CompanyResponse {
	return CompanyResponse{
		ID:           c.ID.String(),
		CompanyName:  c.CompanyName,
		Year:         c.Year,
		Status:       string(c.Status),
		TotalApplied: c.TotalApplied,
		TotalPlaced:  c.TotalPlaced,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// ListCompanies returns all company drives, newest year first
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	companies, err := h.companyService.ListCompanies(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	result := make([]CompanyResponse, 0, len(companies))
	for _, company := range companies {
		result = append(result, toCompanyResponse(company))
	}

	h.Success(c, result)
}

// GetCompany returns a company drive with its final placements
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	detail, err := h.companyService.GetCompanyDetails(c.Request.Context(), req.UUID())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	placements := make(map[string]PlacementEntryResponse, len(detail.Placements))
	for studentID, p := range detail.Placements {
		placements[studentID] = PlacementEntryResponse{
			StudentName: p.StudentName,
			Package:     p.Package,
		}
	}

	h.Success(c, CompanyDetailResponse{
		Company:    toCompanyResponse(detail.Company),
		Placements: placements,
	})
}

// GetCompanyRounds returns a company's hiring rounds in round order
func (h *CompanyHandler) GetCompanyRounds(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	rounds, err := h.companyService.GetCompanyRounds(c.Request.Context(), req.UUID())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	result := make([]RoundResponse, 0, len(rounds))
	for _, r := range rounds {
		result = append(result, RoundResponse{
			ID:          r.ID.String(),
			RoundNumber: r.RoundNumber,
			Name:        r.Name,
			Data:        r.Data,
		})
	}

	h.Success(c, result)
}

// DeleteCompany rejects company deletion. Deletions with their yearly stat
// recomputation are owned by the excel_to_delete service on port 5004.
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	err := h.companyService.DeleteCompany(c.Request.Context(), req.UUID())
	if errors.Is(err, shared.ErrGone) {
		h.Gone(c, "Company deletion has moved to the excel_to_delete service on port 5004")
		return
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// DeleteRound rejects round deletion, for the same reason as DeleteCompany
func (h *CompanyHandler) DeleteRound(c *gin.Context) {
	var req CompanyRoundRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid company or round ID")
		return
	}

	err := h.companyService.DeleteRound(c.Request.Context(), req.CompanyUUID(), req.RoundUUID())
	if errors.Is(err, shared.ErrGone) {
		h.Gone(c, "Round deletion has moved to the excel_to_delete service on port 5004")
		return
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// CompanyRoundRequest identifies a round within a company
type CompanyRoundRequest struct {
	ID      string `uri:"id" binding:"required,uuid"`
	RoundID string `uri:"roundId" binding:"required,uuid"`
}

// CompanyUUID returns the parsed company ID path parameter
func (r CompanyRoundRequest) CompanyUUID() uuid.UUID {
	id, _ := uuid.Parse(r.ID)
	return id
}

// RoundUUID returns the parsed round ID path parameter
func (r CompanyRoundRequest) RoundUUID() uuid.UUID {
	id, _ := uuid.Parse(r.RoundID)
	return id
}
