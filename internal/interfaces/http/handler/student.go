package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/application/placement"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/interfaces/http/dto"
)

// StudentHandler handles student management requests
type StudentHandler struct {
	BaseHandler
	studentService *placement.StudentService
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(studentService *placement.StudentService) *StudentHandler {
	return &StudentHandler{
		studentService: studentService,
	}
}

// ListStudents returns students matching an optional search term, together
// with placed/not-placed counts over the matched set
func (h *StudentHandler) ListStudents(c *gin.Context) {
	var req ListStudentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.studentService.ListStudents(c.Request.Context(), placement.ListStudentsInput{
		Search: req.Search,
		Limit:  req.Limit,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	students := make([]StudentResponse, 0, len(result.Students))
	for _, s := range result.Students {
		students = append(students, toStudentResponse(s))
	}

	h.Success(c, ListStudentsResponse{
		Students:  students,
		Total:     result.Total,
		Placed:    result.Placed,
		NotPlaced: result.NotPlaced,
	})
}

// CountStudents returns the total number of registered students
func (h *StudentHandler) CountStudents(c *gin.Context) {
	total, err := h.studentService.CountStudents(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, StudentCountResponse{Total: total})
}

// GetStudentStats returns aggregate statistics over students matching the
// search and status filters
func (h *StudentHandler) GetStudentStats(c *gin.Context) {
	var req StudentStatsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.studentService.GetStudentStats(c.Request.Context(), placement.StudentStatsInput{
		Search: req.Search,
		Status: req.Status,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, StudentStatsResponse{
		Total:       result.Total,
		Placed:      result.Placed,
		NotPlaced:   result.NotPlaced,
		TotalOffers: result.TotalOffers,
		AvgOffers:   result.AvgOffers,
	})
}

// GetStudent returns a single student by ID
func (h *StudentHandler) GetStudent(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid student ID")
		return
	}

	student, err := h.studentService.GetStudent(c.Request.Context(), req.UUID())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toStudentResponse(*student))
}

// CreateStudent registers a new student
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	student, err := h.studentService.CreateStudent(c.Request.Context(), placement.CreateStudentInput{
		Name:       req.Name,
		RollNumber: req.RollNumber,
		Email:      req.Email,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toStudentResponse(*student))
}

// DeleteStudent removes a student and cascades the removal through rounds,
// placements and yearly statistics
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid student ID")
		return
	}

	result, err := h.studentService.DeleteStudent(c.Request.Context(), req.UUID())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, DeleteStudentResponse{
		StudentID:   result.StudentID.String(),
		StudentName: result.StudentName,
		CascadingUpdates: CascadingUpdatesResponse{
			CompaniesAffected: result.Cascade.CompaniesAffected,
			RoundsDeleted:     result.Cascade.RoundsDeleted,
			PlacementsDeleted: result.Cascade.PlacementsDeleted,
			YearsAffected:     result.Cascade.YearsAffected,
		},
	})
}
