package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/interfaces/http/dto"
)

type createStudentForm struct {
	Name       string `json:"name" binding:"required"`
	RollNumber string `json:"rollNumber" binding:"required,min=5"`
	Email      string `json:"email" binding:"omitempty,email"`
	Role       string `json:"role" binding:"omitempty,oneof=student faculty admin"`
}

func validationRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	SetupValidator()

	r := gin.New()
	r.POST("/api/students", func(c *gin.Context) {
		var form createStudentForm
		if err := c.ShouldBindJSON(&form); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func postJSON(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/api/students", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleValidationError(t *testing.T) {
	r := validationRouter()

	t.Run("reports JSON field names", func(t *testing.T) {
		w := postJSON(r, `{"name":"Priya"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, "ERR_VALIDATION", resp.Error.Code)

		require.Len(t, resp.Error.Details, 1)
		assert.Equal(t, "rollNumber", resp.Error.Details[0].Field)
		assert.Equal(t, "This field is required", resp.Error.Details[0].Message)
	})

	t.Run("collects every failing field", func(t *testing.T) {
		w := postJSON(r, `{"rollNumber":"20","email":"nope","role":"dean"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)

		byField := map[string]string{}
		for _, d := range resp.Error.Details {
			byField[d.Field] = d.Message
		}
		assert.Equal(t, "This field is required", byField["name"])
		assert.Equal(t, "Must be at least 5 characters", byField["rollNumber"])
		assert.Equal(t, "Invalid email format", byField["email"])
		assert.Equal(t, "Must be one of: student faculty admin", byField["role"])
	})

	t.Run("malformed JSON still yields the envelope", func(t *testing.T) {
		w := postJSON(r, `{"name":`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, "ERR_VALIDATION", resp.Error.Code)
		assert.Empty(t, resp.Error.Details, "a syntax error has no field details")
	})

	t.Run("valid payload passes", func(t *testing.T) {
		w := postJSON(r, `{"name":"Priya","rollNumber":"20951A0502","email":"priya@iare.ac.in"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestFormatValidationErrors_CarriesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	SetupValidator()

	r := gin.New()
	r.Use(RequestID())
	r.POST("/api/students", func(c *gin.Context) {
		var form createStudentForm
		if err := c.ShouldBindJSON(&form); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("POST", "/api/students", strings.NewReader(`{}`))
	req.Header.Set("X-Request-ID", "val-req-456")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "val-req-456", resp.Error.RequestID)
}
