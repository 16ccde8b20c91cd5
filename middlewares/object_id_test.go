package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestObjectIDParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/:id/students/:studentId", ObjectIDParams("id", "studentId"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	id := primitive.NewObjectID().Hex()

	tests := []struct {
		name    string
		path    string
		status  int
		message string
	}{
		{"valid", "/" + id + "/students/" + id, http.StatusNoContent, ""},
		{"bad id", "/A1/students/" + id, http.StatusBadRequest, "id must be a valid id"},
		{"bad student", "/" + id + "/students/S1", http.StatusBadRequest, "studentId must be a valid id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}
			if tt.message != "" && !strings.Contains(w.Body.String(), tt.message) {
				t.Errorf("body = %s, want %q", w.Body.String(), tt.message)
			}
		})
	}
}
