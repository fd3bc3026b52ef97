package notify

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Success("Message sent")
	c.Error("Error loading vendors: boom")

	assert.Equal(t, []Toast{
		{Level: LevelSuccess, Message: "Message sent"},
		{Level: LevelError, Message: "Error loading vendors: boom"},
	}, c.Toasts())
}

func TestMiddlewareGivesEachRequestItsOwnCollector(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())

	var counts []int
	r.GET("/", func(c *gin.Context) {
		n := FromContext(c)
		n.Error("x")
		counts = append(counts, len(n.Toasts()))
		c.Status(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}
	assert.Equal(t, []int{1, 1}, counts)
}

func TestFromContextWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	first := FromContext(c)
	first.Success("ok")
	assert.Same(t, first, FromContext(c))
}
