// file: controllers/page_controller_test.go
package controllers

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var idempotencyKeyField = regexp.MustCompile(`name="idempotency_key" value="([^"]+)"`)

func renderRegistrationPage(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/register", nil))
	require.Equal(t, http.StatusOK, w.Code)

	m := idempotencyKeyField.FindStringSubmatch(w.Body.String())
	require.Len(t, m, 2, "form should carry a hidden idempotency_key field")
	return m[1]
}

func TestRegistrationPageEmbedsIdempotencyKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.LoadHTMLGlob("../templates/*.html")
	r.GET("/register", RegistrationPage)

	first := renderRegistrationPage(t, r)
	assert.NotEmpty(t, first)

	// Each render mints its own key; only a resubmit of the same rendered
	// form deduplicates.
	second := renderRegistrationPage(t, r)
	assert.NotEqual(t, first, second)
}
