package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(handler gin.HandlerFunc, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	handler(c)
	return w
}

func TestCreateArticleValidationErrorsAreTranslatedPerField(t *testing.T) {
	h := NewArticleHandler(nil, nil)

	w := postJSON(h.CreateArticle, `{"summary":"no title, type or content"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "validationError")
	assert.Contains(t, body, `"title"`)
	assert.Contains(t, body, `"type"`)
	assert.Contains(t, body, `"content"`)
}

func TestCreateArticleMalformedJSONIsPlainBadRequest(t *testing.T) {
	h := NewArticleHandler(nil, nil)

	w := postJSON(h.CreateArticle, `{not json`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "badRequest")
}
