package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"classfinder/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func handleError(err error) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	HandleAPIError(c, err, "Unable to grab building data")
	return w
}

func TestHandleAPIError(t *testing.T) {
	t.Run("term outside allow-list maps to 400", func(t *testing.T) {
		err := fmt.Errorf("%w: %q", apperrors.ErrTermNotAllowed, "summer2040")
		w := handleError(err)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"status":400,"error":"Unknown term"}`, w.Body.String())
	})

	t.Run("query failure maps to the generic 500 message", func(t *testing.T) {
		err := fmt.Errorf("error querying buildings: %w", apperrors.ErrQueryFailed)
		w := handleError(err)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"status":500,"error":"Unable to grab building data"}`, w.Body.String())
	})

	t.Run("driver details never reach the caller", func(t *testing.T) {
		err := errors.New(`pq: relation "classes_summer2040" does not exist`)
		w := handleError(err)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "relation")
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		w := handleError(apperrors.ErrResourceNotFound)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"status":404,"error":"Resource not found"}`, w.Body.String())
	})
}
