package users

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelboard/modelboard/internal/models"
	"github.com/modelboard/modelboard/internal/storage/sqlite"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := sqlite.New(sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	r := gin.New()
	RegisterRoutes(r, &Dependencies{Store: store})
	return r
}

func TestListUsers(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var users []models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))

	require.Len(t, users, 2)
	assert.Equal(t, models.User{ID: 1, Name: "Alice", Role: "admin"}, users[0])
	assert.Equal(t, models.User{ID: 2, Name: "Bob", Role: "data-scientist"}, users[1])
}

func TestListUsersIsStable(t *testing.T) {
	r := setupRouter(t)

	var first string
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users", nil))
		require.Equal(t, http.StatusOK, w.Code)

		if i == 0 {
			first = w.Body.String()
			continue
		}
		assert.Equal(t, first, w.Body.String())
	}
}
