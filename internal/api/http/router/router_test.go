package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/userhub-dev/userhub-server/internal/repository/memory"
	"github.com/userhub-dev/userhub-server/internal/service"
	"github.com/userhub-dev/userhub-server/internal/testutil"
)

func setupEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := memory.NewUserRepository()
	userService := service.NewUser(repo, testutil.MakeNoopLogger())

	return New(userService, testutil.MakeNoopLogger()).Register()
}

func TestRouter_Healthz(t *testing.T) {
	engine := setupEngine()

	req, _ := http.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_UserRoutesRegistered(t *testing.T) {
	engine := setupEngine()

	body, err := json.Marshal(gin.H{
		"firstName": "John",
		"lastName":  "Doe",
		"email":     "john@example.com",
	})
	require.NoError(t, err)

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/users", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	routes := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{http.MethodGet, "/api/v1/users", http.StatusOK},
		{http.MethodGet, "/api/v1/users/" + created.ID, http.StatusOK},
		{http.MethodGet, "/api/v1/stats", http.StatusOK},
		{http.MethodDelete, "/api/v1/users/" + created.ID, http.StatusNoContent},
	}

	for _, rt := range routes {
		req, _ := http.NewRequest(rt.method, rt.path, nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		assert.Equal(t, rt.wantStatus, w.Code, "%s %s", rt.method, rt.path)
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	engine := setupEngine()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/unknown", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
