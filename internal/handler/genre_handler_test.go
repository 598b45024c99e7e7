package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"moviehub/internal/dto"
	"moviehub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupGenreRouter(genreSvc service.GenreService, authMw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewGenreHandler(genreSvc).RegisterRoutes(r.Group("/api"), authMw)
	return r
}

func patchJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPatch, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenrePatchEndpoint_RenamesGenre(t *testing.T) {
	mockGenres := new(MockGenreService)
	name := "Noir"
	mockGenres.On("Patch", mock.Anything, int64(1), dto.UpdateGenreRequest{Name: &name}).
		Return(&dto.GenreResponse{ID: 1, Name: "Noir", IsActive: true}, nil)

	r := setupGenreRouter(mockGenres, authedUser("user-1"))
	w := patchJSON(r, "/api/genres/1", gin.H{"name": "Noir"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Noir"`)
	mockGenres.AssertExpectations(t)
}

func TestGenrePatchEndpoint_NotFound(t *testing.T) {
	mockGenres := new(MockGenreService)
	mockGenres.On("Patch", mock.Anything, int64(99), mock.AnythingOfType("dto.UpdateGenreRequest")).
		Return(nil, service.ErrGenreNotFound)

	r := setupGenreRouter(mockGenres, authedUser("user-1"))
	w := patchJSON(r, "/api/genres/99", gin.H{"name": "Noir"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGenrePatchEndpoint_DuplicateName(t *testing.T) {
	mockGenres := new(MockGenreService)
	mockGenres.On("Patch", mock.Anything, int64(1), mock.AnythingOfType("dto.UpdateGenreRequest")).
		Return(nil, service.ErrDuplicateGenre)

	r := setupGenreRouter(mockGenres, authedUser("user-1"))
	w := patchJSON(r, "/api/genres/1", gin.H{"name": "Drama"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
