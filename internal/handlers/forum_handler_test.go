package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/skillforge/skillforge-api/internal/models"
	apperrors "github.com/skillforge/skillforge-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newForumRouter(service *MockForumService, user *models.User) *gin.Engine {
	handler := NewForumHandler(service)
	router := gin.New()
	router.GET("/api/forum/posts", handler.GetPosts)
	router.GET("/api/forum/posts/:id", handler.GetPost)
	if user != nil {
		router.POST("/api/forum/posts", injectUser(user), handler.CreatePost)
		router.POST("/api/forum/posts/:id/answers", injectUser(user), handler.CreateAnswer)
	}
	return router
}

func TestForumHandler_GetPosts_DefaultLimit(t *testing.T) {
	service := new(MockForumService)
	service.On("GetPosts", mock.Anything, 0).Return([]*models.ForumPostWithAuthor{}, nil)

	router := newForumRouter(service, nil)
	w := performRequest(router, "GET", "/api/forum/posts", "")

	assert.Equal(t, http.StatusOK, w.Code)
	service.AssertExpectations(t)
}

func TestForumHandler_GetPosts_ExplicitLimit(t *testing.T) {
	service := new(MockForumService)
	service.On("GetPosts", mock.Anything, 5).Return([]*models.ForumPostWithAuthor{}, nil)

	router := newForumRouter(service, nil)
	w := performRequest(router, "GET", "/api/forum/posts?limit=5", "")

	assert.Equal(t, http.StatusOK, w.Code)
	service.AssertExpectations(t)
}

func TestForumHandler_GetPosts_InvalidLimit(t *testing.T) {
	service := new(MockForumService)

	router := newForumRouter(service, nil)
	w := performRequest(router, "GET", "/api/forum/posts?limit=abc", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	service.AssertNotCalled(t, "GetPosts", mock.Anything, mock.Anything)
}

func TestForumHandler_CreatePost(t *testing.T) {
	service := new(MockForumService)
	service.On("CreatePost", mock.Anything, "user-1", mock.MatchedBy(func(input *models.ForumPostInput) bool {
		return input.Title == "How do goroutines leak?" && len(input.Tags) == 2
	})).Return(&models.ForumPost{ID: "post-1", AuthorID: "user-1", Title: "How do goroutines leak?"}, nil)

	router := newForumRouter(service, &models.User{ID: "user-1"})
	w := performRequest(router, "POST", "/api/forum/posts",
		`{"title":"How do goroutines leak?","content":"I see growing memory usage","tags":["go","concurrency"]}`)

	assert.Equal(t, http.StatusCreated, w.Code)

	var body models.ForumPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "post-1", body.ID)
	service.AssertExpectations(t)
}

func TestForumHandler_CreatePost_MissingContent(t *testing.T) {
	service := new(MockForumService)

	router := newForumRouter(service, &models.User{ID: "user-1"})
	w := performRequest(router, "POST", "/api/forum/posts", `{"title":"No body"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	service.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything, mock.Anything)
}

func TestForumHandler_CreateAnswer(t *testing.T) {
	service := new(MockForumService)
	service.On("CreateAnswer", mock.Anything, "post-1", "user-1", mock.Anything).
		Return(&models.ForumAnswer{ID: "answer-1", PostID: "post-1", AuthorID: "user-1"}, nil)

	router := newForumRouter(service, &models.User{ID: "user-1"})
	w := performRequest(router, "POST", "/api/forum/posts/post-1/answers",
		`{"content":"Use context cancellation"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	service.AssertExpectations(t)
}

func TestForumHandler_CreateAnswer_UnknownPost(t *testing.T) {
	service := new(MockForumService)
	service.On("CreateAnswer", mock.Anything, "ghost", "user-1", mock.Anything).
		Return(nil, apperrors.NotFoundError("forum post"))

	router := newForumRouter(service, &models.User{ID: "user-1"})
	w := performRequest(router, "POST", "/api/forum/posts/ghost/answers",
		`{"content":"into the void"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
