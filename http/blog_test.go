package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	blogify "github.com/Naitik-Lodhi/Blogify-project"
	"github.com/Naitik-Lodhi/Blogify-project/gin"
	"github.com/Naitik-Lodhi/Blogify-project/jwt"
	"github.com/Naitik-Lodhi/Blogify-project/mock"
	"github.com/Naitik-Lodhi/Blogify-project/services"
)

var testKey = []byte("test-signing-key")

// createServer wires every route on top of shared repositories so that
// the feed sees what the blog service writes.
func createServer(t *testing.T) *gin.Server {
	encoder := jwt.NewEncodeDecoder(testKey)

	blogs := &mock.BlogRepository{}
	favorites := &mock.FavoriteRepository{}

	userService := services.NewUserService(&mock.UserRepository{}, &mock.SessionRepository{}, encoder)
	blogService := services.NewBlogService(blogs, &mock.BlogIndex{}, &mock.MetaRepository{})
	favoriteService := services.NewFavoriteService(favorites)
	feedService := services.NewFeedService(blogs, favorites)

	server := gin.New()
	RegisterAuthEndpoints(server, userService, testKey)
	RegisterBlogEndpoints(server, blogService, feedService, favoriteService, userService, testKey)
	RegisterFavoriteEndpoints(server, favoriteService, userService, testKey)
	RegisterPreferencesEndpoints(server, services.NewPreferencesService(&mock.PreferencesRepository{}))
	return server
}

func signUp(t *testing.T, server *gin.Server, name, email string) (blogify.User, string) {
	body, err := json.Marshal(map[string]string{
		"name":     name,
		"email":    email,
		"password": "secret",
	})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/blogify/signup", bytes.NewReader(body))
	resp := httptest.NewRecorder()
	server.ServeHTTP(resp, req)
	require.Equal(t, 200, resp.Code, resp.Body.String())

	var r struct {
		Data  blogify.User `json:"data"`
		Token string       `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &r))
	require.NotEmpty(t, r.Token)
	return r.Data, r.Token
}

func TestSignUp(t *testing.T) {
	server := createServer(t)

	user, token := signUp(t, server, "Ada", "ada@blogify.io")
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Ada", user.Name)

	// Duplicate email
	body, _ := json.Marshal(map[string]string{
		"name":     "Ada again",
		"email":    "ada@blogify.io",
		"password": "secret",
	})
	req := httptest.NewRequest("POST", "/blogify/signup", bytes.NewReader(body))
	resp := httptest.NewRecorder()
	server.ServeHTTP(resp, req)
	assert.Equal(t, 409, resp.Code, resp.Body.String())

	// The token authenticates /blogify/me
	req = httptest.NewRequest("GET", "/blogify/me", nil)
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", token))
	resp = httptest.NewRecorder()
	server.ServeHTTP(resp, req)
	assert.Equal(t, 200, resp.Code, resp.Body.String())
}

func TestMe_Unauthorized(t *testing.T) {
	server := createServer(t)

	var tts = []struct {
		token string
		code  int
	}{
		{token: "", code: 401},
		{token: "not a bearer", code: 401},
		{token: "Bearer not.a.token", code: 401},
	}

	for i, tt := range tts {
		req := httptest.NewRequest("GET", "/blogify/me", nil)
		if tt.token != "" {
			req.Header.Add("Authorization", tt.token)
		}
		resp := httptest.NewRecorder()
		server.ServeHTTP(resp, req)
		assert.Equalf(t, tt.code, resp.Code, "%d - body: %s", i, resp.Body.String())
	}
}

func TestBlogRoutes(t *testing.T) {
	server := createServer(t)

	_, token := signUp(t, server, "Ada", "ada@blogify.io")
	_, otherToken := signUp(t, server, "Bob", "bob@blogify.io")

	// Anonymous cannot create
	body, _ := json.Marshal(map[string]string{
		"title":    "Hello",
		"content":  "My first post",
		"category": "Tech",
	})
	req := httptest.NewRequest("POST", "/blogify/blogs", bytes.NewReader(body))
	resp := httptest.NewRecorder()
	server.ServeHTTP(resp, req)
	require.Equal(t, 401, resp.Code, resp.Body.String())

	// Authenticated create
	req = httptest.NewRequest("POST", "/blogify/blogs", bytes.NewReader(body))
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", token))
	resp = httptest.NewRecorder()
	server.ServeHTTP(resp, req)
	require.Equal(t, 200, resp.Code, resp.Body.String())

	var created struct {
		Data blogify.Blog `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	require.NotEmpty(t, created.Data.ID)

	// The feed sees it, anonymously
	req = httptest.NewRequest("GET", "/blogify/blogs", nil)
	resp = httptest.NewRecorder()
	server.ServeHTTP(resp, req)
	require.Equal(t, 200, resp.Code, resp.Body.String())

	var feedResp struct {
		Data    []blogify.Blog `json:"data"`
		Total   int            `json:"total"`
		HasMore bool           `json:"hasMore"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &feedResp))
	assert.Equal(t, 1, feedResp.Total)
	assert.False(t, feedResp.HasMore)

	// Another user cannot update it
	update, _ := json.Marshal(map[string]string{
		"title":    "Stolen",
		"content":  "Not my post",
		"category": "Tech",
	})
	req = httptest.NewRequest("PUT", "/blogify/blogs/"+created.Data.ID, bytes.NewReader(update))
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", otherToken))
	resp = httptest.NewRecorder()
	server.ServeHTTP(resp, req)
	assert.Equal(t, 403, resp.Code, resp.Body.String())

	// Nor delete it
	req = httptest.NewRequest("DELETE", "/blogify/blogs/"+created.Data.ID, nil)
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", otherToken))
	resp = httptest.NewRecorder()
	server.ServeHTTP(resp, req)
	assert.Equal(t, 403, resp.Code, resp.Body.String())

	// The author can
	req = httptest.NewRequest("DELETE", "/blogify/blogs/"+created.Data.ID, nil)
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", token))
	resp = httptest.NewRecorder()
	server.ServeHTTP(resp, req)
	assert.Equal(t, 204, resp.Code, resp.Body.String())
}

func TestFavoriteRoutes(t *testing.T) {
	server := createServer(t)

	_, token := signUp(t, server, "Ada", "ada@blogify.io")

	// Favorites require a token
	req := httptest.NewRequest("POST", "/blogify/favorites/some-id", nil)
	resp := httptest.NewRecorder()
	server.ServeHTTP(resp, req)
	require.Equal(t, 401, resp.Code, resp.Body.String())

	toggle := func() bool {
		req := httptest.NewRequest("POST", "/blogify/favorites/some-id", nil)
		req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", token))
		resp := httptest.NewRecorder()
		server.ServeHTTP(resp, req)
		require.Equal(t, 200, resp.Code, resp.Body.String())

		var r struct {
			Data struct {
				BlogID   string `json:"blogId"`
				Favorite bool   `json:"favorite"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &r))
		return r.Data.Favorite
	}

	assert.True(t, toggle())
	assert.False(t, toggle())
}

func TestPreferenceRoutes(t *testing.T) {
	server := createServer(t)

	get := func() blogify.Preferences {
		req := httptest.NewRequest("GET", "/blogify/preferences", nil)
		resp := httptest.NewRecorder()
		server.ServeHTTP(resp, req)
		require.Equal(t, 200, resp.Code, resp.Body.String())

		var r struct {
			Data blogify.Preferences `json:"data"`
		}
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &r))
		return r.Data
	}

	assert.Equal(t, blogify.ThemeLight, get().Theme)

	req := httptest.NewRequest("POST", "/blogify/preferences/theme", nil)
	resp := httptest.NewRecorder()
	server.ServeHTTP(resp, req)
	require.Equal(t, 200, resp.Code, resp.Body.String())

	assert.Equal(t, blogify.ThemeDark, get().Theme)
}
