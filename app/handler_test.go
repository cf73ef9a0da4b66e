package main

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthCheck(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	status, _, body := ts.get(t, "/api/healthcheck", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "available", body["status"])
}

func TestRegisterUserHandler(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	t.Run("valid registration", func(t *testing.T) {
		status, _, body := ts.post(t, "/api/users", map[string]any{
			"username": "testuser",
			"name":     "Test User",
			"password": "sekret",
		}, nil)

		assert.Equal(t, http.StatusOK, status)

		user, ok := body["user"].(map[string]any)
		assert.True(t, ok)
		assert.Equal(t, "testuser", user["username"])
		assert.Equal(t, "Test User", user["name"])
		assert.NotZero(t, user["id"])

		// the hash never leaves the system
		_, exposed := user["passwordHash"]
		assert.False(t, exposed)
		_, exposed = user["password_hash"]
		assert.False(t, exposed)
	})

	t.Run("duplicate username", func(t *testing.T) {
		status, _, body := ts.post(t, "/api/users", map[string]any{
			"username": "testuser",
			"name":     "Someone Else",
			"password": "hunter2",
		}, nil)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, map[string]any{"username": "this username is already taken"}, body["error"])
	})

	t.Run("password too short", func(t *testing.T) {
		status, _, _ := ts.post(t, "/api/users", map[string]any{
			"username": "otheruser",
			"name":     "Other User",
			"password": "ab",
		}, nil)

		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestLoginUserHandler(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	setupTestUserToken(t, app)

	t.Run("correct credentials", func(t *testing.T) {
		status, _, body := ts.post(t, "/api/login", map[string]any{
			"username": "testuser",
			"password": "sekret",
		}, nil)

		assert.Equal(t, http.StatusOK, status)
		assert.NotEmpty(t, body["token"])
		assert.Equal(t, "testuser", body["username"])
		assert.Equal(t, "Test User", body["name"])
	})

	t.Run("wrong password", func(t *testing.T) {
		status, _, body := ts.post(t, "/api/login", map[string]any{
			"username": "testuser",
			"password": "wrongpass",
		}, nil)

		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "invalid authentication credentials", body["error"])
	})

	t.Run("unknown username gets the same message", func(t *testing.T) {
		status, _, body := ts.post(t, "/api/login", map[string]any{
			"username": "ghostuser",
			"password": "sekret",
		}, nil)

		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "invalid authentication credentials", body["error"])
	})

	t.Run("issued token passes authentication", func(t *testing.T) {
		_, _, body := ts.post(t, "/api/login", map[string]any{
			"username": "testuser",
			"password": "sekret",
		}, nil)

		token, ok := body["token"].(string)
		assert.True(t, ok)

		status, _, _ := ts.post(t, "/api/blogs", map[string]any{
			"title":  "Posted with a login token",
			"author": "Test User",
			"url":    "https://example.com/login-token",
		}, &token)
		assert.Equal(t, http.StatusOK, status)
	})
}

func TestCreateBlogHandler(t *testing.T) {
	app, db := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	user, token := setupTestUserToken(t, app)

	countBlogs := func() int {
		var count int
		assert.NoError(t, db.QueryRow("SELECT COUNT(*) FROM blogs").Scan(&count))
		return count
	}

	t.Run("without a token", func(t *testing.T) {
		status, _, _ := ts.post(t, "/api/blogs", map[string]any{
			"title":  "No token",
			"author": "Nobody",
			"url":    "https://example.com/no-token",
		}, nil)

		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, 0, countBlogs())
	})

	t.Run("with an invalid token", func(t *testing.T) {
		status, _, _ := ts.post(t, "/api/blogs", map[string]any{
			"title":  "Bad token",
			"author": "Nobody",
			"url":    "https://example.com/bad-token",
		}, strptr("garbage"))

		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, 0, countBlogs())
	})

	t.Run("valid blog", func(t *testing.T) {
		status, _, body := ts.post(t, "/api/blogs", map[string]any{
			"title":  "First blog",
			"author": "Test Author",
			"url":    "https://example.com/first",
			"likes":  3,
		}, &token)

		assert.Equal(t, http.StatusOK, status)

		blog, ok := body["blog"].(map[string]any)
		assert.True(t, ok)
		assert.NotZero(t, blog["id"])
		assert.Equal(t, "First blog", blog["title"])
		assert.Equal(t, float64(3), blog["likes"])

		owner, ok := blog["user"].(map[string]any)
		assert.True(t, ok)
		assert.Equal(t, float64(user.ID), owner["id"])
	})

	t.Run("missing likes defaults to zero", func(t *testing.T) {
		status, _, body := ts.post(t, "/api/blogs", map[string]any{
			"title":  "No likes yet",
			"author": "Test Author",
			"url":    "https://example.com/no-likes",
		}, &token)

		assert.Equal(t, http.StatusOK, status)

		blog := body["blog"].(map[string]any)
		assert.Equal(t, float64(0), blog["likes"])
	})

	t.Run("missing title and url", func(t *testing.T) {
		before := countBlogs()

		status, _, _ := ts.post(t, "/api/blogs", map[string]any{
			"author": "Test Author",
			"likes":  10,
		}, &token)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, before, countBlogs())
	})
}

func TestGetBlogHandler(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	_, token := setupTestUserToken(t, app)

	_, _, body := ts.post(t, "/api/blogs", map[string]any{
		"title":  "Readable blog",
		"author": "Test Author",
		"url":    "https://example.com/readable",
	}, &token)
	id := body["blog"].(map[string]any)["id"].(float64)

	t.Run("existing blog", func(t *testing.T) {
		status, _, body := ts.get(t, fmt.Sprintf("/api/blogs/%d", int(id)), nil)
		assert.Equal(t, http.StatusOK, status)

		blog := body["blog"].(map[string]any)
		assert.Equal(t, "Readable blog", blog["title"])
		assert.Equal(t, "testuser", blog["user"].(map[string]any)["username"])
	})

	t.Run("well-formed but absent id", func(t *testing.T) {
		status, _, _ := ts.get(t, fmt.Sprintf("/api/blogs/%d", int(id)+1000), nil)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("malformed id", func(t *testing.T) {
		status, _, _ := ts.get(t, "/api/blogs/not-an-id", nil)
		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestUpdateBlogHandler(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	_, token := setupTestUserToken(t, app)

	_, _, body := ts.post(t, "/api/blogs", map[string]any{
		"title":  "Original title",
		"author": "Original Author",
		"url":    "https://example.com/original",
		"likes":  1,
	}, &token)
	id := int(body["blog"].(map[string]any)["id"].(float64))

	t.Run("full replace", func(t *testing.T) {
		status, _, body := ts.put(t, fmt.Sprintf("/api/blogs/%d", id), map[string]any{
			"title":  "Updated title",
			"author": "Updated Author",
			"url":    "https://example.com/updated",
			"likes":  8,
		}, nil)

		assert.Equal(t, http.StatusOK, status)

		blog := body["blog"].(map[string]any)
		assert.Equal(t, "Updated title", blog["title"])
		assert.Equal(t, "Updated Author", blog["author"])
		assert.Equal(t, "https://example.com/updated", blog["url"])
		assert.Equal(t, float64(8), blog["likes"])
	})

	t.Run("absent id", func(t *testing.T) {
		status, _, _ := ts.put(t, fmt.Sprintf("/api/blogs/%d", id+1000), map[string]any{
			"title":  "Nope",
			"author": "Nope",
			"url":    "https://example.com/nope",
			"likes":  0,
		}, nil)

		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("malformed id", func(t *testing.T) {
		status, _, _ := ts.put(t, "/api/blogs/not-an-id", map[string]any{
			"title":  "Nope",
			"author": "Nope",
			"url":    "https://example.com/nope",
			"likes":  0,
		}, nil)

		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestDeleteBlogHandler(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	_, token := setupTestUserToken(t, app)

	_, _, body := ts.post(t, "/api/blogs", map[string]any{
		"title":  "Doomed blog",
		"author": "Test Author",
		"url":    "https://example.com/doomed",
	}, &token)
	id := int(body["blog"].(map[string]any)["id"].(float64))

	t.Run("existing blog", func(t *testing.T) {
		status, _, _ := ts.delete(t, fmt.Sprintf("/api/blogs/%d", id), nil)
		assert.Equal(t, http.StatusNoContent, status)
	})

	t.Run("deleting again is still a 204", func(t *testing.T) {
		status, _, _ := ts.delete(t, fmt.Sprintf("/api/blogs/%d", id), nil)
		assert.Equal(t, http.StatusNoContent, status)
	})

	t.Run("malformed id", func(t *testing.T) {
		status, _, _ := ts.delete(t, "/api/blogs/not-an-id", nil)
		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestGetAllBlogsHandler(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	_, token := setupTestUserToken(t, app)

	t.Run("empty collection", func(t *testing.T) {
		status, _, body := ts.get(t, "/api/blogs", nil)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, []any{}, body["blogs"])
	})

	t.Run("owners populated", func(t *testing.T) {
		for _, title := range []string{"one", "two"} {
			status, _, _ := ts.post(t, "/api/blogs", map[string]any{
				"title":  title,
				"author": "Test Author",
				"url":    "https://example.com/" + title,
			}, &token)
			assert.Equal(t, http.StatusOK, status)
		}

		status, _, body := ts.get(t, "/api/blogs", nil)
		assert.Equal(t, http.StatusOK, status)

		blogs, ok := body["blogs"].([]any)
		assert.True(t, ok)
		assert.Len(t, blogs, 2)
		for _, b := range blogs {
			blog := b.(map[string]any)
			assert.Equal(t, "testuser", blog["user"].(map[string]any)["username"])
		}
	})
}

func TestBlogStatsHandler(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	_, token := setupTestUserToken(t, app)

	t.Run("empty collection", func(t *testing.T) {
		status, _, body := ts.get(t, "/api/stats", nil)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, float64(0), body["count"])
		assert.Equal(t, float64(0), body["likes"])
		assert.Nil(t, body["favorite"])
		assert.Nil(t, body["most_blogs"])
		assert.Nil(t, body["most_likes"])
	})

	t.Run("aggregates over the collection", func(t *testing.T) {
		fixtures := []map[string]any{
			{"title": "Go To Statement Considered Harmful", "author": "Edsger W. Dijkstra", "url": "https://example.com/goto", "likes": 5},
			{"title": "Canonical string reduction", "author": "Edsger W. Dijkstra", "url": "https://example.com/canonical", "likes": 12},
			{"title": "First class tests", "author": "Robert C. Martin", "url": "https://example.com/tests", "likes": 10},
			{"title": "Type wars", "author": "Robert C. Martin", "url": "https://example.com/typewars", "likes": 2},
			{"title": "TDD harms architecture", "author": "Robert C. Martin", "url": "https://example.com/tdd", "likes": 0},
		}
		for _, f := range fixtures {
			status, _, _ := ts.post(t, "/api/blogs", f, &token)
			assert.Equal(t, http.StatusOK, status)
		}

		status, _, body := ts.get(t, "/api/stats", nil)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, float64(5), body["count"])
		assert.Equal(t, float64(29), body["likes"])

		favorite := body["favorite"].(map[string]any)
		assert.Equal(t, "Canonical string reduction", favorite["title"])
		assert.Equal(t, float64(12), favorite["likes"])

		mostBlogs := body["most_blogs"].(map[string]any)
		assert.Equal(t, "Robert C. Martin", mostBlogs["author"])
		assert.Equal(t, float64(3), mostBlogs["blogs"])

		mostLikes := body["most_likes"].(map[string]any)
		assert.Equal(t, "Edsger W. Dijkstra", mostLikes["author"])
		assert.Equal(t, float64(17), mostLikes["likes"])
	})
}
