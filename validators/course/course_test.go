package courseValidator

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passthrough(c *fiber.Ctx) error {
	return c.SendStatus(http.StatusOK)
}

func TestCourseIDParam(t *testing.T) {
	app := fiber.New()
	app.Post("/courses/:courseId", CourseID(), passthrough)

	cases := map[string]int{
		"/courses/7":   http.StatusOK,
		"/courses/abc": http.StatusBadRequest,
		"/courses/0":   http.StatusBadRequest,
		"/courses/-3":  http.StatusBadRequest,
	}

	for path, want := range cases {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, path, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, path)
	}
}

func TestCreateCourseRequiresAllFields(t *testing.T) {
	app := fiber.New()
	app.Post("/courses", CreateCourse(), passthrough)

	full := map[string]interface{}{
		"title":       "Go",
		"description": "intro",
		"price":       0,
		"imageLink":   "x.png",
		"published":   false,
	}

	body, err := json.Marshal(full)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/courses", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	// Zero price and published:false still count as present.
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	for field := range full {
		partial := map[string]interface{}{}
		for key, value := range full {
			if key != field {
				partial[key] = value
			}
		}
		body, err := json.Marshal(partial)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/courses", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "missing "+field)
	}
}

func TestUpdateCourseNeedsRecognizedField(t *testing.T) {
	app := fiber.New()
	app.Put("/courses", UpdateCourse(), passthrough)

	cases := []struct {
		name string
		body map[string]interface{}
		want int
	}{
		{"one field", map[string]interface{}{"price": 12}, http.StatusOK},
		{"empty body", map[string]interface{}{}, http.StatusBadRequest},
		{"unknown only", map[string]interface{}{"instructorId": 3}, http.StatusBadRequest},
		{"mixed", map[string]interface{}{"instructorId": 3, "title": "Go"}, http.StatusOK},
	}

	for _, tc := range cases {
		body, err := json.Marshal(tc.body)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPut, "/courses", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, tc.want, resp.StatusCode, tc.name)
	}
}
