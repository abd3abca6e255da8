package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"devconnector/dto"
	"devconnector/internal/jwtutil"
)

const testSecret = "middleware-test-secret"

func newApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: ErrorHandler(nil)})
}

func decodeMsg(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Msg
}

func protectedApp(v Verifier) *fiber.App {
	app := newApp()
	app.Get("/private", append(Protected(v), func(c *fiber.Ctx) error {
		uid, err := UIDFromLocals(c)
		if err != nil {
			return err
		}
		return c.SendString(uid)
	})...)
	return app
}

func TestProtected(t *testing.T) {
	mgr := jwtutil.NewManager(testSecret, time.Hour, nil)
	uid := "65f0a1b2c3d4e5f601234567"
	tok, err := mgr.Issue(uid)
	require.NoError(t, err)

	other := jwtutil.NewManager("another-secret", time.Hour, nil)
	forged, err := other.Issue(uid)
	require.NoError(t, err)

	app := protectedApp(mgr)

	cases := []struct {
		name    string
		headers map[string]string
		status  int
		body    string
	}{
		{"x-auth-token", map[string]string{"x-auth-token": tok}, 200, uid},
		{"bearer", map[string]string{"Authorization": "Bearer " + tok}, 200, uid},
		{"lowercase bearer", map[string]string{"Authorization": "bearer " + tok}, 200, uid},
		{"missing", nil, 401, "No token, authorization denied"},
		{"garbage", map[string]string{"x-auth-token": "abc.def.ghi"}, 401, "Token is not valid"},
		{"wrong secret", map[string]string{"x-auth-token": forged}, 401, "Token is not valid"},
		{"basic scheme", map[string]string{"Authorization": "Basic Zm9vOmJhcg=="}, 401, "No token, authorization denied"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
			if tc.status == 200 {
				b, _ := io.ReadAll(resp.Body)
				assert.Equal(t, tc.body, string(b))
			} else {
				assert.Equal(t, tc.body, decodeMsg(t, resp))
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{Rate: 1, Burst: 2, CleanupInterval: time.Minute}, nil)
	defer rl.Stop()

	app := newApp()
	app.Use(rl.Middleware())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode, "request %d", i)
	}
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "1", resp.Header.Get("Retry-After"))
	assert.Equal(t, "Too many requests, please try again later", decodeMsg(t, resp))
	assert.Equal(t, 1, rl.Len())
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{Rate: 1, Burst: 1, CleanupInterval: time.Minute}, nil)
	defer rl.Stop()

	rl.limiterFor("10.0.0.1")
	rl.limiterFor("10.0.0.2")
	require.Equal(t, 2, rl.Len())

	rl.cleanup(time.Now().Add(time.Minute))
	assert.Equal(t, 2, rl.Len())
	rl.cleanup(time.Now().Add(3 * time.Minute))
	assert.Equal(t, 0, rl.Len())
}

func TestErrorHandler_HidesUnexpectedErrors(t *testing.T) {
	app := newApp()
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("db password leaked") })
	app.Get("/teapot", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "short and stout") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
	assert.Equal(t, "Server Error", decodeMsg(t, resp))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/teapot", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
	assert.Equal(t, "short and stout", decodeMsg(t, resp))
}

type recordedRequest struct {
	method, route string
	status        int
}

type fakeRecorder struct{ got []recordedRequest }

func (f *fakeRecorder) RecordRequest(method, route string, status int, _ time.Duration) {
	f.got = append(f.got, recordedRequest{method, route, status})
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	rec := &fakeRecorder{}

	app := newApp()
	app.Use(RequestLogger(zap.New(core), rec))
	app.Get("/items/:id", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Item not found")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/items/42", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, "Item not found", decodeMsg(t, resp))

	require.Len(t, rec.got, 1)
	assert.Equal(t, recordedRequest{"GET", "/items/:id", 404}, rec.got[0])

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/items/42", fields["path"])
	assert.EqualValues(t, 404, fields["status"])
}
