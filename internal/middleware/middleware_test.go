package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) dto.APIResponse {
	t.Helper()
	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestRequestIDEchoesHeader(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, RequestIDFrom(c)) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Body.String())
	assert.Equal(t, "req-123", rec.Header().Get(HeaderRequestID))
}

func TestRequestIDGeneratesWhenMissing(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), RequestLogger())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, RequestIDFrom(c)) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.NotEmpty(t, rec.Body.String())
	assert.Equal(t, rec.Body.String(), rec.Header().Get(HeaderRequestID))
}

func TestHandleAPIErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    dto.ErrorCode
		message string
		field   string
	}{
		{
			name:    "validation",
			err:     fmt.Errorf("create: %w", apperrors.NewValidationError("name", "name must not be blank")),
			status:  http.StatusBadRequest,
			code:    dto.ErrorCodeValidationFailed,
			message: "name must not be blank",
			field:   "name",
		},
		{
			name:    "not found",
			err:     fmt.Errorf("get: %w", apperrors.ErrCourseNotFound),
			status:  http.StatusNotFound,
			code:    dto.ErrorCodeResourceNotFound,
			message: "course not found",
		},
		{
			name:    "unauthorized",
			err:     apperrors.ErrUnauthorized,
			status:  http.StatusUnauthorized,
			code:    dto.ErrorCodeUnauthorized,
			message: "Authentication required",
		},
		{
			name:    "forbidden",
			err:     apperrors.NewForbiddenError("Admin role required"),
			status:  http.StatusForbidden,
			code:    dto.ErrorCodeForbidden,
			message: "Admin role required",
		},
		{
			name:    "custom code",
			err:     apperrors.NewCustomError(apperrors.ErrValidationFailed, "invalid request body").WithCode(string(dto.ErrorCodeInvalidRequest)),
			status:  http.StatusBadRequest,
			code:    dto.ErrorCodeInvalidRequest,
			message: "invalid request body",
		},
		{
			name:    "unexpected",
			err:     errors.New("connection reset by peer"),
			status:  http.StatusInternalServerError,
			code:    dto.ErrorCodeInternalServer,
			message: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(RequestID())
			r.GET("/x", func(c *gin.Context) { HandleAPIError(c, dto.OpCourseGetByID, tt.err) })

			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			req.Header.Set(HeaderRequestID, "msg-1")
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			resp := decode(t, rec)
			assert.Equal(t, dto.OpCourseGetByID, resp.ID)
			assert.Equal(t, dto.APIVersion, resp.Ver)
			assert.Equal(t, dto.ResponseCodeError, resp.ResponseCode)
			assert.Equal(t, dto.StatusFailure, resp.Params.Status)
			assert.Equal(t, "msg-1", resp.Params.MsgID)
			assert.Equal(t, string(tt.code), resp.Params.Err)
			assert.Equal(t, tt.message, resp.Params.ErrMsg)
			assert.Equal(t, tt.field, resp.Params.ErrField)
			assert.Nil(t, resp.Result)
		})
	}
}

func TestNoRoute(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.NoRoute(NoRoute())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, dto.OpErrorNotFound, resp.ID)
	assert.Equal(t, string(dto.ErrorCodeRouteNotFound), resp.Params.Err)
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, dto.OpError, resp.ID)
	assert.Equal(t, "An unexpected error occurred", resp.Params.ErrMsg)
}

func guardedRouter(m *AuthMiddleware) *gin.Engine {
	r := gin.New()
	r.Use(RequestID())
	r.POST("/courses", m.AdminRequired(), func(c *gin.Context) { c.Status(http.StatusCreated) })
	return r
}

func TestAdminRequiredDisabledPassesThrough(t *testing.T) {
	rec := httptest.NewRecorder()
	guardedRouter(NewAuthMiddleware(nil)).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/courses", nil))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAdminRequiredEnforcesToken(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "s3cret", AccessTokenExp: time.Hour, TokenIssuer: "coursehub"})
	r := guardedRouter(NewAuthMiddleware(jwtService))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/courses", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, string(dto.ErrorCodeUnauthorized), decode(t, rec).Params.Err)

	req := httptest.NewRequest(http.MethodPost, "/courses", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, string(dto.ErrorCodeInvalidToken), decode(t, rec).Params.Err)

	token, _, err := jwtService.GenerateAdminToken("ops")
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodPost, "/courses", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:4200"}))
	r.GET("/api/v1/courses", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/courses", nil)
	req.Header.Set("Origin", "http://localhost:4200")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:4200", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/v1/courses", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
