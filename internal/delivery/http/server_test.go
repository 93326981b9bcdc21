package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storerating/config"
	httpmiddleware "storerating/internal/delivery/http/middleware"
	"storerating/internal/delivery/http/router"
	"storerating/internal/delivery/http/router/handler"
	"storerating/internal/domain/entity"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/domain/service"
	"storerating/internal/infra/auth"
	"storerating/internal/infra/metrics"
	mockSvc "storerating/internal/mocks/service"
	mockUC "storerating/internal/mocks/usecase"
	"storerating/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiFixtures struct {
	echo         *echo.Echo
	tokens       service.TokenService
	authUC       *mockUC.MockAuthUsecase
	adminUC      *mockUC.MockAdminUsecase
	storeOwnerUC *mockUC.MockStoreOwnerUsecase
	ratingUC     *mockUC.MockRatingUsecase
	passwordUC   *mockUC.MockPasswordUsecase
	limiter      *mockSvc.MockRateLimiter
}

func newTestAPI(t *testing.T) apiFixtures {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.SecretKey.Access = "http-test-secret"
	cfg.Auth = &config.AuthConfig{TokenTTL: time.Hour}
	cfg.Metrics = &config.MetricsConfig{Enabled: true, Path: "/metrics"}

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New()

	fx := apiFixtures{
		tokens:       tokens,
		authUC:       mockUC.NewMockAuthUsecase(t),
		adminUC:      mockUC.NewMockAdminUsecase(t),
		storeOwnerUC: mockUC.NewMockStoreOwnerUsecase(t),
		ratingUC:     mockUC.NewMockRatingUsecase(t),
		passwordUC:   mockUC.NewMockPasswordUsecase(t),
		limiter:      mockSvc.NewMockRateLimiter(t),
	}

	r := router.NewRouter(router.RouterParams{
		Config:              cfg,
		Metrics:             m,
		AuthHandler:         handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: fx.authUC, Metrics: m, Logger: logger}),
		AdminHandler:        handler.NewAdminHandler(handler.AdminHandlerParams{AdminUC: fx.adminUC, Logger: logger}),
		StoreOwnerHandler:   handler.NewStoreOwnerHandler(handler.StoreOwnerHandlerParams{StoreOwnerUC: fx.storeOwnerUC, Logger: logger}),
		UserHandler:         handler.NewUserHandler(handler.UserHandlerParams{RatingUC: fx.ratingUC, Metrics: m, Logger: logger}),
		PasswordHandler:     handler.NewPasswordHandler(fx.passwordUC),
		AuthMiddleware:      httpmiddleware.NewAuthMiddleware(tokens, m),
		RateLimitMiddleware: httpmiddleware.NewRateLimitMiddleware(fx.limiter, m, cfg),
	})

	fx.echo = NewEcho(cfg, logger, m, r)

	return fx
}

func (fx apiFixtures) token(t *testing.T, userID int64, role entity.Role) string {
	t.Helper()

	token, err := fx.tokens.GenerateToken(userID, role)
	require.NoError(t, err)

	return token
}

func (fx apiFixtures) do(method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body
}

func TestAPI_Health(t *testing.T) {
	fx := newTestAPI(t)

	rec := fx.do(http.MethodGet, "/api/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", decode(t, rec)["status"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestAPI_AdminRouteRequiresToken(t *testing.T) {
	fx := newTestAPI(t)

	rec := fx.do(http.MethodGet, "/api/admin/dashboard", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", decode(t, rec)["code"])
}

func TestAPI_AdminRouteRejectsMalformedAndForgedTokens(t *testing.T) {
	fx := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	req.Header.Set(echo.HeaderAuthorization, "Token abc")
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = fx.do(http.MethodGet, "/api/admin/dashboard", "not-a-jwt", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", decode(t, rec)["code"])
}

func TestAPI_AdminRouteForbiddenForNormalUser(t *testing.T) {
	fx := newTestAPI(t)

	rec := fx.do(http.MethodGet, "/api/admin/dashboard", fx.token(t, 5, entity.RoleNormalUser), "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", decode(t, rec)["code"])
}

func TestAPI_AdminDashboard(t *testing.T) {
	fx := newTestAPI(t)
	fx.adminUC.EXPECT().Dashboard(mock.Anything).Return(&entity.DashboardStats{TotalUsers: 4, TotalStores: 2, TotalRatings: 7}, nil)

	rec := fx.do(http.MethodGet, "/api/admin/dashboard", fx.token(t, 1, entity.RoleSystemAdministrator), "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.InDelta(t, 4, body["totalUsers"], 0)
	assert.InDelta(t, 2, body["totalStores"], 0)
	assert.InDelta(t, 7, body["totalRatings"], 0)
}

func TestAPI_RegisterRejectsWeakPassword(t *testing.T) {
	fx := newTestAPI(t)
	fx.limiter.EXPECT().Allow(mock.Anything, mock.Anything).Return(true)

	rec := fx.do(http.MethodPost, "/api/auth/register", "",
		`{"name":"Alexandra Montgomery Smith","email":"alex@example.com","password":"alllowercase1"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body["code"])

	fieldErrors, ok := body["errors"].([]any)
	require.True(t, ok)
	require.Len(t, fieldErrors, 1)
	assert.Equal(t, map[string]any{
		"field":   "password",
		"message": "Password must contain at least one uppercase letter and one special character",
	}, fieldErrors[0])
}

func TestAPI_RegisterAcceptsStrongPassword(t *testing.T) {
	fx := newTestAPI(t)
	fx.limiter.EXPECT().Allow(mock.Anything, mock.Anything).Return(true)
	fx.authUC.EXPECT().
		Register(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterInput) bool {
			return in.Password == "Valid1!Pass" && in.Email == "alex@example.com"
		})).
		Return(&usecase.AuthOutput{
			Token: "signed",
			User:  &entity.User{ID: 3, Name: "Alexandra Montgomery Smith", Email: "alex@example.com", Role: entity.RoleNormalUser},
		}, nil)

	rec := fx.do(http.MethodPost, "/api/auth/register", "",
		`{"name":"Alexandra Montgomery Smith","email":"alex@example.com","password":"Valid1!Pass"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.Equal(t, "signed", body["token"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "normal_user", user["role"])
	assert.NotContains(t, user, "password_hash")
}

func TestAPI_RegisterConflict(t *testing.T) {
	fx := newTestAPI(t)
	fx.limiter.EXPECT().Allow(mock.Anything, mock.Anything).Return(true)
	fx.authUC.EXPECT().Register(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "registration rejected"))

	rec := fx.do(http.MethodPost, "/api/auth/register", "",
		`{"name":"Alexandra Montgomery Smith","email":"alex@example.com","password":"Valid1!Pass"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "USER_ALREADY_EXISTS", decode(t, rec)["code"])
}

func TestAPI_LoginRateLimited(t *testing.T) {
	fx := newTestAPI(t)
	fx.limiter.EXPECT().Allow(mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "/api/auth/login:")
	})).Return(false)

	rec := fx.do(http.MethodPost, "/api/auth/login", "", `{"email":"alex@example.com","password":"Valid1!Pass"}`)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
}

func TestAPI_AdminStoresSortFallsBackToName(t *testing.T) {
	fx := newTestAPI(t)
	fx.adminUC.EXPECT().
		ListStores(mock.Anything, mock.MatchedBy(func(q entity.StoreListQuery) bool {
			return q.SortBy == entity.StoreSortByName && q.SortOrder == entity.SortAsc && q.Filter.Name == "corner"
		})).
		Return([]*entity.StoreWithRating{
			{Store: entity.Store{ID: 1, Name: "Corner Shop", Email: "c@example.com"}, AverageRating: 4, TotalRatings: 2},
		}, nil)

	rec := fx.do(http.MethodGet, "/api/admin/stores?sortBy=bogus&sortOrder=sideways&name=corner",
		fx.token(t, 1, entity.RoleSystemAdministrator), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"rating":4.00`)
}

func TestAPI_SubmitRatingStatusDependsOnCreation(t *testing.T) {
	fx := newTestAPI(t)
	token := fx.token(t, 9, entity.RoleNormalUser)

	fx.ratingUC.EXPECT().
		SubmitRating(mock.Anything, &usecase.SubmitRatingInput{UserID: 9, StoreID: 3, Rating: 4}).
		Return(&entity.RatingResult{Rating: &entity.Rating{ID: 1, UserID: 9, StoreID: 3, Rating: 4}, Created: true}, nil).
		Once()
	fx.ratingUC.EXPECT().
		SubmitRating(mock.Anything, &usecase.SubmitRatingInput{UserID: 9, StoreID: 3, Rating: 2}).
		Return(&entity.RatingResult{Rating: &entity.Rating{ID: 1, UserID: 9, StoreID: 3, Rating: 2}}, nil).
		Once()

	rec := fx.do(http.MethodPost, "/api/user/ratings", token, `{"store_id":3,"rating":4}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Rating submitted successfully", decode(t, rec)["message"])

	rec = fx.do(http.MethodPost, "/api/user/ratings", token, `{"store_id":3,"rating":2}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Rating updated successfully", decode(t, rec)["message"])
}

func TestAPI_SubmitRatingValidation(t *testing.T) {
	fx := newTestAPI(t)

	rec := fx.do(http.MethodPost, "/api/user/ratings", fx.token(t, 9, entity.RoleNormalUser), `{"store_id":0,"rating":9}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	fieldErrors := decode(t, rec)["errors"].([]any)
	assert.Len(t, fieldErrors, 2)
}

func TestAPI_UpdateRatingOfAnotherUserIsNotFound(t *testing.T) {
	fx := newTestAPI(t)
	fx.ratingUC.EXPECT().UpdateRating(mock.Anything, &usecase.UpdateRatingInput{UserID: 9, RatingID: 12, Rating: 5}).
		Return(nil, domainerrors.ErrRatingNotFound)

	rec := fx.do(http.MethodPut, "/api/user/ratings/12", fx.token(t, 9, entity.RoleNormalUser), `{"rating":5}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "RATING_NOT_FOUND", decode(t, rec)["code"])
}

func TestAPI_InvalidPathID(t *testing.T) {
	fx := newTestAPI(t)

	rec := fx.do(http.MethodGet, "/api/user/stores/abc", fx.token(t, 9, entity.RoleNormalUser), "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_StoreOwnerQRCode(t *testing.T) {
	fx := newTestAPI(t)
	fx.storeOwnerUC.EXPECT().StoreQRCode(mock.Anything, int64(6)).
		Return(&usecase.StoreQRCode{StoreID: 2, URL: "http://localhost:3000/stores/2", PNG: []byte("\x89PNG")}, nil)

	rec := fx.do(http.MethodGet, "/api/store-owner/qrcode", fx.token(t, 6, entity.RoleStoreOwner), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "http://localhost:3000/stores/2", rec.Header().Get("X-Store-Url"))
}

func TestAPI_StoreOwnerDashboard(t *testing.T) {
	fx := newTestAPI(t)
	ratedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	fx.storeOwnerUC.EXPECT().Dashboard(mock.Anything, int64(6)).Return(&usecase.OwnerDashboard{
		Store:   &entity.Store{ID: 2, Name: "Corner Shop", Email: "c@example.com"},
		Summary: &entity.RatingSummary{StoreID: 2, AverageRating: 4, TotalRatings: 2},
		Raters: []*entity.Rater{
			{UserID: 10, Name: "Rater Number One Long Name", Email: "r1@example.com", Rating: 5, RatedAt: ratedAt},
		},
	}, nil)

	rec := fx.do(http.MethodGet, "/api/store-owner/dashboard", fx.token(t, 6, entity.RoleStoreOwner), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"averageRating":4.00`)
	body := decode(t, rec)
	users := body["users"].([]any)
	require.Len(t, users, 1)
	assert.Equal(t, "2024-05-01T12:00:00Z", users[0].(map[string]any)["ratedAt"])
}

func TestAPI_PasswordUpdateSharedByRoles(t *testing.T) {
	fx := newTestAPI(t)
	fx.passwordUC.EXPECT().UpdatePassword(mock.Anything, mock.Anything).Return(nil).Twice()

	body := `{"currentPassword":"Old1!Pass","newPassword":"New1!Pass"}`

	rec := fx.do(http.MethodPut, "/api/user/password", fx.token(t, 9, entity.RoleNormalUser), body)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = fx.do(http.MethodPut, "/api/store-owner/password", fx.token(t, 6, entity.RoleStoreOwner), body)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = fx.do(http.MethodPut, "/api/store-owner/password", fx.token(t, 9, entity.RoleNormalUser), body)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAPI_UnexpectedErrorIsHidden(t *testing.T) {
	fx := newTestAPI(t)
	fx.authUC.EXPECT().Me(mock.Anything, int64(9)).Return(nil, errors.New("pq: connection refused"))

	rec := fx.do(http.MethodGet, "/api/auth/me", fx.token(t, 9, entity.RoleNormalUser), "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.Equal(t, "Server error", decode(t, rec)["message"])
}

func TestAPI_MetricsEndpoint(t *testing.T) {
	fx := newTestAPI(t)

	fx.do(http.MethodGet, "/api/health", "", "")
	rec := fx.do(http.MethodGet, "/metrics", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `storerating_http_requests_total{method="GET",route="/api/health",status="200"} 1`)
}

func TestServer_StopWithoutServe(t *testing.T) {
	fx := newTestAPI(t)
	srv := &httpServer{cfg: &config.Config{}, logger: slog.New(slog.NewTextHandler(io.Discard, nil)), server: fx.echo}

	assert.NoError(t, srv.stop(context.Background()))
}

func TestAPI_AdminCreateUserAcceptsStringStoreID(t *testing.T) {
	fx := newTestAPI(t)
	fx.adminUC.EXPECT().
		CreateUser(mock.Anything, mock.MatchedBy(func(in *usecase.CreateUserInput) bool {
			return in.Role == "store_owner" && in.StoreID != nil && *in.StoreID == 3
		})).
		Return(&entity.User{ID: 11, Name: "Corner Shop Owner Person", Email: "owner@example.com", Role: entity.RoleStoreOwner}, nil)

	rec := fx.do(http.MethodPost, "/api/admin/users", fx.token(t, 1, entity.RoleSystemAdministrator),
		`{"name":"Corner Shop Owner Person","email":"owner@example.com","password":"Valid1!Pass","role":"store_owner","store_id":"3"}`)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestAPI_AdminCreateUserEmptyStoreIDIsUnset(t *testing.T) {
	fx := newTestAPI(t)
	fx.adminUC.EXPECT().
		CreateUser(mock.Anything, mock.MatchedBy(func(in *usecase.CreateUserInput) bool {
			return in.StoreID == nil
		})).
		Return(&entity.User{ID: 12, Name: "Regular Person With Long Name", Email: "user@example.com", Role: entity.RoleNormalUser}, nil)

	rec := fx.do(http.MethodPost, "/api/admin/users", fx.token(t, 1, entity.RoleSystemAdministrator),
		`{"name":"Regular Person With Long Name","email":"user@example.com","password":"Valid1!Pass","role":"normal_user","store_id":""}`)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestAPI_SubmitRatingAcceptsStringNumbers(t *testing.T) {
	fx := newTestAPI(t)
	fx.ratingUC.EXPECT().
		SubmitRating(mock.Anything, &usecase.SubmitRatingInput{UserID: 9, StoreID: 3, Rating: 4}).
		Return(&entity.RatingResult{Rating: &entity.Rating{ID: 1, UserID: 9, StoreID: 3, Rating: 4}, Created: true}, nil)

	rec := fx.do(http.MethodPost, "/api/user/ratings", fx.token(t, 9, entity.RoleNormalUser), `{"store_id":"3","rating":"4"}`)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestAPI_SubmitRatingNonNumericIsFieldError(t *testing.T) {
	fx := newTestAPI(t)

	rec := fx.do(http.MethodPost, "/api/user/ratings", fx.token(t, 9, entity.RoleNormalUser), `{"store_id":"abc","rating":"x"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body["code"])
	assert.Equal(t, []any{
		map[string]any{"field": "store_id", "message": "Store ID must be a valid integer"},
		map[string]any{"field": "rating", "message": "Rating must be between 1 and 5"},
	}, body["errors"])
}

func TestAPI_WrongJSONTypeIsFieldError(t *testing.T) {
	fx := newTestAPI(t)
	fx.limiter.EXPECT().Allow(mock.Anything, mock.Anything).Return(true)

	rec := fx.do(http.MethodPost, "/api/auth/login", "", `{"email":42,"password":"Valid1!Pass"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body["code"])
	assert.Equal(t, []any{
		map[string]any{"field": "email", "message": "Invalid value type"},
	}, body["errors"])
}
