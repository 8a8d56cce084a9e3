package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"recipeshare/internal/model"
	"recipeshare/internal/oauth"
	"recipeshare/internal/service"
	serviceMocks "recipeshare/internal/service/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/markbates/goth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeFlow struct {
	enabled    bool
	gothUser   goth.User
	authErr    error
	saved      *oauth.Profile
	profile    oauth.Profile
	signedIn   bool
	cleared    bool
	beginCalls int
}

func (f *fakeFlow) Enabled() bool      { return f.enabled }
func (f *fakeFlow) SuccessURL() string { return "http://app.test/userProfile" }
func (f *fakeFlow) FailureURL() string { return "http://app.test/login?error=true" }

func (f *fakeFlow) BeginAuth(w http.ResponseWriter, r *http.Request) {
	f.beginCalls++
	http.Redirect(w, r, "https://accounts.google.test/auth", http.StatusTemporaryRedirect)
}

func (f *fakeFlow) CompleteAuth(w http.ResponseWriter, r *http.Request) (goth.User, error) {
	return f.gothUser, f.authErr
}

func (f *fakeFlow) SaveProfile(w http.ResponseWriter, r *http.Request, prof oauth.Profile) error {
	f.saved = &prof
	return nil
}

func (f *fakeFlow) LoadProfile(r *http.Request) (oauth.Profile, bool) {
	return f.profile, f.signedIn
}

func (f *fakeFlow) Clear(w http.ResponseWriter, r *http.Request) error {
	f.cleared = true
	return nil
}

func TestGoogleLogin(t *testing.T) {
	mockSvc := new(serviceMocks.MockUserService)
	app := fiber.New()
	app.Post("/oauth2/google", GoogleLogin(mockSvc))

	t.Run("success", func(t *testing.T) {
		in := service.GoogleLoginInput{Email: "ana@gmail.com", Name: "Ana"}
		mockSvc.On("GoogleLogin", mock.Anything, in).Return(&model.User{ID: 4, Email: in.Email, Fullname: "Ana"}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/oauth2/google", in))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]any
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, float64(4), body["id"])
		assert.Equal(t, "ana@gmail.com", body["email"])
		assert.Equal(t, "Ana", body["fullname"])
	})

	t.Run("missing email", func(t *testing.T) {
		in := service.GoogleLoginInput{Name: "Ana"}
		mockSvc.On("GoogleLogin", mock.Anything, in).Return(nil, service.ErrEmailRequired).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/oauth2/google", in))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "Email is required", body["error"])
	})

	t.Run("unexpected error keeps error body", func(t *testing.T) {
		in := service.GoogleLoginInput{Email: "bo@gmail.com"}
		mockSvc.On("GoogleLogin", mock.Anything, in).Return(nil, errors.New("db down")).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/oauth2/google", in))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		var body map[string]any
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "Authentication failed: db down", body["error"])
		assert.NotContains(t, body, "request_id")
	})

	mockSvc.AssertExpectations(t)
}

func TestGoogleCallback(t *testing.T) {
	t.Run("success stores session", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockUserService)
		flow := &fakeFlow{gothUser: goth.User{Email: "ana@gmail.com", Name: "Ana", AvatarURL: "https://pic.test/a"}}
		app := fiber.New()
		app.Get("/login/oauth2/code/google", GoogleCallback(flow, mockSvc))

		mockSvc.On("GoogleLogin", mock.Anything, service.GoogleLoginInput{
			Email: "ana@gmail.com", Name: "Ana", Picture: "https://pic.test/a",
		}).Return(&model.User{ID: 12, Email: "ana@gmail.com"}, nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/login/oauth2/code/google?code=x&state=y", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, flow.SuccessURL(), resp.Header.Get("Location"))
		require.NotNil(t, flow.saved)
		assert.Equal(t, int64(12), flow.saved.UserID)
		assert.Equal(t, "https://pic.test/a", flow.saved.Picture)
		mockSvc.AssertExpectations(t)
	})

	t.Run("auth failure redirects", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockUserService)
		flow := &fakeFlow{authErr: errors.New("state mismatch")}
		app := fiber.New()
		app.Get("/login/oauth2/code/google", GoogleCallback(flow, mockSvc))

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/login/oauth2/code/google", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, flow.FailureURL(), resp.Header.Get("Location"))
		assert.Nil(t, flow.saved)
		mockSvc.AssertNotCalled(t, "GoogleLogin", mock.Anything, mock.Anything)
	})
}

func TestGoogleUserInfo(t *testing.T) {
	flow := &fakeFlow{}
	app := fiber.New()
	app.Get("/oauth2/user-info", GoogleUserInfo(flow))

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/oauth2/user-info", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var empty map[string]any
	json.NewDecoder(resp.Body).Decode(&empty)
	assert.Empty(t, empty)

	flow.signedIn = true
	flow.profile = oauth.Profile{UserID: 3, Name: "Ana", Email: "ana@gmail.com", Picture: "p"}
	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/oauth2/user-info", nil))
	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "Ana", body["name"])
	assert.Equal(t, "ana@gmail.com", body["email"])
	assert.NotContains(t, body, "UserID")
}

func TestLogout(t *testing.T) {
	flow := &fakeFlow{}
	app := fiber.New()
	app.Post("/logout", Logout(flow))

	resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/logout", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, flow.cleared)
}

func TestRegisterRoutes_OAuthEnabled(t *testing.T) {
	flow := &fakeFlow{enabled: true}
	app := fiber.New()
	RegisterRoutes(app, nil, Services{
		Users:        new(serviceMocks.MockUserService),
		Follows:      new(serviceMocks.MockFollowService),
		Recipes:      new(serviceMocks.MockRecipeService),
		CookingPlans: new(serviceMocks.MockCookingPlanService),
		Media:        new(serviceMocks.MockMediaService),
		OAuth:        flow,
	})

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/oauth2/authorization/google", nil))

	assert.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
	assert.Equal(t, 1, flow.beginCalls)
}
