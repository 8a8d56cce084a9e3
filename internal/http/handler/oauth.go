package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/markbates/goth"

	"recipeshare/internal/http/middleware"
	"recipeshare/internal/logging"
	"recipeshare/internal/oauth"
	"recipeshare/internal/service"
)

// OAuthFlow is the part of *oauth.Provider the handlers drive.
type OAuthFlow interface {
	Enabled() bool
	SuccessURL() string
	FailureURL() string
	BeginAuth(w http.ResponseWriter, r *http.Request)
	CompleteAuth(w http.ResponseWriter, r *http.Request) (goth.User, error)
	SaveProfile(w http.ResponseWriter, r *http.Request, prof oauth.Profile) error
	LoadProfile(r *http.Request) (oauth.Profile, bool)
	Clear(w http.ResponseWriter, r *http.Request) error
}

// GoogleLogin finds or creates the user named by a Google identity payload.
// The payload is trusted; no token is verified.
//
//	@Summary	Sign in with a Google identity payload
//	@Tags		oauth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		service.GoogleLoginInput	true	"identity"
//	@Success	200		{object}	map[string]any
//	@Failure	400		{object}	map[string]string
//	@Failure	500		{object}	map[string]string
//	@Router		/oauth2/google [post]
func GoogleLogin(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.GoogleLoginInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		u, err := svc.GoogleLogin(c.UserContext(), in)
		if errors.Is(err, service.ErrEmailRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email is required"})
		}
		if err != nil {
			logging.Error(err, map[string]any{"msg": "google_login_failed", "request_id": middleware.GetRequestID(c)})
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Authentication failed: " + err.Error()})
		}
		return c.JSON(fiber.Map{"id": u.ID, "email": u.Email, "fullname": u.Fullname})
	}
}

// BeginGoogleAuth redirects to Google's consent screen.
func BeginGoogleAuth(flow OAuthFlow) fiber.Handler {
	return adaptor.HTTPHandlerFunc(flow.BeginAuth)
}

// GoogleCallback completes the redirect flow, upserts the user and remembers
// them in the session before sending the browser on.
func GoogleCallback(flow OAuthFlow, svc service.UserService) fiber.Handler {
	return adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fail := func(err error, step string) {
			logging.Error(err, map[string]any{"msg": "oauth_callback_failed", "step": step})
			http.Redirect(w, r, flow.FailureURL(), http.StatusFound)
		}

		gu, err := flow.CompleteAuth(w, r)
		if err != nil {
			fail(err, "complete_auth")
			return
		}
		u, err := svc.GoogleLogin(r.Context(), service.GoogleLoginInput{
			Email:   gu.Email,
			Name:    gu.Name,
			Picture: gu.AvatarURL,
		})
		if err != nil {
			fail(err, "upsert_user")
			return
		}
		prof := oauth.Profile{UserID: u.ID, Name: gu.Name, Email: u.Email, Picture: gu.AvatarURL}
		if err := flow.SaveProfile(w, r, prof); err != nil {
			fail(err, "save_session")
			return
		}
		http.Redirect(w, r, flow.SuccessURL(), http.StatusFound)
	})
}

// GoogleUserInfo returns the signed-in profile, or {} when nobody is signed in.
//
//	@Summary	Current OAuth session profile
//	@Tags		oauth
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/oauth2/user-info [get]
func GoogleUserInfo(flow OAuthFlow) fiber.Handler {
	return adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := any(struct{}{})
		if prof, ok := flow.LoadProfile(r); ok {
			body = prof
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	})
}

// Logout clears the OAuth session.
//
//	@Summary	Clear the OAuth session
//	@Tags		oauth
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/logout [post]
func Logout(flow OAuthFlow) fiber.Handler {
	return adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := flow.Clear(w, r); err != nil {
			logging.Error(err, map[string]any{"msg": "oauth_logout_failed"})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Logged out"})
	})
}
