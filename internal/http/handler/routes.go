package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"recipeshare/internal/service"
)

// Services bundles what the routes depend on.
type Services struct {
	Users        service.UserService
	Follows      service.FollowService
	Recipes      service.RecipeService
	CookingPlans service.CookingPlanService
	Media        service.MediaService
	// OAuth is optional. The redirect routes are mounted only when it is
	// set and enabled.
	OAuth OAuthFlow
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Static segments are registered ahead of the :id routes they would
// otherwise collide with.
func RegisterRoutes(app *fiber.App, db *sql.DB, s Services) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Post("/user", CreateUser(s.Users))
	app.Get("/user", ListUsers(s.Users))
	app.Get("/user/:id", GetUser(s.Users))
	app.Put("/user/:id", UpdateUser(s.Users))
	app.Delete("/user/:id", DeleteUser(s.Users))
	app.Post("/user/:id/uploadProfilePicture", UploadProfilePicture(s.Users))
	app.Post("/login", Login(s.Users))

	app.Post("/user/:id/follow/:targetId", FollowUser(s.Follows))
	app.Delete("/user/:id/unfollow/:targetId", UnfollowUser(s.Follows))
	app.Get("/user/:id/is-following/:targetId", IsFollowing(s.Follows))
	app.Get("/user/:id/followers", ListFollowers(s.Follows))
	app.Get("/user/:id/following", ListFollowing(s.Follows))

	app.Post("/recipes/uploadImages", UploadImage(s.Media, service.FolderRecipes))
	app.Get("/recipes/uploads/:filename", ServeUpload(s.Media, service.FolderRecipes))
	app.Post("/recipes", CreateRecipe(s.Recipes))
	app.Get("/recipes", ListRecipes(s.Recipes))
	app.Get("/recipes/:id", GetRecipe(s.Recipes))
	app.Put("/recipes/:id", UpdateRecipe(s.Recipes))
	app.Delete("/recipes/:id", DeleteRecipe(s.Recipes))

	app.Post("/cookingPlans/planImg", UploadImage(s.Media, service.FolderPlans))
	app.Get("/cookingPlans/uploads/:filename", ServeUpload(s.Media, service.FolderPlans))
	app.Get("/cookingPlans/cookingPlans", ListCookingPlans(s.CookingPlans))
	app.Get("/cookingPlans/cookingPlans/:id", GetCookingPlan(s.CookingPlans))
	app.Post("/cookingPlans", CreateCookingPlan(s.CookingPlans))
	app.Get("/cookingPlans", ListCookingPlans(s.CookingPlans))
	app.Get("/cookingPlans/:id", GetCookingPlan(s.CookingPlans))
	app.Put("/cookingPlans/:id", UpdateCookingPlan(s.CookingPlans))
	app.Delete("/cookingPlans/:id", DeleteCookingPlan(s.CookingPlans))
	app.Put("/cookingPlans/:id/image", ReplaceCookingPlanImage(s.CookingPlans))

	app.Get("/uploads/:folder/:filename", ServeUpload(s.Media, ""))

	app.Post("/oauth2/google", GoogleLogin(s.Users))
	if s.OAuth != nil {
		app.Get("/oauth2/user-info", GoogleUserInfo(s.OAuth))
		app.Post("/logout", Logout(s.OAuth))
		if s.OAuth.Enabled() {
			app.Get("/oauth2/authorization/google", BeginGoogleAuth(s.OAuth))
			app.Get("/login/oauth2/code/google", GoogleCallback(s.OAuth, s.Users))
		}
	}
}
