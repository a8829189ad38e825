package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jxchen21/tastebuds-backend/internal/api"
	"github.com/jxchen21/tastebuds-backend/internal/middleware"
)

// Handlers bundles everything SetupRouter needs to wire the API.
type Handlers struct {
	Auth     *api.AuthHandler
	Recipe   *api.RecipeHandler
	Planner  *api.PlannerHandler
	Shopping *api.ShoppingHandler
	Admin    *api.AdminHandler
}

// SetupRouter configures the application routes. ratingLimiter may be
// nil when Redis is unavailable; rating submissions then go unlimited.
func SetupRouter(h Handlers, validator middleware.TokenValidator, ratingLimiter *middleware.RateLimiter) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173"}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
	}

	// The listing serves anonymous callers (random picks) and
	// authenticated searches; the handler decides which.
	browse := v1.Group("/recipes")
	browse.Use(middleware.OptionalAuth(validator))
	{
		browse.GET("", h.Recipe.ListRecipes)
		browse.GET("/:id", h.Recipe.GetRecipe)
	}

	protected := v1.Group("")
	protected.Use(middleware.RequireLogin(validator))
	{
		rate := protected.Group("/recipes/:id/rating")
		if ratingLimiter != nil {
			rate.Use(ratingLimiter.Middleware())
		}
		rate.POST("", h.Recipe.RateRecipe)

		protected.POST("/recipes/:id/save", h.Recipe.SaveRecipe)
		protected.GET("/saved-recipes", h.Recipe.ListSavedRecipes)

		planner := protected.Group("/planner")
		{
			planner.GET("", h.Planner.GetGrid)
			planner.POST("/entries", h.Planner.AddEntry)
			planner.DELETE("/entries/:id", h.Planner.RemoveEntry)
		}

		shopping := protected.Group("/shopping-list")
		{
			shopping.GET("", h.Shopping.GetList)
			shopping.POST("/items", h.Shopping.AddItem)
			shopping.DELETE("/items/:id", h.Shopping.RemoveItem)
		}

		admin := protected.Group("/admin")
		admin.Use(middleware.StaffOnly())
		{
			admin.GET("/users", h.Admin.ListUsers)
			admin.POST("/users/:id/deactivate", h.Admin.DeactivateUser)
			admin.POST("/users/:id/reactivate", h.Admin.ReactivateUser)
		}
	}

	return router
}
