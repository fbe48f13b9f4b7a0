package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/pos-backend/controllers"
	"github.com/yeremiapane/pos-backend/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	transactionCtrl := controllers.NewTransactionController(db)
	ingredientCtrl := controllers.NewIngredientController(db)
	menuCtrl := controllers.NewMenuController(db)
	seasonalCtrl := controllers.NewSeasonalMenuController(db)
	employeeCtrl := controllers.NewEmployeeController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	transactions := api.Group("/transactions")
	{
		transactions.GET("", transactionCtrl.ListTransactions)
		transactions.GET("/count", transactionCtrl.CountTransactions)
		transactions.GET("/by-time", transactionCtrl.GetTransactionsByTime)
		transactions.GET("/:id", transactionCtrl.GetTransactionByID)
		transactions.POST("", transactionCtrl.CreateTransactionWithItems)
	}

	ingredients := api.Group("/ingredients")
	{
		ingredients.GET("", ingredientCtrl.GetIngredients)
		ingredients.GET("/id", ingredientCtrl.GetIngredientIDByName)
		ingredients.GET("/usage", ingredientCtrl.GetIngredientUsage)
		ingredients.GET("/sales-report", ingredientCtrl.GetSalesReport)
		ingredients.POST("", ingredientCtrl.CreateIngredient)
		ingredients.POST("/refill", ingredientCtrl.RefillInventory)
		ingredients.POST("/:id/decrease", ingredientCtrl.DecreaseInventory)
		ingredients.PATCH("/:id", ingredientCtrl.UpdateIngredient)
		ingredients.DELETE("/:id", ingredientCtrl.DeleteIngredient)
	}

	menu := api.Group("/menu")
	{
		menu.GET("", menuCtrl.GetMenu)
		menu.GET("/active", menuCtrl.GetActiveMenu)
		menu.GET("/item-id", menuCtrl.GetItemIDByName)
		menu.GET("/:id/ingredients", menuCtrl.GetItemIngredients)
		menu.POST("", menuCtrl.CreateMenuItem)
		menu.POST("/:id/ingredients", menuCtrl.AddIngredientToItem)
		menu.POST("/:id/retire", menuCtrl.RetireMenuItem)
		menu.PATCH("/:id/price", menuCtrl.UpdateMenuPrice)
		menu.DELETE("/:id", menuCtrl.DeleteMenuItem)
		menu.DELETE("/:id/ingredients/:ingredientId", menuCtrl.RemoveIngredientFromItem)
	}

	seasonal := api.Group("/seasonal-menu")
	{
		seasonal.GET("", seasonalCtrl.GetSeasonalMenu)
		seasonal.POST("", seasonalCtrl.CreateSeasonalMenuItem)
		seasonal.PATCH("/:id/price", seasonalCtrl.UpdateSeasonalMenuPrice)
		seasonal.DELETE("/:id", seasonalCtrl.DeleteSeasonalMenuItem)
	}

	// Personnel changes are rare; rate limit the mutating routes hard.
	strictLimit := middlewares.NewStrictRateLimiter()

	employees := api.Group("/employees")
	{
		employees.GET("", employeeCtrl.GetAllEmployees)
		employees.GET("/managers", employeeCtrl.GetManagers)
		employees.GET("/count", employeeCtrl.CountActiveEmployees)
		employees.POST("", strictLimit, employeeCtrl.CreateEmployee)
		employees.PUT("/:id", strictLimit, employeeCtrl.UpdateEmployee)
		employees.DELETE("/:id", strictLimit, employeeCtrl.DeleteEmployee)
	}

	return r
}
