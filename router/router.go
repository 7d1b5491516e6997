package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/menu-service/controllers"
	"github.com/yeremiapane/menu-service/middlewares"
	"github.com/yeremiapane/menu-service/storage"
	"github.com/yeremiapane/menu-service/store"
	"github.com/yeremiapane/menu-service/utils"
)

const defaultMaxUploadBytes = 10 << 20

// LocalImagePath is where LocalImageStore files are served from.
const LocalImagePath = "/uploads/images"

type Deps struct {
	Store          *store.Store
	Images         storage.ImageStore
	UploadDir      string
	MaxUploadBytes int64
	// LocalImageDir is served under LocalImagePath when set.
	LocalImageDir string
}

func SetupRouter(deps Deps) *gin.Engine {
	utils.RegisterValidators()
	if deps.MaxUploadBytes <= 0 {
		deps.MaxUploadBytes = defaultMaxUploadBytes
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	if deps.LocalImageDir != "" {
		// only image files are reachable under the uploads path
		images := r.Group(LocalImagePath)
		images.Use(func(c *gin.Context) {
			if _, _, err := storage.CleanName(c.Request.URL.Path, ""); err != nil {
				c.AbortWithStatus(http.StatusForbidden)
				return
			}
			c.Next()
		})
		images.Static("/", deps.LocalImageDir)
	}

	categoryCtrl := controllers.NewCategoryController(deps.Store)
	itemCtrl := controllers.NewItemController(deps.Store)
	variantCtrl := controllers.NewVariantController(deps.Store)
	serviceCtrl := controllers.NewServiceTypeController(deps.Store)
	taxCtrl := controllers.NewTaxController(deps.Store)
	csvCtrl := controllers.NewMenuCSVController(deps.Store, deps.UploadDir)
	imageCtrl := controllers.NewImageController(deps.Images)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// CATEGORIES
	r.POST("/category", categoryCtrl.CreateCategory)
	r.GET("/get-category", categoryCtrl.GetCategories)
	r.GET("/get-all-category", categoryCtrl.GetAllCategories)
	r.GET("/search-category", categoryCtrl.SearchCategory)
	r.PUT("/update-status", categoryCtrl.UpdateStatus)
	r.PUT("/update-category", categoryCtrl.UpdateCategory)
	r.DELETE("/delete-category/:id", categoryCtrl.DeleteCategory)

	// ITEMS
	r.POST("/create-item", itemCtrl.CreateItem)
	r.GET("/get-items", itemCtrl.GetItems)
	r.GET("/search-item", itemCtrl.SearchItem)
	r.GET("/get-item-id", itemCtrl.GetItemByID)
	r.GET("/get-item-categoryid", itemCtrl.GetItemsByCategory)
	r.PUT("/update-item-status", itemCtrl.UpdateItemStatus)
	r.PUT("/update-item", itemCtrl.UpdateItem)
	r.DELETE("/delete-item/:id", itemCtrl.DeleteItem)

	// VARIANT TITLES
	r.POST("/create-variant-title", variantCtrl.CreateVariantTitle)
	r.GET("/get-variantstitle", variantCtrl.GetVariantTitles)
	r.GET("/get-variantstitle-item", variantCtrl.GetVariantTitlesByItem)
	r.GET("/get-variantstitle-category", variantCtrl.GetVariantTitlesByCategory)
	r.PUT("/update-variant-title-status", variantCtrl.UpdateVariantTitleStatus)
	r.PUT("/update-variant-title", variantCtrl.UpdateVariantTitle)
	r.DELETE("/delete-variant-title/:id", variantCtrl.DeleteVariantTitle)

	// VARIANT ITEMS
	r.POST("/create-variant-item", variantCtrl.CreateVariantItem)
	r.GET("/get-variant-items", variantCtrl.GetVariantItems)
	r.GET("/get-variant-item-title", variantCtrl.GetVariantItemsByTitle)
	r.GET("/get-variant-item-item", variantCtrl.GetVariantItemsByItem)
	r.PUT("/update-variant-item-status", variantCtrl.UpdateVariantItemStatus)
	r.PUT("/update-variant-item", variantCtrl.UpdateVariantItem)
	r.DELETE("/delete-variant-item/:id", variantCtrl.DeleteVariantItem)

	// SERVICE TYPES & TAXES
	r.POST("/add-service", serviceCtrl.AddService)
	r.GET("/get-service", serviceCtrl.GetServices)
	r.POST("/savetax", taxCtrl.SaveTax)
	r.GET("/gettaxes/:MID", taxCtrl.GetTaxes)
	r.DELETE("/removetax/:id", taxCtrl.RemoveTax)

	// CSV import runs with a body cap and its own logger
	upload := r.Group("/upload")
	upload.Use(middlewares.MaxBodySize(deps.MaxUploadBytes))
	upload.Use(middlewares.ImportLoggerMiddleware())
	{
		upload.POST("", csvCtrl.UploadCSV)
	}
	r.GET("/download-csv", csvCtrl.DownloadCSV)

	// IMAGES
	r.POST("/upload-image", middlewares.MaxBodySize(deps.MaxUploadBytes), imageCtrl.UploadImage)
	r.GET("/images", imageCtrl.ListImages)

	return r
}
