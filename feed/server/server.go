package server

import (
	"context"
	"net/http"
	"time"

	"github.com/CPU-commits/Intranet_BSubjects/db"
	controllers_feed "github.com/CPU-commits/Intranet_BSubjects/feed/controllers"
	"github.com/CPU-commits/Intranet_BSubjects/feed/docs"
	"github.com/CPU-commits/Intranet_BSubjects/forms"
	"github.com/CPU-commits/Intranet_BSubjects/middlewares"
	"github.com/CPU-commits/Intranet_BSubjects/models"
	"github.com/CPU-commits/Intranet_BSubjects/res"
	"github.com/CPU-commits/Intranet_BSubjects/services"
	"github.com/CPU-commits/Intranet_BSubjects/settings"
	"github.com/CPU-commits/Intranet_BSubjects/stack"
	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const BASE_PATH = "/api/subjects"

type RouterOptions struct {
	ClientURL string
	// Off in tests, every request there shares one client ip
	RateLimit bool
}

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func ErrorHandler(c *gin.Context, info ratelimit.Info) {
	c.JSON(http.StatusTooManyRequests, &res.Response{
		Success: false,
		Message: "Too many requests. Try again in " + time.Until(info.ResetTime).String(),
	})
}

func NewRouter(
	subjectsController *controllers_feed.SubjectsController,
	logger *zap.Logger,
	options RouterOptions,
) *gin.Engine {
	if err := forms.InitValidators(); err != nil {
		logger.Error("init validators", zap.Error(err))
	}
	router := gin.New()
	// Proxies
	router.SetTrustedProxies([]string{"localhost"})
	// Zap logger
	router.Use(ginzap.GinzapWithConfig(logger, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		SkipPaths:  []string{BASE_PATH + "/healthz"},
	}))
	router.Use(ginzap.RecoveryWithZap(logger, true))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, res.Response{
			Success: false,
			Message: res.INTERNAL_MESSAGE,
		})
	}))
	// CORS
	httpOrigin := "http://" + options.ClientURL
	httpsOrigin := "https://" + options.ClientURL
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{httpOrigin, httpsOrigin},
		AllowMethods:     []string{"GET", "OPTIONS", "PUT", "DELETE", "POST"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
		AllowWebSockets:  false,
		MaxAge:           12 * time.Hour,
	}))
	// Secure
	sslUrl := "ssl." + options.ClientURL
	router.Use(secure.New(secure.Config{
		SSLHost:              sslUrl,
		STSSeconds:           315360000,
		STSIncludeSubdomains: true,
		FrameDeny:            true,
		ContentTypeNosniff:   true,
		BrowserXssFilter:     true,
		IENoOpen:             true,
		ReferrerPolicy:       "strict-origin-when-cross-origin",
		SSLProxyHeaders: map[string]string{
			"X-Fowarded-Proto": "https",
		},
	}))
	// Rate limit
	if options.RateLimit {
		store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
			Rate:  time.Second,
			Limit: 7,
		})
		router.Use(ratelimit.RateLimiter(store, &ratelimit.Options{
			ErrorHandler: ErrorHandler,
			KeyFunc:      keyFunc,
		}))
	}
	// Routes
	subjects := router.Group(BASE_PATH)
	{
		subjects.POST("", subjectsController.NewSubject)
		subjects.PUT(
			"/:id/rename",
			middlewares.ObjectIDParams("id"),
			subjectsController.RenameSubject,
		)
		subjects.PUT(
			"/:id/enroll",
			middlewares.ObjectIDParams("id"),
			subjectsController.EnrollStudent,
		)
		subjects.PUT(
			"/:id/drop",
			middlewares.ObjectIDParams("id"),
			subjectsController.DropStudent,
		)
		subjects.PUT(
			"/:id",
			middlewares.ObjectIDParams("id"),
			subjectsController.UpdateSubject,
		)
		subjects.DELETE(
			"/:id",
			middlewares.ObjectIDParams("id"),
			subjectsController.DeleteSubject,
		)
		// Route healthz
		subjects.GET("/healthz", func(ctx *gin.Context) {
			ctx.JSON(200, &res.Response{
				Success: true,
			})
		})
		// Route docs
		subjects.GET("/swagger/*any", ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.InstanceName(docs.SwaggerInfo.InstanceName()),
		))
	}
	// No route
	router.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(404, res.Response{
			Success: false,
			Message: "Not found",
		})
	})
	return router
}

func Init() {
	settings.Load()
	settingsData := settings.GetSettings()
	// Zap logger
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx := context.Background()
	mongo, err := db.NewConnection(ctx, db.MongoURI(), settingsData.MONGO_DB, logger)
	if err != nil {
		logger.Fatal("mongo connection", zap.Error(err))
	}
	defer mongo.Disconnect(ctx)
	nats, err := stack.NewNats(settingsData.NATS_HOST, logger)
	if err != nil {
		logger.Fatal("nats connection", zap.Error(err))
	}
	defer nats.Close()
	// Services
	options := services.SubjectsServiceOptions{
		Publisher:   nats,
		CollegeName: settingsData.COLLEGE_NAME,
	}
	if settingsData.SearchEnabled() {
		es, err := db.NewConnectionEs()
		if err != nil {
			logger.Warn("elasticsearch unavailable, index disabled", zap.Error(err))
		} else {
			options.Indexer = services.NewElasticIndexer(es)
		}
	}
	subjectsService := services.NewSubjectsService(
		models.NewSubjectModel(mongo.GetCollection(models.SUBJECT_COLLECTION)),
		logger,
		options,
	)
	if options.Indexer != nil {
		go func() {
			count, err := subjectsService.ReindexSubjects(ctx)
			if err != nil {
				logger.Warn("reindex subjects", zap.Error(err))
				return
			}
			logger.Info("subjects reindexed", zap.Int("count", count))
		}()
	}
	// Docs
	docs.SwaggerInfo.BasePath = BASE_PATH
	docs.SwaggerInfo.Version = "v1"
	docs.SwaggerInfo.Host = "localhost:8081"

	router := NewRouter(
		controllers_feed.NewSubjectsController(subjectsService, logger),
		logger,
		RouterOptions{
			ClientURL: settingsData.CLIENT_URL,
			RateLimit: true,
		},
	)
	// Init server
	if err := router.Run(); err != nil {
		logger.Fatal("Error init server", zap.Error(err))
	}
}
