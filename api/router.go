// Package api contains all endpoints available
package api

import (
	"fmt"
	"net/http"
	"time"

	"goit/contacts-api/db"
	"goit/contacts-api/internal/service"
	"goit/contacts-api/internal/storage"
	"goit/contacts-api/middleware"
	"goit/contacts-api/pkg/security"

	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

type API struct {
	DB      *gorm.DB
	Router  *gin.Engine
	Tokens  *security.TokenService
	Mail    *service.Notifier
	Avatars *service.AvatarService
}

// NewRouter assembles the API from config: opens the database, builds the
// token service, mail notifier and avatar storage, then wires the routes.
func NewRouter() (*API, error) {
	makeLogger()

	d, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	tokens := security.NewTokenService(
		viper.GetString("jwt.secret"),
		viper.GetDuration("jwt.expires_in"),
	)

	var store storage.Storage

	switch viper.GetString("storage.type") {
	case "s3":
		store, err = storage.NewS3()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 storage, %w", err)
		}
	default:
		store, err = storage.NewLocal(
			viper.GetString("storage.local_dir"),
			viper.GetString("host.public_url"),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local storage, %w", err)
		}
	}

	a := New(d, tokens, service.NewNotifier(), service.NewAvatarService(store))

	if viper.GetString("storage.type") != "s3" {
		a.Router.Static("/avatars", viper.GetString("storage.local_dir"))
	}

	return a, nil
}

// New wires routes and middleware around already-built collaborators.
// Split from NewRouter so tests can inject an in-memory database and a
// disabled notifier.
func New(d *gorm.DB, tokens *security.TokenService, mail *service.Notifier, avatars *service.AvatarService) *API {
	a := &API{
		DB:      d,
		Tokens:  tokens,
		Mail:    mail,
		Avatars: avatars,
	}

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.CustomRecovery(func(c *gin.Context, err any) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"message": "Server error",
			})
		}),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("requestID", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	maxUploadSize := viper.GetInt64("upload.max_size")
	if maxUploadSize <= 0 {
		maxUploadSize = 5 << 20
	}

	auth := middleware.NewAuthMiddleware(d, tokens)
	jsonBody := middleware.BodySizeLimiter(1 << 20)
	loginLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: 5,
		Burst:             10,
	})

	// HEAD /api/heartbeat		-> Used to check if the server is alive
	router.HEAD("/api/heartbeat", a.Heartbeat)

	// HEAD /api/validate		-> Validates a session token
	router.HEAD("/api/validate", auth, a.Validate)

	users := router.Group("/users")
	{
		// POST /users/register			-> Registers a new user and logs them in
		users.POST("/register", loginLimiter, jsonBody, a.UserRegister)

		// POST /users/login			-> Logs in a user and returns a session token
		users.POST("/login", loginLimiter, jsonBody, a.UserLogin)

		// POST /users/logout			-> Revokes the current session token
		users.POST("/logout", auth, a.UserLogout)

		// GET /users/current			-> Returns the authenticated user's profile
		users.GET("/current", auth, a.UserCurrent)

		// PATCH /users/avatars			-> Replaces the user's avatar
		users.PATCH("/avatars", auth, middleware.BodySizeLimiter(maxUploadSize), a.UserAvatar)

		// GET /users/verify/:verificationToken	-> Confirms an email address
		users.GET("/verify/:verificationToken", a.UserVerify)

		// POST /users/verify			-> Re-sends the verification email
		users.POST("/verify", jsonBody, a.UserResendVerification)
	}

	contacts := router.Group("/api/contacts", jsonBody)
	{
		// GET /api/contacts			-> Lists all contacts
		contacts.GET("", a.ContactList)

		// GET /api/contacts/:id		-> Returns a single contact
		contacts.GET("/:id", a.ContactFetch)

		// POST /api/contacts			-> Creates a contact
		contacts.POST("", a.ContactCreate)

		// PUT/PATCH /api/contacts/:id		-> Partially updates a contact
		contacts.PUT("/:id", a.ContactUpdate)
		contacts.PATCH("/:id", a.ContactUpdate)

		// PATCH /api/contacts/:id/favorite	-> Flips only the favorite flag
		contacts.PATCH("/:id/favorite", a.ContactFavorite)

		// DELETE /api/contacts/:id		-> Deletes and returns a contact
		contacts.DELETE("/:id", a.ContactDelete)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Route not found",
		})
	})

	return a
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}
