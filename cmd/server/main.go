package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"notted/ent"
	"notted/internal/entitlement"
	"notted/internal/handler"
	"notted/internal/logger"
	"notted/internal/persist"
	"notted/internal/store"
	"notted/internal/version"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	_ "github.com/lib-x/entsqlite"
	"go.uber.org/zap"
)

func getDataDir() string {
	dataDir := os.Getenv("NOTTED_DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		fmt.Printf("Failed to create data directory: %v\n", err)
		os.Exit(1)
	}

	return dataDir
}

func getDatabasePath(dataDir string) string {
	dbPath := filepath.Join(dataDir, handler.DatabaseFile)

	// SQLite connection string with optimizations
	return fmt.Sprintf("file:%s?cache=shared&_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(10000)", dbPath)
}

func main() {
	// 1. Initialize data directory
	dataDir := getDataDir()

	// 2. Initialize logger
	if err := logger.InitLogger(dataDir); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	zap.L().Info("Starting Notted",
		zap.String("data_dir", dataDir),
	)

	// 3. Initialize Ent client for the entitlement database
	dbPath := getDatabasePath(dataDir)
	zap.L().Info("Using database", zap.String("path", dbPath))

	client, err := ent.Open("sqlite3", dbPath)
	if err != nil {
		zap.L().Fatal("Failed to open database connection", zap.Error(err))
	}
	defer client.Close()

	if err := client.Schema.Create(context.Background()); err != nil {
		zap.L().Warn("Schema migration failed, trying to continue", zap.Error(err))
	}

	// 4. Load the persisted state and build the store. Every mutation
	// flushes the whole state back; a failed write is logged, not
	// surfaced to the caller.
	adapter := persist.New(dataDir)
	initial, err := adapter.Load()
	if err != nil {
		zap.L().Fatal("Failed to load state", zap.Error(err))
	}
	st := store.New(initial, func(snap store.State) {
		if err := adapter.Flush(snap); err != nil {
			zap.L().Error("Failed to persist state", zap.Error(err))
		}
	})

	// 5. Entitlement resolver. Defaults to this server's own restore
	// endpoint so a single self-hosted instance serves both sides.
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	restoreEndpoint := os.Getenv("NOTTED_RESTORE_ENDPOINT")
	if restoreEndpoint == "" {
		restoreEndpoint = "http://127.0.0.1:" + port + "/api/restore"
	}
	resolver := entitlement.NewResolver(restoreEndpoint, nil)

	// 6. Initialize Echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.RequestID())
	e.Use(zapLoggerMiddleware())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.Secure())
	e.Use(middleware.Gzip())

	h := handler.NewHandler(client, st, adapter, resolver)

	// Start automatic backup scheduler
	h.StartAutoBackup()

	// 7. Routes
	api := e.Group("/api")

	// Version info endpoint
	api.GET("/version", func(c echo.Context) error {
		return c.JSON(http.StatusOK, version.GetInfo())
	})

	// Purchase backend (what the supabase edge functions used to serve)
	api.GET("/restore", h.RestoreLookup)
	e.POST("/webhook/polar", h.PurchaseWebhook)

	// Notes API
	api.GET("/notes", h.ListNotes)
	api.POST("/notes", h.CreateNote)
	api.POST("/notes/from-template", h.CreateNoteFromTemplate)
	api.GET("/notes/active", h.GetActiveNote)
	api.PUT("/notes/active", h.SetActiveNote)
	api.GET("/notes/:id", h.GetNote)
	api.PUT("/notes/:id", h.UpdateNote)
	api.DELETE("/notes/:id", h.DeleteNote)
	api.POST("/notes/:id/toggle", h.ToggleLine)
	api.POST("/notes/:id/clear-checked", h.ClearCheckedItems)
	api.POST("/notes/:id/lines", h.AddLine)
	api.PUT("/notes/:id/lines", h.UpdateLine)
	api.POST("/notes/:id/finish", h.FinishEditing)
	api.POST("/notes/:id/save-template", h.SaveAsTemplate)

	// Templates API
	api.GET("/templates", h.ListTemplates)
	api.DELETE("/templates/:id", h.DeleteTemplate)

	// Settings API
	api.GET("/settings", h.GetSettings)
	api.PUT("/settings", h.UpdateSettings)
	api.POST("/reset", h.ResetAllData)

	// Entitlement (client side)
	api.GET("/entitlement", h.GetEntitlement)
	api.POST("/entitlement/restore", h.RestorePurchase)
	api.POST("/entitlement/deep-link", h.HandleDeepLink)

	// Backup Config API
	api.GET("/backup/config", h.GetBackupConfig)
	api.PUT("/backup/config", h.UpdateBackupConfig)

	// Backup & Restore API
	api.POST("/backup/webdav", h.BackupWebDAV)
	api.POST("/backup/s3", h.BackupS3)
	api.POST("/restore/webdav", h.RestoreWebDAV)
	api.POST("/restore/s3", h.RestoreS3)

	// Backup List API
	api.GET("/backup/list/webdav", h.ListWebDAVBackups)
	api.GET("/backup/list/s3", h.ListS3Backups)

	// Start server
	zap.L().Info("Server starting", zap.String("port", port))
	if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
		zap.L().Fatal("Server failed to start", zap.Error(err))
	}
}

// zapLoggerMiddleware returns a middleware that logs HTTP requests using zap
func zapLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			res := c.Response()

			err := next(c)

			duration := time.Since(start)

			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("uri", req.RequestURI),
				zap.Int("status", res.Status),
				zap.Int64("bytes_out", res.Size),
				zap.Duration("duration", duration),
				zap.String("remote_ip", c.RealIP()),
				zap.String("user_agent", req.UserAgent()),
			}

			if reqID := c.Response().Header().Get(echo.HeaderXRequestID); reqID != "" {
				fields = append(fields, zap.String("request_id", reqID))
			}

			if err != nil {
				fields = append(fields, zap.Error(err))
				zap.L().Error("Request failed", fields...)
			} else if res.Status >= 500 {
				zap.L().Error("Server error", fields...)
			} else if res.Status >= 400 {
				zap.L().Warn("Client error", fields...)
			} else {
				zap.L().Info("Request completed", fields...)
			}

			return err
		}
	}
}
