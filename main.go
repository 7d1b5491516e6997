package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/menu-service/config"
	"github.com/yeremiapane/menu-service/router"
	"github.com/yeremiapane/menu-service/storage"
	"github.com/yeremiapane/menu-service/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load config: %v", err)
	}
	utils.InitLogger(cfg.Log.Level, cfg.Log.Format)

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	st, err := config.OpenStore(ctx, cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to open %s store: %v", cfg.Database.Driver, err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.Close(closeCtx); err != nil {
			utils.ErrorLogger.Printf("Error closing store: %v", err)
		}
	}()
	utils.InfoLogger.Printf("Connected to %s store", cfg.Database.Driver)

	deps := router.Deps{
		Store:          st,
		UploadDir:      cfg.Upload.Dir,
		MaxUploadBytes: cfg.Upload.MaxMB << 20,
	}
	switch cfg.Images.Store {
	case "local":
		deps.Images, err = storage.NewLocalImageStore(cfg.Images.LocalDir, router.LocalImagePath)
		deps.LocalImageDir = cfg.Images.LocalDir
	default:
		deps.Images, err = storage.NewMinioImageStore(ctx, storage.MinioConfig{
			Endpoint:  cfg.Images.Endpoint,
			AccessKey: cfg.Images.AccessKey,
			SecretKey: cfg.Images.SecretKey,
			UseSSL:    cfg.Images.UseSSL,
			Bucket:    cfg.Images.Bucket,
			PublicURL: cfg.Images.PublicURL,
		})
	}
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to init %s image store: %v", cfg.Images.Store, err)
	}
	if err := os.MkdirAll(cfg.Upload.Dir, 0755); err != nil {
		utils.ErrorLogger.Fatalf("Failed to create upload dir: %v", err)
	}

	r := router.SetupRouter(deps)
	if err := r.SetTrustedProxies(nil); err != nil {
		utils.ErrorLogger.Fatal(err)
	}

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to listen on %s: %v", cfg.Addr(), err)
	}
	utils.InfoLogger.Printf("Listening on %s", cfg.Addr())
	if err := runServer(sigCtx, &http.Server{Handler: r}, ln, 10*time.Second); err != nil {
		utils.ErrorLogger.Printf("Server error: %v", err)
	}
}

// runServer serves on ln until ctx is done, then drains in-flight requests
// for up to timeout before returning.
func runServer(ctx context.Context, srv *http.Server, ln net.Listener, timeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	utils.InfoLogger.Println("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
