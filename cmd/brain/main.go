package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"
	"gorm.io/driver/mysql"

	"github.com/atinyakov/second-brain/internal/app/server"
	grpcserver "github.com/atinyakov/second-brain/internal/app/server/grpc"
	"github.com/atinyakov/second-brain/internal/app/service"
	"github.com/atinyakov/second-brain/internal/config"
	"github.com/atinyakov/second-brain/internal/logger"
	"github.com/atinyakov/second-brain/internal/repository"
	"github.com/atinyakov/second-brain/internal/repository/gormrepo"
	"github.com/atinyakov/second-brain/internal/storage"

	_ "net/http/pprof"
)

var buildVersion string
var buildDate string
var buildCommit string

const shutdownTimeout = 10 * time.Second

// store is a storage backend that owns resources.
type store interface {
	service.Storage
	io.Closer
}

func main() {
	fmt.Printf("Build version: %s\n", valueOrNA(buildVersion))
	fmt.Printf("Build date: %s\n", valueOrNA(buildDate))
	fmt.Printf("Build commit: %s\n", valueOrNA(buildCommit))

	options, err := config.Parse()
	if err != nil {
		panic(err)
	}

	log := logger.New()
	if err := log.Init(options.LogLevel); err != nil {
		panic(err)
	}
	defer func() {
		_ = log.Sync()
	}()

	if err := run(options, log.Log); err != nil {
		log.Log.Fatal("server stopped", zap.Error(err))
	}
}

func run(options *config.Options, zapLogger *zap.Logger) error {
	if err := options.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := openStorage(ctx, options, zapLogger)
	if err != nil {
		return err
	}
	defer s.Close()

	auth, err := service.NewAuth(options.JWTSecret, options.TokenTTL)
	if err != nil {
		return err
	}

	services := newServices(s, auth, zapLogger)
	r := server.Init(services, options.TrustedSubnet, zapLogger)

	grpcSrv := grpcserver.New(&grpcserver.BrainServer{
		Contents: services.Contents,
		Shares:   services.Shares,
		Stats:    services.Stats,
		Logger:   zapLogger,
	}, auth, options.TrustedSubnet, zapLogger, options.GRPCPort)

	if options.EnablePprof {
		go func() {
			zapLogger.Info("Starting pprof server", zap.String("addr", "localhost:6060"))
			if err := http.ListenAndServe("localhost:6060", nil); err != nil {
				zapLogger.Error("pprof server error", zap.Error(err))
			}
		}()
	}

	httpSrv := &http.Server{
		Addr:              options.ServerAddress,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 2)

	go func() {
		if err := grpcSrv.Start(); err != nil {
			errc <- fmt.Errorf("grpc server: %w", err)
		}
	}()

	go func() {
		var err error
		if options.EnableHTTPS {
			manager := &autocert.Manager{
				Cache:      autocert.DirCache("cache-dir"),
				Prompt:     autocert.AcceptTOS,
				HostPolicy: autocert.HostWhitelist(hostOf(options.ServerAddress)),
			}
			httpSrv.Addr = ":443"
			httpSrv.TLSConfig = manager.TLSConfig()

			zapLogger.Info("Server is running with TLS", zap.String("addr", httpSrv.Addr))
			err = httpSrv.ListenAndServeTLS("", "")
		} else {
			zapLogger.Info("Server is running", zap.String("addr", httpSrv.Addr))
			err = httpSrv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- fmt.Errorf("http server: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		zapLogger.Info("shutting down")
	case runErr = <-errc:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("http shutdown", zap.Error(err))
	}
	grpcSrv.GracefulStop()

	return runErr
}

func newServices(s service.Storage, auth *service.Auth, zapLogger *zap.Logger) server.Services {
	return server.Services{
		Auth:     auth,
		Users:    service.NewUserService(s, service.NewBcryptHasher(), auth, zapLogger),
		Contents: service.NewContentService(s, zapLogger),
		Shares:   service.NewShareService(s, zapLogger),
		Stats:    service.NewStatsService(s),
	}
}

// openStorage picks postgres, mysql, file-backed memory or plain memory, in
// that order.
func openStorage(ctx context.Context, options *config.Options, zapLogger *zap.Logger) (store, error) {
	switch options.StorageKind() {
	case "postgres":
		zapLogger.Info("using postgres")
		db, err := repository.InitDB(ctx, options.DatabaseDSN, zapLogger)
		if err != nil {
			return nil, err
		}
		zapLogger.Info("Database connected and tables ready.")
		return repository.NewBrainRepository(db, zapLogger), nil

	case "mysql":
		zapLogger.Info("using mysql")
		return gormrepo.Open(mysql.Open(options.MySQLDSN), zapLogger)

	case "file":
		zapLogger.Info("using file", zap.String("filePath", options.FilePath))
		return storage.NewFileBackedStorage(options.FilePath, zapLogger)

	default:
		zapLogger.Info("using in memory storage")
		return storage.CreateMemoryStorage()
	}
}

func hostOf(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil || host == "" {
		return "localhost"
	}
	return host
}

func valueOrNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
