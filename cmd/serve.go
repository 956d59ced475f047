package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	grpcreflect "github.com/bufbuild/connect-grpcreflect-go"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"droscher.com/BrewLog/configs"
	"droscher.com/BrewLog/pkg/auth"
	"droscher.com/BrewLog/pkg/integrations"
	"droscher.com/BrewLog/pkg/repository"
	"droscher.com/BrewLog/pkg/server"
	"droscher.com/BrewLog/pkg/storage"
)

const (
	timeout = 5 * time.Second

	// journalServiceName is reported by the health checker.
	journalServiceName = "brewlog.Journal"
)

type ServeCmd struct {
	ConfigFile  string `default:".BrewLog.toml" help:"Path to config file" short:"c"`
	AutoMigrate bool   `help:"Apply database migrations before serving"`
}

func (s *ServeCmd) Run(ctx *Context) error {
	logConfig := zap.NewProductionConfig()
	if ctx != nil && ctx.Debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	if s.AutoMigrate {
		if err := repo.Migrate(); err != nil {
			logger.Error("error migrating database", zap.Error(err))

			return err
		}
	}

	deps, err := dependencies(conf, repo, logger)
	if err != nil {
		return err
	}

	router, err := server.NewRouter(deps, logger)
	if err != nil {
		logger.Error("error building router", zap.Error(err))

		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/", router)

	reflector := grpcreflect.NewStaticReflector(grpchealth.HealthV1ServiceName)
	checker := grpchealth.NewStaticChecker(journalServiceName)
	mux.Handle(grpchealth.NewHandler(checker))
	mux.Handle(grpcreflect.NewHandlerV1(reflector))
	mux.Handle(grpcreflect.NewHandlerV1Alpha(reflector))

	address := fmt.Sprintf(":%d", conf.Server.Port)

	corsHandler := configureCORS(mux)
	serverHandler := h2c.NewHandler(corsHandler, &http2.Server{})

	svr := &http.Server{
		Addr:              address,
		ReadHeaderTimeout: timeout,
		Handler:           serverHandler,
	}

	logger.Info("listening", zap.String("address", address), zap.String("storage", conf.Images.Storage))

	err = svr.ListenAndServe()
	if err != nil {
		logger.Error("failed to start server", zap.Error(err))

		return err
	}

	return nil
}

// dependencies builds the image store, bean lookup and auth guard the
// router needs.
func dependencies(conf *configs.Config, repo *repository.Repository, logger *zap.Logger) (server.Dependencies, error) {
	deps := server.Dependencies{
		Store: repo,
		Auth:  auth.NewAuthManager(conf.Auth, logger),
	}

	var store storage.Store

	switch conf.Images.Storage {
	case configs.StorageS3:
		s3Store, err := storage.NewS3Store(context.Background(), conf.Images.Bucket, conf.Images.Region)
		if err != nil {
			logger.Error("error configuring s3", zap.Error(err))

			return deps, err
		}

		store = s3Store
		deps.ImageBaseURL = conf.Images.BaseURL
	default:
		localStore, err := storage.NewLocalStore(conf.Images.Dir)
		if err != nil {
			logger.Error("error preparing image directory", zap.String("dir", conf.Images.Dir), zap.Error(err))

			return deps, err
		}

		store = localStore
		deps.ImageDir = conf.Images.Dir
	}

	deps.Images = storage.NewImages(store, conf.Images.MaxUploadBytes, logger)

	if len(conf.Integrations.Lookup) > 0 {
		chain, err := integrations.NewChain(conf.Integrations.Lookup, logger)
		if err != nil {
			logger.Error("error configuring integrations", zap.Strings("lookup", conf.Integrations.Lookup), zap.Error(err))

			return deps, err
		}

		deps.Lookup = chain
	}

	if !deps.Auth.Enabled() {
		logger.Warn("no auth secret configured, write endpoints are open")
	}

	return deps, nil
}

func configureCORS(mux *http.ServeMux) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH"},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"authorization",
			"cache-control",
			"connect-protocol-version",
			"connect-timeout-ms",
			"content-length",
			"content-type",
			"grpc-timeout",
			"origin",
			"referer",
			"user-agent",
			"x-requested-with",
		},
		ExposedHeaders: []string{
			"connect-protocol-version",
			"content-disposition",
			"grpc-message",
			"grpc-status",
		},
		MaxAge:             86400, // 24 hours
		OptionsPassthrough: false,
	})

	return corsOpts.Handler(mux)
}
