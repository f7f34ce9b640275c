package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Ahmad-AL-Ahmady/MedLens/internal/api"
	"github.com/Ahmad-AL-Ahmady/MedLens/internal/chat"
	"github.com/Ahmad-AL-Ahmady/MedLens/internal/classify"
	"github.com/Ahmad-AL-Ahmady/MedLens/internal/config"
	"github.com/Ahmad-AL-Ahmady/MedLens/internal/diagnosis"
	"github.com/Ahmad-AL-Ahmady/MedLens/internal/generation"
	"github.com/Ahmad-AL-Ahmady/MedLens/internal/logger"
)

// Configuration constants
const (
	defaultPort         = 8000
	defaultMaxImageMB   = 10
	shutdownGracePeriod = 10 * time.Second
)

func main() {
	if err := config.LoadEnv(); err != nil && err != config.ErrEnvFileNotFound {
		fmt.Fprintf(os.Stderr, "Warning: error loading .env file: %v\n", err)
	}

	log, err := logger.New(config.Get("APP_ENV", "development"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Missing credentials or classifier endpoints are fatal: the service
	// cannot degrade into serving without its models.
	router, err := setupRouter(log)
	if err != nil {
		log.Fatal("failed to set up components", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	port := config.GetInt("PORT", defaultPort)
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 180 * time.Second, // generation can take tens of seconds
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info("server listening", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", "error", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server shutdown failed", "error", err)
	}

	log.Info("server gracefully stopped")
}

// setupRouter initializes all application components and the HTTP router
func setupRouter(log *logger.Logger) (*gin.Engine, error) {
	gate, registry, err := setupClassifiers()
	if err != nil {
		return nil, fmt.Errorf("failed to set up classifiers: %w", err)
	}

	generator, err := setupGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to set up generator: %w", err)
	}
	log.Info("generation backend ready", "backend", string(generator.Backend()), "model", generator.Name())

	info := api.NewMedicalInfoProvider(generator)
	cascade := diagnosis.NewCascade(gate, registry, info, log)
	sessions := diagnosis.NewStore()

	scans := api.NewScanProcessor(cascade, log)
	chats := api.NewChatProcessor(chat.NewRouter(), generator, info, log)

	maxImageSize := int64(config.GetInt("MAX_IMAGE_SIZE_MB", defaultMaxImageMB)) * 1024 * 1024
	handler := api.NewHandler(sessions, scans, chats, maxImageSize, log)

	if strings.EqualFold(config.Get("APP_ENV", "development"), "production") {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	// The frontend is served from a different origin; mirror the original
	// allow-everything CORS posture.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.ExposeHeaders = []string{api.SessionHeader}
	router.Use(cors.New(corsConfig))

	handler.RegisterRoutes(router)
	return router, nil
}

// setupClassifiers builds the gate classifier and the body-part registry
// against the model-serving endpoint.
func setupClassifiers() (classify.Classifier, *classify.Registry, error) {
	baseURL, err := config.MustGet("CLASSIFIER_BASE_URL")
	if err != nil {
		return nil, nil, err
	}
	timeout := config.GetInt("CLASSIFIER_TIMEOUT_SECONDS", 30)

	gate, err := classify.NewRemoteClassifier(classify.ClassifierConfig{
		BaseURL:   baseURL,
		ModelName: classify.GateModel,
		Timeout:   timeout,
	}, classify.GateLabels)
	if err != nil {
		return nil, nil, fmt.Errorf("gate classifier: %w", err)
	}

	registry := classify.NewRegistry()
	for bodyPart, labels := range classify.BodyPartLabels {
		classifier, err := classify.NewRemoteClassifier(classify.ClassifierConfig{
			BaseURL:   baseURL,
			ModelName: strings.ToLower(bodyPart),
			Timeout:   timeout,
		}, labels)
		if err != nil {
			return nil, nil, fmt.Errorf("%s classifier: %w", bodyPart, err)
		}
		if err := registry.Register(bodyPart, classifier); err != nil {
			return nil, nil, err
		}
	}

	return gate, registry, nil
}

// setupGenerator builds the configured text-generation backend
func setupGenerator() (generation.TextGenerator, error) {
	backendStr := config.Get("GENERATOR_BACKEND", string(generation.BackendLlamaCpp))

	var backend generation.BackendType
	switch strings.ToLower(backendStr) {
	case "openai", "gpt4", "gpt":
		backend = generation.BackendOpenAI
	case "llamacpp", "llama", "local":
		backend = generation.BackendLlamaCpp
	default:
		return nil, fmt.Errorf("unknown GENERATOR_BACKEND %q", backendStr)
	}

	generatorConfig := generation.GeneratorConfig{
		Endpoint:    config.Get("GENERATOR_ENDPOINT", ""),
		ModelName:   config.Get("GENERATOR_MODEL", ""),
		MaxTokens:   config.GetInt("GENERATOR_MAX_TOKENS", generation.DefaultMaxTokens),
		Temperature: config.GetFloat("GENERATOR_TEMPERATURE", generation.DefaultTemperature),
		TopP:        config.GetFloat("GENERATOR_TOP_P", generation.DefaultTopP),
		Timeout:     config.GetInt("GENERATOR_TIMEOUT_SECONDS", generation.DefaultTimeout),
	}

	if backend == generation.BackendOpenAI {
		apiKey, err := config.MustGet("OPENAI_API_KEY")
		if err != nil {
			return nil, err
		}
		generatorConfig.APIKey = apiKey
	}

	return generation.NewGenerator(backend, generatorConfig)
}
