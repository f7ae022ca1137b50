package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/cramcortex/backend/internal/analysis"
	"github.com/cramcortex/backend/internal/config"
	"github.com/cramcortex/backend/internal/data/store"
	"github.com/cramcortex/backend/internal/domain/docModel"
	"github.com/cramcortex/backend/internal/handlers"
	"github.com/cramcortex/backend/internal/llm"
	"github.com/cramcortex/backend/internal/llm/gemini"
	"github.com/cramcortex/backend/internal/llm/openai"
	"github.com/cramcortex/backend/internal/server"
	"github.com/cramcortex/backend/internal/translate"
	"github.com/cramcortex/backend/pkg/logger_i"
)

var listenAddr string

// @title           Exam Analysis API
// @version         1.0
// @description     Uploads exam documents, translates Hebrew content and extracts classified exam questions.
// @termsOfService  http://swagger.io/terms/

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8000
// @BasePath  /
// @schemes   http https
func main() {
	_ = godotenv.Load()

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	var documentStore docModel.DocumentStore
	if redisDocs := store.GetRedisDocumentStore(serviceContext); redisDocs != nil {
		documentStore = redisDocs
	} else {
		logger.Error("Redis store is offline, falling back to in-memory document store")
		documentStore = store.NewMemoryDocumentStore()
	}

	provider := selectProvider(serviceContext, logger)

	analysisService := analysis.NewService(provider, analysis.Options{})
	if err := analysisService.Init(serviceContext); err != nil {
		logger.Error("Analysis service degraded, heuristic extraction only", "error", err)
	}
	logger.Info("Analysis service state", "state", analysisService.State().String())

	translator := translate.New(provider)

	handlers.Init(documentStore, analysisService, translator, providerLabel(provider))

	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}

func selectProvider(ctx context.Context, logger *logger_i.Logger) llm.Provider {
	switch config.LLMProvider {
	case "gemini":
		client := gemini.GetGeminiClient(ctx, config.GeminiModel, config.GeminiAPIKey)
		if client == nil {
			logger.Error("Gemini client failed to initialize")
			return nil
		}
		return client
	default:
		client := openai.GetOpenAIClient(config.OpenAIModel, config.OpenAIAPIKey)
		if client == nil {
			logger.Error("OpenAI client failed to initialize")
			return nil
		}
		return client
	}
}

func providerLabel(provider llm.Provider) string {
	if provider == nil {
		return "none"
	}
	return provider.Name()
}
