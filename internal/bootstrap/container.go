package bootstrap

import (
	"fmt"
	"time"

	"ai-workspace-be/internal/config"
	"ai-workspace-be/internal/controller"
	"ai-workspace-be/internal/pkg/logger"
	"ai-workspace-be/internal/repository/unitofwork"
	"ai-workspace-be/internal/service"
	"ai-workspace-be/pkg/agentrunner"
	"ai-workspace-be/pkg/feature/summary"
	"ai-workspace-be/pkg/feature/template"
	"ai-workspace-be/pkg/llm/factory"
	"ai-workspace-be/pkg/orchestrator"

	pktNats "ai-workspace-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	PageController    controller.IPageController
	FeatureController controller.IFeatureController
	AgentController   controller.IAgentController
	MessageController controller.IMessageController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) (*Container, error) {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	agentLogger := logger.NewIsolatedLogger(cfg.App.AgentLogFilePath)

	c := &Container{Logger: sysLogger}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// NATS fan-out is optional; the in-process bus works without it.
	var forwarder service.EventForwarder
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL, sysLogger)
		if err != nil {
			sysLogger.Warn("BOOTSTRAP", "Failed to connect to NATS publisher", map[string]interface{}{
				"url":   cfg.App.NatsURL,
				"error": err.Error(),
			})
		} else {
			forwarder = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	// 3. Collaborator
	llmProvider, err := factory.NewLLMProvider(factory.ProviderConfig{
		Provider:        cfg.Ai.LLMProvider,
		Model:           cfg.Ai.LLMModel,
		OllamaBaseURL:   cfg.Ai.OllamaBaseURL,
		OpenAIAPIKey:    cfg.Ai.OpenAIAPIKey,
		OpenAIBaseURL:   cfg.Ai.OpenAIBaseURL,
		AnthropicAPIKey: cfg.Ai.AnthropicAPIKey,
	})
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("initialize LLM provider: %w", err)
	}
	sysLogger.Info("BOOTSTRAP", "Using LLM provider", map[string]interface{}{
		"provider": cfg.Ai.LLMProvider,
		"model":    cfg.Ai.LLMModel,
	})

	// 4. Services
	orch := orchestrator.New(
		uowFactory,
		summary.NewSummarizer(),
		sysLogger,
		orchestrator.WithHistoryLimit(cfg.Agent.HistoryLimit),
		orchestrator.WithPageMemoryLimit(cfg.Agent.PageMemoryLimit),
	)
	runner := agentrunner.New(llmProvider, 0)

	publisherService := service.NewPublisherService(cfg.App.EventsTopic, pubSub)
	c.ConsumerService = service.NewConsumerService(pubSub, cfg.App.EventsTopic, forwarder, sysLogger)

	pageService := service.NewPageService(uowFactory)
	featureService := service.NewFeatureService(uowFactory, template.DefaultCatalog(), orch, publisherService, sysLogger)
	agentService := service.NewAgentService(
		uowFactory,
		orch,
		runner,
		publisherService,
		sysLogger,
		agentLogger,
		time.Duration(cfg.Agent.TimeoutSeconds)*time.Second,
	)
	messageService := service.NewMessageService(uowFactory, sysLogger)

	// 5. Controllers
	c.PageController = controller.NewPageController(pageService)
	c.FeatureController = controller.NewFeatureController(featureService)
	c.AgentController = controller.NewAgentController(agentService)
	c.MessageController = controller.NewMessageController(messageService)

	return c, nil
}

// Close releases the event bus and the NATS connection.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}
