package bootstrap

import (
	"time"

	"ai-pdfchat-be/internal/config"
	"ai-pdfchat-be/internal/controller"
	"ai-pdfchat-be/internal/pkg/logger"
	"ai-pdfchat-be/internal/repository/memory"
	"ai-pdfchat-be/internal/service"
	"ai-pdfchat-be/pkg/answer"
	"ai-pdfchat-be/pkg/extract"
	"ai-pdfchat-be/pkg/ocr"
)

type Container struct {
	// Controllers
	ChatController controller.IChatController

	// Exposed for graceful shutdown
	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Boundary clients (OCR extraction + answer generation)
	timeout := time.Duration(cfg.Services.RequestTimeoutSc) * time.Second
	ocrClient := ocr.NewClient(cfg.Services.OCRBaseURL, timeout)
	answerClient := answer.NewClient(cfg.Services.AnswerBaseURL, timeout)

	// 3. Domain components
	extractionGate := extract.NewGate(ocrClient)
	sessionRepo := memory.NewSessionRepository(time.Duration(cfg.Chat.SessionTTLMinutes) * time.Minute)

	conversationService := service.NewConversationService(
		sessionRepo,
		extractionGate,
		answerClient,
		sysLogger,
	)

	// 4. Controllers
	return &Container{
		ChatController: controller.NewChatController(conversationService),
		Logger:         sysLogger,
	}
}
