package main

import (
	"context"
	"log"
	"time"

	"zctraders-api/internal/core/cache"
	"zctraders-api/internal/core/config"
	"zctraders-api/internal/core/identifier"
	"zctraders-api/internal/core/logger"
	"zctraders-api/internal/core/server"
	cataloghandler "zctraders-api/internal/features/catalog/handler"
	inquiryhandler "zctraders-api/internal/features/inquiries/handler"
	inquiryservice "zctraders-api/internal/features/inquiries/service"
	notifadapter "zctraders-api/internal/features/notifications/adapters"
	notifports "zctraders-api/internal/features/notifications/ports"
	orderadapter "zctraders-api/internal/features/orders/adapters"
	orderhandler "zctraders-api/internal/features/orders/handler"
	orderservice "zctraders-api/internal/features/orders/service"
	receipthandler "zctraders-api/internal/features/receipts/handler"
	receiptservice "zctraders-api/internal/features/receipts/service"
	"zctraders-api/internal/features/submission"

	"go.uber.org/zap"
)

// @title ZC Traders API
// @version 1.0
// @description Inquiry, order and payment-receipt submission service for the ZC Traders site.
// @contact.name API Support
// @contact.email support@zctraders.com
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Initialize the order-number ledger store and verify connectivity.
	redisCache, err := cache.NewRedisAdapter(cfg.RedisURL)
	if err != nil {
		l.Fatal("Failed to create Redis adapter", zap.Error(err))
	}
	defer redisCache.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisCache.Ping(pingCtx); err != nil {
		l.Fatal("Redis connection check failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	ids := identifier.NewDefault()

	// Pick the email transport. Without SMTP credentials the simulated
	// gateway logs the emails it would have sent.
	var email notifports.EmailSender
	if cfg.SMTPEnabled() {
		email = notifadapter.NewSMTPEmailGateway(cfg.SMTP, cfg.Company.Email)
		l.Info("Email transport: SMTP", zap.String("host", cfg.SMTP.Host))
	} else {
		email = notifadapter.NewStubEmailGateway(notifadapter.DefaultSendDelay, ids)
		l.Info("Email transport: simulated")
	}
	whatsapp := notifadapter.NewWhatsAppLinkGateway()

	ledger := orderadapter.NewRedisOrderLedger(redisCache)

	// Initialize Services & Handlers
	inquirySvc := inquiryservice.NewInquiryService(email, whatsapp,
		submission.NewMachine(inquiryservice.SuccessWindow, nil))
	inquiryHdl := inquiryhandler.NewInquiryHandler(inquirySvc)

	orderSvc := orderservice.NewOrderService(email, whatsapp, ids, ledger,
		submission.NewMachine(orderservice.SuccessWindow, nil))
	orderHdl := orderhandler.NewOrderHandler(orderSvc)

	receiptSvc := receiptservice.NewReceiptService(whatsapp, ledger, cfg.Company.WhatsApp)
	receiptHdl := receipthandler.NewReceiptHandler(receiptSvc)

	catalogHdl := cataloghandler.NewCatalogHandler()

	srv := server.New(cfg)

	// Register Routes
	srv.App.Post("/inquiries", inquiryHdl.Submit)
	srv.App.Get("/inquiries/status", inquiryHdl.Status)
	srv.App.Post("/orders", orderHdl.Place)
	srv.App.Get("/orders/status", orderHdl.Status)
	srv.App.Post("/receipts", receiptHdl.Submit)
	srv.App.Get("/receipts/whatsapp-link", receiptHdl.DirectChatLink)
	srv.App.Get("/catalog/products", catalogHdl.Products)
	srv.App.Get("/catalog/categories", catalogHdl.InquiryCategories)
	srv.App.Get("/catalog/payment-channels", catalogHdl.PaymentChannels)
	srv.App.Get("/catalog/contacts", catalogHdl.Contacts)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
