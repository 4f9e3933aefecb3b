package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aaravmahajanofficial/supplements-storefront/docs"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/api/handlers"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/cache"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/carousel"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/catalog"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/chat"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/config"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/events"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/health"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/payment"
	repository "github.com/aaravmahajanofficial/supplements-storefront/internal/repositories"
	service "github.com/aaravmahajanofficial/supplements-storefront/internal/services"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/session"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/telemetry"
	"github.com/aaravmahajanofficial/supplements-storefront/pkg/kafka"
	"github.com/aaravmahajanofficial/supplements-storefront/pkg/redsys"
	"github.com/aaravmahajanofficial/supplements-storefront/pkg/sendgrid"
	"github.com/aaravmahajanofficial/supplements-storefront/pkg/stripe"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

//	@title						Supplements Storefront API
//	@version					1.0
//	@description				Storefront, checkout and partner tools for a sports supplements shop.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	shutdownTracing, err := telemetry.Setup(context.Background(), &cfg.Telemetry, cfg.Env)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := shutdownTracing(ctx); err != nil {
			slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
		}
	}()

	// Database setup
	db, repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	redisCache := cache.NewRedisCache(redisClient, &cfg.Cache)
	defer redisCache.Close()

	rateLimiter := repository.NewRateLimitRepo(redisClient, &cfg.RateConfig)
	sessions := session.NewStore(redisCache, cfg.Cache.SessionTTL)

	// Events
	bus := events.NewBus(logger)
	metrics.Subscribe(bus)

	if len(cfg.Kafka.Brokers) > 0 {
		producer, err := kafka.NewProducer(kafka.Config{Brokers: cfg.Kafka.Brokers, Topic: cfg.Kafka.Topic, Async: cfg.Kafka.Async, Logger: logger})
		if err != nil {
			slog.Error("❌ Error creating the kafka producer", slog.String("error", err.Error()))
			os.Exit(1)
		}

		defer producer.Close()

		forwardQueue := events.NewQueue(events.Forwarder(producer), cfg.Kafka.QueueSize, 5*time.Second, logger)
		defer forwardQueue.Close()

		bus.SubscribeAll(forwardQueue.Handle)
		slog.Info("Forwarding events to kafka", slog.String("topic", cfg.Kafka.Topic))
	}

	outboundClient := func(timeout time.Duration) *http.Client {
		return &http.Client{Timeout: timeout, Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}

	// Catalog
	staticProducts, err := catalog.LoadStatic(cfg.Catalog.StaticPath, cfg.Catalog.Locales)
	if err != nil {
		slog.Error("❌ Error loading the static catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}

	catalogClient := catalog.NewClient(cfg.Catalog.APIURL, outboundClient(cfg.Catalog.Timeout), cfg.Catalog.Locales)
	catalogService := service.NewCatalogService(catalogClient, staticProducts)
	searchService := service.NewSearchService(catalogService, cfg.Catalog.DefaultLocale)
	catalogHandler := handlers.NewCatalogHandler(catalogService, searchService)

	strips := carousel.NewStrips(catalogService.AllProducts, cfg.Carousel.Visible, cfg.Carousel.Interval, nil)
	strips.Refresh(context.Background())
	strips.Start()
	defer strips.Stop()

	carouselHandler := handlers.NewCarouselHandler(strips)

	// Cart and consent
	cartService := service.NewCartService(sessions, bus)
	cartHandler := handlers.NewCartHandler(cartService)
	consentHandler := handlers.NewConsentHandler(service.NewConsentService(sessions))

	// Email
	sendGridClient := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	notificationService := service.NewNotificationService(repos.Notifications, sendGridClient)

	// Payment gateway
	baseURL := strings.TrimRight(cfg.HTTPServer.BaseURL, "/")
	deps := service.CheckoutDeps{
		Store:         sessions,
		Cart:          cartService,
		Orders:        repos.CheckoutOrders,
		Notifications: notificationService,
		Publisher:     bus,
	}

	var stripeClient stripe.Client

	switch cfg.Gateway.Provider {
	case payment.GatewayStripe:
		stripeClient = stripe.NewStripeClient(cfg.Stripe.APIKey)
		gateway := payment.NewStripeGateway(stripeClient, cfg.Stripe.Currency, baseURL+"/payment-result?status=ok", baseURL+"/payment-result?status=ko")
		deps.Gateway = gateway
		deps.Confirmer = gateway
	case payment.GatewayRemote:
		signer := payment.NewRemoteSigner(cfg.Gateway.CreateURL, outboundClient(15*time.Second))
		deps.Gateway = payment.NewSignedFormGateway(payment.GatewayRemote, signer)
		deps.Signer = signer
	default:
		client, err := redsys.New(redsys.Config{
			FormURL:         cfg.Gateway.FormURL,
			MerchantCode:    cfg.Gateway.MerchantCode,
			Terminal:        cfg.Gateway.Terminal,
			Currency:        cfg.Gateway.Currency,
			TransactionType: cfg.Gateway.TransactionType,
			SecretKey:       cfg.Gateway.SecretKey,
			MerchantName:    cfg.Gateway.MerchantName,
		})
		if err != nil {
			slog.Error("❌ Error configuring the redsys signer", slog.String("error", err.Error()))
			os.Exit(1)
		}

		signer := payment.NewRedsysSigner(client, baseURL+cfg.Checkout.SuccessPath, baseURL+cfg.Checkout.FailurePath, baseURL+"/api/v1/checkout/notify")
		deps.Gateway = payment.NewSignedFormGateway(payment.GatewayRedsys, signer)
		deps.Signer = signer
		deps.Verifier = signer
	}

	checkoutService := service.NewCheckoutService(deps, service.CheckoutConfig{
		Currency:          cfg.Gateway.Currency,
		Description:       cfg.Gateway.Description,
		ReceiptTemplateID: cfg.SendGrid.ReceiptTemplateID,
		OrdersInbox:       cfg.SendGrid.OrdersInbox,
		ReceiptThrottle:   cfg.Checkout.ReceiptThrottle,
	})
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)

	// Chat
	var chatBackend chat.Backend
	if cfg.Chat.Provider == chat.ProviderOpenAI {
		chatBackend = chat.NewOpenAIBackend(cfg.Chat.OpenAI.APIKey, cfg.Chat.OpenAI.BaseURL, cfg.Chat.OpenAI.Model, outboundClient(cfg.Chat.Timeout))
	} else {
		chatBackend = chat.NewHTTPBackend(cfg.Chat.EndpointURL, outboundClient(cfg.Chat.Timeout))
	}

	chatService := service.NewChatService(chatBackend, catalogService, chat.NewFormatter(cfg.Chat.KnownDomains), service.ChatConfig{
		Policy: chat.Policy{
			StoreName:       cfg.Gateway.MerchantName,
			ContactEmail:    cfg.Chat.ContactEmail,
			ContactPhone:    cfg.Chat.ContactPhone,
			ReturnPolicy:    cfg.Chat.ReturnPolicy,
			PaymentProvider: cfg.Chat.PaymentProvider,
		},
		DefaultLocale: cfg.Catalog.DefaultLocale,
		MaxProducts:   cfg.Chat.MaxProducts,
		Timeout:       cfg.Chat.Timeout,
	})
	chatHandler := handlers.NewChatHandler(chatService)

	// Partners
	jwtKey := []byte(cfg.Security.JWTKey)
	partnerService := service.NewPartnerService(rateLimiter, outboundClient(10*time.Second), service.PartnerConfig{
		Sources: map[models.PartnerRole]service.CredentialSource{
			models.RoleCollaborator: {URL: cfg.Partners.CollaboratorsURL, Path: cfg.Partners.CollaboratorsPath},
			models.RoleAgent:        {URL: cfg.Partners.AgentsURL, Path: cfg.Partners.AgentsPath},
		},
		FallbackUsername:     cfg.Partners.FallbackUsername,
		FallbackPasswordHash: cfg.Partners.FallbackPasswordHash,
		FallbackName:         cfg.Partners.FallbackName,
		JWTKey:               jwtKey,
		TokenTTL:             time.Duration(cfg.Security.JWTExpiryHours) * time.Hour,
	})
	partnerHandler := handlers.NewPartnerHandler(partnerService)

	commercialService := service.NewCommercialService(repos.CommercialOrders, catalogService, notificationService, bus, service.CommercialConfig{
		VATRate:            cfg.Partners.VATRate,
		MaxDiscountPercent: cfg.Partners.MaxDiscountPercent,
		TemplateID:         cfg.SendGrid.CommercialTemplateID,
		OrdersInbox:        cfg.SendGrid.OrdersInbox,
		Locale:             cfg.Catalog.DefaultLocale,
	})
	commercialHandler := handlers.NewCommercialHandler(commercialService)

	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{StripeClient: stripeClient})
	if err != nil {
		slog.Error("❌ Error creating the health handler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(baseURL, "https://"), "http://")

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("gateway", cfg.Gateway.Provider), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()

	routerMux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{sportId}/{ref}", catalogHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/product/{ref}", catalogHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/search", catalogHandler.Search())
	routerMux.HandleFunc("GET /api/products", catalogHandler.ProductAPI())

	routerMux.HandleFunc("GET /api/v1/carousels/{name}", carouselHandler.GetCarousel())
	routerMux.HandleFunc("POST /api/v1/carousels/{name}/{action}", carouselHandler.Navigate())

	routerMux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart())
	routerMux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddItem())
	routerMux.HandleFunc("POST /api/v1/cart/items/{id}/increment", cartHandler.Increment())
	routerMux.HandleFunc("POST /api/v1/cart/items/{id}/decrement", cartHandler.Decrement())
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{id}", cartHandler.RemoveItem())
	routerMux.HandleFunc("DELETE /api/v1/cart", cartHandler.ClearCart())

	routerMux.HandleFunc("POST /api/v1/checkout", checkoutHandler.StartCheckout())
	routerMux.HandleFunc("GET /api/v1/checkout/state", checkoutHandler.CheckoutState())
	routerMux.HandleFunc("DELETE /api/v1/checkout/session", checkoutHandler.ClearSession())
	routerMux.HandleFunc("POST /api/v1/checkout/receipt/resend", checkoutHandler.ResendReceipt())
	routerMux.HandleFunc("POST /api/v1/checkout/notify", checkoutHandler.Notify())
	routerMux.HandleFunc("GET /payment-result", checkoutHandler.PaymentResult(""))
	routerMux.HandleFunc("GET /pago-ok", checkoutHandler.PaymentResult(models.ReturnSuccess))
	routerMux.HandleFunc("GET /pago-ko", checkoutHandler.PaymentResult(models.ReturnFailure))
	routerMux.HandleFunc("POST /api/create", checkoutHandler.SignPayment())

	routerMux.HandleFunc("POST /api/v1/chat", chatHandler.Chat())
	if cfg.Chat.Provider == chat.ProviderOpenAI {
		// with the http provider this process is the client of /backend/chat
		routerMux.HandleFunc("POST /backend/chat", chatHandler.BackendChat())
	}

	routerMux.HandleFunc("GET /api/v1/consent", consentHandler.GetConsent())
	routerMux.HandleFunc("PUT /api/v1/consent", consentHandler.SaveConsent())

	routerMux.HandleFunc("POST /api/v1/collaborators/login", partnerHandler.Login(models.RoleCollaborator))
	routerMux.HandleFunc("GET /api/v1/collaborators/me", authMiddleware.Authenticate(partnerHandler.Profile(), models.RoleCollaborator))
	routerMux.HandleFunc("POST /api/v1/commercial/login", partnerHandler.Login(models.RoleAgent))
	routerMux.HandleFunc("POST /api/v1/commercial/quote", authMiddleware.Authenticate(commercialHandler.Quote(), models.RoleAgent))
	routerMux.HandleFunc("POST /api/v1/commercial/orders", authMiddleware.Authenticate(commercialHandler.PlaceOrder(), models.RoleAgent))
	routerMux.HandleFunc("GET /api/v1/commercial/orders", authMiddleware.Authenticate(commercialHandler.ListOrders(), models.RoleAgent))

	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Session(cfg.Env == "production")(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "storefront")

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {

		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

}
