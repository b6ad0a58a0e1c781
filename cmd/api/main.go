package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amanpandey8120/vlocker-app/internal/config"
	"github.com/amanpandey8120/vlocker-app/internal/infrastructure/dynamo"
	jwtinfra "github.com/amanpandey8120/vlocker-app/internal/infrastructure/jwt"
	s3infra "github.com/amanpandey8120/vlocker-app/internal/infrastructure/s3"
	"github.com/amanpandey8120/vlocker-app/internal/infrastructure/sns"
	transporthttp "github.com/amanpandey8120/vlocker-app/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	// JWT provider (optional — auth is disabled if keys are missing).
	var jwtProvider *jwtinfra.Provider
	if p, err := jwtinfra.NewProvider(cfg); err == nil {
		jwtProvider = p
	} else {
		log.Printf("WARN: JWT provider not available: %v", err)
	}

	// S3 store for KYC photos and installation videos.
	s3Client := s3infra.NewClient(cfg)
	s3Store := s3infra.NewStore(s3Client, cfg.S3BucketName)

	// SNS SMS sender; falls back to a log-only sender locally.
	smsSender, err := sns.NewSender(cfg)
	if err != nil {
		log.Printf("WARN: SNS sender not available, logging SMS instead: %v", err)
		smsSender = sns.NewLogSender()
	}

	deps := &transporthttp.Deps{
		CustomerRepo: dynamo.NewCustomerRepo(dynamoClient, cfg.DynamoTables.Customers),
		LoanRepo:     dynamo.NewLoanRepo(dynamoClient, cfg.DynamoTables.Loans),
		BankRepo:     dynamo.NewBankRepo(dynamoClient, cfg.DynamoTables.Banks),
		AddressRepo:  dynamo.NewAddressRepo(dynamoClient, cfg.DynamoTables.Addresses),
		FeedbackRepo: dynamo.NewFeedbackRepo(dynamoClient, cfg.DynamoTables.Feedbacks),
		VideoRepo:    dynamo.NewVideoRepo(dynamoClient, cfg.DynamoTables.Videos),
		SupportRepo:  dynamo.NewSupportRepo(dynamoClient, cfg.DynamoTables.Support),
		UserRepo:     dynamo.NewUserRepo(dynamoClient, cfg.DynamoTables.Users),
		S3Store:      s3Store,
		SMSSender:    smsSender,
		JWTProvider:  jwtProvider,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
