package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/clubvest/clubledger-backend/internal/adapter/grpc"
	clubledgerv1 "github.com/clubvest/clubledger-backend/internal/adapter/grpc/clubledger/v1"
	"github.com/clubvest/clubledger-backend/internal/adapter/repository/memory"
	"github.com/clubvest/clubledger-backend/internal/adapter/repository/postgres"
	"github.com/clubvest/clubledger-backend/internal/audit"
	"github.com/clubvest/clubledger-backend/internal/domain"
	"github.com/clubvest/clubledger-backend/internal/events"
	"github.com/clubvest/clubledger-backend/internal/events/kafka"
	"github.com/clubvest/clubledger-backend/internal/usecase/cashier"
	"github.com/clubvest/clubledger-backend/internal/usecase/distribution"
	"github.com/clubvest/clubledger-backend/internal/usecase/fundregistry"
	"github.com/clubvest/clubledger-backend/internal/usecase/ledger"
	"github.com/clubvest/clubledger-backend/internal/usecase/seeder"
	"github.com/clubvest/clubledger-backend/internal/usecase/summary"
	"github.com/clubvest/clubledger-backend/internal/usecase/transfer"
)

const (
	defaultAPIToken = "dev-token"
	grpcPort        = ":8080"
)

func main() {
	// Load .env if present; real deployments set variables directly
	_ = godotenv.Load()

	// 1. Setup storage
	var (
		fundRepo    domain.FundRepository
		txnRepo     domain.TransactionRepository
		cashierRepo domain.CashierRepository
		projectRepo domain.ProjectRepository
		allocRepo   domain.AllocationRepository
		refData     domain.ReferenceData
		refStore    seeder.ReferenceStore
	)

	switch strings.ToLower(os.Getenv("STORE")) {
	case "", "postgres":
		db, err := postgres.NewDB(connectionString())
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		fundRepo = postgres.NewFundRepository(db)
		txnRepo = postgres.NewTransactionRepository(db)
		cashierRepo = postgres.NewCashierRepository(db)
		projectRepo = postgres.NewProjectRepository(db)
		allocRepo = postgres.NewAllocationRepository(db)
		refRepo := postgres.NewReferenceRepository(db)
		refData = refRepo
		refStore = refRepo
	case "memory":
		store := memory.NewStore()
		fundRepo = store
		txnRepo = store.Transactions()
		cashierRepo = store
		projectRepo = store
		allocRepo = store
		refData = store
		refStore = store
	default:
		log.Fatalf("Unknown STORE value %q (want postgres or memory)", os.Getenv("STORE"))
	}

	// 2. Audit log: hash-chained entries written as JSON lines
	auditSink := os.Stdout
	if path := os.Getenv("AUDIT_LOG_PATH"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open audit log: %v", err)
		}
		defer f.Close()
		auditSink = f
	}
	auditLog := audit.NewChainLogger(auditSink)

	// 3. Optional Kafka event publishing
	var publisher events.Publisher
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		kafkaPublisher := kafka.NewPublisher(strings.Split(brokers, ","))
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		log.Printf("Publishing transaction events to %s", brokers)
	}

	// 4. Initialize services (use cases)
	identity := grpcadapter.ContextIdentity{}
	ledgerService := ledger.NewService(fundRepo, txnRepo, refData, identity, auditLog, publisher)
	fundService := fundregistry.NewService(fundRepo, txnRepo, allocRepo)
	transferService := transfer.NewService(ledgerService)
	cashierService := cashier.NewService(cashierRepo, fundRepo, refData, identity, ledgerService)
	distributionService := distribution.NewService(projectRepo, txnRepo, allocRepo)
	summaryService := summary.NewService(fundRepo, txnRepo)

	// Seed reference data first: the ledger validates transaction
	// types against it, so an empty registry rejects everything
	if err := seeder.NewReferenceSeeder(refStore).Seed(context.Background()); err != nil {
		log.Fatalf("Failed to seed reference data: %v", err)
	}
	if err := seeder.NewFundSeeder(fundRepo).Seed(context.Background()); err != nil {
		log.Fatalf("Failed to seed default funds: %v", err)
	}
	log.Println("Reference data and default funds seeded successfully")

	// 5. Start gRPC server
	apiToken := os.Getenv("API_TOKEN")
	if apiToken == "" {
		apiToken = defaultAPIToken
	}

	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.AuthInterceptor(apiToken),
			grpcadapter.IdentityInterceptor(),
		),
	)

	grpcAdapter := grpcadapter.NewServer(
		fundService,
		ledgerService,
		transferService,
		cashierService,
		distributionService,
		summaryService,
	)
	clubledgerv1.RegisterClubLedgerServiceServer(grpcServer, grpcAdapter)

	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", grpcPort)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", grpcPort, err)
	}

	go func() {
		log.Printf("gRPC server listening on %s", grpcPort)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC server: %v", err)
		}
	}()

	waitForShutdown(grpcServer)
}

// connectionString builds the Postgres connection string from DB_CONN_STR
// or the individual DB_* variables (Docker friendly)
func connectionString() string {
	if connStr := os.Getenv("DB_CONN_STR"); connStr != "" {
		return connStr
	}

	host := envOr("DB_HOST", "localhost")
	port := envOr("DB_PORT", "5432")
	user := envOr("DB_USER", "postgres")
	password := envOr("DB_PASSWORD", "postgres")
	dbname := envOr("DB_NAME", "clubledger")

	// Give Postgres a moment to come up when started together
	time.Sleep(2 * time.Second)

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(grpcServer *grpclib.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Printf("Received signal: %v. Shutting down gracefully...", sig)

	grpcServer.GracefulStop()
	log.Println("gRPC server stopped")
}
