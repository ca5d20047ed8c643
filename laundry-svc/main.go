package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"gulshan-laundry/config"
	httpapi "gulshan-laundry/laundry-svc/internal/api/http"
	"gulshan-laundry/laundry-svc/internal/api/ws"
	"gulshan-laundry/laundry-svc/internal/service"
	"gulshan-laundry/laundry-svc/internal/storage"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter("chat")
	defer kafkaWriter.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	sessions := storage.NewRedisSessionStore(rdb, 24*time.Hour)
	publisher := storage.NewKafkaPublisher(kafkaWriter)

	baseURL := os.Getenv("PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	email, password := config.AdminCredentials()

	packageSvc := service.NewPackageService(repo)
	orderSvc := service.NewOrderService(repo, service.DefaultQRGenerator{BaseURL: baseURL})
	authSvc := service.NewAuthService(email, password, sessions)
	chatSvc := service.NewChatService(repo, publisher)

	handler := httpapi.NewHandler(packageSvc, orderSvc, authSvc, chatSvc)
	hub := ws.NewHub(chatSvc)

	consumer := ws.NewConsumer(config.NewKafkaReader("chat", "laundry-svc"), hub)
	go consumer.Start(context.Background())

	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	r.Handle("/ws", hub)

	addr := ":" + os.Getenv("PORT")
	if addr == ":" {
		addr = ":8080"
	}

	log.Printf("Laundry Service starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, cors.Default().Handler(r)))
}
