package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/pricebite/pricebite-backend/internal/catalog"
	"github.com/pricebite/pricebite-backend/internal/config"
	"github.com/pricebite/pricebite-backend/internal/database"
	"github.com/pricebite/pricebite-backend/internal/handlers"
	"github.com/pricebite/pricebite-backend/internal/routes"
	"github.com/pricebite/pricebite-backend/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	log.Printf("Connecting to MongoDB...")
	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer database.Disconnect(client)
	db := client.Database(cfg.MongoDB)

	store, err := catalog.NewStore(catalog.Seed())
	if err != nil {
		log.Fatal("Failed to load catalog:", err)
	}
	log.Printf("Catalog loaded: %d products", store.Len())

	queryService := services.NewQueryService(store)
	dealService := services.NewDealService(store)
	authService := services.NewAuthService(services.NewMongoUserStore(db), cfg.JWTSecret)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	routes.Setup(r, routes.Handlers{
		Products:  handlers.NewProductHandler(queryService, dealService),
		Auth:      handlers.NewAuthHandler(authService),
		Contact:   handlers.NewContactHandler(),
		JWTSecret: []byte(cfg.JWTSecret),
	})

	log.Printf("Backend running on http://localhost:%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
