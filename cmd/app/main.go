package main

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/bharatcart/shop-backend/internal/cart"
	"github.com/bharatcart/shop-backend/internal/catalog"
	"github.com/bharatcart/shop-backend/internal/checkout"
	"github.com/bharatcart/shop-backend/internal/config"
)

// main wires dependencies (dependency injection) and starts the HTTP server.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()

	if err := ensureSchema(db); err != nil {
		log.Fatalf("schema bootstrap failed: %v", err)
	}

	app := fiber.New()
	setupCORS(app)

	catalogService := catalog.NewService(catalog.NewPostgresRepository(db))
	catalogHandler := catalog.NewHandler(catalogService)

	// the cart joins against the catalog, checkout snapshots the cart
	cartService := cart.NewService(cart.NewPostgresRepository(db), catalogService)
	cartHandler := cart.NewHandler(cartService)
	checkoutHandler := checkout.NewHandler(checkout.NewService(cartService))

	seeded, err := catalogService.SeedIfEmpty(catalog.SampleProducts)
	if err != nil {
		log.Fatalf("catalog seeding failed: %v", err)
	}
	if seeded {
		log.Printf("seeded catalog with %d sample products", len(catalog.SampleProducts))
	}

	catalogHandler.RegisterRoutes(app)
	cartHandler.RegisterRoutes(app)
	checkoutHandler.RegisterRoutes(app)

	// serve the single-page UI next to the API it consumes
	app.Static("/", "./web")

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

func mustOpenDB(url string) *sql.DB {
	if url == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", url)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

func ensureSchema(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS product (
		product_id SERIAL PRIMARY KEY,
		product_name TEXT NOT NULL,
		product_price NUMERIC NOT NULL DEFAULT 0,
		product_desc TEXT,
		product_img TEXT
	)`); err != nil {
		return err
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS cart_item (
		cart_item_id SERIAL PRIMARY KEY,
		product_id INT NOT NULL,
		quantity INT NOT NULL
	)`); err != nil {
		return err
	}

	return nil
}
