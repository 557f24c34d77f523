package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"arendaBack/internal/config"
	"arendaBack/internal/handlers"
	"arendaBack/internal/repositories"
	"arendaBack/internal/services"
	"arendaBack/utils"
)

type application struct {
	errorLog         *log.Logger
	infoLog          *log.Logger
	cfg              config.Config
	db               *sql.DB
	userHandler      *handlers.UserHandler
	categoryHandler  *handlers.CategoryHandler
	itemHandler      *handlers.ItemHandler
	itemImageHandler *handlers.ItemImageHandler
	bookingHandler   *handlers.BookingHandler
	reviewHandler    *handlers.ReviewHandler
	sessionRepo      *repositories.SessionRepository
}

func initializeApp(db *sql.DB, redisClient *redis.Client, cfg config.Config, errorLog, infoLog *log.Logger) *application {
	// Repositories
	userRepo := repositories.UserRepository{DB: db}
	sessionRepo := repositories.SessionRepository{Client: redisClient}
	categoryRepo := repositories.CategoryRepository{DB: db}
	itemRepo := repositories.ItemRepository{DB: db}
	itemImageRepo := repositories.ItemImageRepository{DB: db}
	bookingRepo := repositories.BookingRepository{DB: db}
	reviewRepo := repositories.ReviewRepository{DB: db}

	tokenManager, err := utils.NewManager(cfg.Auth.SigningKey)
	if err != nil {
		errorLog.Printf("token manager unavailable, falling back to uuid refresh tokens: %v", err)
		tokenManager = nil
	}
	storage := utils.NewStorage(
		cfg.Storage.AccessKey, cfg.Storage.SecretKey,
		cfg.Storage.Bucket, cfg.Storage.Region, cfg.Storage.Endpoint,
	)

	// Services
	userService := &services.UserService{
		UserRepo:     &userRepo,
		SessionRepo:  &sessionRepo,
		TokenManager: tokenManager,
		Storage:      storage,
		SigningKey:   cfg.Auth.SigningKey,
		AccessTTL:    time.Duration(cfg.Auth.AccessTTLMin) * time.Minute,
		RefreshTTL:   time.Duration(cfg.Auth.RefreshTTLHours) * time.Hour,
	}
	categoryService := &services.CategoryService{CategoryRepo: &categoryRepo}
	itemService := &services.ItemService{ItemRepo: &itemRepo}
	itemImageService := &services.ItemImageService{ItemImageRepo: &itemImageRepo, Storage: storage}
	bookingService := &services.BookingService{BookingRepo: &bookingRepo, ItemRepo: &itemRepo}
	reviewService := &services.ReviewService{ReviewRepo: &reviewRepo, BookingRepo: &bookingRepo}

	// Handlers
	userHandler := &handlers.UserHandler{Service: userService}
	categoryHandler := &handlers.CategoryHandler{Service: categoryService}
	itemHandler := &handlers.ItemHandler{Service: itemService}
	itemImageHandler := &handlers.ItemImageHandler{Service: itemImageService}
	bookingHandler := &handlers.BookingHandler{Service: bookingService}
	reviewHandler := &handlers.ReviewHandler{Service: reviewService}

	return &application{
		errorLog:         errorLog,
		infoLog:          infoLog,
		cfg:              cfg,
		db:               db,
		userHandler:      userHandler,
		categoryHandler:  categoryHandler,
		itemHandler:      itemHandler,
		itemImageHandler: itemImageHandler,
		bookingHandler:   bookingHandler,
		reviewHandler:    reviewHandler,
		sessionRepo:      &sessionRepo,
	}
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}

func openRedis(cfg config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: failed to ping redis: %v", err)
	}
	return client
}
