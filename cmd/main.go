package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"

	s3 "trafficmaster/aws"
	"trafficmaster/database"
	"trafficmaster/internal/config"
	"trafficmaster/internal/handlers"
	"trafficmaster/internal/store"
	utility "trafficmaster/internal/utility"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	client, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	admins := store.NewAdminStore(database.OpenCollection(client, "admins"))
	questions := store.NewQuestionStore(database.OpenCollection(client, "questions"))

	tokens := utility.NewTokenManager(cfg.JWTSecret)
	images := utility.NewS3ImageStore(s3.AWSConfig{
		AccessKeyID:     cfg.AWSAccessKeyID,
		AccessKeySecret: cfg.AWSSecretKey,
		Region:          cfg.AWSRegion,
	}, cfg.S3Bucket)

	auth := handlers.NewAuthorizer(tokens)
	adminHandler := handlers.NewAdminHandler(admins, tokens)
	questionHandler := handlers.NewQuestionHandler(questions, images)

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	// Admin routes
	r.Route("/admin", func(r chi.Router) {
		r.Post("/login", adminHandler.Login)
		r.Post("/forgot-password", adminHandler.ForgotPassword)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAdmin)
			r.Post("/create", adminHandler.CreateAdmin)
			r.Get("/all", adminHandler.GetAdmins)
			r.Delete("/delete/{id}", adminHandler.DeleteAdmin)
			r.Put("/update-password", adminHandler.UpdatePassword)
		})
	})

	// Question routes
	r.Route("/questions", func(r chi.Router) {
		r.Get("/all-questions", questionHandler.GetQuestions)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAdmin)
			r.Post("/add-question", questionHandler.AddQuestion)
			r.Put("/update-question/{id}", questionHandler.UpdateQuestion)
			r.Delete("/delete-question/{id}", questionHandler.DeleteQuestion)
			r.Post("/upload-image", questionHandler.UploadImage)
		})
	})

	// Start the server
	fmt.Printf("Traffic Master running on http://localhost:%s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
