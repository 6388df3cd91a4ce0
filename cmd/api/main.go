package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/stejus2010/stai-25/internal/auth"
	"github.com/stejus2010/stai-25/internal/chat"
	"github.com/stejus2010/stai-25/internal/db"
	"github.com/stejus2010/stai-25/internal/history"
	"github.com/stejus2010/stai-25/internal/ingredients"
	"github.com/stejus2010/stai-25/internal/ocr"
	"github.com/stejus2010/stai-25/internal/profile"
	"github.com/stejus2010/stai-25/internal/quota"
	"github.com/stejus2010/stai-25/internal/router"
	"github.com/stejus2010/stai-25/internal/scan"
	"github.com/stejus2010/stai-25/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"GEMINI_API_KEY",
		"GEMINI_MODEL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("Missing env var: %s", k)
		}
	}

	ocr.MustHaveBinary()

	// ───────────────────────── DICTIONARY ─────────────────────────
	dictPath := os.Getenv("INGREDIENTS_FILE")
	if dictPath == "" {
		dictPath = "data/ingredients.json"
	}
	dict, syn, err := ingredients.Load(dictPath)
	if err != nil {
		log.Fatalf("Failed to load ingredients dictionary: %v", err)
	}
	log.Printf("Loaded %d harmful ingredients, %d synonyms", len(dict), len(syn))

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── STORAGE (optional) ─────────────────────────
	var uploader scan.Uploader
	if os.Getenv("R2_ENDPOINT") != "" {
		r2Client, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("R2 init failed:", err)
		}
		uploader = r2Client
	} else {
		log.Println("R2_ENDPOINT not set, scan images will not be stored")
	}

	// ───────────────────────── SERVICES ─────────────────────────
	authService := auth.NewService(auth.NewPostgresUserRepository(pgDB))
	profileService := profile.NewService(profile.NewPostgresRepository(pgDB))
	tracker := quota.NewTracker(quota.NewPostgresRepository(pgDB))

	records := history.NewPostgresRepository(pgDB)
	guestRecords := history.NewInMemoryRepository()

	scanService := scan.NewService(
		tracker,
		ocr.NewTesseractClient(),
		profileService,
		records,
		guestRecords,
		uploader,
		dict,
		syn,
	)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.New(router.Deps{
		Auth:    auth.NewHandler(authService),
		Profile: profile.NewHandler(profileService),
		Scan:    scan.NewHandler(scanService),
		History: history.NewHandler(records, guestRecords),
		Chat:    chat.NewHandler(chat.NewGeminiClient()),
	})

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Printf("API running at http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
