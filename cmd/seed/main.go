package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"plotline/internal/config"
	outlineSvc "plotline/internal/domain/services/outline"
	"plotline/internal/repository/postgres"
	postgresOutline "plotline/internal/repository/postgres/outline"
	serviceOutline "plotline/internal/service/outline"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	// Parse command-line flags
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed an outline")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && *dropTables {
		log.Fatalf("🚫 BLOCKED: Cannot run --drop-tables in production environment")
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if *schemaOnly {
		log.Printf("🏗️  Setting up schema only (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	} else {
		log.Printf("🌱 Seeding database (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	}

	// Create database connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Create table names
	tables := postgres.NewTableNames(cfg.TablePrefix)

	// Drop tables if requested
	if *dropTables {
		log.Println("🗑️  Dropping all tables...")
		if err := postgres.DropAllTables(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		log.Println("✅ Tables dropped")
	}

	// Run schema to ensure tables exist
	log.Println("📋 Ensuring database schema is up to date...")
	if err := postgres.EnsureSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}
	log.Println("✅ Schema ready")

	if *schemaOnly {
		log.Println("✅ Schema setup complete (schema-only mode)")
		return
	}

	if err := seedOutline(ctx, pool, tables, cfg.SeedUserID, logger); err != nil {
		log.Fatalf("Failed to seed outline: %v", err)
	}

	log.Println("🎉 Seeding complete!")
}

// seedOutline creates a demo novel with a part, chapters, and beats, going
// through the service layer so validation and ownership rules apply.
func seedOutline(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames, userID string, logger *slog.Logger) error {
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	novelRepo := postgresOutline.NewNovelRepository(repoConfig)
	partRepo := postgresOutline.NewPartRepository(repoConfig)
	chapterRepo := postgresOutline.NewChapterRepository(repoConfig)
	beatRepo := postgresOutline.NewBeatRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	resolver := serviceOutline.NewResolver(novelRepo, partRepo, chapterRepo, beatRepo)
	novelService := serviceOutline.NewNovelService(novelRepo, resolver, logger)
	partService := serviceOutline.NewPartService(partRepo, resolver, logger)
	chapterService := serviceOutline.NewChapterService(chapterRepo, beatRepo, resolver, txManager, logger)
	beatService := serviceOutline.NewBeatService(beatRepo, resolver, logger)

	novel, err := novelService.CreateNovel(ctx, &outlineSvc.CreateNovelRequest{
		UserID:         userID,
		Title:          "The Cartographer's Daughter",
		Genre:          stringPtr("fantasy"),
		TargetAudience: stringPtr("adult"),
		Status:         stringPtr("outlining"),
		Logline:        stringPtr("A mapmaker's apprentice discovers the blank regions of her father's maps are deliberate erasures."),
	})
	if err != nil {
		return err
	}
	log.Printf("✅ Created novel: %s (ID: %s)", novel.Title, novel.ID)

	part, err := partService.CreatePart(ctx, &outlineSvc.CreatePartRequest{
		UserID:  userID,
		NovelID: novel.ID,
		Title:   stringPtr("Part I: The Unmapped Coast"),
		Summary: stringPtr("Isolde inherits the workshop and finds the first erased region."),
	})
	if err != nil {
		return err
	}
	log.Printf("✅ Created part: %s", *part.Title)

	chapters := []*outlineSvc.CreateChapterRequest{
		{
			UserID:       userID,
			NovelID:      novel.ID,
			PartID:       &part.ID,
			OrderIndex:   intPtr(1),
			Title:        stringPtr("The Inheritance"),
			POVCharacter: stringPtr("Isolde"),
			Summary:      stringPtr("Isolde takes over the workshop after her father vanishes."),
		},
		{
			UserID:       userID,
			NovelID:      novel.ID,
			PartID:       &part.ID,
			OrderIndex:   intPtr(2),
			Title:        stringPtr("Blank Ink"),
			POVCharacter: stringPtr("Isolde"),
			Summary:      stringPtr("A commission reveals that an entire coastline has been scraped off the master chart."),
		},
	}

	for _, req := range chapters {
		chapter, err := chapterService.CreateChapter(ctx, req)
		if err != nil {
			return err
		}
		log.Printf("✅ Created chapter: %s (ID: %s)", *chapter.Title, chapter.ID)

		beats := []*outlineSvc.CreateBeatRequest{
			{
				UserID:      userID,
				NovelID:     novel.ID,
				ChapterID:   &chapter.ID,
				OrderIndex:  intPtr(1),
				BeatType:    stringPtr("setup"),
				Description: "Establish the workshop, the missing father, and the master chart.",
			},
			{
				UserID:      userID,
				NovelID:     novel.ID,
				ChapterID:   &chapter.ID,
				OrderIndex:  intPtr(2),
				BeatType:    stringPtr("reveal"),
				Description: "Isolde notices the erasure marks under lamplight.",
				Viewpoint:   stringPtr("Isolde"),
			},
		}
		for _, beatReq := range beats {
			if _, err := beatService.CreateBeat(ctx, beatReq); err != nil {
				return err
			}
		}
		log.Printf("  ✓ Seeded %d beats", len(beats))
	}

	return nil
}

// stringPtr returns a pointer to a string
func stringPtr(s string) *string {
	return &s
}

// intPtr returns a pointer to an int
func intPtr(i int) *int {
	return &i
}
