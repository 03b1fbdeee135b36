package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"gorm.io/gorm/logger"

	"github.com/yourusername/trivia-bank/internal/config"
	"github.com/yourusername/trivia-bank/internal/domain/repository"
	"github.com/yourusername/trivia-bank/internal/events"
	"github.com/yourusername/trivia-bank/internal/importer"
	"github.com/yourusername/trivia-bank/internal/repository/gormrepo"
	"github.com/yourusername/trivia-bank/internal/service"
	"github.com/yourusername/trivia-bank/pkg/database"
)

// Импорт вопросов из .xlsx (колонки question, answer, category, difficulty)
// или выгрузка всех вопросов в .xlsx с флагом -export.
func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to config file")
	file := flag.String("file", "", "path to .xlsx workbook")
	createCategories := flag.Bool("create-categories", false, "create unknown categories by name")
	export := flag.Bool("export", false, "export questions to -file instead of importing")
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.OpenAndMigrate(cfg.Database, logger.Warn)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close(db)

	publisher, err := events.NewPublisher(cfg.Events)
	if err != nil {
		log.Fatalf("Failed to create event publisher: %v", err)
	}
	defer publisher.Close()

	categoryRepo := gormrepo.NewCategoryRepo(db)
	questionRepo := gormrepo.NewQuestionRepo(db)
	categoryService := service.NewCategoryService(categoryRepo, questionRepo)
	questionService := service.NewQuestionService(questionRepo, categoryRepo, publisher)

	ctx := context.Background()
	if *export {
		if err := exportQuestions(ctx, *file, categoryService, questionRepo); err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		return
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", *file, err)
	}
	defer f.Close()

	rows, err := importer.ReadQuestions(f)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *file, err)
	}

	result, err := importer.NewImporter(categoryService, questionService, *createCategories).Import(ctx, rows)
	if err != nil {
		log.Printf("Import aborted: %v", err)
	}
	if result != nil {
		for _, failed := range result.Failed {
			fmt.Printf("row %d: %s\n", failed.Row, failed.Message)
		}
		fmt.Printf("created: %d, failed: %d\n", len(result.Created), len(result.Failed))
	}
	if err != nil {
		os.Exit(1)
	}
}

func exportQuestions(ctx context.Context, path string, categoryService *service.CategoryService, questionRepo repository.QuestionRepository) error {
	categories, err := categoryService.ListCategories(ctx)
	if err != nil {
		return err
	}

	total, err := questionRepo.Count(ctx, repository.QuestionFilter{})
	if err != nil {
		return err
	}
	questions, _, err := questionRepo.List(ctx, repository.QuestionFilter{}, 0, int(total))
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := importer.WriteQuestions(out, questions, categories); err != nil {
		return err
	}
	log.Printf("[Export] Выгружено %d вопросов в %s", len(questions), path)
	return nil
}
