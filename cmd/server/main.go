package main

import (
	"fmt"
	"log"
	"time"

	"pulsar/internal/config"
	"pulsar/internal/email/noop"
	"pulsar/internal/email/ses"
	gennoop "pulsar/internal/generator/noop"
	"pulsar/internal/handler"
	"pulsar/internal/logger"
	"pulsar/internal/port"
	"pulsar/internal/repository/postgres"
	"pulsar/internal/router"
	"pulsar/internal/service"
	s3storage "pulsar/internal/storage/s3"
	"pulsar/internal/validator"
)

const version = "1.0.0"

// @title           Pulsar API
// @version         1.0
// @description     Creative challenge platform: content submission validation, voting, leaderboards.
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	zlog, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = zlog.Sync() }()

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	challengeRepo := postgres.NewChallengeRepo(db)
	submissionRepo := postgres.NewSubmissionRepo(db)
	voteRepo := postgres.NewVoteRepo(db)
	leaderboardRepo := postgres.NewLeaderboardRepo(db)
	ruleCatalog := postgres.NewRuleCatalogRepo(db)

	// Initialize collaborators
	storage, err := s3storage.NewClient(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	var announcer port.AnnouncementSender
	switch cfg.Email.Provider {
	case "ses":
		announcer, err = ses.NewSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		announcer = noop.NewSender()
	}

	generator := gennoop.NewGenerator(cfg.Email.FrontendURL)

	// Initialize the validation engine
	engine := validator.NewEngine(ruleCatalog, validator.WithLogger(zlog))

	// Initialize services
	presignExpiry := time.Duration(cfg.S3.PresignExpiry) * time.Second
	challengeSvc := service.NewChallengeService(
		challengeRepo, submissionRepo, userRepo, ruleCatalog, leaderboardRepo,
		announcer, cfg.Validation.DefaultMinimumScore, zlog)
	submissionSvc := service.NewSubmissionService(
		submissionRepo, challengeRepo, storage, engine,
		presignExpiry, cfg.Validation.DefaultMinimumScore, zlog)
	voteSvc := service.NewVoteService(voteRepo, submissionRepo, challengeRepo)
	leaderboardSvc := service.NewLeaderboardService(leaderboardRepo, challengeRepo)
	generationSvc := service.NewGenerationService(generator)

	// Setup router
	r := router.Setup(cfg, zlog, router.Handlers{
		Health:      handler.NewHealthHandler(db, version),
		Challenge:   handler.NewChallengeHandler(challengeSvc),
		Submission:  handler.NewSubmissionHandler(submissionSvc),
		Vote:        handler.NewVoteHandler(voteSvc),
		Leaderboard: handler.NewLeaderboardHandler(leaderboardSvc, challengeSvc),
		Generation:  handler.NewGenerationHandler(generationSvc),
	})

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
