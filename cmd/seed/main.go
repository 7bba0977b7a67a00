package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"pulsar/internal/config"
	"pulsar/internal/domain"
	"pulsar/internal/repository/postgres"
	s3storage "pulsar/internal/storage/s3"
	"pulsar/internal/validator"
	"pulsar/internal/validator/content"
)

// Seeds a demo dataset: users, two challenges with a validation catalog,
// submissions scored by the real engine, and votes. Idempotent only on a
// fresh database.
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepo(db)
	challengeRepo := postgres.NewChallengeRepo(db)
	submissionRepo := postgres.NewSubmissionRepo(db)
	voteRepo := postgres.NewVoteRepo(db)
	ruleRepo := postgres.NewRuleCatalogRepo(db)

	// Users
	users := []struct {
		email    string
		name     string
		role     domain.UserRole
		password string
	}{
		{"admin@pulsar.local", "Pulsar Admin", domain.RoleAdmin, "admin123"},
		{"maya@pulsar.local", "Maya Okafor", domain.RoleMember, "demo1234"},
		{"jules@pulsar.local", "Jules Arnaud", domain.RoleMember, "demo1234"},
		{"ravi@pulsar.local", "Ravi Menon", domain.RoleMember, "demo1234"},
	}

	ids := make(map[string]uuid.UUID, len(users))
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hashing password: %w", err)
		}
		user := &domain.User{
			ID:           uuid.New(),
			Email:        u.email,
			PasswordHash: string(hash),
			DisplayName:  u.name,
			Role:         u.role,
			IsActive:     true,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("seeding user %s: %w", u.email, err)
		}
		ids[u.email] = user.ID
		log.Printf("user %s (%s)", u.name, u.role)
	}
	adminID := ids["admin@pulsar.local"]

	now := time.Now().UTC()

	// Challenge 1: active, with a full validation catalog.
	trailChallenge := &domain.Challenge{
		ID:           uuid.New(),
		Title:        "Trail Stories",
		Description:  "Share your best moment from the trails this season.",
		Theme:        "outdoors",
		Status:       domain.ChallengeStatusActive,
		MinimumScore: 70,
		StartsAt:     now.AddDate(0, 0, -7),
		EndsAt:       now.AddDate(0, 0, 21),
		CreatedBy:    adminID,
	}
	if err := challengeRepo.Create(ctx, trailChallenge); err != nil {
		return fmt.Errorf("seeding challenge: %w", err)
	}

	rules := []*domain.ChallengeValidationRule{
		{
			ID:          uuid.New(),
			ChallengeID: trailChallenge.ID,
			Field:       "title",
			RuleType:    domain.RuleTypeRequired,
			RuleConfig:  json.RawMessage(`{}`),
			Message:     "Every trail story needs a title",
			Severity:    domain.RuleSeverityError,
			IsActive:    true,
			CreatedBy:   adminID,
		},
		{
			ID:          uuid.New(),
			ChallengeID: trailChallenge.ID,
			Field:       "description",
			RuleType:    domain.RuleTypeCustom,
			RuleConfig:  json.RawMessage(`{"minLength": 50}`),
			Message:     "Tell us more about your ride",
			Severity:    domain.RuleSeverityWarning,
			IsActive:    true,
			CreatedBy:   adminID,
		},
		{
			ID:          uuid.New(),
			ChallengeID: trailChallenge.ID,
			Field:       "tags",
			RuleType:    domain.RuleTypeCustom,
			RuleConfig:  json.RawMessage(`{"requiredTags": ["trail", "outdoors"]}`),
			Message:     "Tag your story so others can find it",
			Severity:    domain.RuleSeverityWarning,
			IsActive:    true,
			CreatedBy:   adminID,
		},
	}
	for _, rule := range rules {
		if err := ruleRepo.CreateRule(ctx, rule); err != nil {
			return fmt.Errorf("seeding rule: %w", err)
		}
	}

	maxDuration := 300
	requirements := []*domain.ContentRequirement{
		{
			ID:                 uuid.New(),
			ChallengeID:        trailChallenge.ID,
			AppliesToType:      "video",
			AllowedFormats:     domain.StringList{"mp4", "webm"},
			MaxSizeBytes:       100 * 1024 * 1024,
			MinResolution:      "1280x720",
			MaxDurationSeconds: &maxDuration,
		},
		{
			ID:             uuid.New(),
			ChallengeID:    trailChallenge.ID,
			AppliesToType:  "image",
			AllowedFormats: domain.StringList{"jpg", "jpeg", "png", "webp"},
			MaxSizeBytes:   10 * 1024 * 1024,
			RequiredFields: domain.StringList{"title", "description"},
		},
	}
	for _, req := range requirements {
		if err := ruleRepo.CreateRequirement(ctx, req); err != nil {
			return fmt.Errorf("seeding requirement: %w", err)
		}
	}
	log.Printf("challenge %q: %d rules, %d requirements", trailChallenge.Title, len(rules), len(requirements))

	// Challenge 2: voting, populated with scored submissions and votes.
	skyChallenge := &domain.Challenge{
		ID:           uuid.New(),
		Title:        "Night Skies",
		Description:  "Astrophotography and timelapses of the night sky.",
		Theme:        "astronomy",
		Status:       domain.ChallengeStatusVoting,
		MinimumScore: 60,
		StartsAt:     now.AddDate(0, -1, 0),
		EndsAt:       now.AddDate(0, 0, -2),
		CreatedBy:    adminID,
	}
	if err := challengeRepo.Create(ctx, skyChallenge); err != nil {
		return fmt.Errorf("seeding challenge: %w", err)
	}

	// Score seeded submissions with the real engine over an in-memory
	// catalog so stored results match what the API would have produced.
	engine := validator.NewEngine(validator.NewStaticCatalog())
	uploader := newUploader(cfg)

	demoSubs := []struct {
		email string
		doc   content.Submission
		votes []string
	}{
		{
			email: "maya@pulsar.local",
			doc: content.Submission{
				ContentType: domain.ContentTypeImage,
				Title:       "Milky Way over the ridge",
				Description: "Single 25 second exposure from the summit. The core was unusually bright that night and the ridge line framed it perfectly.",
				Content:     "demo/milky-way.jpg",
				Metadata:    content.Metadata{Format: "jpg", FileSizeBytes: ptr(int64(4 * 1024 * 1024)), Resolution: "4000x2667"},
				Tags:        []string{"astro", "longexposure"},
			},
			votes: []string{"jules@pulsar.local", "ravi@pulsar.local", "admin@pulsar.local"},
		},
		{
			email: "jules@pulsar.local",
			doc: content.Submission{
				ContentType: domain.ContentTypeVideo,
				Title:       "Four hours of stars",
				Description: "Timelapse compressed to ninety seconds. Shot on a tracking mount, processed with minimal noise reduction to keep the fainter stars.",
				Content:     "demo/star-timelapse.mp4",
				Metadata:    content.Metadata{Format: "mp4", FileSizeBytes: ptr(int64(60 * 1024 * 1024)), Duration: ptrf(90), Resolution: "1920x1080"},
				Tags:        []string{"timelapse"},
			},
			votes: []string{"ravi@pulsar.local"},
		},
		{
			email: "ravi@pulsar.local",
			doc: content.Submission{
				ContentType: domain.ContentTypeText,
				Title:       "Notes from a dark sky site",
				Description: "A short essay on what three nights without light pollution do to your sense of scale. Written between exposures.",
				Content:     "demo/dark-sky-notes.txt",
				Tags:        []string{"writing"},
			},
			votes: []string{"maya@pulsar.local"},
		},
	}

	for _, d := range demoSubs {
		doc := d.doc
		doc.ChallengeID = skyChallenge.ID.String()
		doc.UserID = ids[d.email].String()

		result, err := engine.Validate(ctx, &doc)
		if err != nil {
			return fmt.Errorf("scoring seed submission: %w", err)
		}
		resultJSON, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("marshaling validation result: %w", err)
		}
		metadata, err := json.Marshal(doc.Metadata)
		if err != nil {
			return fmt.Errorf("marshaling metadata: %w", err)
		}

		submittedAt := now.AddDate(0, 0, -5)
		sub := &domain.Submission{
			ID:                uuid.New(),
			ChallengeID:       skyChallenge.ID,
			UserID:            ids[d.email],
			ContentType:       doc.ContentType,
			Title:             doc.Title,
			Description:       doc.Description,
			ContentKey:        doc.Content,
			Metadata:          metadata,
			Tags:              doc.Tags,
			CustomFields:      json.RawMessage(`{}`),
			Status:            domain.SubmissionStatusSubmitted,
			ValidationScore:   result.Score,
			ValidationResults: resultJSON,
			SubmittedAt:       &submittedAt,
		}
		if err := submissionRepo.Create(ctx, sub); err != nil {
			return fmt.Errorf("seeding submission: %w", err)
		}

		if uploader != nil {
			body := strings.NewReader(fmt.Sprintf("placeholder content for %s", sub.Title))
			if err := uploader.Upload(ctx, sub.ContentKey, "text/plain", body); err != nil {
				log.Printf("placeholder upload skipped for %s: %v", sub.ContentKey, err)
			}
		}

		for _, voter := range d.votes {
			vote := &domain.Vote{
				ID:           uuid.New(),
				SubmissionID: sub.ID,
				ChallengeID:  skyChallenge.ID,
				UserID:       ids[voter],
			}
			if err := voteRepo.Upsert(ctx, vote); err != nil {
				return fmt.Errorf("seeding vote: %w", err)
			}
		}
		log.Printf("submission %q: score %d, %d votes", sub.Title, result.Score, len(d.votes))
	}

	log.Println("seed complete")
	return nil
}

// newUploader returns an object uploader when a custom S3 endpoint is
// configured (local MinIO), nil otherwise so seeding works without storage.
func newUploader(cfg *config.Config) *s3storage.Client {
	if cfg.S3.Endpoint == "" {
		return nil
	}
	client, err := s3storage.NewClient(&cfg.S3)
	if err != nil {
		log.Printf("storage unavailable, skipping placeholder uploads: %v", err)
		return nil
	}
	return client
}

func ptr(v int64) *int64      { return &v }
func ptrf(v float64) *float64 { return &v }
