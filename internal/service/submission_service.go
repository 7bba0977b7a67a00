package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pulsar/internal/domain"
	"pulsar/internal/port"
	"pulsar/internal/validator"
	"pulsar/internal/validator/content"
)

// CreateSubmissionInput is the DTO for creating a draft submission.
type CreateSubmissionInput struct {
	ChallengeID  uuid.UUID
	UserID       uuid.UUID
	ContentType  domain.ContentType
	Title        string
	Description  string
	ContentKey   string
	Metadata     content.Metadata
	Tags         []string
	CustomFields map[string]interface{}
}

// UpdateSubmissionInput is the DTO for editing a draft submission.
type UpdateSubmissionInput struct {
	Title        string
	Description  string
	ContentKey   string
	Metadata     content.Metadata
	Tags         []string
	CustomFields map[string]interface{}
}

// SubmissionView is a submission with its presigned content URL attached.
type SubmissionView struct {
	domain.Submission
	ContentURL string `json:"content_url,omitempty"`
}

// SubmissionService defines the submission lifecycle contract.
type SubmissionService interface {
	CreateDraft(ctx context.Context, input *CreateSubmissionInput) (*domain.Submission, error)
	UpdateDraft(ctx context.Context, id, userID uuid.UUID, input *UpdateSubmissionInput) (*domain.Submission, error)
	Validate(ctx context.Context, sub *content.Submission) (*validator.ValidationResult, error)
	Submit(ctx context.Context, id, userID uuid.UUID) (*domain.Submission, *validator.ValidationResult, error)
	Get(ctx context.Context, id uuid.UUID) (*SubmissionView, error)
	ListGallery(ctx context.Context, challengeID uuid.UUID, filters *port.SubmissionFilters, offset, limit int) ([]SubmissionView, int, error)
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Submission, int, error)
	Delete(ctx context.Context, id, userID uuid.UUID, role domain.UserRole) error
}

type submissionService struct {
	submissionRepo  port.SubmissionRepository
	challengeRepo   port.ChallengeRepository
	storage         port.ObjectStorage
	engine          *validator.Engine
	presignExpiry   time.Duration
	defaultMinScore int
	log             *zap.Logger
}

// NewSubmissionService creates a new SubmissionService implementation.
func NewSubmissionService(
	submissionRepo port.SubmissionRepository,
	challengeRepo port.ChallengeRepository,
	storage port.ObjectStorage,
	engine *validator.Engine,
	presignExpiry time.Duration,
	defaultMinScore int,
	log *zap.Logger,
) SubmissionService {
	return &submissionService{
		submissionRepo:  submissionRepo,
		challengeRepo:   challengeRepo,
		storage:         storage,
		engine:          engine,
		presignExpiry:   presignExpiry,
		defaultMinScore: defaultMinScore,
		log:             log,
	}
}

func (s *submissionService) CreateDraft(ctx context.Context, input *CreateSubmissionInput) (*domain.Submission, error) {
	challenge, err := s.challengeRepo.GetByID(ctx, input.ChallengeID)
	if err != nil {
		return nil, err
	}
	if challenge.Status != domain.ChallengeStatusActive {
		return nil, domain.ErrChallengeNotActive
	}
	if !domain.ValidContentTypes[input.ContentType] {
		return nil, fmt.Errorf("%w: unknown content type %q", domain.ErrValidationFailed, input.ContentType)
	}

	metadata, err := json.Marshal(input.Metadata)
	if err != nil {
		return nil, fmt.Errorf("submission.CreateDraft: %w", err)
	}
	customFields, err := marshalCustomFields(input.CustomFields)
	if err != nil {
		return nil, fmt.Errorf("submission.CreateDraft: %w", err)
	}

	sub := &domain.Submission{
		ID:           uuid.New(),
		ChallengeID:  input.ChallengeID,
		UserID:       input.UserID,
		ContentType:  input.ContentType,
		Title:        input.Title,
		Description:  input.Description,
		ContentKey:   input.ContentKey,
		Metadata:     metadata,
		Tags:         input.Tags,
		CustomFields: customFields,
		Status:       domain.SubmissionStatusDraft,
	}
	if err := s.submissionRepo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("submission.CreateDraft: %w", err)
	}
	return sub, nil
}

func (s *submissionService) UpdateDraft(ctx context.Context, id, userID uuid.UUID, input *UpdateSubmissionInput) (*domain.Submission, error) {
	sub, err := s.submissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if sub.Status != domain.SubmissionStatusDraft {
		return nil, domain.ErrSubmissionNotDraft
	}

	metadata, err := json.Marshal(input.Metadata)
	if err != nil {
		return nil, fmt.Errorf("submission.UpdateDraft: %w", err)
	}
	customFields, err := marshalCustomFields(input.CustomFields)
	if err != nil {
		return nil, fmt.Errorf("submission.UpdateDraft: %w", err)
	}

	sub.Title = input.Title
	sub.Description = input.Description
	sub.ContentKey = input.ContentKey
	sub.Metadata = metadata
	sub.Tags = input.Tags
	sub.CustomFields = customFields

	if err := s.submissionRepo.Update(ctx, sub); err != nil {
		return nil, fmt.Errorf("submission.UpdateDraft: %w", err)
	}
	return sub, nil
}

// Validate runs the engine without persisting anything. The handler exposes
// this as the dry-run endpoint the frontend polls while the user edits.
func (s *submissionService) Validate(ctx context.Context, sub *content.Submission) (*validator.ValidationResult, error) {
	return s.engine.Validate(ctx, sub)
}

// Submit validates the stored draft and, when it clears the challenge's
// minimum score, marks it submitted. The score and full validation result are
// persisted either way so the author can see what held the draft back.
func (s *submissionService) Submit(ctx context.Context, id, userID uuid.UUID) (*domain.Submission, *validator.ValidationResult, error) {
	sub, err := s.submissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if sub.UserID != userID {
		return nil, nil, domain.ErrForbidden
	}
	if sub.Status != domain.SubmissionStatusDraft {
		return nil, nil, domain.ErrSubmissionNotDraft
	}

	challenge, err := s.challengeRepo.GetByID(ctx, sub.ChallengeID)
	if err != nil {
		return nil, nil, err
	}
	if challenge.Status != domain.ChallengeStatusActive {
		return nil, nil, domain.ErrChallengeNotActive
	}

	doc, err := s.buildDocument(ctx, sub)
	if err != nil {
		return nil, nil, err
	}
	result, err := s.engine.Validate(ctx, doc)
	if err != nil {
		return nil, nil, err
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return nil, nil, fmt.Errorf("submission.Submit: %w", err)
	}
	sub.ValidationScore = result.Score
	sub.ValidationResults = resultJSON

	minScore := challenge.MinimumScore
	if minScore <= 0 {
		minScore = s.defaultMinScore
	}
	if !result.IsValid || result.Score < minScore {
		if err := s.submissionRepo.UpdateValidation(ctx, sub); err != nil {
			return nil, nil, fmt.Errorf("submission.Submit: %w", err)
		}
		return sub, result, domain.ErrSubmissionNotReady
	}

	now := time.Now().UTC()
	sub.Status = domain.SubmissionStatusSubmitted
	sub.SubmittedAt = &now
	if err := s.submissionRepo.Update(ctx, sub); err != nil {
		return nil, nil, fmt.Errorf("submission.Submit: %w", err)
	}
	return sub, result, nil
}

// buildDocument reconstructs the engine's input from the stored row. A draft
// missing its file size gets one from a storage HEAD when a content key is
// present; a HEAD failure is logged and skipped so the engine still runs.
func (s *submissionService) buildDocument(ctx context.Context, sub *domain.Submission) (*content.Submission, error) {
	var metadata content.Metadata
	if len(sub.Metadata) > 0 {
		if err := json.Unmarshal(sub.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("submission metadata: %w", err)
		}
	}

	var customFields map[string]interface{}
	if len(sub.CustomFields) > 0 {
		if err := json.Unmarshal(sub.CustomFields, &customFields); err != nil {
			return nil, fmt.Errorf("submission custom fields: %w", err)
		}
	}

	if metadata.FileSizeBytes == nil && sub.ContentKey != "" {
		size, _, err := s.storage.Head(ctx, sub.ContentKey)
		if err != nil {
			s.log.Warn("content head failed",
				zap.String("submission_id", sub.ID.String()),
				zap.String("content_key", sub.ContentKey),
				zap.Error(err),
			)
		} else {
			metadata.FileSizeBytes = &size
		}
	}

	return &content.Submission{
		ContentType:  sub.ContentType,
		Title:        sub.Title,
		Description:  sub.Description,
		Content:      sub.ContentKey,
		Metadata:     metadata,
		ChallengeID:  sub.ChallengeID.String(),
		UserID:       sub.UserID.String(),
		CustomFields: customFields,
		Tags:         sub.Tags,
	}, nil
}

func (s *submissionService) Get(ctx context.Context, id uuid.UUID) (*SubmissionView, error) {
	sub, err := s.submissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := &SubmissionView{Submission: *sub}
	view.ContentURL = s.presign(ctx, sub)
	return view, nil
}

func (s *submissionService) ListGallery(ctx context.Context, challengeID uuid.UUID, filters *port.SubmissionFilters, offset, limit int) ([]SubmissionView, int, error) {
	if filters == nil {
		filters = &port.SubmissionFilters{}
	}
	if filters.Status == nil {
		submitted := domain.SubmissionStatusSubmitted
		filters.Status = &submitted
	}

	subs, total, err := s.submissionRepo.ListByChallenge(ctx, challengeID, filters, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	views := make([]SubmissionView, len(subs))
	for i := range subs {
		views[i] = SubmissionView{Submission: subs[i]}
		views[i].ContentURL = s.presign(ctx, &subs[i])
	}
	return views, total, nil
}

func (s *submissionService) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Submission, int, error) {
	return s.submissionRepo.ListByUser(ctx, userID, offset, limit)
}

func (s *submissionService) Delete(ctx context.Context, id, userID uuid.UUID, role domain.UserRole) error {
	sub, err := s.submissionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sub.UserID != userID && role != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	if err := s.submissionRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("submission.Delete: %w", err)
	}
	if sub.ContentKey != "" {
		if err := s.storage.Delete(ctx, sub.ContentKey); err != nil {
			s.log.Warn("content delete failed",
				zap.String("submission_id", sub.ID.String()),
				zap.String("content_key", sub.ContentKey),
				zap.Error(err),
			)
		}
	}
	return nil
}

func (s *submissionService) presign(ctx context.Context, sub *domain.Submission) string {
	if sub.ContentKey == "" {
		return ""
	}
	url, err := s.storage.PresignGet(ctx, sub.ContentKey, s.presignExpiry)
	if err != nil {
		s.log.Warn("presign failed",
			zap.String("submission_id", sub.ID.String()),
			zap.String("content_key", sub.ContentKey),
			zap.Error(err),
		)
		return ""
	}
	return url
}

func marshalCustomFields(fields map[string]interface{}) (json.RawMessage, error) {
	if fields == nil {
		return json.RawMessage("{}"), nil
	}
	return json.Marshal(fields)
}
