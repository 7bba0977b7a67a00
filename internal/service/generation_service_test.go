package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pulsar/internal/domain"
	"pulsar/internal/port"
	"pulsar/internal/service"
	"pulsar/mocks"
)

func TestGenerationService_Generate_Success(t *testing.T) {
	generator := new(mocks.MockContentGenerator)
	generator.On("Generate", mock.Anything, mock.Anything).
		Return("https://cdn.example.com/generated/abc.png", nil)
	svc := service.NewGenerationService(generator)

	url, err := svc.Generate(context.Background(), &port.GenerateInput{
		ContentType: domain.ContentTypeImage,
		Prompt:      "sunset over a mountain trail",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/generated/abc.png", url)
}

func TestGenerationService_Generate_UnknownContentType(t *testing.T) {
	generator := new(mocks.MockContentGenerator)
	svc := service.NewGenerationService(generator)

	_, err := svc.Generate(context.Background(), &port.GenerateInput{
		ContentType: domain.ContentType("hologram"),
		Prompt:      "anything",
	})

	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
	generator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestGenerationService_Generate_EmptyPrompt(t *testing.T) {
	generator := new(mocks.MockContentGenerator)
	svc := service.NewGenerationService(generator)

	_, err := svc.Generate(context.Background(), &port.GenerateInput{
		ContentType: domain.ContentTypeImage,
	})

	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
}

func TestGenerationService_Generate_BackendFailureWrapped(t *testing.T) {
	generator := new(mocks.MockContentGenerator)
	generator.On("Generate", mock.Anything, mock.Anything).
		Return("", errors.New("model overloaded"))
	svc := service.NewGenerationService(generator)

	_, err := svc.Generate(context.Background(), &port.GenerateInput{
		ContentType: domain.ContentTypeText,
		Prompt:      "a haiku about rain",
	})

	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
	assert.Contains(t, err.Error(), "model overloaded")
}
