package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockArtifactStore is a mock implementation of port.ArtifactStore.
type MockArtifactStore struct {
	mock.Mock
}

func (m *MockArtifactStore) Save(ctx context.Context, name, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, name, contentType, data)
	return args.String(0), args.Error(1)
}

func (m *MockArtifactStore) PresignedURL(ctx context.Context, name string, expirySeconds int64) (string, error) {
	args := m.Called(ctx, name, expirySeconds)
	return args.String(0), args.Error(1)
}
