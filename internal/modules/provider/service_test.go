package provider

import (
	"context"
	"io"
	"mime/multipart"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"lankatrails/internal/domain"
)

type MockProviderRepository struct {
	mock.Mock
}

func (m *MockProviderRepository) GetByID(ctx context.Context, id int64) (*domain.Provider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}

func (m *MockProviderRepository) GetByOwner(ctx context.Context, ownerID int64) (*domain.Provider, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}

func (m *MockProviderRepository) ListApproved(ctx context.Context, category string) ([]domain.Provider, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Provider), args.Error(1)
}

func (m *MockProviderRepository) SetProfileImage(ctx context.Context, id int64, url string) error {
	args := m.Called(ctx, id, url)
	return args.Error(0)
}

func (m *MockProviderRepository) AppendGalleryImage(ctx context.Context, id int64, url string) error {
	args := m.Called(ctx, id, url)
	return args.Error(0)
}

type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, fh *multipart.FileHeader, folder string) (string, error) {
	args := m.Called(ctx, fh, folder)
	return args.String(0), args.Error(1)
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestListApproved_UnknownCategory(t *testing.T) {
	service := NewService(new(MockProviderRepository), new(MockUploader), testLogger())

	_, err := service.ListApproved(context.Background(), "skydiving")

	assert.ErrorIs(t, err, ErrValidation)
}

func TestListApproved_CategoryFilter(t *testing.T) {
	mockProviders := new(MockProviderRepository)
	mockProviders.On("ListApproved", mock.Anything, "safari").Return([]domain.Provider{{ID: 5}}, nil)

	service := NewService(mockProviders, new(MockUploader), testLogger())

	list, err := service.ListApproved(context.Background(), "safari")

	assert.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestGetPublic_HidesUnapproved(t *testing.T) {
	mockProviders := new(MockProviderRepository)
	mockProviders.On("GetByID", mock.Anything, int64(5)).Return(&domain.Provider{ID: 5, Approved: false}, nil)

	service := NewService(mockProviders, new(MockUploader), testLogger())

	_, err := service.GetPublic(context.Background(), 5)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUploadImage_ProfileReplacesSlot(t *testing.T) {
	mockProviders := new(MockProviderRepository)
	mockUploader := new(MockUploader)

	mockProviders.On("GetByOwner", mock.Anything, int64(7)).Return(&domain.Provider{ID: 5}, nil)
	mockUploader.On("Upload", mock.Anything, mock.Anything, "providers").Return("https://cdn.example.com/providers/a.jpg", nil)
	mockProviders.On("SetProfileImage", mock.Anything, int64(5), "https://cdn.example.com/providers/a.jpg").Return(nil)

	service := NewService(mockProviders, mockUploader, testLogger())

	fh := &multipart.FileHeader{Filename: "a.jpg", Size: 1024}
	url, err := service.UploadImage(context.Background(), 7, "profile", fh)

	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/providers/a.jpg", url)
	mockProviders.AssertExpectations(t)
}

func TestUploadImage_GalleryAppends(t *testing.T) {
	mockProviders := new(MockProviderRepository)
	mockUploader := new(MockUploader)

	mockProviders.On("GetByOwner", mock.Anything, int64(7)).Return(&domain.Provider{ID: 5}, nil)
	mockUploader.On("Upload", mock.Anything, mock.Anything, "providers").Return("https://cdn.example.com/providers/b.png", nil)
	mockProviders.On("AppendGalleryImage", mock.Anything, int64(5), "https://cdn.example.com/providers/b.png").Return(nil)

	service := NewService(mockProviders, mockUploader, testLogger())

	fh := &multipart.FileHeader{Filename: "b.png", Size: 1024}
	_, err := service.UploadImage(context.Background(), 7, "gallery", fh)

	assert.NoError(t, err)
	mockProviders.AssertExpectations(t)
}

func TestUploadImage_RejectsBadKindAndFile(t *testing.T) {
	service := NewService(new(MockProviderRepository), new(MockUploader), testLogger())

	fh := &multipart.FileHeader{Filename: "a.jpg", Size: 1024}
	_, err := service.UploadImage(context.Background(), 7, "banner", fh)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.UploadImage(context.Background(), 7, "profile", &multipart.FileHeader{Filename: "a.exe", Size: 1024})
	assert.ErrorIs(t, err, ErrBadUpload)

	_, err = service.UploadImage(context.Background(), 7, "profile", &multipart.FileHeader{Filename: "a.jpg", Size: 20 << 20})
	assert.ErrorIs(t, err, ErrBadUpload)
}

func TestUploadImage_NoListing(t *testing.T) {
	mockProviders := new(MockProviderRepository)
	mockProviders.On("GetByOwner", mock.Anything, int64(7)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockProviders, new(MockUploader), testLogger())

	fh := &multipart.FileHeader{Filename: "a.jpg", Size: 1024}
	_, err := service.UploadImage(context.Background(), 7, "profile", fh)

	assert.ErrorIs(t, err, ErrNotFound)
}
