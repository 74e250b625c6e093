package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ddoc14896/Realty-Website-sub000/internal/common"
	"github.com/ddoc14896/Realty-Website-sub000/internal/domain"
)

// MockInquiryRepository is a mock implementation of InquiryRepository
type MockInquiryRepository struct {
	mock.Mock
}

func (m *MockInquiryRepository) Create(inquiry *domain.Inquiry) error {
	args := m.Called(inquiry)
	return args.Error(0)
}

func (m *MockInquiryRepository) FindByID(id string) (*domain.Inquiry, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inquiry), args.Error(1)
}

func (m *MockInquiryRepository) Find(status domain.InquiryStatus, page, limit int) ([]domain.Inquiry, int64, error) {
	args := m.Called(status, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Inquiry), args.Get(1).(int64), args.Error(2)
}

func (m *MockInquiryRepository) UpdateStatus(id string, status domain.InquiryStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockInquiryRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockPropertyRepository is a mock implementation of PropertyRepository
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) FindAll() ([]domain.Property, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Property), args.Error(1)
}

func (m *MockPropertyRepository) FindByID(id string) (*domain.Property, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockPropertyRepository) Create(p *domain.Property) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockPropertyRepository) Update(p *domain.Property) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockPropertyRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPropertyRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockPublisher is a mock implementation of EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(queueName string, message interface{}) error {
	args := m.Called(queueName, message)
	return args.Error(0)
}

func TestInquirySubmit_CreatesWithNewStatus(t *testing.T) {
	inquiries := new(MockInquiryRepository)
	props := new(MockPropertyRepository)
	props.On("FindByID", "p1").Return(&domain.Property{ID: "p1"}, nil)
	inquiries.On("Create", mock.AnythingOfType("*domain.Inquiry")).Return(nil)

	svc := NewInquiryService(inquiries, props, nil)

	inquiry, err := svc.Submit(context.Background(), "p1", &domain.CreateInquiryRequest{
		Name:    "Jamie Park",
		Email:   "jamie@example.com",
		Message: "Is the property still available?",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, inquiry.ID)
	assert.Equal(t, "p1", inquiry.PropertyID)
	assert.Equal(t, domain.InquiryStatusNew, inquiry.Status)
	inquiries.AssertExpectations(t)
}

func TestInquirySubmit_UnknownPropertyFails(t *testing.T) {
	inquiries := new(MockInquiryRepository)
	props := new(MockPropertyRepository)
	props.On("FindByID", "missing").Return(nil, common.ErrPropertyNotFound)

	svc := NewInquiryService(inquiries, props, nil)

	_, err := svc.Submit(context.Background(), "missing", &domain.CreateInquiryRequest{
		Name: "Jamie", Email: "jamie@example.com", Message: "hi",
	})

	assert.ErrorIs(t, err, common.ErrPropertyNotFound)
	inquiries.AssertNotCalled(t, "Create", mock.Anything)
}

func TestInquirySubmit_PublishesEvent(t *testing.T) {
	inquiries := new(MockInquiryRepository)
	props := new(MockPropertyRepository)
	publisher := new(MockPublisher)
	props.On("FindByID", "p1").Return(&domain.Property{ID: "p1"}, nil)
	inquiries.On("Create", mock.Anything).Return(nil)
	publisher.On("Publish", InquiryQueueName, mock.AnythingOfType("domain.InquiryCreatedEvent")).Return(nil)

	svc := NewInquiryService(inquiries, props, publisher)

	_, err := svc.Submit(context.Background(), "p1", &domain.CreateInquiryRequest{
		Name: "Jamie", Email: "jamie@example.com", Message: "hi",
	})

	assert.NoError(t, err)
	publisher.AssertExpectations(t)
}

func TestInquirySubmit_PublishFailureDoesNotLoseInquiry(t *testing.T) {
	inquiries := new(MockInquiryRepository)
	props := new(MockPropertyRepository)
	publisher := new(MockPublisher)
	props.On("FindByID", "p1").Return(&domain.Property{ID: "p1"}, nil)
	inquiries.On("Create", mock.Anything).Return(nil)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	svc := NewInquiryService(inquiries, props, publisher)

	inquiry, err := svc.Submit(context.Background(), "p1", &domain.CreateInquiryRequest{
		Name: "Jamie", Email: "jamie@example.com", Message: "hi",
	})

	assert.NoError(t, err)
	assert.NotNil(t, inquiry)
}

func TestInquiryList_RejectsUnknownStatus(t *testing.T) {
	svc := NewInquiryService(new(MockInquiryRepository), new(MockPropertyRepository), nil)

	_, _, err := svc.List(context.Background(), "archived", 1, 20)

	assert.ErrorIs(t, err, common.ErrInvalidInquiryStatus)
}

func TestInquiryList_ClampsPagination(t *testing.T) {
	inquiries := new(MockInquiryRepository)
	inquiries.On("Find", domain.InquiryStatusNew, 1, 20).Return([]domain.Inquiry{}, int64(0), nil)

	svc := NewInquiryService(inquiries, new(MockPropertyRepository), nil)

	_, meta, err := svc.List(context.Background(), domain.InquiryStatusNew, 0, 500)

	assert.NoError(t, err)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 20, meta.Limit)
	inquiries.AssertExpectations(t)
}

func TestInquiryUpdateStatus(t *testing.T) {
	inquiries := new(MockInquiryRepository)
	inquiries.On("UpdateStatus", "i1", domain.InquiryStatusClosed).Return(nil)
	inquiries.On("FindByID", "i1").Return(&domain.Inquiry{ID: "i1", Status: domain.InquiryStatusClosed}, nil)

	svc := NewInquiryService(inquiries, new(MockPropertyRepository), nil)

	inquiry, err := svc.UpdateStatus(context.Background(), "i1", domain.InquiryStatusClosed)

	assert.NoError(t, err)
	assert.Equal(t, domain.InquiryStatusClosed, inquiry.Status)
}

func TestInquiryUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	svc := NewInquiryService(new(MockInquiryRepository), new(MockPropertyRepository), nil)

	_, err := svc.UpdateStatus(context.Background(), "i1", "spam")

	assert.ErrorIs(t, err, common.ErrInvalidInquiryStatus)
}
