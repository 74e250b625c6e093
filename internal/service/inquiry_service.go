package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ddoc14896/Realty-Website-sub000/internal/common"
	"github.com/ddoc14896/Realty-Website-sub000/internal/domain"
	"github.com/ddoc14896/Realty-Website-sub000/internal/repository"
	pkglogger "github.com/ddoc14896/Realty-Website-sub000/pkg/logger"
)

// InquiryQueueName is the AMQP queue for inquiry events
const InquiryQueueName = "inquiry.created"

// EventPublisher publishes domain events to the message broker
type EventPublisher interface {
	Publish(queueName string, message interface{}) error
}

// InquiryService business logic for listing inquiries
type InquiryService interface {
	Submit(ctx context.Context, propertyID string, req *domain.CreateInquiryRequest) (*domain.Inquiry, error)
	List(ctx context.Context, status domain.InquiryStatus, page, limit int) ([]domain.Inquiry, *common.Meta, error)
	UpdateStatus(ctx context.Context, id string, status domain.InquiryStatus) (*domain.Inquiry, error)
}

type inquiryService struct {
	repo      repository.InquiryRepository
	props     repository.PropertyRepository
	publisher EventPublisher // nil when no broker is configured
}

// NewInquiryService creates a new InquiryService. publisher may be nil.
func NewInquiryService(repo repository.InquiryRepository, props repository.PropertyRepository, publisher EventPublisher) InquiryService {
	return &inquiryService{repo: repo, props: props, publisher: publisher}
}

// Submit validates the target listing exists and records the inquiry.
// The broker event is best-effort; a publish failure never loses the inquiry.
func (s *inquiryService) Submit(ctx context.Context, propertyID string, req *domain.CreateInquiryRequest) (*domain.Inquiry, error) {
	if _, err := s.props.FindByID(propertyID); err != nil {
		return nil, err
	}

	inquiry := &domain.Inquiry{
		ID:         uuid.New().String(),
		PropertyID: propertyID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
		Status:     domain.InquiryStatusNew,
		CreatedAt:  time.Now(),
	}
	if err := s.repo.Create(inquiry); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		event := domain.InquiryCreatedEvent{
			InquiryID:  inquiry.ID,
			PropertyID: inquiry.PropertyID,
			Email:      inquiry.Email,
			CreatedAt:  inquiry.CreatedAt,
		}
		if err := s.publisher.Publish(InquiryQueueName, event); err != nil {
			pkglogger.Get().Warn().Err(err).Str("inquiry_id", inquiry.ID).Msg("inquiry event publish failed")
		}
	}

	return inquiry, nil
}

// List returns inquiries for the back-office, newest first
func (s *inquiryService) List(_ context.Context, status domain.InquiryStatus, page, limit int) ([]domain.Inquiry, *common.Meta, error) {
	if status != "" && !domain.ValidInquiryStatus(status) {
		return nil, nil, common.ErrInvalidInquiryStatus
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	inquiries, total, err := s.repo.Find(status, page, limit)
	if err != nil {
		return nil, nil, err
	}

	meta := &common.Meta{Page: page, Limit: limit, Total: total}
	return inquiries, meta, nil
}

// UpdateStatus moves an inquiry to a new back-office state
func (s *inquiryService) UpdateStatus(_ context.Context, id string, status domain.InquiryStatus) (*domain.Inquiry, error) {
	if !domain.ValidInquiryStatus(status) {
		return nil, common.ErrInvalidInquiryStatus
	}
	if err := s.repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	return s.repo.FindByID(id)
}
