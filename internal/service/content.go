package service

import (
	"context"
	"errors"

	"council-rental-backend/internal/domain"
	"council-rental-backend/internal/repository"
)

type contentService struct {
	noticeRepo repository.NoticeRepository
	eventRepo  repository.EventRepository
}

func NewContentService(noticeRepo repository.NoticeRepository, eventRepo repository.EventRepository) ContentService {
	return &contentService{noticeRepo: noticeRepo, eventRepo: eventRepo}
}

func (s *contentService) CreateNotice(ctx context.Context, notice *domain.Notice) error {
	if notice.Title == "" || notice.Content == "" {
		return errors.New("notice title and content are required")
	}
	return s.noticeRepo.Create(ctx, notice)
}

func (s *contentService) GetNotice(ctx context.Context, id int32) (*domain.Notice, error) {
	return s.noticeRepo.GetByID(ctx, id)
}

func (s *contentService) UpdateNotice(ctx context.Context, notice *domain.Notice) error {
	return s.noticeRepo.Update(ctx, notice)
}

func (s *contentService) DeleteNotice(ctx context.Context, id int32) error {
	return s.noticeRepo.Delete(ctx, id)
}

func (s *contentService) ListNotices(ctx context.Context, category string, page, pageSize int32) ([]domain.Notice, int32, error) {
	return s.noticeRepo.List(ctx, category, page, pageSize)
}

func (s *contentService) CreateEvent(ctx context.Context, event *domain.Event) error {
	if event.Title == "" {
		return errors.New("event title is required")
	}
	return s.eventRepo.Create(ctx, event)
}

func (s *contentService) GetEvent(ctx context.Context, id int32) (*domain.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

func (s *contentService) UpdateEvent(ctx context.Context, event *domain.Event) error {
	return s.eventRepo.Update(ctx, event)
}

func (s *contentService) DeleteEvent(ctx context.Context, id int32) error {
	return s.eventRepo.Delete(ctx, id)
}

func (s *contentService) ListEvents(ctx context.Context, page, pageSize int32) ([]domain.Event, int32, error) {
	return s.eventRepo.List(ctx, page, pageSize)
}
