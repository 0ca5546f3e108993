package service

import (
	"context"
	"errors"

	"council-rental-backend/internal/domain"
	"council-rental-backend/internal/repository"
)

type itemService struct {
	itemRepo repository.ItemRepository
}

func NewItemService(itemRepo repository.ItemRepository) ItemService {
	return &itemService{itemRepo: itemRepo}
}

func (s *itemService) AddItem(ctx context.Context, item *domain.Item) error {
	if item.Name == "" {
		return errors.New("item name is required")
	}
	if item.TagID == "" {
		return errors.New("item tag id is required")
	}
	if item.Condition == "" {
		item.Condition = domain.ItemConditionGood
	}
	return s.itemRepo.Create(ctx, item)
}

func (s *itemService) GetItem(ctx context.Context, id int32) (*domain.Item, error) {
	return s.itemRepo.GetByID(ctx, id)
}

func (s *itemService) UpdateItem(ctx context.Context, item *domain.Item) error {
	return s.itemRepo.Update(ctx, item)
}

func (s *itemService) DeleteItem(ctx context.Context, id int32) error {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item.Status == domain.ItemStatusRented {
		return errors.New("cannot delete an item that is currently rented")
	}
	return s.itemRepo.Delete(ctx, id)
}

func (s *itemService) ListItems(ctx context.Context, campus, category, status string, page, pageSize int32) ([]domain.Item, int32, error) {
	return s.itemRepo.List(ctx, campus, category, status, page, pageSize)
}
