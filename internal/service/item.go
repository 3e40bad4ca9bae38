package service

import (
	"Inventory/internal/model"
	"Inventory/internal/repo"
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500
)

// ItemForm — сырые значения полей формы, как они пришли в запросе.
type ItemForm struct {
	Name        string
	Description string
	Price       string
	Quantity    string
}

// ItemInput — поля Item после разбора чисел.
type ItemInput struct {
	Name        string
	Description string
	Price       float64
	Quantity    int64
}

// ParseItemForm разбирает числовые поля. Пустое quantity означает 0,
// пустая или некорректная цена — ошибка, молчаливого нуля нет.
// Имя обрезается по краям, описание сохраняется как есть.
func ParseItemForm(f ItemForm) (ItemInput, error) {
	in := ItemInput{
		Name:        strings.TrimSpace(f.Name),
		Description: f.Description,
	}

	priceRaw := strings.TrimSpace(f.Price)
	if priceRaw == "" {
		return ItemInput{}, violation("price", "is required")
	}
	price, err := strconv.ParseFloat(priceRaw, 64)
	if err != nil {
		return ItemInput{}, violation("price", "invalid number %q: %s", priceRaw, numErrReason(err))
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return ItemInput{}, violation("price", "invalid number %q: must be finite", priceRaw)
	}
	in.Price = price

	qtyRaw := strings.TrimSpace(f.Quantity)
	if qtyRaw != "" {
		qty, err := strconv.ParseInt(qtyRaw, 10, 64)
		if err != nil {
			return ItemInput{}, violation("quantity", "invalid integer %q: %s", qtyRaw, numErrReason(err))
		}
		in.Quantity = qty
	}

	return in, nil
}

func numErrReason(err error) string {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err.Error()
	}
	return err.Error()
}

// ItemService — операции над позициями склада поверх репозиториев.
type ItemService struct {
	repo   repo.ItemRepository
	stats  repo.StatsRepository
	logger *zap.SugaredLogger
}

func NewItemService(r repo.ItemRepository, stats repo.StatsRepository, logger *zap.SugaredLogger) *ItemService {
	return &ItemService{repo: r, stats: stats, logger: logger}
}

// Create сохраняет новую позицию.
func (s *ItemService) Create(ctx context.Context, in ItemInput) (*model.Item, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	it := &model.Item{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Quantity:    in.Quantity,
	}
	if err := s.repo.Create(ctx, it); err != nil {
		return nil, mapRepoError("create", err)
	}
	s.logger.Infow("item created", "id", it.ID, "name", it.Name)
	return it, nil
}

func (s *ItemService) Get(ctx context.Context, id int64) (*model.Item, error) {
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError("get", err)
	}
	return it, nil
}

func (s *ItemService) List(ctx context.Context) ([]model.Item, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, mapRepoError("list", err)
	}
	return items, nil
}

// Update перезаписывает все четыре изменяемых поля.
func (s *ItemService) Update(ctx context.Context, id int64, in ItemInput) (*model.Item, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	it, err := s.repo.Update(ctx, id, map[string]any{
		"name":        in.Name,
		"description": in.Description,
		"price":       in.Price,
		"quantity":    in.Quantity,
	})
	if err != nil {
		return nil, mapRepoError("update", err)
	}
	s.logger.Infow("item updated", "id", it.ID, "name", it.Name)
	return it, nil
}

func (s *ItemService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepoError("delete", err)
	}
	s.logger.Infow("item deleted", "id", id)
	return nil
}

// Summary — агрегаты для главной страницы.
func (s *ItemService) Summary(ctx context.Context) (model.InventorySummary, error) {
	sum, err := s.stats.Summary(ctx)
	if err != nil {
		return model.InventorySummary{}, fmt.Errorf("summary: %w", err)
	}
	return sum, nil
}

// Ping проверяет доступность БД.
func (s *ItemService) Ping(ctx context.Context) error {
	return s.stats.Ping(ctx)
}

func validate(in ItemInput) error {
	if in.Name == "" {
		return violation("name", "is required")
	}
	if n := utf8.RuneCountInString(in.Name); n > MaxNameLength {
		return violation("name", "must be at most %d characters, got %d", MaxNameLength, n)
	}
	if n := utf8.RuneCountInString(in.Description); n > MaxDescriptionLength {
		return violation("description", "must be at most %d characters, got %d", MaxDescriptionLength, n)
	}
	return nil
}

// mapRepoError переводит ошибки репозитория в ошибки сервиса.
func mapRepoError(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrItemNotFound
	case errors.Is(err, repo.ErrDuplicateName):
		return violation("name", "an item with this name already exists")
	default:
		return fmt.Errorf("%s item: %w", op, err)
	}
}
