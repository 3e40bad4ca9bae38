package repo

import (
	"Inventory/internal/model"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrDuplicateName — имя уже занято другой записью.
var ErrDuplicateName = errors.New("item name already exists")

// ItemRepository — доступ к таблице item. Отсутствующая запись: gorm.ErrRecordNotFound.
type ItemRepository interface {
	// Create вставляет запись и заполняет it.ID.
	Create(ctx context.Context, it *model.Item) error

	GetByID(ctx context.Context, id int64) (*model.Item, error)

	// ListAll возвращает все записи по возрастанию id.
	ListAll(ctx context.Context) ([]model.Item, error)

	// Update перезаписывает переданные столбцы (включая нулевые значения) и возвращает свежую запись.
	Update(ctx context.Context, id int64, updates map[string]any) (*model.Item, error)

	Delete(ctx context.Context, id int64) error
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт реализацию репозитория для Item.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) Create(ctx context.Context, it *model.Item) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := nameTaken(tx, it.Name, 0)
		if err != nil {
			return err
		}
		if taken {
			return ErrDuplicateName
		}
		return tx.Create(it).Error
	})
	return translate(err)
}

func (r *itemRepo) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	var it model.Item
	if err := r.db.WithContext(ctx).First(&it, id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itemRepo) ListAll(ctx context.Context) ([]model.Item, error) {
	items := make([]model.Item, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepo) Update(ctx context.Context, id int64, updates map[string]any) (*model.Item, error) {
	var it model.Item
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&it, id).Error; err != nil {
			return err
		}
		if name, ok := updates["name"].(string); ok {
			taken, err := nameTaken(tx, name, id)
			if err != nil {
				return err
			}
			if taken {
				return ErrDuplicateName
			}
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&model.Item{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		// перечитываем, чтобы вернуть значения в том виде, в каком их сохранила БД
		return tx.First(&it, id).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &it, nil
}

func (r *itemRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Item{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// nameTaken проверяет, занято ли имя записью с id, отличным от exceptID.
func nameTaken(tx *gorm.DB, name string, exceptID int64) (bool, error) {
	var count int64
	q := tx.Model(&model.Item{}).Where("name = ?", name)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// translate приводит нарушение уникального индекса к ErrDuplicateName.
// Драйверы сообщают о нём по-разному: gorm переводит не все.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateName
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key") {
		return ErrDuplicateName
	}
	return err
}
