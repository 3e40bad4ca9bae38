package model

// Item — позиция складского учёта.
type Item struct {
	ID          int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description string  `gorm:"size:500" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Quantity    int64   `gorm:"not null;default:0" json:"quantity"`
}

// TableName фиксирует имя таблицы: item, а не items по умолчанию gorm.
func (Item) TableName() string {
	return "item"
}

// InventorySummary — агрегаты по всей таблице item для главной страницы.
type InventorySummary struct {
	ItemCount     int64   `db:"item_count" json:"item_count"`
	TotalQuantity int64   `db:"total_quantity" json:"total_quantity"`
	TotalValue    float64 `db:"total_value" json:"total_value"`
}
