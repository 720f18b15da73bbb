package repository

import "growbro/entities"

type InventoryRepository interface {
	ListItems() ([]entities.InventoryItem, error)
	ListBatches() ([]entities.InventoryBatch, error)
	ListMovements() ([]entities.InventoryMovement, error)

	ItemsByKey() (map[string]entities.InventoryItem, error)
	BatchesByKey() (map[string]entities.InventoryBatch, error)
	MovementsByKey() (map[string]entities.InventoryMovement, error)

	CreateItem(it *entities.InventoryItem) error
	UpdateItem(it *entities.InventoryItem) error
	CreateBatch(b *entities.InventoryBatch) error
	UpdateBatch(b *entities.InventoryBatch) error
	CreateMovement(m *entities.InventoryMovement) error
	UpdateMovement(m *entities.InventoryMovement) error
}
