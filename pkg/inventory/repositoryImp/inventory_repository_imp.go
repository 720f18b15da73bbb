package repositoryImp

import (
	"gorm.io/gorm"

	"growbro/entities"
	"growbro/pkg/inventory/repository"
)

type invRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.InventoryRepository { return &invRepo{db} }

func (r *invRepo) ListItems() ([]entities.InventoryItem, error) {
	var out []entities.InventoryItem
	if err := r.db.Order("external_key ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *invRepo) ListBatches() ([]entities.InventoryBatch, error) {
	var out []entities.InventoryBatch
	if err := r.db.Order("external_key ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *invRepo) ListMovements() ([]entities.InventoryMovement, error) {
	var out []entities.InventoryMovement
	if err := r.db.Order("external_key ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *invRepo) ItemsByKey() (map[string]entities.InventoryItem, error) {
	rows, err := r.ListItems()
	if err != nil {
		return nil, err
	}
	m := make(map[string]entities.InventoryItem, len(rows))
	for _, it := range rows {
		m[it.ExternalKey] = it
	}
	return m, nil
}

func (r *invRepo) BatchesByKey() (map[string]entities.InventoryBatch, error) {
	rows, err := r.ListBatches()
	if err != nil {
		return nil, err
	}
	m := make(map[string]entities.InventoryBatch, len(rows))
	for _, b := range rows {
		m[b.ExternalKey] = b
	}
	return m, nil
}

func (r *invRepo) MovementsByKey() (map[string]entities.InventoryMovement, error) {
	rows, err := r.ListMovements()
	if err != nil {
		return nil, err
	}
	m := make(map[string]entities.InventoryMovement, len(rows))
	for _, mv := range rows {
		m[mv.ExternalKey] = mv
	}
	return m, nil
}

func (r *invRepo) CreateItem(it *entities.InventoryItem) error { return r.db.Create(it).Error }
func (r *invRepo) UpdateItem(it *entities.InventoryItem) error { return r.db.Save(it).Error }

func (r *invRepo) CreateBatch(b *entities.InventoryBatch) error { return r.db.Create(b).Error }
func (r *invRepo) UpdateBatch(b *entities.InventoryBatch) error { return r.db.Save(b).Error }

func (r *invRepo) CreateMovement(m *entities.InventoryMovement) error { return r.db.Create(m).Error }
func (r *invRepo) UpdateMovement(m *entities.InventoryMovement) error { return r.db.Save(m).Error }
