// database/bootstrap.go
package database

import (
	"fmt"
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"growbro/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	// Run the external_key retrofit BEFORE AutoMigrate so GORM doesn't
	// fight a legacy table without the unique index.
	if err := migrateItemsExternalKeyUnique(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Plant{},
		&entities.Series{},
		&entities.Task{},
		&entities.Measurement{},
		&entities.Harvest{},
		&entities.InventoryItem{},
		&entities.InventoryBatch{},
		&entities.InventoryMovement{},
		&entities.GuideDoc{},
		&entities.GuideChunk{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

// migrateItemsExternalKeyUnique rebuilds inventory_items if an early
// schema created the table without the unique external_key index.
// Import reconciliation depends on that uniqueness.
func migrateItemsExternalKeyUnique(db *gorm.DB) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='inventory_items'`).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		// fresh DB, nothing to do
		return nil
	}

	var n int
	if err := db.Raw(`SELECT COUNT(*) FROM sqlite_master WHERE type='index' AND tbl_name='inventory_items' AND sql LIKE '%UNIQUE%external_key%'`).Scan(&n).Error; err != nil {
		return fmt.Errorf("check index: %w", err)
	}
	if n > 0 {
		// already good
		return nil
	}

	createSQL := `
CREATE TABLE inventory_items_new (
    item_id INTEGER PRIMARY KEY AUTOINCREMENT,
    external_key TEXT UNIQUE,
    name TEXT,
    category TEXT,
    unit TEXT,
    tracking_mode TEXT,
    min_stock REAL,
    reorder_multiple REAL,
    is_consumable NUMERIC,
    created_at DATETIME,
    updated_at DATETIME
);
`
	copySQL := `
INSERT INTO inventory_items_new (item_id, external_key, name, category, unit, tracking_mode, min_stock, reorder_multiple, is_consumable, created_at, updated_at)
SELECT item_id, external_key, name, category, unit, tracking_mode, min_stock, reorder_multiple, is_consumable, created_at, updated_at FROM inventory_items;
`

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`PRAGMA foreign_keys=OFF`).Error; err != nil {
			return err
		}
		if err := tx.Exec(createSQL).Error; err != nil {
			return err
		}
		if err := tx.Exec(copySQL).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DROP TABLE inventory_items`).Error; err != nil {
			return err
		}
		if err := tx.Exec(`ALTER TABLE inventory_items_new RENAME TO inventory_items`).Error; err != nil {
			return err
		}
		if err := tx.Exec(`PRAGMA foreign_keys=ON`).Error; err != nil {
			return err
		}
		return nil
	})
}
