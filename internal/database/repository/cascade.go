package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var ErrUnknownTable = errors.New("table is not part of the ownership graph")

// ref points at a foreign key column: rows of table whose column holds a parent id
type ref struct {
	table  string
	column string
}

// ownership lists what a parent row takes with it when deleted. Owned rows
// are deleted, in the listed order; weak references are set to NULL first.
type ownership struct {
	owned []ref
	weak  []ref
}

var ownershipGraph = map[string]ownership{
	"users": {
		owned: []ref{
			{"favorites", "user_id"},
			{"reservations", "user_id"},
			{"reviews", "user_id"},
			{"orders", "user_id"},
			{"user_addresses", "user_id"},
			{"payment_methods", "user_id"},
		},
		weak: []ref{
			{"promotion_usages", "user_id"},
			{"notifications", "user_id"},
			{"support_tickets", "user_id"},
			{"system_logs", "user_id"},
		},
	},
	"restaurants": {
		owned: []ref{
			{"favorites", "restaurant_id"},
			{"reservations", "restaurant_id"},
			{"reviews", "restaurant_id"},
			{"orders", "restaurant_id"},
			{"menu_items", "restaurant_id"},
			{"menu_categories", "restaurant_id"},
			{"restaurant_schedules", "restaurant_id"},
		},
		weak: []ref{
			{"promotions", "restaurant_id"},
			{"notifications", "restaurant_id"},
			{"support_tickets", "restaurant_id"},
		},
	},
	"menu_categories": {
		owned: []ref{{"menu_items", "category_id"}},
	},
	"menu_items": {
		weak: []ref{{"order_items", "menu_item_id"}},
	},
	"orders": {
		owned: []ref{{"order_items", "order_id"}},
		weak: []ref{
			{"reviews", "order_id"},
			{"promotion_usages", "order_id"},
		},
	},
	"promotions": {
		owned: []ref{{"promotion_usages", "promotion_id"}},
	},
	"administrators": {
		weak: []ref{
			{"support_tickets", "assigned_admin_id"},
			{"system_backups", "admin_id"},
			{"system_logs", "admin_id"},
			{"static_contents", "author_id"},
		},
	},
}

// Tables with no dependents of their own
var leafTables = []string{
	"favorites", "reservations", "reviews", "order_items", "restaurant_schedules",
	"user_addresses", "payment_methods", "promotion_usages", "notifications",
	"support_tickets", "system_config", "system_backups", "system_logs",
	"system_metrics", "promo_banners", "static_contents",
}

func knownTable(table string) bool {
	if _, ok := ownershipGraph[table]; ok {
		return true
	}
	for _, leaf := range leafTables {
		if leaf == table {
			return true
		}
	}
	return false
}

// CascadeReport counts the rows touched by one cascading delete
type CascadeReport struct {
	Deleted map[string]int64
	Nulled  map[string]int64
}

func newCascadeReport() *CascadeReport {
	return &CascadeReport{
		Deleted: make(map[string]int64),
		Nulled:  make(map[string]int64),
	}
}

// Total is the number of deleted rows across all tables
func (r *CascadeReport) Total() int64 {
	var total int64
	for _, n := range r.Deleted {
		total += n
	}
	return total
}

// CascadeDeleter removes rows together with everything they own
type CascadeDeleter struct {
	db *gorm.DB
}

func NewCascadeDeleter(db *gorm.DB) *CascadeDeleter {
	return &CascadeDeleter{db: db}
}

// Delete removes the rows of table with the given ids and, recursively, every
// row they own, all in one transaction. Optional references from other rows
// are set to NULL.
func (c *CascadeDeleter) Delete(ctx context.Context, table string, ids ...uint) (*CascadeReport, error) {
	if !knownTable(table) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}

	report := newCascadeReport()
	if len(ids) == 0 {
		return report, nil
	}

	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteTree(tx, table, ids, report)
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}

// DeleteTx runs the cascade inside an existing transaction
func (c *CascadeDeleter) DeleteTx(tx *gorm.DB, table string, ids ...uint) (*CascadeReport, error) {
	if !knownTable(table) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}

	report := newCascadeReport()
	if len(ids) == 0 {
		return report, nil
	}
	if err := deleteTree(tx, table, ids, report); err != nil {
		return nil, err
	}
	return report, nil
}

func deleteTree(tx *gorm.DB, table string, ids []uint, report *CascadeReport) error {
	node := ownershipGraph[table]

	for _, w := range node.weak {
		res := tx.Exec(
			fmt.Sprintf("UPDATE %s SET %s = NULL WHERE %s IN ?", w.table, w.column, w.column),
			ids,
		)
		if res.Error != nil {
			return fmt.Errorf("failed to clear %s.%s: %w", w.table, w.column, res.Error)
		}
		report.Nulled[w.table] += res.RowsAffected
	}

	for _, child := range node.owned {
		var childIDs []uint
		if err := tx.Table(child.table).Where(child.column+" IN ?", ids).Pluck("id", &childIDs).Error; err != nil {
			return fmt.Errorf("failed to list %s: %w", child.table, err)
		}
		if len(childIDs) == 0 {
			continue
		}
		if err := deleteTree(tx, child.table, childIDs, report); err != nil {
			return err
		}
	}

	res := tx.Exec(fmt.Sprintf("DELETE FROM %s WHERE id IN ?", table), ids)
	if res.Error != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, res.Error)
	}
	report.Deleted[table] += res.RowsAffected

	return nil
}
