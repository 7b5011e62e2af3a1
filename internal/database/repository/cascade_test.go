package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mesa-app/mesa/internal/database/models"
	"github.com/mesa-app/mesa/internal/testutil"
)

func TestOwnershipGraph_EdgesReferenceKnownTables(t *testing.T) {
	for parent, node := range ownershipGraph {
		for _, r := range append(append([]ref{}, node.owned...), node.weak...) {
			assert.True(t, knownTable(r.table), "%s references unknown table %s", parent, r.table)
			assert.NotEmpty(t, r.column)
		}
	}
}

func TestCascadeDeleter_DeleteUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	g := testutil.SeedGraph(t, db)

	report, err := NewCascadeDeleter(db).Delete(context.Background(), "users", g.UserA.ID)
	require.NoError(t, err)

	assert.Equal(t, map[string]int64{
		"users":           1,
		"favorites":       1,
		"reservations":    1,
		"reviews":         1,
		"orders":          1,
		"order_items":     1,
		"user_addresses":  1,
		"payment_methods": 1,
	}, report.Deleted)
	assert.Equal(t, int64(8), report.Total())

	assert.Equal(t, int64(1), report.Nulled["promotion_usages"])
	assert.Equal(t, int64(1), report.Nulled["notifications"])
	assert.Equal(t, int64(1), report.Nulled["support_tickets"])
	assert.Equal(t, int64(1), report.Nulled["system_logs"])

	// UserB and both restaurants are untouched
	assert.Equal(t, int64(1), testutil.CountRows(t, db, "users"))
	assert.Equal(t, int64(2), testutil.CountRows(t, db, "restaurants"))
	assert.Equal(t, int64(1), testutil.CountRows(t, db, "favorites"))
	assert.Equal(t, int64(1), testutil.CountRows(t, db, "orders"))

	var usage models.PromotionUsage
	require.NoError(t, db.First(&usage, g.Usage.ID).Error)
	assert.Nil(t, usage.UserID)
	require.NotNil(t, usage.OrderID)
	assert.Equal(t, g.OrderB.ID, *usage.OrderID)

	var ticket models.SupportTicket
	require.NoError(t, db.First(&ticket, g.Ticket.ID).Error)
	assert.Nil(t, ticket.UserID)
	assert.NotNil(t, ticket.RestaurantID)
}

func TestCascadeDeleter_DeleteRestaurant(t *testing.T) {
	db := testutil.NewTestDB(t)
	g := testutil.SeedGraph(t, db)

	report, err := NewCascadeDeleter(db).Delete(context.Background(), "restaurants", g.RestaurantA.ID)
	require.NoError(t, err)

	assert.Equal(t, map[string]int64{
		"restaurants":          1,
		"favorites":            2,
		"reservations":         1,
		"orders":               1,
		"order_items":          1,
		"menu_items":           2,
		"menu_categories":      1,
		"restaurant_schedules": 1,
	}, report.Deleted)

	assert.Equal(t, int64(1), report.Nulled["promotions"])
	assert.Equal(t, int64(1), report.Nulled["reviews"])
	assert.Equal(t, int64(1), report.Nulled["promotion_usages"])
	assert.Equal(t, int64(1), report.Nulled["order_items"])

	for _, table := range []string{"menu_items", "menu_categories", "restaurant_schedules", "favorites", "reservations"} {
		assert.Zero(t, testutil.CountRows(t, db, table), table)
	}

	// The order at RestaurantB keeps its line, detached from the deleted dish
	var item models.OrderItem
	require.NoError(t, db.First(&item, g.OrderItemA.ID).Error)
	assert.Nil(t, item.MenuItemID)
	assert.Equal(t, "Lasaña", item.ItemName)

	var review models.Review
	require.NoError(t, db.First(&review, g.ReviewB.ID).Error)
	assert.Nil(t, review.OrderID)

	var promotion models.Promotion
	require.NoError(t, db.First(&promotion, g.Promotion.ID).Error)
	assert.Nil(t, promotion.RestaurantID)
}

func TestCascadeDeleter_DeleteCategoryTakesItsItems(t *testing.T) {
	db := testutil.NewTestDB(t)
	g := testutil.SeedGraph(t, db)

	report, err := NewCascadeDeleter(db).Delete(context.Background(), "menu_categories", g.Category.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(1), report.Deleted["menu_categories"])
	assert.Equal(t, int64(1), report.Deleted["menu_items"])
	assert.Equal(t, int64(1), testutil.CountRows(t, db, "menu_items"))
}

func TestCascadeDeleter_DeletePromotionAndAdministrator(t *testing.T) {
	db := testutil.NewTestDB(t)
	g := testutil.SeedGraph(t, db)
	deleter := NewCascadeDeleter(db)
	ctx := context.Background()

	report, err := deleter.Delete(ctx, "promotions", g.Promotion.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), report.Deleted["promotion_usages"])

	report, err = deleter.Delete(ctx, "administrators", g.Admin.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), report.Deleted["administrators"])
	assert.Equal(t, int64(1), report.Nulled["support_tickets"])
	assert.Equal(t, int64(1), report.Nulled["system_logs"])
	assert.Equal(t, int64(1), report.Nulled["static_contents"])
	assert.Equal(t, int64(1), testutil.CountRows(t, db, "static_contents"))
}

func TestCascadeDeleter_Guards(t *testing.T) {
	db := testutil.NewTestDB(t)
	deleter := NewCascadeDeleter(db)
	ctx := context.Background()

	_, err := deleter.Delete(ctx, "users; DROP TABLE users", 1)
	assert.ErrorIs(t, err, ErrUnknownTable)

	report, err := deleter.Delete(ctx, "users")
	require.NoError(t, err)
	assert.Zero(t, report.Total())

	report, err = deleter.Delete(ctx, "users", 404)
	require.NoError(t, err)
	assert.Zero(t, report.Deleted["users"])
}

func TestCascadeDeleter_DeleteTxRollsBackWithCaller(t *testing.T) {
	db := testutil.NewTestDB(t)
	g := testutil.SeedGraph(t, db)
	deleter := NewCascadeDeleter(db)

	errAbort := assert.AnError
	err := db.Transaction(func(tx *gorm.DB) error {
		report, err := deleter.DeleteTx(tx, "users", g.UserB.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), report.Deleted["users"])
		return errAbort
	})
	assert.ErrorIs(t, err, errAbort)

	assert.Equal(t, int64(2), testutil.CountRows(t, db, "users"))
	assert.Equal(t, int64(2), testutil.CountRows(t, db, "orders"))
}
