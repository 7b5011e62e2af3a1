package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mesa-app/mesa/internal/database/models"
)

// Ptr returns a pointer to v
func Ptr[T any](v T) *T {
	return &v
}

// Graph is a small data set touching every ownership edge. Two users and two
// restaurants cross-reference each other so deletes can be checked for what
// they remove and what they leave behind.
type Graph struct {
	UserA, UserB             models.User
	RestaurantA, RestaurantB models.Restaurant
	Category                 models.MenuCategory
	ItemA, ItemB             models.MenuItem
	Schedule                 models.RestaurantSchedule
	FavoriteA, FavoriteB     models.Favorite
	Reservation              models.Reservation
	OrderA, OrderB           models.Order
	OrderItemA, OrderItemB   models.OrderItem
	ReviewA, ReviewB         models.Review
	Address                  models.UserAddress
	Payment                  models.PaymentMethod
	Promotion                models.Promotion
	Usage                    models.PromotionUsage
	Notification             models.Notification
	Ticket                   models.SupportTicket
	Log                      models.SystemLog
	Admin                    models.Administrator
	Content                  models.StaticContent
}

// SeedGraph inserts the Graph data set:
//
//	UserA: FavoriteA(RestaurantA), Reservation(RestaurantA), OrderA(RestaurantB)
//	       with OrderItemA(ItemA), ReviewA(RestaurantB, OrderA), Address, Payment
//	UserB: FavoriteB(RestaurantA), OrderB(RestaurantA) with OrderItemB(ItemB),
//	       ReviewB(RestaurantB, OrderB)
//	RestaurantA: Category with ItemA, ItemB (no category), Schedule, Promotion
//	Usage(Promotion, UserA, OrderB), Notification/Ticket/Log point at UserA
//	and RestaurantA; Admin is assigned the Ticket and authored Content.
func SeedGraph(t testing.TB, db *gorm.DB) *Graph {
	t.Helper()

	g := &Graph{}
	create := func(v any) {
		t.Helper()
		require.NoError(t, db.Create(v).Error)
	}
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	g.UserA = models.User{FirstName: "Juan", LastName: "Pérez", Email: "juan@test.com", PasswordHash: "x"}
	g.UserB = models.User{FirstName: "Ana", LastName: "López", Email: "ana@test.com", PasswordHash: "x"}
	create(&g.UserA)
	create(&g.UserB)

	g.RestaurantA = models.Restaurant{Name: "Restaurante Prueba", Slug: Ptr("restaurante-prueba"), CuisineType: Ptr("italiana")}
	g.RestaurantB = models.Restaurant{Name: "Taquería Sol", Slug: Ptr("taqueria-sol"), CuisineType: Ptr("mexicana")}
	create(&g.RestaurantA)
	create(&g.RestaurantB)

	g.Category = models.MenuCategory{RestaurantID: g.RestaurantA.ID, Name: "Pastas", Visible: Ptr(true)}
	create(&g.Category)

	g.ItemA = models.MenuItem{RestaurantID: g.RestaurantA.ID, CategoryID: &g.Category.ID, Name: "Lasaña", Price: 12.5, Available: Ptr(true)}
	g.ItemB = models.MenuItem{RestaurantID: g.RestaurantA.ID, Name: "Tiramisú", Price: 6, Available: Ptr(true)}
	create(&g.ItemA)
	create(&g.ItemB)

	g.Schedule = models.RestaurantSchedule{RestaurantID: g.RestaurantA.ID, Weekday: models.Monday, OpensAt: "12:00:00", ClosesAt: "23:00:00", Open: Ptr(true)}
	create(&g.Schedule)

	g.FavoriteA = models.Favorite{UserID: g.UserA.ID, RestaurantID: g.RestaurantA.ID}
	g.FavoriteB = models.Favorite{UserID: g.UserB.ID, RestaurantID: g.RestaurantA.ID}
	create(&g.FavoriteA)
	create(&g.FavoriteB)

	g.Reservation = models.Reservation{
		UserID: g.UserA.ID, RestaurantID: g.RestaurantA.ID,
		ReservationDate: day, ReservationTime: "21:00:00", PartySize: 4,
	}
	create(&g.Reservation)

	g.OrderA = models.Order{UserID: g.UserA.ID, RestaurantID: g.RestaurantB.ID, Subtotal: 12.5, Total: 12.5, PaymentMethod: models.PaymentCard}
	g.OrderB = models.Order{UserID: g.UserB.ID, RestaurantID: g.RestaurantA.ID, Subtotal: 6, Total: 6, PaymentMethod: models.PaymentCash}
	create(&g.OrderA)
	create(&g.OrderB)

	g.OrderItemA = models.OrderItem{OrderID: g.OrderA.ID, MenuItemID: &g.ItemA.ID, ItemName: "Lasaña", Quantity: 1, UnitPrice: 12.5, Subtotal: 12.5}
	g.OrderItemB = models.OrderItem{OrderID: g.OrderB.ID, MenuItemID: &g.ItemB.ID, ItemName: "Tiramisú", Quantity: 1, UnitPrice: 6, Subtotal: 6}
	create(&g.OrderItemA)
	create(&g.OrderItemB)

	g.ReviewA = models.Review{UserID: g.UserA.ID, RestaurantID: g.RestaurantB.ID, OrderID: &g.OrderA.ID, Rating: 5}
	g.ReviewB = models.Review{UserID: g.UserB.ID, RestaurantID: g.RestaurantB.ID, OrderID: &g.OrderB.ID, Rating: 3}
	create(&g.ReviewA)
	create(&g.ReviewB)

	g.Address = models.UserAddress{UserID: g.UserA.ID, Address: "Calle Mayor 1"}
	g.Payment = models.PaymentMethod{UserID: g.UserA.ID, Type: models.MethodCreditCard, Active: Ptr(true)}
	create(&g.Address)
	create(&g.Payment)

	g.Promotion = models.Promotion{
		RestaurantID: &g.RestaurantA.ID, Code: "BIENVENIDA", Name: "Bienvenida",
		DiscountType: models.DiscountPercentage, DiscountValue: 10,
		StartsOn: day, EndsOn: day.AddDate(0, 1, 0),
	}
	create(&g.Promotion)

	g.Usage = models.PromotionUsage{PromotionID: g.Promotion.ID, UserID: &g.UserA.ID, OrderID: &g.OrderB.ID, CodeUsed: Ptr("BIENVENIDA")}
	create(&g.Usage)

	g.Notification = models.Notification{UserID: &g.UserA.ID, RestaurantID: &g.RestaurantA.ID, Type: models.NotifyGeneral, Title: "Hola", Message: "Bienvenido"}
	create(&g.Notification)

	g.Admin = models.Administrator{FirstName: "Ada", LastName: "Admin", Email: "admin@test.com", PasswordHash: "x"}
	create(&g.Admin)

	g.Ticket = models.SupportTicket{
		UserID: &g.UserA.ID, RestaurantID: &g.RestaurantA.ID, AssignedAdminID: &g.Admin.ID,
		Subject: "Pedido", Description: "No llegó", Category: models.TicketOrder,
	}
	create(&g.Ticket)

	g.Log = models.SystemLog{Level: models.LogInfo, Component: "auth", Message: "login", UserID: &g.UserA.ID, AdminID: &g.Admin.ID}
	create(&g.Log)

	g.Content = models.StaticContent{Slug: "faq", Title: "FAQ", Body: "...", ContentType: models.ContentFAQ, AuthorID: &g.Admin.ID}
	create(&g.Content)

	return g
}
