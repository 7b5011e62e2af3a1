package models

// Entity is any persisted model with its own table
type Entity interface {
	TableName() string
}

// Compile-time checks
var (
	_ Entity = User{}
	_ Entity = UserAddress{}
	_ Entity = PaymentMethod{}
	_ Entity = Favorite{}
	_ Entity = Restaurant{}
	_ Entity = MenuCategory{}
	_ Entity = MenuItem{}
	_ Entity = RestaurantSchedule{}
	_ Entity = Reservation{}
	_ Entity = Order{}
	_ Entity = OrderItem{}
	_ Entity = Review{}
	_ Entity = Promotion{}
	_ Entity = PromotionUsage{}
	_ Entity = PromoBanner{}
	_ Entity = Notification{}
	_ Entity = Administrator{}
	_ Entity = SupportTicket{}
	_ Entity = SystemConfig{}
	_ Entity = SystemBackup{}
	_ Entity = SystemLog{}
	_ Entity = SystemMetric{}
	_ Entity = StaticContent{}
)
