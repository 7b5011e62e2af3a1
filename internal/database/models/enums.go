package models

import "slices"

// Stored enum values keep the vocabulary the product uses on its forms
// (genero=masculino, estado=activo, ...).

// UserStatus is the account state of a user or administrator
type UserStatus string

const (
	StatusActive    UserStatus = "activo"
	StatusInactive  UserStatus = "inactivo"
	StatusSuspended UserStatus = "suspendido"
)

// UserRole decides what a user account may do
type UserRole string

const (
	RoleUser          UserRole = "usuario"
	RoleAdministrator UserRole = "administrador"
	RoleRestaurant    UserRole = "restaurante"
)

// Gender is the optional self-declared gender of a user
type Gender string

const (
	GenderMale        Gender = "masculino"
	GenderFemale      Gender = "femenino"
	GenderOther       Gender = "otro"
	GenderUnspecified Gender = "no_especifica"
)

type RestaurantStatus string

const (
	RestaurantActive   RestaurantStatus = "activo"
	RestaurantInactive RestaurantStatus = "inactivo"
	RestaurantPending  RestaurantStatus = "pendiente"
)

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pendiente"
	ReservationConfirmed ReservationStatus = "confirmada"
	ReservationCancelled ReservationStatus = "cancelada"
	ReservationCompleted ReservationStatus = "completada"
	ReservationNoShow    ReservationStatus = "no_asistio"
)

// PaymentKind is how a reservation or order is paid
type PaymentKind string

const (
	PaymentCash        PaymentKind = "efectivo"
	PaymentCard        PaymentKind = "tarjeta"
	PaymentTransfer    PaymentKind = "transferencia"
	PaymentPayPal      PaymentKind = "paypal"
	PaymentMercadoPago PaymentKind = "mercado_pago"
)

type TableZone string

const (
	ZoneTerrace TableZone = "terraza"
	ZoneIndoor  TableZone = "interior"
	ZoneVIP     TableZone = "vip"
	ZonePrivate TableZone = "privada"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pendiente"
	OrderPreparing OrderStatus = "preparando"
	OrderShipped   OrderStatus = "enviado"
	OrderDelivered OrderStatus = "entregado"
	OrderCancelled OrderStatus = "cancelado"
	OrderRejected  OrderStatus = "rechazado"
)

type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pendiente"
	ReviewApproved ReviewStatus = "aprobada"
	ReviewRejected ReviewStatus = "rechazada"
)

type Weekday string

const (
	Monday    Weekday = "lunes"
	Tuesday   Weekday = "martes"
	Wednesday Weekday = "miercoles"
	Thursday  Weekday = "jueves"
	Friday    Weekday = "viernes"
	Saturday  Weekday = "sabado"
	Sunday    Weekday = "domingo"
)

// PaymentMethodType is the kind of a stored user payment method
type PaymentMethodType string

const (
	MethodCreditCard PaymentMethodType = "tarjeta_credito"
	MethodDebitCard  PaymentMethodType = "tarjeta_debito"
	MethodPayPal     PaymentMethodType = "paypal"
	MethodCash       PaymentMethodType = "efectivo"
	MethodTransfer   PaymentMethodType = "transferencia"
)

type DiscountType string

const (
	DiscountPercentage   DiscountType = "porcentaje"
	DiscountFixed        DiscountType = "fijo"
	DiscountFreeDelivery DiscountType = "envio_gratis"
)

type UsageType string

const (
	UsageSingle   UsageType = "unico"
	UsageMultiple UsageType = "multiple"
)

type PromotionStatus string

const (
	PromotionActive    PromotionStatus = "activo"
	PromotionInactive  PromotionStatus = "inactivo"
	PromotionExhausted PromotionStatus = "agotado"
	PromotionExpired   PromotionStatus = "expirado"
)

type NotificationType string

const (
	NotifyReservationConfirmed NotificationType = "reserva_confirmada"
	NotifyReservationCancelled NotificationType = "reserva_cancelada"
	NotifyOrderNew             NotificationType = "pedido_nuevo"
	NotifyOrderReady           NotificationType = "pedido_listo"
	NotifyOrderShipped         NotificationType = "pedido_enviado"
	NotifyOrderDelivered       NotificationType = "pedido_entregado"
	NotifyPromotion            NotificationType = "promocion"
	NotifyReview               NotificationType = "reseña"
	NotifyGeneral              NotificationType = "general"
)

type TicketPriority string

const (
	PriorityLow    TicketPriority = "baja"
	PriorityMedium TicketPriority = "media"
	PriorityHigh   TicketPriority = "alta"
	PriorityUrgent TicketPriority = "urgente"
)

type TicketCategory string

const (
	TicketTechnical  TicketCategory = "tecnico"
	TicketBilling    TicketCategory = "facturacion"
	TicketAccount    TicketCategory = "cuenta"
	TicketOrder      TicketCategory = "pedido"
	TicketReserve    TicketCategory = "reserva"
	TicketRestaurant TicketCategory = "restaurante"
	TicketGeneral    TicketCategory = "general"
)

type TicketStatus string

const (
	TicketOpen            TicketStatus = "abierto"
	TicketInProgress      TicketStatus = "en_progreso"
	TicketAwaitingReply   TicketStatus = "esperando_respuesta"
	TicketClosed          TicketStatus = "cerrado"
	TicketCancelledStatus TicketStatus = "cancelado"
)

type TicketOrigin string

const (
	OriginUser       TicketOrigin = "usuario"
	OriginRestaurant TicketOrigin = "restaurante"
	OriginAdmin      TicketOrigin = "admin"
	OriginSystem     TicketOrigin = "sistema"
)

// ConfigValueType tells readers how to parse a system config value
type ConfigValueType string

const (
	ConfigText    ConfigValueType = "texto"
	ConfigNumber  ConfigValueType = "numero"
	ConfigBoolean ConfigValueType = "booleano"
	ConfigJSON    ConfigValueType = "json"
)

type BackupType string

const (
	BackupFull        BackupType = "completo"
	BackupIncremental BackupType = "incremental"
	BackupDatabase    BackupType = "base_datos"
	BackupFiles       BackupType = "archivos"
)

type BackupStatus string

const (
	BackupCompleted  BackupStatus = "completado"
	BackupFailed     BackupStatus = "fallido"
	BackupInProgress BackupStatus = "en_progreso"
)

type LogLevel string

const (
	LogDebug    LogLevel = "debug"
	LogInfo     LogLevel = "info"
	LogWarning  LogLevel = "warning"
	LogError    LogLevel = "error"
	LogCritical LogLevel = "critical"
)

type AggregationPeriod string

const (
	PeriodHour  AggregationPeriod = "hora"
	PeriodDay   AggregationPeriod = "dia"
	PeriodWeek  AggregationPeriod = "semana"
	PeriodMonth AggregationPeriod = "mes"
)

type BannerType string

const (
	BannerMain      BannerType = "principal"
	BannerSecondary BannerType = "secundario"
	BannerPopup     BannerType = "emergente"
	BannerMobile    BannerType = "movil"
)

type BannerPosition string

const (
	PositionTop     BannerPosition = "top"
	PositionMiddle  BannerPosition = "middle"
	PositionBottom  BannerPosition = "bottom"
	PositionSidebar BannerPosition = "sidebar"
)

type ContentType string

const (
	ContentPage       ContentType = "pagina"
	ContentFAQ        ContentType = "faq"
	ContentTerms      ContentType = "terminos"
	ContentPrivacy    ContentType = "privacidad"
	ContentBlog       ContentType = "blog"
	ContentNewsletter ContentType = "newsletter"
)

type ContentStatus string

const (
	ContentDraft     ContentStatus = "borrador"
	ContentPublished ContentStatus = "publicado"
	ContentArchived  ContentStatus = "archivado"
)

// Enum value sets, shared with the migration CHECK constraints.
var (
	UserStatuses        = []UserStatus{StatusActive, StatusInactive, StatusSuspended}
	UserRoles           = []UserRole{RoleUser, RoleAdministrator, RoleRestaurant}
	Genders             = []Gender{GenderMale, GenderFemale, GenderOther, GenderUnspecified}
	RestaurantStatuses  = []RestaurantStatus{RestaurantActive, RestaurantInactive, RestaurantPending}
	ReservationStatuses = []ReservationStatus{ReservationPending, ReservationConfirmed, ReservationCancelled, ReservationCompleted, ReservationNoShow}
	ReservationPayments = []PaymentKind{PaymentCash, PaymentCard, PaymentTransfer, PaymentPayPal}
	OrderPayments       = []PaymentKind{PaymentCash, PaymentCard, PaymentTransfer, PaymentPayPal, PaymentMercadoPago}
	TableZones          = []TableZone{ZoneTerrace, ZoneIndoor, ZoneVIP, ZonePrivate}
	OrderStatuses       = []OrderStatus{OrderPending, OrderPreparing, OrderShipped, OrderDelivered, OrderCancelled, OrderRejected}
	ReviewStatuses      = []ReviewStatus{ReviewPending, ReviewApproved, ReviewRejected}
	Weekdays            = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
	PaymentMethodTypes  = []PaymentMethodType{MethodCreditCard, MethodDebitCard, MethodPayPal, MethodCash, MethodTransfer}
	DiscountTypes       = []DiscountType{DiscountPercentage, DiscountFixed, DiscountFreeDelivery}
	UsageTypes          = []UsageType{UsageSingle, UsageMultiple}
	PromotionStatuses   = []PromotionStatus{PromotionActive, PromotionInactive, PromotionExhausted, PromotionExpired}
	NotificationTypes   = []NotificationType{NotifyReservationConfirmed, NotifyReservationCancelled, NotifyOrderNew, NotifyOrderReady, NotifyOrderShipped, NotifyOrderDelivered, NotifyPromotion, NotifyReview, NotifyGeneral}
	TicketPriorities    = []TicketPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
	TicketCategories    = []TicketCategory{TicketTechnical, TicketBilling, TicketAccount, TicketOrder, TicketReserve, TicketRestaurant, TicketGeneral}
	TicketStatuses      = []TicketStatus{TicketOpen, TicketInProgress, TicketAwaitingReply, TicketClosed, TicketCancelledStatus}
	TicketOrigins       = []TicketOrigin{OriginUser, OriginRestaurant, OriginAdmin, OriginSystem}
	ConfigValueTypes    = []ConfigValueType{ConfigText, ConfigNumber, ConfigBoolean, ConfigJSON}
	BackupTypes         = []BackupType{BackupFull, BackupIncremental, BackupDatabase, BackupFiles}
	BackupStatuses      = []BackupStatus{BackupCompleted, BackupFailed, BackupInProgress}
	LogLevels           = []LogLevel{LogDebug, LogInfo, LogWarning, LogError, LogCritical}
	AggregationPeriods  = []AggregationPeriod{PeriodHour, PeriodDay, PeriodWeek, PeriodMonth}
	BannerTypes         = []BannerType{BannerMain, BannerSecondary, BannerPopup, BannerMobile}
	BannerPositions     = []BannerPosition{PositionTop, PositionMiddle, PositionBottom, PositionSidebar}
	ContentTypes        = []ContentType{ContentPage, ContentFAQ, ContentTerms, ContentPrivacy, ContentBlog, ContentNewsletter}
	ContentStatuses     = []ContentStatus{ContentDraft, ContentPublished, ContentArchived}
)

// Valid reports whether g is one of the known genders
func (g Gender) Valid() bool { return slices.Contains(Genders, g) }

func (s UserStatus) Valid() bool { return slices.Contains(UserStatuses, s) }

func (r UserRole) Valid() bool { return slices.Contains(UserRoles, r) }

func (s RestaurantStatus) Valid() bool { return slices.Contains(RestaurantStatuses, s) }

func (s ReservationStatus) Valid() bool { return slices.Contains(ReservationStatuses, s) }

func (s OrderStatus) Valid() bool { return slices.Contains(OrderStatuses, s) }

func (s ReviewStatus) Valid() bool { return slices.Contains(ReviewStatuses, s) }

func (d Weekday) Valid() bool { return slices.Contains(Weekdays, d) }

func (t NotificationType) Valid() bool { return slices.Contains(NotificationTypes, t) }

func (s TicketStatus) Valid() bool { return slices.Contains(TicketStatuses, s) }

func (s ContentStatus) Valid() bool { return slices.Contains(ContentStatuses, s) }

// Values converts a typed enum set into plain strings
func Values[T ~string](set []T) []string {
	out := make([]string, len(set))
	for i, v := range set {
		out[i] = string(v)
	}
	return out
}
