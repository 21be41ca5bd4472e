package cmd

// Config carries every knob the application reads from the environment.
// Durations and rates are parsed from their string form at composition time
// so a bad value fails startup instead of a request.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// GPSToleranceMeters is the geofence radius for site arrival checks.
	GPSToleranceMeters float64
	// CodeTTLMinutes is how long an issued collection code stays valid.
	CodeTTLMinutes int
	// MaxConfirmationRetries bounds rejected attempts per evidence kind
	// before an order is flagged for review.
	MaxConfirmationRetries int
	// StuckOrderHours is how long an order may idle in one status before the
	// monitoring job flags it.
	StuckOrderHours int

	// DeliveryRate is the courier's share of the order total.
	DeliveryRate float64
	// AssistedPurchaseRate is the site manager's share of the order total.
	AssistedPurchaseRate float64
	// AssistedPurchaseFixedCents, when positive, replaces the rate with a
	// flat amount.
	AssistedPurchaseFixedCents int64
}
