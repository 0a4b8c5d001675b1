package component

// Health is a clamped pool. Defeated latches the first time Current reaches zero.
type Health struct {
	Current  float64
	Max      float64
	Defeated bool
}

var HealthComponent = NewComponent[Health]()

// DamageRequest is a one-shot signed delta queued against an entity's health.
// Negative amounts heal.
type DamageRequest struct {
	Amount float64
}

var DamageRequestComponent = NewComponent[DamageRequest]()
