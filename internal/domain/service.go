package domain

// ProviderService represents a bookable service published by a provider
type ProviderService struct {
	ID              int64
	ProviderID      int64
	SubCategoryID   int64
	Name            string
	Description     string
	DurationMinutes int
	Price           float64

	// Denormalized provider display name for notifications
	ProviderName string
}

// ServiceLocation represents a location a service can be delivered at
type ServiceLocation struct {
	ID   int64
	Name string
}
