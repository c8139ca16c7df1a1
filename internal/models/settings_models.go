package models

const (
	AI_MODE_ECO      = "eco"
	AI_MODE_ADVANCED = "advanced"
)

// StoreSettings are the dashboard's persisted store preferences.
type StoreSettings struct {
	RestaurantName string  `json:"restaurant_name"`
	AIMode         string  `json:"ai_mode"`
	AlertThreshold float64 `json:"alert_threshold"`
	EmailAlerts    bool    `json:"email_alerts"`
	HasAPIKey      bool    `json:"has_api_key"`
}

func DefaultStoreSettings() StoreSettings {
	return StoreSettings{
		AIMode:         AI_MODE_ADVANCED,
		AlertThreshold: 0.4,
		EmailAlerts:    true,
	}
}

type APIKeyRequest struct {
	APIKey string `json:"api_key"`
}
