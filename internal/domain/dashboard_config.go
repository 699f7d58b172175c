package domain

import "time"

// ConfigData is the opaque JSON object a dashboard stores under a config name.
type ConfigData map[string]any

type DashboardConfig struct {
	Name      string     `json:"config_name"`
	Data      ConfigData `json:"config_data"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
