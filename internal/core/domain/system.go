package domain

// MigrationStatus is the schema version reported by the migration table.
type MigrationStatus struct {
	Version uint `json:"version"`
	Dirty   bool `json:"dirty"`
}

// HealthStatus is the result of a system health check.
type HealthStatus struct {
	SystemHealth  bool            `json:"system_health"`
	SimpleDBCheck bool            `json:"simple_db_check"`
	CacheEnabled  bool            `json:"cache_enabled"`
	APIVersion    string          `json:"api_version"`
	GoVersion     string          `json:"go_version"`
	IsDocker      bool            `json:"is_docker"`
	Migrations    MigrationStatus `json:"migrations"`
}
