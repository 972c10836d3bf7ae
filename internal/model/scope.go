package model

// Scope carries the authenticated request identity through all layers.
type Scope struct {
	UserID   string
	Username string
}

// Environment name constants.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
