package environment

import "strings"

// Environment represents application environment.
type Environment string

const (
	// Development for local runs; verbose text logs.
	Development Environment = "development"
	// Production for the deployed service.
	Production Environment = "production"
	// Staging for pre-release deployments.
	Staging Environment = "staging"
)

// Parse maps a configuration value to an Environment.
// Short aliases (dev, prod, stage) are accepted; anything unknown is Development.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}

func (e Environment) String() string {
	return string(e)
}

func (e Environment) IsProduction() bool {
	return e == Production
}

func (e Environment) IsDevelopment() bool {
	return e == Development
}
