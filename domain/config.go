package domain

// Config represents the domainmodel configuration loaded from domainmodel.yaml.
type Config struct {
	Exchange  Exchange
	Household HouseholdConfig
	Logging   LoggingConfig
}

type HouseholdConfig struct {
	AnnualHours  int
	BaseCurrency Currency
}

type LoggingConfig struct {
	Debug bool
	Dir   string
}

// DefaultConfig provides the fixed tables and constants if domainmodel.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Exchange: DefaultExchange(),
		Household: HouseholdConfig{
			AnnualHours:  AnnualHours,
			BaseCurrency: USD,
		},
		Logging: LoggingConfig{
			Debug: false,
			Dir:   ".domainmodel/logs",
		},
	}
}
