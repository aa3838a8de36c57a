package config

type YAMLConfig struct {
	DomainModel YAMLDomainModel `yaml:"domainmodel"`
}

type YAMLDomainModel struct {
	Exchange  YAMLExchange  `yaml:"exchange"`
	Household YAMLHousehold `yaml:"household"`
	Logging   YAMLLogging   `yaml:"logging"`
}

type YAMLExchange struct {
	ToUSD   map[string]float64 `yaml:"to_usd"`
	FromUSD map[string]float64 `yaml:"from_usd"`
}

type YAMLHousehold struct {
	AnnualHours  *int   `yaml:"annual_hours"`
	BaseCurrency string `yaml:"base_currency"`
}

type YAMLLogging struct {
	Debug *bool  `yaml:"debug"`
	Dir   string `yaml:"dir"`
}
