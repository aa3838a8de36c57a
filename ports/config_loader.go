package ports

import "github.com/aalvaropc/domainmodel/domain"

// ConfigLoader resolves the domainmodel configuration for a root directory.
type ConfigLoader interface {
	LoadConfig(root string) (domain.Config, error)
}
