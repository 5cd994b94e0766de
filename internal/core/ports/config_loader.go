package ports

import "go.trai.ch/anvil/internal/core/domain"

// ProjectLoader parses a project file into a fully populated project.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ProjectLoader interface {
	// Load reads the project file at path, including every project it references.
	Load(path string) (*domain.Project, error)

	// Discover walks up from cwd and returns the path of the nearest project file.
	Discover(cwd string) (string, error)
}
