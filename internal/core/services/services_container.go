package services

import (
	portsrepo "github.com/parishledger/parishledger/internal/core/ports/repositories"
	portssvc "github.com/parishledger/parishledger/internal/core/ports/services"
	"github.com/parishledger/parishledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The church service doubles as the tenant authorizer every other
	// tenant-scoped service depends on, so it comes first.
	container.Church = NewChurchService(
		repos.Church,
		repos.Branch,
		repos.Category,
		repos.User,
	)

	authorizer := container.Church.(portssvc.ChurchAuthorizerSvc)

	container.User = NewUserService(repos.User)
	container.Member = NewMemberService(repos.Member, authorizer)
	container.Category = NewCategoryService(repos.Category, authorizer)
	container.Transaction = NewTransactionService(repos.Transaction, authorizer)
	container.Tithe = NewTitheService(repos.Tithe, repos.Member, authorizer)
	container.Reporting = NewReportingService(repos.Transaction, repos.Tithe, repos.Member, authorizer)

	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)

	return container
}
