package services

import (
	portsclients "github.com/prospectr-app/prospectr/internal/core/ports/clients"
	portsrepo "github.com/prospectr-app/prospectr/internal/core/ports/repositories"
	portssvc "github.com/prospectr-app/prospectr/internal/core/ports/services"
	"github.com/prospectr-app/prospectr/internal/platform/config"
)

// ClientProvider bundles the external API clients handed to the service
// container at startup.
type ClientProvider struct {
	CRM       portsclients.CRMClient
	OrgSearch portsclients.OrgSearchClient
	Enrich    portsclients.EnrichClient
}

// NewContainer creates the service container with properly initialized
// dependencies.
func NewContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider, clients *ClientProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:  NewAccountService(repos.AccountRepo, repos.ContactRepo, clients.CRM, clients.OrgSearch),
		Contact:  NewContactService(repos.ContactRepo, repos.AccountRepo),
		User:     NewUserService(repos.UserRepo, cfg.SignupEmailDomain),
		Sync:     NewSyncService(repos, clients.CRM, clients.OrgSearch, clients.Enrich),
		ErrorLog: NewErrorLogService(repos.ErrorLogRepo),
	}
}
