package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prospectr-app/prospectr/internal/core/services"
	"github.com/prospectr-app/prospectr/internal/platform/config"
	"github.com/prospectr-app/prospectr/internal/repositories/database/pgsql"
)

// TestNewContainerAcceptsRepositoryProvider wires the container exactly the
// way the composition root does, so a signature drift between the pgsql
// provider and the service constructors fails here.
func TestNewContainerAcceptsRepositoryProvider(t *testing.T) {
	cfg := &config.Config{SignupEmailDomain: "@prospectr.app"}
	repos := pgsql.NewRepositoryProvider(nil)
	clients := &services.ClientProvider{}

	container := services.NewContainer(cfg, repos, clients)

	assert.NotNil(t, container.Account)
	assert.NotNil(t, container.Contact)
	assert.NotNil(t, container.User)
	assert.NotNil(t, container.Sync)
	assert.NotNil(t, container.ErrorLog)
}
