package bootstrap

import (
	laxhttp "github.com/laxmibeekeeping/multiservice-backend/internal/laxmihoney/http"
	"github.com/laxmibeekeeping/multiservice-backend/internal/laxmihoney/llm"
	mshttp "github.com/laxmibeekeeping/multiservice-backend/internal/mindshipping/http"
	"github.com/laxmibeekeeping/multiservice-backend/internal/mindshipping/repository"
	"github.com/laxmibeekeeping/multiservice-backend/internal/mindshipping/service"
	"github.com/laxmibeekeeping/multiservice-backend/internal/registry"
)

// Registry is the single source of truth for mountable sub-services. Adding
// a service means adding a descriptor here and restarting.
func Registry() []registry.Descriptor {
	return []registry.Descriptor{
		{
			Name:             "laxmihoney",
			Prefix:           "/api1",
			Tags:             []string{"laxmihoney"},
			EnabledByDefault: true,
			Setup: func(deps registry.Deps) (registry.Service, error) {
				client := llm.NewGroqClient()
				return laxhttp.New(client, client.Model, deps.Redis), nil
			},
		},
		{
			Name:             "mindshipping",
			Prefix:           "/api2",
			Tags:             []string{"mindshipping"},
			EnabledByDefault: true,
			Setup: func(deps registry.Deps) (registry.Service, error) {
				var users *service.UserService
				if deps.DB != nil {
					users = service.NewUserService(repository.NewRepo(deps.DB))
				}
				return mshttp.New(deps.DB, users), nil
			},
		},
	}
}
