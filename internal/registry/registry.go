package registry

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/laxmibeekeeping/multiservice-backend/config"
)

// Deps carries the shared process-wide dependencies handed to each service
// constructor. Either client may be nil when the backing store is not
// configured; services are expected to degrade, not fail.
type Deps struct {
	Config *config.Config
	DB     *pgxpool.Pool
	Redis  *redis.Client
}

// Service is a mountable route group. Health must be a lightweight
// in-process check (a bounded dependency ping at most, never an HTTP call).
type Service interface {
	Register(r gin.IRouter)
	Health() map[string]any
}

// Descriptor describes one mountable sub-service. Descriptors are built once
// at startup from a literal list and never mutated.
type Descriptor struct {
	Name             string
	Prefix           string
	Tags             []string
	EnabledByDefault bool
	Setup            func(Deps) (Service, error)
}

// Mounted records one successfully mounted service for health reporting.
type Mounted struct {
	Name    string
	Prefix  string
	Tags    []string
	Service Service
}

// Mount attaches every enabled descriptor to the engine, in registry order.
// A descriptor whose Setup fails is logged and skipped; the process still
// serves the remaining services. A descriptor whose prefix was already
// claimed by an earlier mount is likewise skipped (first mount wins), so two
// enabled services can never silently shadow each other.
func Mount(engine *gin.Engine, descriptors []Descriptor, enabled map[string]struct{}, deps Deps) []Mounted {
	var mounted []Mounted
	claimed := make(map[string]string, len(descriptors))

	for _, d := range descriptors {
		if _, ok := enabled[NormalizeName(d.Name)]; !ok {
			log.Printf("[mount] service=%s disabled, skipping", d.Name)
			continue
		}
		if owner, taken := claimed[d.Prefix]; taken {
			log.Printf("[mount] service=%s prefix=%s already claimed by %s, skipping", d.Name, d.Prefix, owner)
			continue
		}

		svc, err := d.Setup(deps)
		if err != nil {
			log.Printf("[mount] service=%s setup failed: %v, skipping", d.Name, err)
			continue
		}

		group := engine.Group(d.Prefix)
		svc.Register(group)
		claimed[d.Prefix] = d.Name

		mounted = append(mounted, Mounted{
			Name:    d.Name,
			Prefix:  d.Prefix,
			Tags:    d.Tags,
			Service: svc,
		})
		log.Printf("[mount] service=%s mounted at %s tags=%v", d.Name, d.Prefix, d.Tags)
	}

	return mounted
}
