package service

import (
	"github.com/MKhiriev/go-aso-sync/internal/adapter"
	"github.com/MKhiriev/go-aso-sync/internal/logger"
	"github.com/MKhiriev/go-aso-sync/internal/store"
)

type Services struct {
	Versions     VersionService
	Recovery     RecoveryService
	Orchestrator SyncOrchestrator
}

func NewServices(client adapter.StoreClient, registry store.Registry, cache store.MetadataCache, log *logger.Logger) *Services {
	versions := NewVersionService(client, log)
	recovery := NewRecoveryService(versions, log)

	return &Services{
		Versions:     versions,
		Recovery:     recovery,
		Orchestrator: NewSyncOrchestrator(client, versions, recovery, registry, cache, log),
	}
}
