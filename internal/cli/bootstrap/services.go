package bootstrap

import (
	"HomeCrew/internal/cli/api"
	"HomeCrew/internal/cli/auth"
	"HomeCrew/internal/cli/cache"
	"HomeCrew/internal/cli/repo"
	"HomeCrew/internal/cli/repo/sqlite"
	"HomeCrew/internal/cli/service"
	"HomeCrew/internal/config"

	"go.uber.org/zap"
)

// Services bundles the wired client-side services for the commands.
// Everything is explicitly constructed here; no package-level
// singletons.
type Services struct {
	Households *service.HouseholdService
	Staff      *service.StaffService
	Documents  *service.DocumentService
	Identity   *api.IdentityClient
	Session    *auth.Session
	Staging    repo.StagingRepository
	Images     *cache.ImageCache
}

// Open wires the services against the configured record store server
// and local directories. The returned func releases local resources.
func Open(cfg *config.Config) (*Services, func(), error) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, nil, err
	}
	sugar := logger.Sugar()

	staging, err := sqlite.Open(cfg.ClientDataDir)
	if err != nil {
		return nil, nil, err
	}
	if err := staging.Migrate(); err != nil {
		_ = staging.Close()
		return nil, nil, err
	}

	images, err := cache.New(cfg.CacheDir, cache.DefaultCapacity)
	if err != nil {
		_ = staging.Close()
		return nil, nil, err
	}

	recordStore := api.NewRecordClient(cfg)
	docs := service.NewDocumentService(recordStore)

	svc := &Services{
		Households: service.NewHouseholdService(recordStore, docs, sugar),
		Staff:      service.NewStaffService(recordStore, docs, sugar),
		Documents:  docs,
		Identity:   api.NewIdentityClient(cfg),
		Session:    auth.NewSession(),
		Staging:    staging,
		Images:     images,
	}
	done := func() {
		_ = staging.Close()
		_ = logger.Sync()
	}
	return svc, done, nil
}
