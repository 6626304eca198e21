package server

import (
	"github.com/danielgtaylor/huma/v2"

	v1 "github.com/rentfolio/rentfolio/internal/api/v1"
)

func registerAuthRoutes(api huma.API, authSvc v1.AuthService) {
	v1.RegisterAuthRoutes(api, authSvc)
}

func registerOwnerRoutes(api huma.API, store v1.DataStore) {
	v1.RegisterDashboardRoutes(api, store)
	v1.RegisterPropertyRoutes(api, store)
	v1.RegisterTenantRoutes(api, store)
	v1.RegisterLeaseRoutes(api, store)
	v1.RegisterPaymentRoutes(api, store)
	v1.RegisterPaymentInfoRoutes(api, store)
	v1.RegisterAuditRoutes(api, store)
}

func registerPortalRoutes(api huma.API, store v1.DataStore) {
	v1.RegisterPortalRoutes(api, store)
}
