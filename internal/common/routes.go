package common

// Client-side navigation targets returned by the auth endpoints.
const (
	RouteDashboard = "/dashboard"
	RouteLogin     = "/login"
)
