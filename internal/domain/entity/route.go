package entity

// Route is a navigation target understood by the routing host.
type Route string

// RouteGroup is the top-level segment of a route.
type RouteGroup string

const (
	RouteLogin            Route = "/(auth)/login"
	RouteClientHome       Route = "/(client)/home"
	RouteShopperDashboard Route = "/(shopper)/dashboard"
)

const (
	GroupAuth    RouteGroup = "(auth)"
	GroupClient  RouteGroup = "(client)"
	GroupShopper RouteGroup = "(shopper)"
)
