package session

import (
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// Decide returns where the app must go for the given session while group is displayed.
// ok is false when no navigation is needed, including before hydration.
func Decide(s entity.Session, group entity.RouteGroup) (route entity.Route, ok bool) {
	if !s.IsHydrated {
		return "", false
	}

	inAuthGroup := group == entity.GroupAuth

	switch {
	case s.IsAuthenticated && inAuthGroup:
		return s.Role().HomeRoute(), true
	case !s.IsAuthenticated && !inAuthGroup:
		return entity.RouteLogin, true
	default:
		return "", false
	}
}

// Gate keeps the navigator in line with the session.
type Gate struct {
	store     *Store
	navigator service.Navigator
	logger    *slog.Logger
}

// NewGate creates a Gate.
func NewGate(store *Store, navigator service.Navigator, logger *slog.Logger) *Gate {
	return &Gate{
		store:     store,
		navigator: navigator,
		logger:    logger,
	}
}

// Start evaluates the current state and then follows every change until stop is called.
func (g *Gate) Start() (stop func()) {
	stop = g.store.Subscribe(g.apply)
	g.apply(g.store.Snapshot())

	return stop
}

// Evaluate runs one routing decision against the current state.
func (g *Gate) Evaluate() {
	g.apply(g.store.Snapshot())
}

func (g *Gate) apply(s entity.Session) {
	group := g.navigator.CurrentGroup()

	route, ok := Decide(s, group)
	if !ok {
		return
	}

	g.logger.Debug("Routing gate redirect",
		slog.String("from", string(group)),
		slog.String("to", string(route)),
	)
	g.navigator.Replace(route)
}
