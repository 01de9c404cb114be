package planner

import "errors"

// ErrRouteNotFound indicates the requested route is not in the catalog
var ErrRouteNotFound = errors.New("route not found")
