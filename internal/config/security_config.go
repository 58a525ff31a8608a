package config

type SecurityLevel int

const (
	SecurityPublic  SecurityLevel = iota // No authentication
	SecuritySession                      // Valid session cookie or bearer token
)

// EndpointSecurityConfig maps "METHOD /route/template" to its security level.
var EndpointSecurityConfig = map[string]SecurityLevel{
	"POST /api/login":  SecurityPublic,
	"POST /api/logout": SecurityPublic,
	"GET /api/health":  SecurityPublic,

	"GET /api/me": SecuritySession,

	"POST /api/rentals":       SecuritySession,
	"POST /api/rentals/quote": SecuritySession,
	"GET /api/rentals":        SecuritySession,
	"GET /api/rentals/{id}":   SecuritySession,

	"GET /api/item-types":          SecuritySession,
	"GET /api/price-codes":         SecuritySession,
	"GET /api/price-lists":         SecuritySession,
	"GET /api/accommodation-types": SecuritySession,
	"GET /api/boat-times":          SecuritySession,
	"GET /api/baggage-times":       SecuritySession,

	"GET /api/items":                    SecuritySession,
	"POST /api/items":                   SecuritySession,
	"PUT /api/items/{id}":               SecuritySession,
	"GET /api/items/{itemNumber}/price": SecuritySession,

	"GET /api/price-list-links":         SecuritySession,
	"POST /api/price-list-links":        SecuritySession,
	"PUT /api/price-list-links/{id}":    SecuritySession,
	"DELETE /api/price-list-links/{id}": SecuritySession,
}

// GetSecurityLevel returns the security level for a route
func GetSecurityLevel(route string) SecurityLevel {
	if level, exists := EndpointSecurityConfig[route]; exists {
		return level
	}
	// Default to highest security for unknown endpoints
	return SecuritySession
}
