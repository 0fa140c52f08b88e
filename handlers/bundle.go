// File: barberbook/handlers/bundle.go
package handlers

import (
	"barberbook/services/identity"
)

// HandlerBundle groups all endpoint handlers into one struct so the
// route registration only needs a single argument.
type HandlerBundle struct {
	// Identity is also needed by the auth middleware.
	Identity identity.IdentityService

	Catalog   *CatalogHandler
	Schedule  *ScheduleHandler
	Booking   *BookingHandler
	Content   *ContentHandler
	Auth      *AuthHandler
	Optimizer *OptimizerHandler
}
