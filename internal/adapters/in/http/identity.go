package http

import (
	"net/http"
	"strings"

	"orders/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the upstream auth gateway after JWT
// verification. The service trusts them as-is; token validation is not
// its concern.
const (
	HeaderUserID   = "X-User-Id"
	HeaderTenantID = "X-Tenant-Id"
	HeaderRoles    = "X-Roles"
)

// Caller is the authenticated identity of the current request.
type Caller struct {
	UserID   kernel.UUID
	TenantID kernel.UUID
	Roles    []string
}

// callerFromRequest reads the gateway identity headers. User and tenant
// ids are mandatory valid UUIDs; roles are a comma-separated list and may
// be empty.
func callerFromRequest(c echo.Context) (Caller, error) {
	userID, err := kernel.UUIDFromString(c.Request().Header.Get(HeaderUserID))
	if err != nil {
		return Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid X-User-Id header")
	}
	tenantID, err := kernel.UUIDFromString(c.Request().Header.Get(HeaderTenantID))
	if err != nil {
		return Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid X-Tenant-Id header")
	}

	var roles []string
	if raw := c.Request().Header.Get(HeaderRoles); raw != "" {
		for _, role := range strings.Split(raw, ",") {
			if role = strings.TrimSpace(role); role != "" {
				roles = append(roles, role)
			}
		}
	}

	return Caller{UserID: userID, TenantID: tenantID, Roles: roles}, nil
}
