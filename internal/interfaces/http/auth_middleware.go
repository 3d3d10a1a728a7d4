package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockadmin-api/pkg/jwt"
)

// Locals keys para UserID y Role en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// AuthMiddleware valida el Bearer Token JWT y extrae UserID y Role a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return failMsg(c, fiber.StatusUnauthorized, "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return failMsg(c, fiber.StatusUnauthorized, "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return failMsg(c, fiber.StatusUnauthorized, "token vacío")
		}
		userID, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return failMsg(c, fiber.StatusUnauthorized, "token inválido o expirado")
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole permite el paso solo si el rol del token está en la lista.
// Debe usarse DESPUÉS de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return failMsg(c, fiber.StatusUnauthorized, "rol no encontrado en el token")
		}
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return failMsg(c, fiber.StatusForbidden, "no tiene permisos para acceder a este recurso")
	}
}

// permissionChecker es el contrato mínimo que necesita el middleware para
// verificar permisos. Lo implementa *usecase.RoleUseCase; la interfaz evita el
// import circular.
type permissionChecker interface {
	RoleHasPermission(roleName, permission string) (bool, error)
}

// RequirePermission verifica que el rol del token tenga el permiso dado.
// Debe usarse DESPUÉS de AuthMiddleware.
//
//   - 403 Forbidden → el rol no tiene el permiso.
//   - 503 Service Unavailable → fallo de infraestructura al consultar la DB.
func RequirePermission(permission string, checker permissionChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return failMsg(c, fiber.StatusUnauthorized, "rol no encontrado en el token")
		}
		allowed, err := checker.RoleHasPermission(role, permission)
		if err != nil {
			return failMsg(c, fiber.StatusServiceUnavailable, "no se pudo verificar el permiso, intente más tarde")
		}
		if !allowed {
			return failMsg(c, fiber.StatusForbidden, "el permiso '"+permission+"' es requerido")
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
