package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/registro-api/internal/application/mutation"
)

// renderOutcome traduce el resultado terminal de una mutación a HTTP:
//   - Navigate → 303 See Other con Location a la vista destino.
//   - Result con errores por campo → 422 (corregible por el usuario).
//   - Result sin errores por campo → 500 (fallo de sistema).
func renderOutcome(c *fiber.Ctx, out mutation.Outcome) error {
	if out.Navigate != "" {
		return c.Redirect(out.Navigate, fiber.StatusSeeOther)
	}
	status := fiber.StatusInternalServerError
	if len(out.Result.Errors) > 0 {
		status = fiber.StatusUnprocessableEntity
	}
	return c.Status(status).JSON(out.Result)
}
