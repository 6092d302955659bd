package mutation

import (
	"github.com/jhoicas/registro-api/internal/application/auth"
	"github.com/jhoicas/registro-api/internal/application/dto"
)

// Outcome resultado terminal de un mutation handler, como variante explícita
// en lugar de saltos no locales:
//   - Navigate: mutación exitosa, el caller debe transicionar a esa vista.
//   - Result: reporte de fallo (o el mensaje de éxito del delete).
//   - Session: solo en authenticate exitoso, acompaña a Navigate.
//
// Exactamente uno de Navigate/Result está poblado.
type Outcome struct {
	Navigate string
	Result   *dto.MutationResult
	Session  *auth.Session
}

// fail construye el Outcome de un fallo con el reporte dado.
func fail(res *dto.MutationResult) Outcome {
	return Outcome{Result: res}
}

// navigate construye el Outcome terminal de una mutación exitosa.
func navigate(view string) Outcome {
	return Outcome{Navigate: view}
}
