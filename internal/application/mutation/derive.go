package mutation

import (
	"time"

	"github.com/shopspring/decimal"
)

// AmountToCents convierte un monto decimal a unidades menores (centavos):
// multiplica por 100 y redondea al entero más cercano. Determinista y sin
// pérdida para montos de moneda típicos (dos decimales).
func AmountToCents(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// DateStamp fecha calendario ISO (YYYY-MM-DD) del instante dado. Se deriva
// siempre en el servidor; nunca se acepta del cliente en la creación.
func DateStamp(t time.Time) string {
	return t.Format("2006-01-02")
}
