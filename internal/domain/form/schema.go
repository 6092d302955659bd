package form

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// FieldKind clase primitiva de un campo del esquema.
type FieldKind int

const (
	KindText FieldKind = iota
	KindDecimal
	KindEnum
	KindFile
)

// Check restricción declarativa sobre el valor ya coaccionado de un campo.
// OK recibe string (KindText/KindEnum), decimal.Decimal (KindDecimal) o
// *File (KindFile) según la clase del campo.
type Check struct {
	OK      func(v any) bool
	Message string
}

// Field declara un campo del esquema.
// Missing es el mensaje cuando el campo falta o no se puede coaccionar a su
// clase.
type Field struct {
	Name    string
	Kind    FieldKind
	Options []string // valores permitidos cuando Kind es KindEnum
	Missing string
	Checks  []Check
}

// FieldErrors mapa campo → lista ordenada de mensajes de error.
type FieldErrors map[string][]string

func (e FieldErrors) add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Payload datos coaccionados de una validación exitosa. Contiene exactamente
// los campos declarados por el esquema; los campos extra enviados se descartan.
type Payload map[string]any

// Text retorna el valor string de un campo de texto o enum.
func (p Payload) Text(name string) string {
	s, _ := p[name].(string)
	return s
}

// Decimal retorna el valor decimal de un campo numérico.
func (p Payload) Decimal(name string) decimal.Decimal {
	d, _ := p[name].(decimal.Decimal)
	return d
}

// File retorna el archivo de un campo de archivo.
func (p Payload) File(name string) *File {
	f, _ := p[name].(*File)
	return f
}

// Result resultado de Validate: exactamente uno de Data o Errors está poblado.
type Result struct {
	Data   Payload
	Errors FieldErrors
}

// OK indica si la validación fue exitosa.
func (r Result) OK() bool { return r.Errors == nil }

// Schema lista ordenada de campos a validar.
type Schema struct {
	fields []Field
}

// New construye un esquema.
func New(fields ...Field) Schema {
	return Schema{fields: fields}
}

// Omit deriva un esquema sin los campos indicados (ej: id y date, que son
// generados por el servidor y no se aceptan del cliente).
func (s Schema) Omit(names ...string) Schema {
	out := make([]Field, 0, len(s.fields))
	for _, f := range s.fields {
		if slices.Contains(names, f.Name) {
			continue
		}
		out = append(out, f)
	}
	return Schema{fields: out}
}

// Validate valida los valores enviados contra el esquema.
// La coerción ocurre antes de las restricciones; no hay corto-circuito: se
// evalúa cada campo y cada restricción aplicable, acumulando todos los
// mensajes. En éxito retorna el payload tipado con solo los campos declarados.
func (s Schema) Validate(values *Values) Result {
	errs := make(FieldErrors)
	data := make(Payload, len(s.fields))

	for _, f := range s.fields {
		raw, present := values.Get(f.Name)
		switch f.Kind {
		case KindText:
			text, ok := "", false
			if present {
				text, ok = raw.AsText()
			}
			if !present || !ok {
				if f.Missing != "" {
					errs.add(f.Name, f.Missing)
					continue
				}
				text = ""
			}
			if !runChecks(errs, f, text) {
				continue
			}
			data[f.Name] = text

		case KindDecimal:
			text, ok := "", false
			if present {
				text, ok = raw.AsText()
			}
			// El form encoding puede traer espacios alrededor del número.
			text = strings.TrimSpace(text)
			var d decimal.Decimal
			var err error
			if ok && text != "" {
				d, err = decimal.NewFromString(text)
			}
			if !present || !ok || text == "" || err != nil {
				errs.add(f.Name, f.Missing)
				continue
			}
			if !runChecks(errs, f, d) {
				continue
			}
			data[f.Name] = d

		case KindEnum:
			text, ok := "", false
			if present {
				text, ok = raw.AsText()
			}
			if !present || !ok || !slices.Contains(f.Options, text) {
				errs.add(f.Name, f.Missing)
				continue
			}
			data[f.Name] = text

		case KindFile:
			// Archivo ausente (o enviado como texto) se trata como tamaño 0,
			// de modo que falla la restricción de tamaño mínimo.
			file := &File{}
			if present {
				if pf, ok := raw.AsFile(); ok {
					file = pf
				}
			}
			if !runChecks(errs, f, file) {
				continue
			}
			data[f.Name] = file
		}
	}

	if len(errs) > 0 {
		return Result{Errors: errs}
	}
	return Result{Data: data}
}

// runChecks evalúa todas las restricciones del campo acumulando cada mensaje
// fallido; retorna true si todas pasaron.
func runChecks(errs FieldErrors, f Field, v any) bool {
	ok := true
	for _, c := range f.Checks {
		if !c.OK(v) {
			errs.add(f.Name, c.Message)
			ok = false
		}
	}
	return ok
}
