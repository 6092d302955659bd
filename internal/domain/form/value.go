// Package form implementa el motor de validación declarativa de formularios:
// un esquema por entidad describe campos, coerciones y restricciones, y
// Validate produce o bien los datos tipados o bien un mapa de errores por campo.
package form

// File payload binario de un campo de archivo, con los metadatos declarados
// por el cliente. Las restricciones del esquema se evalúan contra estos
// metadatos, no contra el contenido.
type File struct {
	Name      string // nombre original del archivo
	MediaType string // Content-Type declarado (ej: image/png)
	Size      int64  // bytes
	Data      []byte
}

// Value es el valor crudo de un campo enviado: texto o archivo (suma de tipos).
type Value struct {
	text string
	file *File
}

// Text construye un valor de texto.
func Text(s string) Value { return Value{text: s} }

// FileValue construye un valor de archivo.
func FileValue(f File) Value { return Value{file: &f} }

// AsText retorna el texto y true si el valor es de texto.
func (v Value) AsText() (string, bool) {
	if v.file != nil {
		return "", false
	}
	return v.text, true
}

// AsFile retorna el archivo y true si el valor es un archivo.
func (v Value) AsFile() (*File, bool) {
	if v.file == nil {
		return nil, false
	}
	return v.file, true
}

// Values mapa ordenado campo → valor, tal como lo produce el form encoding.
type Values struct {
	names  []string
	fields map[string]Value
}

// NewValues construye un conjunto vacío de valores.
func NewValues() *Values {
	return &Values{fields: make(map[string]Value)}
}

// Set agrega o reemplaza el valor de un campo conservando el orden de llegada.
func (v *Values) Set(name string, val Value) {
	if _, ok := v.fields[name]; !ok {
		v.names = append(v.names, name)
	}
	v.fields[name] = val
}

// Get retorna el valor de un campo y si estaba presente.
func (v *Values) Get(name string) (Value, bool) {
	if v == nil {
		return Value{}, false
	}
	val, ok := v.fields[name]
	return val, ok
}

// Names retorna los nombres de campo en orden de llegada.
func (v *Values) Names() []string {
	if v == nil {
		return nil
	}
	return v.names
}
