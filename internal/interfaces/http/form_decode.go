package http

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/registro-api/internal/domain/form"
)

// DecodeForm convierte el body de la petición (multipart o urlencoded) en el
// modelo de valores del motor de validación: cada campo es texto o archivo
// con metadatos. El contenido del archivo se lee completo; las restricciones
// del esquema solo miran los metadatos.
func DecodeForm(c *fiber.Ctx) (*form.Values, error) {
	vals := form.NewValues()

	if mf, err := c.MultipartForm(); err == nil && mf != nil {
		for name, fieldValues := range mf.Value {
			if len(fieldValues) > 0 {
				vals.Set(name, form.Text(fieldValues[0]))
			}
		}
		for name, headers := range mf.File {
			if len(headers) == 0 {
				continue
			}
			fh := headers[0]
			f, err := fh.Open()
			if err != nil {
				return nil, fmt.Errorf("abrir archivo %s: %w", name, err)
			}
			data, err := io.ReadAll(f)
			_ = f.Close()
			if err != nil {
				return nil, fmt.Errorf("leer archivo %s: %w", name, err)
			}
			vals.Set(name, form.FileValue(form.File{
				Name:      fh.Filename,
				MediaType: fh.Header.Get("Content-Type"),
				Size:      fh.Size,
				Data:      data,
			}))
		}
		return vals, nil
	}

	// application/x-www-form-urlencoded
	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		vals.Set(string(key), form.Text(string(value)))
	})
	return vals, nil
}
