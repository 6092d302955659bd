package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/jhoicas/registro-api/internal/application/mutation"
	"github.com/jhoicas/registro-api/internal/domain/form"
)

var _ mutation.ImageStore = (*LocalImageStore)(nil)

// LocalImageStore guarda imágenes en disco bajo un directorio público y
// retorna rutas servibles (ej: /customers/jane-doe.png).
type LocalImageStore struct {
	dir     string // directorio físico de escritura
	baseURL string // prefijo de las referencias retornadas
}

// NewLocalImageStore construye el store local. dir es el directorio físico y
// baseURL el prefijo con el que el frontend resuelve la imagen.
func NewLocalImageStore(dir, baseURL string) *LocalImageStore {
	return &LocalImageStore{dir: dir, baseURL: baseURL}
}

// Save escribe el binario bajo la clave derivada del displayName y retorna la
// referencia. Cualquier fallo de I/O se retorna al caller; no hay garantía de
// idempotencia (el mismo nombre sobrescribe).
func (s *LocalImageStore) Save(_ context.Context, img *form.File, displayName string) (string, error) {
	key := StorageKey(displayName, img.MediaType)
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("crear directorio de imágenes: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, key), img.Data, 0o644); err != nil {
		return "", fmt.Errorf("escribir imagen %s: %w", key, err)
	}
	return path.Join(s.baseURL, key), nil
}
