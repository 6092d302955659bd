package entity

// Customer representa un cliente del dashboard.
// ImageURL la produce el adaptador de almacenamiento de imágenes; el cliente
// del API nunca la envía directamente (envía el archivo crudo).
type Customer struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}
