package pets

// Pet representa el perfil de una mascota del usuario.
// History es un log ordenado (append-only conceptualmente; hoy solo lectura).
type Pet struct {
	ID       int64
	Name     string
	Breed    string
	Age      int
	ImageURL string
	History  []string
}
