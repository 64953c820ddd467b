package addresses

// LabelSuggestions son las opciones fijas del formulario; "Other" habilita
// texto libre (que también debe ser no vacío).
var LabelSuggestions = []string{"Home", "Work"}

type Address struct {
	ID     int64
	Label  string
	Street string
	City   string
	Zip    string
}
