package cart

// Line es un renglón del carrito, único por item id.
// Quantity siempre >= 1; llegar a 0 elimina el renglón.
type Line struct {
	ItemID   int64
	Quantity int
}
