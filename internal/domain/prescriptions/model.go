package prescriptions

// Prescription sale de una cita y referencia un producto del shop
// (para poder re-comprar la medicación directo al carrito).
type Prescription struct {
	ID            int64
	Medication    string
	Dosage        string
	Instructions  string
	AppointmentID int64
	ItemID        int64
	Quantity      int
}
