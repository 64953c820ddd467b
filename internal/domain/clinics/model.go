package clinics

// Doctor pertenece a exactamente una clínica.
type Doctor struct {
	ID   int64
	Name string
}

// Clinic incluye sus slots de atención disponibles (labels discretos,
// p.ej. "09:00 AM") y su plantel de doctores.
type Clinic struct {
	ID          int64
	Name        string
	Address     string
	Rating      float64
	ReviewCount int
	DistanceKM  float64
	Pinned      bool
	Slots       []string
	ImageURL    string
	Doctors     []Doctor
}

// HasSlot indica si el label pertenece a los slots disponibles de la clínica.
func (c Clinic) HasSlot(slot string) bool {
	for _, s := range c.Slots {
		if s == slot {
			return true
		}
	}
	return false
}

// HasDoctor indica si el doctor pertenece al plantel de la clínica.
func (c Clinic) HasDoctor(doctorID int64) bool {
	for _, d := range c.Doctors {
		if d.ID == doctorID {
			return true
		}
	}
	return false
}
