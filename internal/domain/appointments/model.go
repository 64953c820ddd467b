package appointments

// Appointment referencia clínica y mascota por id (normalizado; los nombres
// se resuelven vía los endpoints de lectura de pets/clinics).
// Time es un label de slot de la clínica, Date es YYYY-MM-DD.
type Appointment struct {
	ID       int64
	ClinicID int64
	PetID    int64
	Date     string
	Time     string
	Reason   string
	Status   Status
	Modality Modality
	DoctorID int64
}
