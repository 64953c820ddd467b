package appointments

// Status de la cita. Las transiciones son unidireccionales:
// upcoming -> cancelled, upcoming -> upcoming (reschedule).
// past y cancelled son terminales para las operaciones de este módulo.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusPast      Status = "past"
	StatusCancelled Status = "cancelled"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusUpcoming, StatusPast, StatusCancelled:
		return Status(s), true
	}
	return "", false
}

// Modality es el modo de atención de la cita.
type Modality string

const (
	ModalityInPerson Modality = "in-person"
	ModalityVideo    Modality = "video"
)

func ParseModality(s string) (Modality, bool) {
	switch Modality(s) {
	case ModalityInPerson, ModalityVideo:
		return Modality(s), true
	}
	return "", false
}

// CommonConcerns son los tags prearmados del formulario de booking.
var CommonConcerns = []string{
	"Annual Check-up",
	"Vaccinations",
	"Not Feeling Well",
	"Injury",
	"Skin Issue",
	"Follow-up",
}
