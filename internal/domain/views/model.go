package views

// Screen es la pantalla activa de la navegación.
type Screen string

const (
	ScreenHome         Screen = "Home"
	ScreenAppointments Screen = "Appointments"
	ScreenMyPets       Screen = "My Pets"
	ScreenShop         Screen = "Shop"
)

func ParseScreen(s string) (Screen, bool) {
	switch Screen(s) {
	case ScreenHome, ScreenAppointments, ScreenMyPets, ScreenShop:
		return Screen(s), true
	}
	return "", false
}

// Modal es el modal activo. El set es cerrado: nombres desconocidos no son
// representables, y hay exactamente cero o un modal activo (none = cero).
type Modal string

const (
	ModalNone        Modal = "none"
	ModalAppointment Modal = "appointment"
	ModalVideo       Modal = "video"
	ModalLostPet     Modal = "lostPet"
	ModalCart        Modal = "cart"
	ModalAddress     Modal = "address"
	ModalAI          Modal = "ai"
)

func ParseModal(s string) (Modal, bool) {
	switch Modal(s) {
	case ModalNone, ModalAppointment, ModalVideo, ModalLostPet, ModalCart, ModalAddress, ModalAI:
		return Modal(s), true
	}
	return "", false
}
