package seed

import (
	"context"

	"pet-care-hub/internal/domain/addresses"
	"pet-care-hub/internal/domain/appointments"
	"pet-care-hub/internal/domain/clinics"
	"pet-care-hub/internal/domain/pets"
	"pet-care-hub/internal/domain/prescriptions"
	"pet-care-hub/internal/domain/shop"
)

// DefaultAddressID es la dirección que arranca seleccionada.
const DefaultAddressID int64 = 1

// Stores agrupa los repositorios a poblar. Todos los Seed son idempotentes
// (los stores ignoran ids ya existentes), así que Apply puede correr en cada
// arranque sin duplicar datos.
type Stores struct {
	Pets          pets.Repository
	Clinics       clinics.Repository
	Appointments  appointments.Repository
	Prescriptions prescriptions.Repository
	Shop          shop.Repository
	Addresses     addresses.Repository
}

func Apply(ctx context.Context, s Stores) error {
	if err := s.Pets.Seed(ctx, seedPets()); err != nil {
		return err
	}
	if err := s.Clinics.Seed(ctx, seedClinics()); err != nil {
		return err
	}
	if err := s.Appointments.Seed(ctx, seedAppointments()); err != nil {
		return err
	}
	if err := s.Prescriptions.Seed(ctx, seedPrescriptions()); err != nil {
		return err
	}
	if err := s.Shop.Seed(ctx, seedShopItems()); err != nil {
		return err
	}
	return s.Addresses.Seed(ctx, seedAddresses())
}

func seedPets() []pets.Pet {
	return []pets.Pet{
		{
			ID:       1,
			Name:     "Buddy",
			Breed:    "Golden Retriever",
			Age:      5,
			ImageURL: "https://i.imgur.com/0cONY5P.jpeg",
			History: []string{
				"Annual vaccination (2023)",
				"Flea and tick prevention (Monthly)",
				"Minor paw injury (2022)",
			},
		},
		{
			ID:       2,
			Name:     "Lucy",
			Breed:    "Siamese Cat",
			Age:      3,
			ImageURL: "https://i.imgur.com/hKe64uW.jpeg",
			History: []string{
				"Spayed (2022)",
				"Annual check-up (2023)",
				"Dental cleaning (2023)",
			},
		},
	}
}

func seedClinics() []clinics.Clinic {
	return []clinics.Clinic{
		{
			ID:          1,
			Name:        "Happy Paws Veterinary Clinic",
			Address:     "123 Animal Lane, Petville",
			Rating:      4.8,
			ReviewCount: 258,
			DistanceKM:  2.5,
			Pinned:      false,
			Slots:       []string{"09:00 AM", "11:30 AM", "02:00 PM", "04:15 PM"},
			ImageURL:    "https://i.imgur.com/a7Rf7hD.jpeg",
			Doctors: []clinics.Doctor{
				{ID: 101, Name: "Dr. Emily Carter"},
				{ID: 102, Name: "Dr. John Miller"},
			},
		},
		{
			ID:          2,
			Name:        "The Furry Friends Hospital",
			Address:     "456 Woof Street, Dogtown",
			Rating:      4.9,
			ReviewCount: 412,
			DistanceKM:  1.2,
			Pinned:      true,
			Slots:       []string{"10:00 AM", "10:30 AM", "03:00 PM"},
			ImageURL:    "https://i.imgur.com/B5mZ8Yb.jpeg",
			Doctors: []clinics.Doctor{
				{ID: 201, Name: "Dr. Sarah Davis"},
				{ID: 202, Name: "Dr. Michael Chen"},
			},
		},
		{
			ID:          3,
			Name:        "Critter Care Center",
			Address:     "789 Meow Avenue, Catberg",
			Rating:      4.7,
			ReviewCount: 189,
			DistanceKM:  5.8,
			Pinned:      false,
			Slots:       []string{"09:30 AM", "12:00 PM", "01:30 PM", "05:00 PM"},
			ImageURL:    "https://i.imgur.com/oKsHqIp.jpeg",
			Doctors: []clinics.Doctor{
				{ID: 301, Name: "Dr. Jessica Wilson"},
			},
		},
	}
}

func seedAppointments() []appointments.Appointment {
	return []appointments.Appointment{
		{
			ID:       1,
			ClinicID: 1,
			PetID:    1,
			Date:     "2024-08-15",
			Time:     "02:00 PM",
			Reason:   "Annual check-up and vaccination.",
			Status:   appointments.StatusUpcoming,
			Modality: appointments.ModalityInPerson,
			DoctorID: 101,
		},
		{
			ID:       2,
			ClinicID: 2,
			PetID:    2,
			Date:     "2024-06-20",
			Time:     "10:30 AM",
			Reason:   "Dental cleaning.",
			Status:   appointments.StatusPast,
			Modality: appointments.ModalityInPerson,
			DoctorID: 201,
		},
		{
			ID:       3,
			ClinicID: 3,
			PetID:    2,
			Date:     "2024-08-22",
			Time:     "09:30 AM",
			Reason:   "Follow-up consultation.",
			Status:   appointments.StatusUpcoming,
			Modality: appointments.ModalityVideo,
			DoctorID: 301,
		},
	}
}

func seedPrescriptions() []prescriptions.Prescription {
	return []prescriptions.Prescription{
		{
			ID:            1,
			Medication:    "Heartworm Prevention Chewable",
			Dosage:        "1 tablet monthly",
			Instructions:  "Give with food. For Buddy.",
			AppointmentID: 2,
			ItemID:        101,
			Quantity:      1,
		},
		{
			ID:            2,
			Medication:    "Antibiotic Ear Drops",
			Dosage:        "3 drops in left ear, twice daily",
			Instructions:  "For Lucy. Complete the full 7-day course.",
			AppointmentID: 2,
			ItemID:        102,
			Quantity:      1,
		},
	}
}

func seedShopItems() []shop.Item {
	return []shop.Item{
		{ID: 101, Name: "Heartworm Prevention Chewable", Description: "Monthly chewable tablets to prevent heartworm disease.", Price: 25.99, ImageURL: "https://source.unsplash.com/400x400/?medicine,pet", Category: shop.CategoryMedicine},
		{ID: 102, Name: "Antibiotic Ear Drops", Description: "For treatment of bacterial ear infections in cats and dogs.", Price: 15.50, ImageURL: "https://source.unsplash.com/400x400/?ear-drops", Category: shop.CategoryMedicine},
		{ID: 103, Name: "Flea & Tick Collar", Description: "8-month protection against fleas and ticks.", Price: 45.00, ImageURL: "https://source.unsplash.com/400x400/?flea-collar", Category: shop.CategoryMedicine},

		{ID: 201, Name: "Premium Dry Dog Food", Description: "Grain-free salmon and sweet potato recipe for adult dogs.", Price: 55.99, ImageURL: "https://source.unsplash.com/400x400/?dog-food", Category: shop.CategoryFood},
		{ID: 202, Name: "Wet Cat Food Variety Pack", Description: "Pate style, real chicken and fish recipes.", Price: 22.00, ImageURL: "https://source.unsplash.com/400x400/?cat-food", Category: shop.CategoryFood},
		{ID: 203, Name: "Dental Health Dog Treats", Description: "Clinically proven to reduce plaque and tartar buildup.", Price: 12.99, ImageURL: "https://source.unsplash.com/400x400/?dog-treats", Category: shop.CategoryFood},

		{ID: 301, Name: "Durable Chew Toy", Description: "For aggressive chewers, non-toxic rubber.", Price: 14.99, ImageURL: "https://source.unsplash.com/400x400/?dog-toy", Category: shop.CategoryAccessory},
		{ID: 302, Name: "Cozy Pet Bed", Description: "Orthopedic memory foam, machine washable cover.", Price: 49.99, ImageURL: "https://source.unsplash.com/400x400/?pet-bed", Category: shop.CategoryAccessory},
		{ID: 303, Name: "Reflective Dog Leash", Description: "6-foot nylon leash with padded handle for comfort.", Price: 18.00, ImageURL: "https://source.unsplash.com/400x400/?dog-leash", Category: shop.CategoryAccessory},

		{ID: 401, Name: "Pet Grooming Brush", Description: "Reduces shedding by up to 95%. For both dogs and cats.", Price: 24.50, ImageURL: "https://source.unsplash.com/400x400/?pet-brush", Category: shop.CategoryGrooming},
		{ID: 402, Name: "Oatmeal Pet Shampoo", Description: "Soothing formula for dry, itchy skin. Soap-free.", Price: 16.99, ImageURL: "https://source.unsplash.com/400x400/?pet-shampoo", Category: shop.CategoryGrooming},
		{ID: 403, Name: "Heavy-Duty Nail Clippers", Description: "With safety guard to prevent over-cutting.", Price: 13.99, ImageURL: "https://source.unsplash.com/400x400/?nail-clippers,pet", Category: shop.CategoryGrooming},
	}
}

func seedAddresses() []addresses.Address {
	return []addresses.Address{
		{ID: 1, Label: "Home", Street: "123 Sunshine Avenue", City: "Petville", Zip: "12345"},
		{ID: 2, Label: "Work", Street: "456 Business Park Rd", City: "Metropolis", Zip: "67890"},
	}
}
