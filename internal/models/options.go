package models

// Predefined option vocabularies the signup and profile forms choose from.
// Multi-select widgets submit arrays of these tags.

var PetSpecies = []string{"dog", "cat", "bird", "rabbit", "reptile", "exotic"}

var PetSpecializations = []string{"dogs", "cats", "birds", "rabbits", "reptiles", "exotic"}

var MedicalSpecialties = []string{
	"general", "surgery", "dermatology", "cardiology", "oncology",
	"orthopedics", "ophthalmology", "dentistry", "emergency", "behavior",
}

var Languages = []string{"english", "spanish", "french", "mandarin", "hindi", "portuguese", "german"}

var Genders = []string{"male", "female", "other"}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// IsValidGender reports whether v is one of the accepted gender tags.
func IsValidGender(v string) bool { return contains(Genders, v) }

// IsValidSpecies reports whether v is one of the accepted pet species.
func IsValidSpecies(v string) bool { return contains(PetSpecies, v) }
