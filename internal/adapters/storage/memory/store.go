package memory

// Store agrupa los repos in-memory. Para dev y tests; se pierde al reiniciar.
type Store struct {
	Users         *UserRepo
	Pets          *PetRepo
	OwnerTx       *OwnerTx
	Caregivers    *CaregiverRepo
	Bookings      *BookingRepo
	Reviews       *ReviewRepo
	HealthRecords *HealthRecordRepo
}

func NewStore() *Store {
	users := NewUserRepo()
	pets := NewPetRepo()
	return &Store{
		Users:         users,
		Pets:          pets,
		OwnerTx:       NewOwnerTx(users, pets),
		Caregivers:    NewCaregiverRepo(),
		Bookings:      NewBookingRepo(),
		Reviews:       NewReviewRepo(),
		HealthRecords: NewHealthRecordRepo(),
	}
}
