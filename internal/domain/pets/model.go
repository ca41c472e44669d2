package pets

// Pet es una mascota registrada por su dueño (OwnerID -> clients).
type Pet struct {
	ID int64

	Name        string
	Image       string
	Description string

	// 0 = sin dueño (NULL en la base).
	OwnerID int64
}
