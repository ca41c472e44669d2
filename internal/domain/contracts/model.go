package contracts

// Contract es la contratación de un servicio para una mascota.
// Assessment y Comments se completan después, vía PUT.
type Contract struct {
	ID int64

	PetID     int64
	ServiceID int64

	Date  string
	Price float64

	Assessment *int64
	Comments   *string
}
