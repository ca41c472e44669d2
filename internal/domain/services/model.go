package services

// Service es un servicio ofrecido por un cuidador (CarerID -> clients).
type Service struct {
	ID int64

	Title       string
	Price       float64
	Description string

	CarerID int64
}
