package clients

// Client es un usuario de la plataforma: dueño de mascotas, cuidador
// (carer) o ambos, según Roles.
type Client struct {
	ID int64

	Roles    string
	Name     string
	Surname  string
	Email    string
	Password string

	Avatar      string
	Description string
	City        string
}
