package apiclient

// Tipos del JSON público de la API.

type ClientRecord struct {
	ID          int64  `json:"id,omitempty"`
	Roles       string `json:"roles"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Email       string `json:"email"`
	Password    string `json:"password,omitempty"`
	Avatar      string `json:"avatar"`
	Description string `json:"description"`
	City        string `json:"city"`
}

type PetRecord struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description"`
	OwnerID     int64  `json:"owner_id"`
}

type ServiceRecord struct {
	ID          int64   `json:"id,omitempty"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	CarerID     int64   `json:"carer_id"`
}

type ContractRecord struct {
	ID         int64   `json:"id,omitempty"`
	PetID      int64   `json:"pet_id"`
	ServiceID  int64   `json:"service_id"`
	Date       string  `json:"date"`
	Price      float64 `json:"price"`
	Assessment *int64  `json:"assessment,omitempty"`
	Comments   *string `json:"comments,omitempty"`
}
