package domain

import "strings"

// Entity identifies which listing a table or record belongs to.
type Entity string

const (
	EntityHospital  Entity = "hospital"
	EntityDoctor    Entity = "doctor"
	EntityTreatment Entity = "treatment"
	EntityBooking   Entity = "booking"
	EntityContact   Entity = "contact"
)

// Entities lists all listing entities in page order.
var Entities = []Entity{EntityHospital, EntityDoctor, EntityTreatment, EntityBooking, EntityContact}

// Row is one rendered table row: a stable record key plus the ordered cell
// text values shown on screen. The table controller treats cells as opaque text.
type Row struct {
	Key   string   // record identifier within its listing
	Cells []string // one value per column
	Image string   // optional local image path for preview ("" if none)
}

// Text returns the row's full concatenated cell text, used for filtering.
func (r Row) Text() string {
	return strings.Join(r.Cells, " ")
}

// Table is one listing page's renderable data.
type Table struct {
	Entity  Entity
	Title   string
	Columns []string
	Rows    []Row
}

// Hospital is a hospital listing record.
type Hospital struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Location        string  `json:"location"`
	Phone           string  `json:"phone"`
	Email           string  `json:"email"`
	EstablishedYear int     `json:"established_year"`
	BedCount        int     `json:"bed_count"`
	Rating          float64 `json:"rating"`
	Image           string  `json:"image"`
	IsFeatured      bool    `json:"is_featured"`
	IsActive        bool    `json:"is_active"`
	Description     string  `json:"description"`
}

// Doctor is a doctor listing record.
type Doctor struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Designation     string  `json:"designation"`
	Specialization  string  `json:"specialization"`
	Qualification   string  `json:"qualification"`
	ExperienceYears int     `json:"experience_years"`
	ConsultancyFee  float64 `json:"consultancy_fee"`
	Rating          float64 `json:"rating"`
	Hospital        string  `json:"hospital"`
	Image           string  `json:"image"`
	IsFeatured      bool    `json:"is_featured"`
	Description     string  `json:"description"`
}

// Treatment is a treatment listing record.
type Treatment struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	TreatmentType string  `json:"treatment_type"`
	PriceMin      float64 `json:"price_min"`
	PriceMax      float64 `json:"price_max"`
	Rating        float64 `json:"rating"`
	Hospital      string  `json:"hospital"`
	Doctor        string  `json:"doctor"`
	Location      string  `json:"location"`
	Image         string  `json:"image"`
	Description   string  `json:"description"`
}

// Booking is a treatment package booking record.
type Booking struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	MobileNo  string `json:"mobile_no"`
	Treatment string `json:"treatment"`
	Budget    string `json:"budget"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UserQuery string `json:"user_query"`
}

// Contact is a contact-form submission record.
type Contact struct {
	ID          int    `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	ServiceType string `json:"service_type"`
	IsRead      bool   `json:"is_read"`
	CreatedAt   string `json:"created_at"`
}
