package models

// Doctor is a directory entry. Slot generation only reads ID, WorkingDays and
// ConsultationFee; WorkingHours is a display string.
type Doctor struct {
	ID              string   `bson:"id" json:"id"`
	Name            string   `bson:"name" json:"name"`
	Specialization  string   `bson:"specialization" json:"specialization"`
	Experience      string   `bson:"experience" json:"experience"`
	Rating          float64  `bson:"rating" json:"rating"`
	ReviewCount     int      `bson:"reviewCount" json:"reviewCount"`
	ConsultationFee float64  `bson:"consultationFee" json:"consultationFee"`
	Location        string   `bson:"location" json:"location"`
	Image           string   `bson:"image,omitempty" json:"image,omitempty"`
	IsAvailable     bool     `bson:"isAvailable" json:"isAvailable"`
	Languages       []string `bson:"languages" json:"languages"`
	Qualifications  []string `bson:"qualifications" json:"qualifications"`
	About           string   `bson:"about,omitempty" json:"about,omitempty"`
	WorkingDays     []string `bson:"workingDays" json:"workingDays"`   // e.g. ["Monday", "Tuesday"]
	WorkingHours    string   `bson:"workingHours" json:"workingHours"` // e.g. "10:00 AM - 6:00 PM"
	HospitalID      string   `bson:"hospitalId,omitempty" json:"hospitalId,omitempty"`
	PhoneNumber     string   `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Email           string   `bson:"email,omitempty" json:"email,omitempty"`
}

// WorksOn reports whether weekday (e.g. "Monday") is one of the doctor's working days.
func (d Doctor) WorksOn(weekday string) bool {
	for _, day := range d.WorkingDays {
		if day == weekday {
			return true
		}
	}
	return false
}

// DoctorSummary is the doctor view embedded in appointment responses.
type DoctorSummary struct {
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Location       string `json:"location"`
	Image          string `json:"image,omitempty"`
}

func (d Doctor) Summary() DoctorSummary {
	return DoctorSummary{
		Name:           d.Name,
		Specialization: d.Specialization,
		Location:       d.Location,
		Image:          d.Image,
	}
}

// DoctorSearch holds directory query parameters.
type DoctorSearch struct {
	Query     string
	Specialty string
	Page      int
	Limit     int
}

// Pagination describes a page of a directory search.
type Pagination struct {
	CurrentPage int  `json:"current_page"`
	PerPage     int  `json:"per_page"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrev     bool `json:"has_prev"`
}

type DoctorPage struct {
	Doctors    []Doctor   `json:"doctors"`
	Pagination Pagination `json:"pagination"`
}

// DoctorRegistration is the admin payload for adding a directory entry.
type DoctorRegistration struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Specialization  string   `json:"specialization"`
	Experience      string   `json:"experience"`
	Rating          float64  `json:"rating"`
	ReviewCount     int      `json:"reviewCount"`
	ConsultationFee float64  `json:"consultationFee"`
	Location        string   `json:"location"`
	Image           string   `json:"image"`
	IsAvailable     *bool    `json:"isAvailable"`
	Languages       []string `json:"languages"`
	Qualifications  []string `json:"qualifications"`
	About           string   `json:"about"`
	WorkingDays     []string `json:"workingDays"`
	WorkingHours    string   `json:"workingHours"`
	HospitalID      string   `json:"hospitalId"`
	PhoneNumber     string   `json:"phoneNumber"`
	Email           string   `json:"email"`
}
