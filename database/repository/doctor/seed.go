package doctorRepo

import "medibook/models"

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

func days(extra ...string) []string {
	return append(append([]string(nil), weekdays...), extra...)
}

// DefaultDoctors is the starter directory loaded when SEED_DOCTORS is set.
func DefaultDoctors() []models.Doctor {
	return []models.Doctor{
		{
			ID:              "demo",
			Name:            "Dr. Demo Always",
			Specialization:  "General Physician",
			Experience:      "5 years",
			Rating:          5.0,
			ReviewCount:     999,
			ConsultationFee: 100,
			Location:        "Test Clinic, Everywhere",
			IsAvailable:     true,
			Languages:       []string{"English"},
			Qualifications:  []string{"MBBS"},
			About:           "Demo doctor for testing. Always available, all days.",
			WorkingDays:     days("Saturday", "Sunday"),
			WorkingHours:    "9:00 AM - 6:00 PM",
			HospitalID:      "demo-hospital",
			PhoneNumber:     "+91-9999999999",
			Email:           "demo@demo.com",
		},
		{
			ID:              "1",
			Name:            "Dr. Prakash Das",
			Specialization:  "Psychologist",
			Experience:      "8 years",
			Rating:          4.8,
			ReviewCount:     127,
			ConsultationFee: 500,
			Location:        "Apollo Hospital, Delhi",
			IsAvailable:     true,
			Languages:       []string{"English", "Hindi"},
			Qualifications:  []string{"MBBS", "MD Psychology", "PhD Clinical Psychology"},
			About:           "Cognitive behavioral therapy, anxiety disorders and depression treatment.",
			WorkingDays:     days("Saturday"),
			WorkingHours:    "10:00 AM - 7:00 PM",
			HospitalID:      "apollo-delhi-1",
			PhoneNumber:     "+91-9876543210",
			Email:           "dr.prakash@apollohospital.com",
		},
		{
			ID:              "2",
			Name:            "Dr. Sarah Wilson",
			Specialization:  "Cardiologist",
			Experience:      "12 years",
			Rating:          4.9,
			ReviewCount:     234,
			ConsultationFee: 800,
			Location:        "Max Healthcare, Mumbai",
			IsAvailable:     true,
			Languages:       []string{"English", "Hindi", "Marathi"},
			Qualifications:  []string{"MBBS", "MD Cardiology", "Fellowship in Interventional Cardiology"},
			About:           "Interventional cardiology and heart disease prevention.",
			WorkingDays:     days(),
			WorkingHours:    "11:00 AM - 6:00 PM",
			HospitalID:      "max-mumbai-1",
			PhoneNumber:     "+91-9876543211",
			Email:           "dr.sarah@maxhealthcare.com",
		},
		{
			ID:              "3",
			Name:            "Dr. Michael Chen",
			Specialization:  "Dermatologist",
			Experience:      "10 years",
			Rating:          4.7,
			ReviewCount:     189,
			ConsultationFee: 600,
			Location:        "Fortis Hospital, Bangalore",
			IsAvailable:     true,
			Languages:       []string{"English", "Hindi", "Kannada"},
			Qualifications:  []string{"MBBS", "MD Dermatology", "Fellowship in Cosmetic Dermatology"},
			About:           "Medical and cosmetic dermatology.",
			WorkingDays:     []string{"Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
			WorkingHours:    "9:30 AM - 5:30 PM",
			HospitalID:      "fortis-bangalore-1",
			PhoneNumber:     "+91-9876543212",
			Email:           "dr.michael@fortis.com",
		},
		{
			ID:              "4",
			Name:            "Dr. Emily Rodriguez",
			Specialization:  "Pediatrician",
			Experience:      "15 years",
			Rating:          4.9,
			ReviewCount:     312,
			ConsultationFee: 450,
			Location:        "AIIMS, New Delhi",
			IsAvailable:     true,
			Languages:       []string{"English", "Hindi", "Spanish"},
			Qualifications:  []string{"MBBS", "MD Pediatrics", "Fellowship in Pediatric Cardiology"},
			WorkingDays:     days(),
			WorkingHours:    "8:00 AM - 4:00 PM",
		},
		{
			ID:              "5",
			Name:            "Dr. James Park",
			Specialization:  "Orthopedic",
			Experience:      "18 years",
			Rating:          4.8,
			ReviewCount:     267,
			ConsultationFee: 750,
			Location:        "Bone & Joint Clinic, Pune",
			IsAvailable:     true,
			Languages:       []string{"English", "Hindi", "Marathi"},
			Qualifications:  []string{"MBBS", "MS Orthopedics", "Fellowship in Joint Replacement"},
			WorkingDays:     []string{"Monday", "Wednesday", "Thursday", "Friday", "Saturday"},
			WorkingHours:    "10:00 AM - 6:00 PM",
		},
		{
			ID:              "6",
			Name:            "Dr. Lisa Thompson",
			Specialization:  "Gynecologist",
			Experience:      "14 years",
			Rating:          4.9,
			ReviewCount:     198,
			ConsultationFee: 650,
			Location:        "Women's Health Center, Chennai",
			IsAvailable:     true,
			Languages:       []string{"English", "Hindi", "Tamil"},
			Qualifications:  []string{"MBBS", "MD Gynecology & Obstetrics", "Fellowship in Laparoscopy"},
			WorkingDays:     days("Saturday"),
			WorkingHours:    "9:00 AM - 5:00 PM",
		},
	}
}
