package booking

import "medibook/models"

// EffectiveFee returns the consultation fee charged for an appointment type.
// Video consultations are discounted by videoDiscount, never below zero.
func EffectiveFee(doctorFee float64, t models.AppointmentType, videoDiscount float64) float64 {
	if t != models.TypeVideo {
		return doctorFee
	}
	fee := doctorFee - videoDiscount
	if fee < 0 {
		return 0
	}
	return fee
}
