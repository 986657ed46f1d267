// File: utils/constants.go
package utils

import "time"

// DoctorCachePrefix is the prefix used for Redis doctor cache keys.
const DoctorCachePrefix = "doctor:"

// DefaultDoctorCacheTTL applies when DOCTOR_CACHE_TTL is unset or zero.
const DefaultDoctorCacheTTL = 10 * time.Minute

// DateLayout is the calendar date format used across the API.
const DateLayout = "2006-01-02"
