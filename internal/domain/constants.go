package domain

// Default slot generation parameters
const (
	DefaultDaysAhead    = 14
	DefaultSlotMinutes  = 30
	DefaultWorkStart    = "09:00"
	DefaultWorkEnd      = "17:00"
	DefaultWeekdaysOnly = true
)

// Business validation constants
const (
	MinDaysAhead   = 1
	MaxDaysAhead   = 365
	MinSlotMinutes = 5
	MaxSlotMinutes = 480 // 8 hours

	MinLimitDays     = 1
	MaxLimitDays     = 365
	DefaultLimitDays = 30

	MaxCustomerNameLength = 200
	MaxEmployeeNameLength = 200
	MaxUsernameLength     = 100
)

// Time format constants
const (
	TimeFormat      = "15:04"               // HH:MM
	DateFormat      = "2006-01-02"          // YYYY-MM-DD
	TimestampFormat = "2006-01-02T15:04:05" // ISO-8601, local-naive
)
