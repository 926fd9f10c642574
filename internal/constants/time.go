package constants

const (
	// TimeFormat is the standard wall-clock format (HH:MM)
	TimeFormat = "15:04"

	// DateFormat is the standard date format (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DeadlineFormat is the full deadline format accepted on the command line
	DeadlineFormat = "2006-01-02 15:04"

	// DayStartHour and DayEndHour bound the rendered timetable window
	DayStartHour = 7
	DayEndHour   = 22
)
