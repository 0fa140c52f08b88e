package models

// ScheduleSnapshot is the data-shaping input handed to the queue
// optimizer. It carries everything the external reasoning service needs
// in one request; no local optimization runs over it.
type ScheduleSnapshot struct {
	Appointments        []OptimizerAppointment `json:"appointments"`
	BarberSchedules     []OptimizerWindow      `json:"barberSchedules"`
	ServiceDurations    []OptimizerService     `json:"serviceDurations"`
	CustomerPreferences []string               `json:"customerPreferences"`
}

type OptimizerAppointment struct {
	ID          string `json:"id"`
	BarberID    string `json:"barberId"`
	BarberName  string `json:"barberName"`
	ServiceName string `json:"serviceName"`
	StartTime   string `json:"startTime"` // RFC 3339
	EndTime     string `json:"endTime"`
}

type OptimizerWindow struct {
	BarberID  string `json:"barberId"`
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type OptimizerService struct {
	ServiceID   string `json:"serviceId"`
	Name        string `json:"name"`
	DurationMin int    `json:"durationMin"`
}

// OptimizerProposal is the parsed response. It is display-only; nothing
// is written back to the store unless an admin applies a reschedule
// explicitly.
type OptimizerProposal struct {
	RescheduledAppointments []ProposedReschedule `json:"rescheduledAppointments"`
	OptimizationSummary     string               `json:"optimizationSummary"`
}

type ProposedReschedule struct {
	AppointmentID string `json:"appointmentId"`
	NewStartTime  string `json:"newStartTime"` // RFC 3339
}
