package timeslot

// TimeSlot is the stored row; times are seconds since midnight.
type TimeSlot struct {
	ID         int `db:"id"`
	HoraInicio int `db:"hora_inicio"`
	HoraFin    int `db:"hora_fin"`
}

// TimeSlotResponse is the wire shape, with formatted HH:MM:SS times.
type TimeSlotResponse struct {
	ID         int    `json:"id_turno"`
	HoraInicio string `json:"hora_inicio"`
	HoraFin    string `json:"hora_fin"`
}

func (t TimeSlot) Response() TimeSlotResponse {
	return TimeSlotResponse{
		ID:         t.ID,
		HoraInicio: FormatClock(t.HoraInicio),
		HoraFin:    FormatClock(t.HoraFin),
	}
}

type CreateTimeSlotRequest struct {
	HoraInicio string `json:"hora_inicio" binding:"required"`
	HoraFin    string `json:"hora_fin" binding:"required"`
}

// SlotUsage backs the /turnos/clases report: each slot labeled
// "HH:MM - HH:MM" with the number of classes scheduled in it.
type SlotUsage struct {
	ID             int `db:"id"`
	HoraInicio     int `db:"hora_inicio"`
	HoraFin        int `db:"hora_fin"`
	CantidadClases int `db:"cantidad_clases"`
}

type SlotUsageResponse struct {
	IDTurno        int    `json:"id_turno"`
	Turno          string `json:"turno"`
	CantidadClases int    `json:"cantidad_clases"`
}

func (u SlotUsage) Response() SlotUsageResponse {
	return SlotUsageResponse{
		IDTurno:        u.ID,
		Turno:          FormatClockShort(u.HoraInicio) + " - " + FormatClockShort(u.HoraFin),
		CantidadClases: u.CantidadClases,
	}
}
