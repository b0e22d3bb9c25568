package class

import "clubdeportivo/internal/timeslot"

type Class struct {
	ID           int   `db:"id" json:"id_clase"`
	CIInstructor int64 `db:"ci_instructor" json:"ci_instructor"`
	IDActividad  int   `db:"id_actividad" json:"id_actividad"`
	IDTurno      int   `db:"id_turno" json:"id_turno"`
	Dictada      bool  `db:"dictada" json:"dictada"`
}

type CreateClassRequest struct {
	NombreActividad string `json:"nombre_actividad" binding:"required"`
	CIInstructor    int64  `json:"ci_instructor" binding:"required"`
	IDTurno         int    `json:"id_turno" binding:"required"`
	Dictada         bool   `json:"dictada"`
}

// ClassDetail is the denormalized row joined over activity, instructor
// and slot; times come out as seconds since midnight.
type ClassDetail struct {
	ID         int     `db:"id"`
	Actividad  string  `db:"actividad"`
	Costo      float64 `db:"costo"`
	Instructor string  `db:"instructor"`
	HoraInicio int     `db:"hora_inicio"`
	HoraFin    int     `db:"hora_fin"`
	Dictada    bool    `db:"dictada"`
}

type ClassDetailResponse struct {
	ID         int     `json:"id_clase"`
	Actividad  string  `json:"actividad"`
	Costo      float64 `json:"costo"`
	Instructor string  `json:"instructor"`
	HoraInicio string  `json:"hora_inicio"`
	HoraFin    string  `json:"hora_fin"`
	Dictada    bool    `json:"dictada"`
}

func (d ClassDetail) Response() ClassDetailResponse {
	return ClassDetailResponse{
		ID:         d.ID,
		Actividad:  d.Actividad,
		Costo:      d.Costo,
		Instructor: d.Instructor,
		HoraInicio: timeslot.FormatClock(d.HoraInicio),
		HoraFin:    timeslot.FormatClock(d.HoraFin),
		Dictada:    d.Dictada,
	}
}
