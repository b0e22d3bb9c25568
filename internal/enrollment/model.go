package enrollment

type Enrollment struct {
	IDClase        int   `db:"id_clase" json:"id_clase"`
	CIAlumno       int64 `db:"ci_alumno" json:"ci_alumno"`
	IDEquipamiento *int  `db:"id_equipamiento" json:"id_equipamiento"`
}

type EnrollRequest struct {
	IDClase        int   `json:"id_clase" binding:"required"`
	CIAlumno       int64 `json:"ci_alumno" binding:"required"`
	IDEquipamiento *int  `json:"id_equipamiento"`
}
