package activity

type Activity struct {
	ID          int     `db:"id" json:"id_actividad"`
	Nombre      string  `db:"nombre" json:"nombre"`
	Descripcion string  `db:"descripcion" json:"descripcion"`
	Costo       float64 `db:"costo" json:"costo"`
}

type CreateActivityRequest struct {
	Nombre      string   `json:"nombre" binding:"required"`
	Descripcion string   `json:"descripcion" binding:"required"`
	Costo       *float64 `json:"costo" binding:"required,gte=0"`
}

// UpdateActivityRequest carries an optional subset of fields; the SET
// clause is built from the ones that are present.
type UpdateActivityRequest struct {
	Nombre      *string  `json:"nombre"`
	Descripcion *string  `json:"descripcion"`
	Costo       *float64 `json:"costo"`
}

func (r UpdateActivityRequest) Empty() bool {
	return r.Nombre == nil && r.Descripcion == nil && r.Costo == nil
}

type PopularActivity struct {
	ID              int    `db:"id" json:"id_actividad"`
	Nombre          string `db:"nombre" json:"nombre"`
	CantidadAlumnos int    `db:"cantidad_alumnos" json:"cantidad_alumnos"`
}
