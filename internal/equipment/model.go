package equipment

type Equipment struct {
	ID          int     `db:"id" json:"id_equipamiento"`
	IDActividad *int    `db:"id_actividad" json:"id_actividad"`
	Descripcion string  `db:"descripcion" json:"descripcion"`
	Costo       float64 `db:"costo" json:"costo"`
}
