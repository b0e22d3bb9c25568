package instructor

// Instructor uses its ci as natural key, same as students.
type Instructor struct {
	CI       int64  `db:"ci" json:"ci"`
	Nombre   string `db:"nombre" json:"nombre"`
	Apellido string `db:"apellido" json:"apellido"`
}

type CreateInstructorRequest struct {
	CI       int64  `json:"ci" binding:"required"`
	Nombre   string `json:"nombre" binding:"required"`
	Apellido string `json:"apellido" binding:"required"`
}
