package student

// Student is identified by its ci (cédula), an externally supplied
// identity number used as the natural key.
type Student struct {
	CI              int64  `db:"ci" json:"ci"`
	Nombre          string `db:"nombre" json:"nombre"`
	Apellido        string `db:"apellido" json:"apellido"`
	FechaNacimiento string `db:"fecha_nacimiento" json:"fecha_nacimiento"`
	Telefono        string `db:"telefono" json:"telefono"`
	Correo          string `db:"correo" json:"correo"`
	Contrasena      string `db:"contrasena" json:"-"`
}

type CreateStudentRequest struct {
	CI              int64  `json:"ci" binding:"required"`
	Nombre          string `json:"nombre" binding:"required"`
	Apellido        string `json:"apellido" binding:"required"`
	FechaNacimiento string `json:"fecha_nacimiento" binding:"required,datetime=2006-01-02"`
	Telefono        string `json:"telefono"`
	Correo          string `json:"correo" binding:"required,email"`
	Contrasena      string `json:"contrasena" binding:"required"`
}

// UpdateStudentRequest updates any subset of fields that are present
// and non-empty.
type UpdateStudentRequest struct {
	Nombre          *string `json:"nombre"`
	Apellido        *string `json:"apellido"`
	FechaNacimiento *string `json:"fecha_nacimiento"`
	Telefono        *string `json:"telefono"`
	Correo          *string `json:"correo"`
	Contrasena      *string `json:"contrasena"`
}

func present(s *string) bool {
	return s != nil && *s != ""
}

func (r UpdateStudentRequest) Empty() bool {
	return !present(r.Nombre) && !present(r.Apellido) && !present(r.FechaNacimiento) &&
		!present(r.Telefono) && !present(r.Correo) && !present(r.Contrasena)
}

type LoginRequest struct {
	Correo     string `json:"correo" binding:"required,email"`
	Contrasena string `json:"contrasena" binding:"required"`
}

// Credential is the login row: (correo, hashed contrasena, ci_alumno).
type Credential struct {
	CIAlumno   int64  `db:"ci_alumno"`
	Correo     string `db:"correo"`
	Contrasena string `db:"contrasena"`
}
