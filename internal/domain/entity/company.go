package entity

// Company representa una organización/tenant del sistema. Raíz de tenencia: es dueña de sus bodegas.
type Company struct {
	ID   int64
	Name string
}
