package entity

// Category representa una categoría del catálogo.
// ProductCount es el contador denormalizado guardado en la tabla;
// ActualCount es el conteo vivo calculado con el JOIN a products.
// Se devuelven ambos para que el cliente pueda detectar desfase.
type Category struct {
	ID           int64
	Name         string
	Slug         string
	IconName     string
	ProductCount int64
	ActualCount  int64
}
