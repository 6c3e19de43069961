package models

// Part is a spare-part record. codigo_wiener is the unique human-facing
// identifier; codigo_original is a secondary, non-unique manufacturer code.
// There is no update path: a part is created, searched and deleted, nothing
// else.
type Part struct {
	Id           uint   `json:"id" gorm:"primaryKey"`
	VendorCode   string `json:"codigo_wiener" gorm:"column:codigo_wiener;uniqueIndex;not null"`
	OriginalCode string `json:"codigo_original" gorm:"column:codigo_original"`
	Name         string `json:"nombre" gorm:"column:nombre;not null"`
	Description  string `json:"descripcion" gorm:"column:descripcion"`
	Equipment    string `json:"equipo" gorm:"column:equipo"`
	Notes        string `json:"notas" gorm:"column:notas"`
	ImagePath    string `json:"imagen" gorm:"column:imagen"`
	Status       string `json:"estado" gorm:"column:estado"`
}

func (Part) TableName() string {
	return "repuestos"
}

// StatusActive is the default estado for newly created parts.
const StatusActive = "Activo"
