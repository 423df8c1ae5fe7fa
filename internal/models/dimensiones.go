package models

import "time"

// Dimensión de tiempo: una fila por fecha distinta del origen. Los atributos
// derivados son funciones puras de la fecha y nunca se actualizan.
type Tiempo struct {
	Fecha         time.Time `gorm:"primaryKey;column:fecha;type:date"`
	Anio          string    `gorm:"column:anio"`
	AnioMes       string    `gorm:"column:aniomes"`
	AnioTrimestre string    `gorm:"column:aniotrimestre"`
	AnioDia       string    `gorm:"column:aniodia"`
	DiaNum        string    `gorm:"column:dianum"`
	Dia           string    `gorm:"column:dia"`
	DiaSemanaNum  string    `gorm:"column:diasemananum"`
	Semana        string    `gorm:"column:semana"`
	Mes           string    `gorm:"column:mes"`
	MesNum        string    `gorm:"column:mesnum"`
	Trimestre     string    `gorm:"column:trimestre"`
	Semestre      string    `gorm:"column:semestre"`
}

func (Tiempo) TableName() string {
	return "tiempo"
}

// Dimensión de ubicación, una fila por tupla (región, comuna, tienda, zonal).
// La clave es un surrogate derivado de la tupla, estable entre corridas.
type Ubicacion struct {
	IDUbicacion  int64  `gorm:"primaryKey;column:id_ubicacion"`
	NombreRegion string `gorm:"column:nombre_region"`
	CodigoRegion string `gorm:"column:codigo_region"`
	NombreComuna string `gorm:"column:nombre_comuna"`
	Tienda       string `gorm:"column:tienda"`
	Zonal        string `gorm:"column:zonal"`
}

func (Ubicacion) TableName() string {
	return "ubicacion"
}

// Dimensión de categorías de producto
type Categoria struct {
	IDCategoria     int    `gorm:"primaryKey;column:id_categoria"`
	NombreCategoria string `gorm:"column:nombre_categoria"`
	Descripcion     string `gorm:"column:descripcion;type:text"`
}

func (Categoria) TableName() string {
	return "categoria"
}

// Dimensión de productos; la clave es el código de producto del origen
type Producto struct {
	CodigoProducto int64  `gorm:"primaryKey;column:codigo_producto"`
	NombreProducto string `gorm:"column:nombre_producto"`
	IDCategoria    *int   `gorm:"column:id_categoria"`
	Linea          string `gorm:"column:linea"`
	Seccion        string `gorm:"column:seccion"`
	Negocio        string `gorm:"column:negocio"`
	Abastecimiento string `gorm:"column:abastecimiento"`
}

func (Producto) TableName() string {
	return "producto"
}

// Dimensión de motivos: una fila por par (motivo, ubicación del motivo)
type MotivoDetalle struct {
	IDMotivo        int    `gorm:"primaryKey;column:id_motivo"`
	Motivo          string `gorm:"column:motivo"`
	UbicacionMotivo string `gorm:"column:ubicacion_motivo"`
}

func (MotivoDetalle) TableName() string {
	return "motivos_detalle"
}
