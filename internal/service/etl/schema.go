package etl

import (
	"fmt"

	"gorm.io/gorm"
)

// DDL idempotente del esquema estrella. Seguro de ejecutar en cada corrida:
// sobre un esquema ya inicializado es un no-op.
var tablasSQL = []string{
	`CREATE TABLE IF NOT EXISTS tiempo (
		fecha DATE PRIMARY KEY,
		anio VARCHAR(255),
		aniomes VARCHAR(255),
		aniotrimestre VARCHAR(255),
		aniodia VARCHAR(255),
		dianum VARCHAR(255),
		dia VARCHAR(255),
		diasemananum VARCHAR(255),
		semana VARCHAR(255),
		mes VARCHAR(255),
		mesnum VARCHAR(255),
		trimestre VARCHAR(255),
		semestre VARCHAR(255)
	)`,
	`CREATE TABLE IF NOT EXISTS ubicacion (
		id_ubicacion BIGINT PRIMARY KEY,
		nombre_region VARCHAR(255),
		codigo_region VARCHAR(255),
		nombre_comuna VARCHAR(255),
		tienda VARCHAR(255),
		zonal VARCHAR(255)
	)`,
	`CREATE TABLE IF NOT EXISTS categoria (
		id_categoria INT PRIMARY KEY,
		nombre_categoria VARCHAR(255),
		descripcion TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS producto (
		codigo_producto BIGINT PRIMARY KEY,
		nombre_producto VARCHAR(255),
		id_categoria INT,
		linea VARCHAR(255),
		seccion VARCHAR(255),
		negocio VARCHAR(255),
		abastecimiento VARCHAR(255),
		FOREIGN KEY (id_categoria) REFERENCES categoria(id_categoria)
	)`,
	`CREATE TABLE IF NOT EXISTS motivos_detalle (
		id_motivo INT PRIMARY KEY,
		motivo VARCHAR(255),
		ubicacion_motivo VARCHAR(255)
	)`,
	`CREATE TABLE IF NOT EXISTS mermas (
		id_merma VARCHAR(255) PRIMARY KEY,
		merma_unidad INT,
		merma_monto DECIMAL(10,2),
		id_motivo VARCHAR(255),
		codigo_producto BIGINT,
		fecha DATE,
		id_comuna BIGINT,
		FOREIGN KEY (codigo_producto) REFERENCES producto(codigo_producto),
		FOREIGN KEY (fecha) REFERENCES tiempo(fecha),
		FOREIGN KEY (id_comuna) REFERENCES ubicacion(id_ubicacion)
	)`,
}

var indicesSQL = []string{
	"CREATE INDEX IF NOT EXISTS idx_mermas_fecha ON mermas(fecha)",
	"CREATE INDEX IF NOT EXISTS idx_mermas_producto ON mermas(codigo_producto)",
	"CREATE INDEX IF NOT EXISTS idx_mermas_ubicacion ON mermas(id_comuna)",
	"CREATE INDEX IF NOT EXISTS idx_producto_categoria ON producto(id_categoria)",
}

// initSchema creates tables and indexes. Any DDL error is fatal for the run;
// el rollback lo resuelve la transacción que envuelve la carga.
func initSchema(tx *gorm.DB) error {
	for _, ddl := range tablasSQL {
		if err := tx.Exec(ddl).Error; err != nil {
			return fmt.Errorf("creando tablas: %w", err)
		}
	}
	for _, ddl := range indicesSQL {
		if err := tx.Exec(ddl).Error; err != nil {
			return fmt.Errorf("creando índices: %w", err)
		}
	}
	return nil
}
