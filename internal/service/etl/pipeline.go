package etl

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stock-ahora/etl-mermas/internal/dataset"
	"github.com/stock-ahora/etl-mermas/internal/logger"
)

// State marks how far a run has advanced. Failed es terminal y alcanzable
// desde cualquier etapa.
type State string

const (
	StateIdle             State = "idle"
	StateSchemaReady      State = "schema_ready"
	StateTimeLoaded       State = "time_loaded"
	StateDimensionsLoaded State = "dimensions_loaded"
	StateFactsLoaded      State = "facts_loaded"
	StateCommitted        State = "committed"
	StateFailed           State = "failed"
)

// Summary reports what one run inserted.
type Summary struct {
	RunID       uuid.UUID
	Fechas      int
	Ubicaciones int
	Categorias  int
	Productos   int
	Motivos     int
	Mermas      FactStats
}

// Pipeline orquesta la carga completa: esquema, dimensión de tiempo, las
// cuatro dimensiones y la tabla de hechos, todo en una sola transacción.
// Errores por fila se absorben en los loaders; solo fallas de esquema o de
// conexión hacen rollback de la corrida.
type Pipeline struct {
	db      *gorm.DB
	log     *logger.Logger
	timeout time.Duration
	state   State
}

func NewPipeline(db *gorm.DB, log *logger.Logger, timeout time.Duration) *Pipeline {
	return &Pipeline{db: db, log: log, timeout: timeout, state: StateIdle}
}

func (p *Pipeline) State() State { return p.state }

func (p *Pipeline) setState(s State) {
	p.state = s
	p.log.Debugw("pipeline", "estado", string(s))
}

func (p *Pipeline) Run(ctx context.Context, ds *dataset.Dataset) (*Summary, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	sum := &Summary{RunID: uuid.New()}
	p.setState(StateIdle)

	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := initSchema(tx); err != nil {
			return err
		}
		p.setState(StateSchemaReady)

		var err error
		if sum.Fechas, err = p.loadTiempo(tx, ds); err != nil {
			return err
		}
		p.setState(StateTimeLoaded)

		if sum.Ubicaciones, err = p.loadUbicaciones(tx, ds); err != nil {
			return err
		}
		if sum.Categorias, err = p.loadCategorias(tx, ds); err != nil {
			return err
		}
		if sum.Productos, err = p.loadProductos(tx, ds); err != nil {
			return err
		}
		if sum.Motivos, err = p.loadMotivos(tx, ds); err != nil {
			return err
		}
		p.setState(StateDimensionsLoaded)

		if sum.Mermas, err = p.loadMermas(tx, ds); err != nil {
			return err
		}
		p.setState(StateFactsLoaded)
		return nil
	})
	if err != nil {
		p.setState(StateFailed)
		return nil, err
	}

	p.setState(StateCommitted)
	return sum, nil
}

// createRow inserts under a savepoint so a failed row does not poison the
// surrounding transaction (Postgres aborta la transacción tras un error).
func createRow(tx *gorm.DB, value any) error {
	tx.SavePoint("fila")
	if err := tx.Create(value).Error; err != nil {
		tx.RollbackTo("fila")
		return err
	}
	return nil
}
