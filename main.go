package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/stock-ahora/etl-mermas/internal/config"
	"github.com/stock-ahora/etl-mermas/internal/dataset"
	"github.com/stock-ahora/etl-mermas/internal/logger"
	"github.com/stock-ahora/etl-mermas/internal/service/etl"
	"github.com/stock-ahora/etl-mermas/internal/service/eventservice"
	"github.com/stock-ahora/etl-mermas/internal/service/source"
)

func main() {
	diagnose := flag.Bool("diagnose", false, "solo diagnostica el archivo, no carga nada")
	yes := flag.Bool("y", false, "carga sin pedir confirmación")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "uso: %s [-diagnose] [-y] <archivo.xlsx | archivo.csv | s3://bucket/key>\n", os.Args[0])
		os.Exit(2)
	}
	archivo := flag.Arg(0)

	ctx := context.Background()

	cfg, err := loadConfig(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	src := source.New(cfg.S3.Region, log)
	path, cleanup, err := src.Fetch(ctx, archivo)
	if err != nil {
		log.Fatalw("no se pudo resolver el archivo de origen", "archivo", archivo, "error", err)
	}
	defer cleanup()

	ds, err := dataset.Read(path)
	if err != nil {
		log.Fatalw("no se pudo leer el archivo", "archivo", archivo, "error", err)
	}

	// pasada de diagnóstico: solo lectura, nunca toca la base
	ds.Diagnose(os.Stdout)

	if *diagnose {
		return
	}
	if !*yes && !confirm() {
		fmt.Println("Carga cancelada por el usuario.")
		return
	}

	db, err := config.NewPostgresDB(cfg.DB)
	if err != nil {
		log.Fatalw("DB error", "error", err)
	}
	log.Infow("conexión a la base establecida", "host", cfg.DB.Host, "db", cfg.DB.DBName)

	pipe := etl.NewPipeline(db, log, cfg.Timeout)
	sum, err := pipe.Run(ctx, ds)
	if err != nil {
		log.Fatalw("carga fallida, se hizo rollback", "error", err)
	}

	log.Infow("carga completada",
		"run_id", sum.RunID,
		"fechas", sum.Fechas,
		"ubicaciones", sum.Ubicaciones,
		"categorias", sum.Categorias,
		"productos", sum.Productos,
		"motivos", sum.Motivos,
		"mermas_procesadas", sum.Mermas.Procesadas,
		"mermas_saltadas", sum.Mermas.Saltadas,
	)

	publishSummary(ctx, cfg, log, archivo, ds.NumRows(), sum)
}

func loadConfig(ctx context.Context) (*config.Config, error) {
	if os.Getenv("APP_SECRET_ID") != "" {
		return config.LoadSecretManager(ctx)
	}
	return config.Load()
}

func confirm() bool {
	fmt.Print("\n¿Deseas proceder con la carga de datos? (s/n): ")
	r := bufio.NewReader(os.Stdin)
	line, err := r.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "s", "si", "y", "yes":
		return true
	}
	return false
}

// publishSummary emite el evento de resumen si hay broker configurado. Un
// fallo acá no afecta la carga ya confirmada.
func publishSummary(ctx context.Context, cfg *config.Config, log *logger.Logger, archivo string, filas int, sum *etl.Summary) {
	if cfg.MQ == nil {
		return
	}
	conn, pub, err := config.RabbitPublisher(*cfg.MQ, eventservice.ExchangeName)
	if err != nil {
		log.Warnw("no se pudo conectar al broker, se omite el evento", "error", err)
		return
	}
	defer conn.Close()
	defer pub.Close()

	publisher := eventservice.NewMQPublisher(pub)
	if err := publisher.PublishLoadSummary(ctx, eventservice.NewLoadSummary(archivo, filas, sum)); err != nil {
		log.Warnw("no se pudo publicar el resumen de carga", "error", err)
		return
	}
	log.Infow("resumen de carga publicado", "topic", eventservice.LoadSummaryTopic)
}
