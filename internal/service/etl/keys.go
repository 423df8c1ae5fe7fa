package etl

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"strings"
	"time"
)

// Separador de componentes en claves naturales. 0x1F no puede aparecer en
// los valores, así "A-B"+"C" y "A"+"B-C" nunca derivan la misma clave.
const keySep = "\x1f"

// UbicacionKey derives the stable surrogate for a location tuple: SHA-256
// truncated to a positive 63-bit integer, identical across runs.
func UbicacionKey(region, comuna, tienda, zonal string) int64 {
	sum := sha256.Sum256([]byte(strings.Join([]string{region, comuna, tienda, zonal}, keySep)))
	return int64(binary.BigEndian.Uint64(sum[:8]) & math.MaxInt64)
}

// MermaKey derives the fact key from producto, fecha and the motivo pair.
// The digest segment is 64 bits of SHA-256, wide enough that collisions are
// negligible at retail volumes.
func MermaKey(codigoProducto int64, fecha time.Time, motivo, ubicacionMotivo string) string {
	sum := sha256.Sum256([]byte(motivo + keySep + ubicacionMotivo))
	return fmt.Sprintf("%d-%s-%s", codigoProducto, fecha.Format("2006-01-02"), hex.EncodeToString(sum[:8]))
}

// CodigoRegion is the derived short region code (first three letters,
// uppercased) stored on the location dimension.
func CodigoRegion(region string) string {
	r := []rune(region)
	if len(r) > 3 {
		r = r[:3]
	}
	return strings.ToUpper(string(r))
}
