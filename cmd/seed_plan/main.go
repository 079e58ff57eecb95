// seed_plan genera un script SQL para poblar plan_contable a partir de un CSV
// exportado del sistema contable anterior (separado por ';' y codificado en
// ISO-8859-1, como produce el exportador legado en Windows).
//
// Formato esperado por línea: cuenta;nombre;deb_cre;fuente;centro_costos
//
// Uso: go run ./cmd/seed_plan <empresa> [ruta/plan.csv]
// Por defecto busca plan.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/010_seed_plan_contable.sql
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type cuenta struct {
	cuenta       string
	nombre       string
	debCre       string
	fuente       string
	centroCostos string
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Uso: seed_plan <empresa> [plan.csv]")
		os.Exit(1)
	}
	empresa := os.Args[1]
	csvPath := "plan.csv"
	if len(os.Args) > 2 {
		csvPath = os.Args[2]
	}

	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// El exportador legado escribe ISO-8859-1; se transcodifica a UTF-8.
	sc := bufio.NewScanner(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))

	var cuentas []cuenta
	linea := 0
	for sc.Scan() {
		linea++
		texto := strings.TrimSpace(sc.Text())
		if texto == "" || strings.HasPrefix(texto, "#") {
			continue
		}
		campos := strings.Split(texto, ";")
		if len(campos) < 2 {
			fmt.Fprintf(os.Stderr, "línea %d ignorada: se esperaban al menos cuenta;nombre\n", linea)
			continue
		}
		c := cuenta{
			cuenta: strings.TrimSpace(campos[0]),
			nombre: strings.TrimSpace(campos[1]),
			debCre: "1",
		}
		if len(campos) > 2 && strings.TrimSpace(campos[2]) != "" {
			c.debCre = strings.TrimSpace(campos[2])
		}
		if len(campos) > 3 {
			c.fuente = strings.TrimSpace(campos[3])
		}
		if len(campos) > 4 {
			c.centroCostos = strings.TrimSpace(campos[4])
		}
		if c.cuenta == "" || c.nombre == "" {
			continue
		}
		cuentas = append(cuentas, c)
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	// Orden por cuenta: las mayores quedan antes que sus auxiliares.
	sort.Slice(cuentas, func(i, j int) bool { return cuentas[i].cuenta < cuentas[j].cuenta })

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "010_seed_plan_contable.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	fmt.Fprintf(out, "-- Plan de cuentas empresa %s\n", empresa)
	fmt.Fprintf(out, "-- Generado desde %s\n\n", filepath.Base(csvPath))

	for _, c := range cuentas {
		fmt.Fprintf(out,
			"INSERT INTO plan_contable (empresa, cuenta, nombre, deb_cre, fuente, centro_costos, activo)\n"+
				"VALUES ('%s', '%s', '%s', %s, %s, %s, true)\n"+
				"ON CONFLICT (empresa, cuenta) DO UPDATE SET nombre = EXCLUDED.nombre;\n",
			escapeSQL(empresa), escapeSQL(c.cuenta), escapeSQL(c.nombre),
			c.debCre, nullable(c.fuente), nullable(c.centroCostos))
	}

	fmt.Printf("Generado %s: %d cuentas\n", outPath, len(cuentas))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func nullable(s string) string {
	if s == "" {
		return "NULL"
	}
	return s
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
