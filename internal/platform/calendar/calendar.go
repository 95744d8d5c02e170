// Package calendar modela fechas de calendario sin hora ni zona horaria.
//
// Todas las operaciones trabajan sobre (año, mes, día). No hay offset local
// involucrado, así que las diferencias en días no se ven afectadas por DST.
package calendar

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Layout es el formato canónico YYYY-MM-DD.
const Layout = "2006-01-02"

// MaxYear es el último año que entra en cuatro dígitos.
const MaxYear = 9999

var (
	ErrInvalidDate = errors.New("invalid calendar date (use YYYY-MM-DD)")

	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Date es un día de calendario.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New normaliza (y, m, d) igual que time.Date: 2025-02-30 => 2025-03-02.
func New(year int, month time.Month, day int) Date {
	return fromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// IsValid indica si s tiene forma YYYY-MM-DD y además existe como fecha real.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Parse interpreta s como fecha de calendario estricta.
func Parse(s string) (Date, error) {
	if !datePattern.MatchString(s) {
		return Date{}, ErrInvalidDate
	}

	// El patrón ya garantiza dígitos, Atoi no puede fallar.
	y, _ := strconv.Atoi(s[0:4])
	m, _ := strconv.Atoi(s[5:7])
	d, _ := strconv.Atoi(s[8:10])

	// Round-trip: si la normalización mueve algún componente, la fecha no existe.
	n := New(y, time.Month(m), d)
	if n.Year != y || int(n.Month) != m || n.Day != d {
		return Date{}, ErrInvalidDate
	}
	return n, nil
}

// MustParse es para constantes en tests/seeds.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("calendar: %q: %v", s, err))
	}
	return d
}

// DaysBetween devuelve los días enteros de a hasta b (negativo si b < a).
func DaysBetween(a, b Date) int {
	return b.dayNumber() - a.dayNumber()
}

// AddDays suma n días de calendario (n puede ser negativo).
func (d Date) AddDays(n int) Date {
	return New(d.Year, d.Month, d.Day+n)
}

func (d Date) Before(o Date) bool { return d.dayNumber() < o.dayNumber() }
func (d Date) After(o Date) bool  { return d.dayNumber() > o.dayNumber() }
func (d Date) Equal(o Date) bool  { return d == o }

func (d Date) IsZero() bool { return d == Date{} }

// String formatea como YYYY-MM-DD con mes/día con cero a la izquierda.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// dayNumber cuenta días desde el epoch Unix. Se calcula en UTC, que no tiene DST.
func (d Date) dayNumber() int {
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	return int(t.Unix() / 86400)
}

func fromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}
