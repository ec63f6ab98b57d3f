package manifest

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"tableflip.dev/weighbridge/pkg/scale"
)

// New builds a normalized entry from already-parsed field values. The net
// weight is derived; callers never supply it.
func New(plate string, grossKg, emptyKg int, date Date, charge decimal.Decimal, check string) *Entry {
	e := &Entry{
		PlateNumber: plate,
		GrossKg:     grossKg,
		EmptyKg:     emptyKg,
		Date:        date,
		Charge:      charge,
		CheckNumber: check,
	}
	e.Normalize()
	return e
}

// Entry is one committed weighing record.
type Entry struct {
	ID          string          `json:"id"`
	PlateNumber string          `json:"plateNumber"`
	GrossKg     int             `json:"grossKg"`
	EmptyKg     int             `json:"emptyKg"`
	NetKg       int             `json:"netKg"`
	Date        Date            `json:"date"`
	Charge      decimal.Decimal `json:"charge"`
	CheckNumber string          `json:"checkNumber,omitempty"`
}

// Normalize upper-cases the textual fields, defaults a blank date to today,
// and recomputes the derived net weight. It holds the invariant that NetKg
// always equals scale.Net(GrossKg, EmptyKg).
func (e *Entry) Normalize() {
	e.PlateNumber = strings.ToUpper(strings.TrimSpace(e.PlateNumber))
	e.CheckNumber = strings.ToUpper(strings.TrimSpace(e.CheckNumber))
	if e.GrossKg < 0 {
		e.GrossKg = 0
	}
	if e.EmptyKg < 0 {
		e.EmptyKg = 0
	}
	e.NetKg = scale.Net(e.GrossKg, e.EmptyKg)
	if e.Date.IsZero() {
		e.Date = Today()
	}
}

// Fields returns the textual form of every searchable column. Search and
// highlighting operate on these, never on the typed values.
func (e *Entry) Fields() []string {
	return []string{
		e.PlateNumber,
		e.CheckNumber,
		e.Date.String(),
		strconv.Itoa(e.GrossKg),
		strconv.Itoa(e.EmptyKg),
		strconv.Itoa(e.NetKg),
		e.Charge.String(),
	}
}

// Clone returns an independent copy.
func (e *Entry) Clone() *Entry {
	c := *e
	return &c
}

// Equal reports whether two entries carry the same recorded values,
// id included.
func (e *Entry) Equal(other *Entry) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.ID == other.ID &&
		e.PlateNumber == other.PlateNumber &&
		e.GrossKg == other.GrossKg &&
		e.EmptyKg == other.EmptyKg &&
		e.NetKg == other.NetKg &&
		e.Date.Equal(other.Date) &&
		e.Charge.Equal(other.Charge) &&
		e.CheckNumber == other.CheckNumber
}

// Seed returns the fixed demonstration manifest a fresh session starts
// with. Each call returns new copies so callers can mutate freely.
func Seed() []*Entry {
	return []*Entry{
		{
			ID:          "1",
			PlateNumber: "30A 777 AA",
			GrossKg:     32000,
			EmptyKg:     12000,
			NetKg:       20000,
			Date:        MustParseDate("2024-06-17"),
			Charge:      decimal.NewFromInt(30000),
			CheckNumber: "CHK-0092",
		},
		{
			ID:          "2",
			PlateNumber: "80B 905 BB",
			GrossKg:     28000,
			EmptyKg:     11000,
			NetKg:       17000,
			Date:        MustParseDate("2024-06-18"),
			Charge:      decimal.NewFromInt(40000),
			CheckNumber: "CHK-0118",
		},
	}
}
