package ledger

import (
	"errors"
	"strconv"
	"strings"

	"tableflip.dev/weighbridge/pkg/manifest"
	"tableflip.dev/weighbridge/pkg/scale"
)

// ErrPlateRequired rejects a submission whose plate number is blank after
// trimming. It is the only validation failure; the draft and the manifest
// stay untouched when it is returned.
var ErrPlateRequired = errors.New("ledger: plate number is required")

// Field names one editable draft field.
type Field string

const (
	FieldPlate  Field = "plateNumber"
	FieldGross  Field = "grossKg"
	FieldEmpty  Field = "emptyKg"
	FieldDate   Field = "date"
	FieldCharge Field = "charge"
	FieldCheck  Field = "checkNumber"
)

// Draft is the unvalidated form state. Every field is raw text; nothing
// is checked or parsed until submission.
type Draft struct {
	Plate  string
	Gross  string
	Empty  string
	Date   string
	Charge string
	Check  string

	editTargetID string
}

// SetField stores raw text for one field. Unknown fields are ignored.
func (d *Draft) SetField(f Field, raw string) {
	switch f {
	case FieldPlate:
		d.Plate = raw
	case FieldGross:
		d.Gross = raw
	case FieldEmpty:
		d.Empty = raw
	case FieldDate:
		d.Date = raw
	case FieldCharge:
		d.Charge = raw
	case FieldCheck:
		d.Check = raw
	}
}

// LoadFromEntry populates the draft from an existing entry and marks that
// entry as the edit target.
func (d *Draft) LoadFromEntry(e *manifest.Entry) {
	d.Plate = e.PlateNumber
	d.Gross = strconv.Itoa(e.GrossKg)
	d.Empty = strconv.Itoa(e.EmptyKg)
	d.Date = e.Date.String()
	d.Charge = e.Charge.String()
	d.Check = e.CheckNumber
	d.editTargetID = e.ID
}

// Clear resets every field and drops the edit target.
func (d *Draft) Clear() {
	*d = Draft{}
}

// EditTargetID returns the id the draft will replace on submission, blank
// when submission creates a new entry.
func (d *Draft) EditTargetID() string {
	return d.editTargetID
}

// Editing reports whether the draft targets an existing entry.
func (d *Draft) Editing() bool {
	return d.editTargetID != ""
}

// entry converts the draft into a candidate entry. Weights and charge
// coerce malformed input to zero; a malformed or blank date falls back to
// now. Only a blank plate number rejects.
func (d *Draft) entry(now func() manifest.Date) (*manifest.Entry, error) {
	plate := strings.TrimSpace(d.Plate)
	if plate == "" {
		return nil, ErrPlateRequired
	}
	date, err := manifest.ParseDate(d.Date)
	if err != nil || date.IsZero() {
		date = now()
	}
	return manifest.New(
		plate,
		scale.ParseKilograms(d.Gross),
		scale.ParseKilograms(d.Empty),
		date,
		scale.ParseAmount(d.Charge),
		d.Check,
	), nil
}
