package importer

import (
	"io"

	"github.com/MrJamesThe3rd/tempo/internal/invoice"
)

// Format names a client directory export layout.
type Format string

const (
	// FormatAuto detects the layout from the header row.
	FormatAuto Format = ""
	// FormatDirectory is a headerless label,address,phone file.
	FormatDirectory Format = "directory"
)

type Importer interface {
	Parse(r io.Reader) ([]invoice.Client, error)
}
