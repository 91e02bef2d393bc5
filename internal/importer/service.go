package importer

import (
	"fmt"
	"io"

	"github.com/MrJamesThe3rd/tempo/internal/importer/directory"
	"github.com/MrJamesThe3rd/tempo/internal/invoice"
)

type Service struct {
	auto       Importer
	positional Importer
}

func NewService() *Service {
	return &Service{
		auto:       directory.NewParser(),
		positional: directory.NewPositionalParser(),
	}
}

func (s *Service) Import(format Format, r io.Reader) ([]invoice.Client, error) {
	var importer Importer

	switch format {
	case FormatAuto:
		importer = s.auto
	case FormatDirectory:
		importer = s.positional
	default:
		return nil, fmt.Errorf("unknown client format: %s", format)
	}

	return importer.Parse(r)
}
