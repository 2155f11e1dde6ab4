package export

import (
	"io"

	"gopkg.in/yaml.v3"

	"itmagazines/internal"
)

func WriteYAML(w io.Writer, records []internal.MagazineRecord) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return err
	}
	return enc.Close()
}
