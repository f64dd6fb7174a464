package cipher

import (
	"io"
	"os"
	"path"

	"github.com/davecgh/go-spew/spew"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// scaleFile is the shape of a scale configuration document.
type scaleFile struct {
	Scales []*Config `yaml:"scales"`
}

// LoadFile reads user-defined scales from a YAML file and registers them.
// The decoder is pointed at the location of the file with support for
// recursive directories, so documents may reference files in subdirs.
func LoadFile(filename string) error {
	body, err := os.Open(filename)
	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := body.Close(); err != nil {
			log.Errorf("Could not close %s: %v", filename, err)
		}
	}()

	return Load(body, yaml.ReferenceDirs(path.Dir(filename)), yaml.RecursiveDir(true))
}

// Load parses YAML segments one after another, using the provided decode
// options. This allows multiple individual YAML documents within one
// physical file / input stream, all separated by triple dashes (`---`).
// Every scale found is validated and registered.
func Load(config io.Reader, opts ...yaml.DecodeOption) error {

	decoder := yaml.NewDecoder(config, opts...)

	i := 0
	for {
		i++

		var doc scaleFile
		err := decoder.Decode(&doc)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "Could not decode element at position %v", i)
		}

		log.Debugf("Scale definitions in document %v: %v", i, spew.Sdump(doc.Scales))

		for _, cfg := range doc.Scales {
			if err := Register(cfg); err != nil {
				return errors.WithStack(err)
			}
			log.Infof("Registered scale %q with %d notes", cfg.Name, cfg.Base())
		}
	}
}
