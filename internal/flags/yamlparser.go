package flags

import (
	"fmt"
	"github.com/goccy/go-yaml"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"path"
	"reflect"
	"strings"
	"unsafe"
)

// YamlParser is an argument parser for flags package but takes a YAML file instead of a standard INI.
type YamlParser struct {
	parser *flags.Parser
}

// NewYamlParser creates a new yaml parser for a given flags.Parser.
func NewYamlParser(p *flags.Parser) *YamlParser {
	return &YamlParser{
		parser: p,
	}
}

// ParseFile parses flags from an yaml formatted file. The returned errors
// can be of the type flags.Error.
func (y *YamlParser) ParseFile(filename string) error {
	body, err := os.Open(filename)

	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := body.Close(); err != nil {
			log.Errorf("Could not close %s: %v", filename, err)
		}
	}()

	// Files referenced from the configuration are resolved relative to the configuration file itself
	return y.Parse(body, yaml.ReferenceDirs(path.Dir(filename)), yaml.RecursiveDir(true))
}

// Parse reads YAML segments one after another, using the provided decode options. Multiple segments in
// the same stream are separated by triple dashes (`---`).
func (y *YamlParser) Parse(config io.Reader, opts ...yaml.DecodeOption) error {
	decoder := yaml.NewDecoder(config, opts...)

	for i := 1; ; i++ {
		obj := make(map[string]interface{})
		err := decoder.Decode(&obj)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "Could not decode element at position %v", i)
		}

		if err = y.parseSegment(obj); err != nil {
			return errors.WithStack(err)
		}
	}
}

// parseSegment matches every top-level key of the segment to a command (by name) or an option group
// (by its short description, case-insensitive) and unmarshals the value into the options behind it.
func (y *YamlParser) parseSegment(obj map[string]interface{}) error {
	for name, val := range obj {
		data := y.findData(name)
		if data == nil {
			return errors.WithStack(&flags.Error{
				Type:    flags.ErrUnknownGroup,
				Message: fmt.Sprintf("could not find option command or group '%s'", name),
			})
		}

		if conv, err := yaml.Marshal(val); err != nil {
			return errors.WithStack(err)
		} else if err := yaml.Unmarshal(conv, data); err != nil {
			return errors.Wrapf(err, "Could not parse section '%s'", name)
		}
	}
	return nil
}

func (y *YamlParser) findData(name string) interface{} {
	if command := y.parser.Find(name); command != nil {
		return groupData(command.Group)
	}
	for _, group := range y.parser.Groups() {
		if strings.EqualFold(group.ShortDescription, name) {
			return groupData(group)
		}
	}
	return nil
}

// groupData digs out the options structure registered with the group. The flags library does not expose
// it, so reflection is the only way in.
func groupData(group *flags.Group) interface{} {
	dataField := reflect.Indirect(reflect.ValueOf(group)).FieldByName("data")
	dataField = reflect.NewAt(dataField.Type(), unsafe.Pointer(dataField.UnsafeAddr())).Elem()
	return dataField.Elem().Interface()
}
