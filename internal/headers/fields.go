package headers

import "strings"

type Field struct {
	Name  string
	Value string
}

// Fields is an ordered set of response header fields. Names compare
// case-insensitively; insertion order is the order they go on the wire.
type Fields []Field

func NewFields() Fields {
	return Fields{}
}

// Set replaces the value of an existing field or appends a new one.
func (f *Fields) Set(name, value string) {
	for i := range *f {
		if strings.EqualFold((*f)[i].Name, name) {
			(*f)[i].Value = value
			return
		}
	}
	*f = append(*f, Field{Name: name, Value: value})
}

func (f Fields) Get(name string) (string, bool) {
	for _, field := range f {
		if strings.EqualFold(field.Name, name) {
			return field.Value, true
		}
	}
	return "", false
}
