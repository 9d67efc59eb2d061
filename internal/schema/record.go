package schema

// Field is one named scalar of a Record.
type Field struct {
	Name  string
	Value any
}

// Record is an ordered mapping from field name to scalar value.
type Record []Field

// Get returns the value stored under name.
func (r Record) Get(name string) (any, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Set replaces the value under name, or appends it when absent.
func (r *Record) Set(name string, value any) {
	for i := range *r {
		if (*r)[i].Name == name {
			(*r)[i].Value = value
			return
		}
	}
	*r = append(*r, Field{Name: name, Value: value})
}

func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for _, f := range r {
		keys = append(keys, f.Name)
	}
	return keys
}

// Collection is a named, ordered sequence of homogeneous records. Header,
// when set, fixes the leading columns so an empty collection still has a
// shape.
type Collection struct {
	Name    string
	Header  []string
	Records []Record
}

// Columns returns Header followed by any other record keys in first-seen
// order.
func (c Collection) Columns() []string {
	seen := map[string]bool{}
	var cols []string
	for _, h := range c.Header {
		if !seen[h] {
			seen[h] = true
			cols = append(cols, h)
		}
	}
	for _, r := range c.Records {
		for _, f := range r {
			if !seen[f.Name] {
				seen[f.Name] = true
				cols = append(cols, f.Name)
			}
		}
	}
	return cols
}
