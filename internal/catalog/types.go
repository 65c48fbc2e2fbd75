package catalog

// labelPriority lists the normalized field keys consulted, in order, when
// deriving a model's display label.
var labelPriority = []string{
	"label",
	"modello",
	"nome_commerciale",
	"pdc_modello",
	"denominazione",
}

// CatalogImport pairs a catalog name with the CSV file it is imported from.
type CatalogImport struct {
	Catalog string
	CSVPath string
}

// Field is a single normalized key/value pair extracted from a CSV cell.
type Field struct {
	Key   string
	Value string
}

// Fields is an ordered list of fields. Order follows the CSV column order so
// the emitted JSON object reads the same way the source file does.
type Fields []Field

// Get returns the value for key and whether it is present.
func (f Fields) Get(key string) (string, bool) {
	for _, fl := range f {
		if fl.Key == key {
			return fl.Value, true
		}
	}
	return "", false
}

// Model is one normalized product entry extracted from a CSV row.
type Model struct {
	Label  *string `json:"label"`
	Fields Fields  `json:"fields"`
}

// Document is the JSON body served for one (catalog, brand) pair.
type Document struct {
	Success bool    `json:"success"`
	Data    []Model `json:"data"`
}

// deriveLabel picks the model label from the first priority field present.
// It returns nil when none of them survived extraction.
func deriveLabel(fields Fields) *string {
	for _, key := range labelPriority {
		if v, ok := fields.Get(key); ok {
			return &v
		}
	}
	return nil
}
