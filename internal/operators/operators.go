package operators

import "strings"

// Operator contains display information for a railway operator
type Operator struct {
	Abbr string
	Name string
}

// operatorMap is keyed by the Operador value the IP endpoints return
var operatorMap = map[string]Operator{
	"CP":               {Abbr: "CP", Name: "Comboios de Portugal"},
	"CP LONGO CURSO":   {Abbr: "CP LC", Name: "CP Longo Curso"},
	"CP REGIONAL":      {Abbr: "CP R", Name: "CP Regional"},
	"CP LISBOA":        {Abbr: "CP LX", Name: "CP Lisboa"},
	"CP PORTO":         {Abbr: "CP PO", Name: "CP Porto"},
	"CP COIMBRA":       {Abbr: "CP CB", Name: "CP Coimbra"},
	"CP INTERNACIONAL": {Abbr: "CP INT", Name: "CP Internacional"},
	"CP MERCADORIAS":   {Abbr: "CP M", Name: "CP Carga"},
	"FERTAGUS":         {Abbr: "FTG", Name: "Fertagus"},
	"MEDWAY":           {Abbr: "MDW", Name: "Medway"},
	"TAKARGO":          {Abbr: "TKG", Name: "Takargo"},
	"RENFE":            {Abbr: "RENFE", Name: "Renfe Viajeros"},
}

// GetOperator returns operator info for an Operador value, or nil if unknown.
// Matching ignores case and surrounding whitespace.
func GetOperator(name string) *Operator {
	if op, ok := operatorMap[normalize(name)]; ok {
		return &op
	}
	return nil
}

// GetOperatorAbbr returns the abbreviation, or empty string if unknown
func GetOperatorAbbr(name string) string {
	if op := GetOperator(name); op != nil {
		return op.Abbr
	}
	return ""
}

// GetOperatorName returns the full name, or empty string if unknown
func GetOperatorName(name string) string {
	if op := GetOperator(name); op != nil {
		return op.Name
	}
	return ""
}

// Label returns the abbreviation when known and the raw value otherwise
func Label(name string) string {
	if abbr := GetOperatorAbbr(name); abbr != "" {
		return abbr
	}
	return strings.TrimSpace(name)
}

func normalize(name string) string {
	return strings.ToUpper(strings.Join(strings.Fields(name), " "))
}
