package operators

import "testing"

func TestGetOperator(t *testing.T) {
	tests := []struct {
		name     string
		operador string
		wantAbbr string
		wantName string
		wantNil  bool
	}{
		{
			name:     "CP Longo Curso",
			operador: "CP LONGO CURSO",
			wantAbbr: "CP LC",
			wantName: "CP Longo Curso",
		},
		{
			name:     "CP Porto",
			operador: "CP PORTO",
			wantAbbr: "CP PO",
			wantName: "CP Porto",
		},
		{
			name:     "Fertagus",
			operador: "FERTAGUS",
			wantAbbr: "FTG",
			wantName: "Fertagus",
		},
		{
			name:     "lowercase with extra spaces",
			operador: "  cp   regional ",
			wantAbbr: "CP R",
			wantName: "CP Regional",
		},
		{
			name:     "unknown operator",
			operador: "UNKNOWN",
			wantNil:  true,
		},
		{
			name:     "empty",
			operador: "",
			wantNil:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := GetOperator(tt.operador)

			if tt.wantNil {
				if op != nil {
					t.Errorf("GetOperator() = %v, want nil", op)
				}
				return
			}

			if op == nil {
				t.Fatalf("GetOperator() returned nil, want operator")
			}
			if op.Abbr != tt.wantAbbr {
				t.Errorf("Abbr = %q, want %q", op.Abbr, tt.wantAbbr)
			}
			if op.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", op.Name, tt.wantName)
			}
		})
	}
}

func TestGetOperatorAbbr(t *testing.T) {
	tests := []struct {
		operador string
		want     string
	}{
		{"CP LONGO CURSO", "CP LC"},
		{"CP LISBOA", "CP LX"},
		{"FERTAGUS", "FTG"},
		{"UNKNOWN", ""},
	}

	for _, tt := range tests {
		t.Run(tt.operador, func(t *testing.T) {
			if got := GetOperatorAbbr(tt.operador); got != tt.want {
				t.Errorf("GetOperatorAbbr(%q) = %q, want %q", tt.operador, got, tt.want)
			}
		})
	}
}

func TestGetOperatorName(t *testing.T) {
	tests := []struct {
		operador string
		want     string
	}{
		{"CP INTERNACIONAL", "CP Internacional"},
		{"CP COIMBRA", "CP Coimbra"},
		{"UNKNOWN", ""},
	}

	for _, tt := range tests {
		t.Run(tt.operador, func(t *testing.T) {
			if got := GetOperatorName(tt.operador); got != tt.want {
				t.Errorf("GetOperatorName(%q) = %q, want %q", tt.operador, got, tt.want)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	if got := Label("CP PORTO"); got != "CP PO" {
		t.Errorf("Label(CP PORTO) = %q", got)
	}
	if got := Label(" SOME OTHER "); got != "SOME OTHER" {
		t.Errorf("Label() = %q, want raw value", got)
	}
}

func TestOperatorMapContainsExpectedEntries(t *testing.T) {
	for _, name := range []string{"CP LONGO CURSO", "CP REGIONAL", "CP LISBOA", "CP PORTO", "FERTAGUS"} {
		if GetOperator(name) == nil {
			t.Errorf("Expected operator %q not found", name)
		}
	}
}
