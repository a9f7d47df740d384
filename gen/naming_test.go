package gen

import (
	"testing"

	"github.com/redfish-tools/redfishgen/compiler"
)

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"power_supply", "PowerSupply"},
		{"fan-speed", "FanSpeed"},
		{"Chassis", "Chassis"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ToPascalCase(tt.input); got != tt.want {
				t.Errorf("ToPascalCase(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestToPascalCaseAcronyms(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"id", "ID"},
		{"member_id", "MemberID"},
		{"mac_address", "MACAddress"},
		{"MemberId", "MemberID"},
		{"MACAddress", "MACAddress"},
		{"Reading", "Reading"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ToPascalCaseAcronyms(tt.input); got != tt.want {
				t.Errorf("ToPascalCaseAcronyms(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func qn(ns, name string) compiler.QualifiedName {
	return compiler.QualifiedName{Namespace: compiler.Namespace(ns), Name: name}
}

func TestNameTable(t *testing.T) {
	types := []compiler.QualifiedName{
		qn("Chassis.v1_2_0", "Chassis"),
		qn("Thermal.v1_0_0", "Fan"),
		// Status collides across two families.
		qn("Common", "Status"),
		qn("Power.v1_0_0", "Status"),
	}
	table := buildNameTable(types, ToPascalCaseAcronyms)

	if got := table.Name(qn("Chassis.v1_2_0", "Chassis")); got != "Chassis" {
		t.Errorf("Chassis name = %q", got)
	}
	if got := table.Name(qn("Thermal.v1_0_0", "Fan")); got != "Fan" {
		t.Errorf("Fan name = %q", got)
	}
	if got := table.Name(qn("Common", "Status")); got != "CommonStatus" {
		t.Errorf("Common status name = %q", got)
	}
	if got := table.Name(qn("Power.v1_0_0", "Status")); got != "PowerStatus" {
		t.Errorf("Power status name = %q", got)
	}
	// Names outside the model still resolve to something printable.
	if got := table.Name(qn("Log", "LogService")); got != "LogService" {
		t.Errorf("fallback name = %q", got)
	}
}
