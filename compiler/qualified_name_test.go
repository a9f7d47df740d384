package compiler

import "testing"

func TestParseQualifiedName(t *testing.T) {
	tests := []struct {
		input   string
		want    QualifiedName
		wantErr bool
	}{
		{input: "Resource.Status", want: qn("Resource", "Status")},
		{input: "Chassis.v1_2_0.Chassis", want: qn("Chassis.v1_2_0", "Chassis")},
		{input: "Edm.String", want: qn("Edm", "String")},
		{input: "NoNamespace", wantErr: true},
		{input: ".Leading", wantErr: true},
		{input: "Trailing.", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseQualifiedName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseQualifiedName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseQualifiedName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNamespaceHelpers(t *testing.T) {
	ns := Namespace("Chassis.v1_2_0")
	if !Namespace("Edm").IsEdm() || ns.IsEdm() {
		t.Error("IsEdm() misclassifies namespaces")
	}
	segs := ns.Segments()
	if len(segs) != 2 || segs[0] != "Chassis" || segs[1] != "v1_2_0" {
		t.Errorf("Segments() = %v", segs)
	}
	if got := qn("Chassis.v1_2_0", "Chassis").String(); got != "Chassis.v1_2_0.Chassis" {
		t.Errorf("String() = %q", got)
	}
}
