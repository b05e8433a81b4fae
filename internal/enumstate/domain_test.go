package enumstate

import "testing"

func TestDomain(t *testing.T) {
	d := NewDomain("Stance", "Standing", "Crouching")

	if d.Name() != "Stance" || d.Len() != 2 {
		t.Fatalf("unexpected domain %s/%d", d.Name(), d.Len())
	}
	if i, ok := d.Index("Crouching"); !ok || i != 1 {
		t.Errorf("Index(Crouching) = %d, %v", i, ok)
	}
	if _, ok := d.Index("Prone"); ok {
		t.Error("Index(Prone) should not be found")
	}
	if got := d.NameOf(5); got != "Unknown" {
		t.Errorf("NameOf out of range = %s", got)
	}

	names := d.Names()
	names[0] = "changed"
	if d.NameOf(0) != "Standing" {
		t.Error("Names must return a copy")
	}
}

func TestNewDomainPanics(t *testing.T) {
	tooMany := make([]string, MaxEnumerators+1)
	for i := range tooMany {
		tooMany[i] = string(rune('A'+i%26)) + string(rune('a'+i/26))
	}

	tests := []struct {
		name  string
		names []string
	}{
		{"empty", nil},
		{"duplicate", []string{"None", "Roll", "None"}},
		{"too many", tooMany},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("NewDomain(%s) did not panic", tt.name)
				}
			}()
			NewDomain(tt.name, tt.names...)
		})
	}
}
