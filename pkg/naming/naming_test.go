package naming

import (
	"testing"
)

func Test_Prefix_SharedNameForGroup(t *testing.T) {
	p, err := NewPrefix(PrefixConfig{Prefix: DefaultPrefix})
	if err != nil {
		t.Fatal(err)
	}

	name := p.SharedNameForGroup("web")
	if name != "jclouds-web" {
		t.Fatalf("SharedNameForGroup() == %#q, want %#q", name, "jclouds-web")
	}
}

func Test_NewPrefix_EmptyPrefix(t *testing.T) {
	_, err := NewPrefix(PrefixConfig{})
	if !IsInvalidConfig(err) {
		t.Fatalf("error == %#v, want invalidConfigError", err)
	}
}
