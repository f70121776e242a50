package util

import "testing"

func TestNormalizeSpaces(t *testing.T) {
	if got := NormalizeSpaces("  Serial\t\nNumber  "); got != "Serial Number" {
		t.Fatalf("got %q", got)
	}
}

func TestFoldKey(t *testing.T) {
	if FoldKey(" AHU-500 ") != FoldKey("ahu-500") {
		t.Fatal("keys differ")
	}
}
