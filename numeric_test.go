package objimport

import "testing"

func expectInt(t *testing.T, label string, want, got int) {
	t.Helper()
	if want != got {
		t.Errorf("%s: want=%d got=%d", label, want, got)
	}
}

func expectFloat(t *testing.T, label string, want, got float32) {
	t.Helper()
	if want != got {
		t.Errorf("%s: want=%v got=%v", label, want, got)
	}
}

func TestParseIntBasic(t *testing.T) {
	v, adv := parseInt([]byte("42 rest"), -1)
	expectInt(t, "TestParseIntBasic: value", 42, v)
	expectInt(t, "TestParseIntBasic: advanced", 2, adv)
}

func TestParseIntNegative(t *testing.T) {
	v, adv := parseInt([]byte("-7"), -1)
	expectInt(t, "TestParseIntNegative: value", -7, v)
	expectInt(t, "TestParseIntNegative: advanced", 2, adv)
}

func TestParseIntPlusPrefix(t *testing.T) {
	v, adv := parseInt([]byte("+3"), -1)
	expectInt(t, "TestParseIntPlusPrefix: value", 3, v)
	expectInt(t, "TestParseIntPlusPrefix: advanced", 2, adv)
}

func TestParseIntInvalidLeavesCursorUnchanged(t *testing.T) {
	v, adv := parseInt([]byte("abc"), -99)
	expectInt(t, "TestParseIntInvalidLeavesCursorUnchanged: value", -99, v)
	expectInt(t, "TestParseIntInvalidLeavesCursorUnchanged: advanced", 0, adv)
}

func TestParseFloatBasic(t *testing.T) {
	v, adv := parseFloat([]byte("1.5 2.5"), 0)
	expectFloat(t, "TestParseFloatBasic: value", 1.5, v)
	expectInt(t, "TestParseFloatBasic: advanced", 3, adv)
}

func TestParseFloatScientific(t *testing.T) {
	v, adv := parseFloat([]byte("1e3"), 0)
	expectFloat(t, "TestParseFloatScientific: value", 1000, v)
	expectInt(t, "TestParseFloatScientific: advanced", 3, adv)
}

func TestParseFloatLeadingWhitespace(t *testing.T) {
	v, adv := parseFloat([]byte("   0.25"), 0)
	expectFloat(t, "TestParseFloatLeadingWhitespace: value", 0.25, v)
	expectInt(t, "TestParseFloatLeadingWhitespace: advanced", 7, adv)
}

func TestParseFloatsFillsSlice(t *testing.T) {
	dst := make([]float32, 3)
	adv := parseFloats([]byte("1.0 2.0 3.0"), 0, dst, 3)
	want := []float32{1.0, 2.0, 3.0}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("TestParseFloatsFillsSlice: index %d: want=%v got=%v", i, want[i], dst[i])
		}
	}
	expectInt(t, "TestParseFloatsFillsSlice: advanced", 11, adv)
}

func TestSplitByChar(t *testing.T) {
	fields := splitByChar([]byte("1 2  3   4"), ' ')
	want := []string{"1", "2", "3", "4"}
	if len(fields) != len(want) {
		t.Fatalf("TestSplitByChar: len: want=%d got=%d", len(want), len(fields))
	}
	for i, f := range fields {
		if string(f) != want[i] {
			t.Errorf("TestSplitByChar: index %d: want=%s got=%s", i, want[i], string(f))
		}
	}
}

func TestSplitLineKeyRest(t *testing.T) {
	key, rest := splitLineKeyRest([]byte("usemtl Material.001\r"))
	if string(key) != "usemtl" {
		t.Errorf("TestSplitLineKeyRest: key: want=usemtl got=%s", string(key))
	}
	if string(rest) != "Material.001" {
		t.Errorf("TestSplitLineKeyRest: rest: want=Material.001 got=%q", string(rest))
	}
}

func TestSplitLineKeyRestNoSpace(t *testing.T) {
	key, rest := splitLineKeyRest([]byte("o"))
	if string(key) != "o" {
		t.Errorf("TestSplitLineKeyRestNoSpace: key: want=o got=%s", string(key))
	}
	if len(rest) != 0 {
		t.Errorf("TestSplitLineKeyRestNoSpace: rest: want=empty got=%q", string(rest))
	}
}
