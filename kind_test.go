package ffitoolkit

import "testing"

func TestErrorKind_Strings(t *testing.T) {
	cases := map[ErrorKind]string{
		KindOther:           "Other",
		KindValidation:      "ValidationError",
		KindIO:              "IoError",
		ErrorKind(99):       "Unknown",
		ErrorKind(-1):       "Unknown",
		KindInvalidArgument: "InvalidArgumentError",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Fatalf("%d.String(): want %q, got %q", int32(k), want, got)
		}
	}
}

func TestKindFromName(t *testing.T) {
	for k := KindOther; k <= KindIO; k++ {
		if got := KindFromName(k.String()); got != k {
			t.Fatalf("KindFromName(%q): want %v, got %v", k.String(), k, got)
		}
	}
	if got := KindFromName("NoSuchKind"); got != KindOther {
		t.Fatalf("unknown name: want KindOther, got %v", got)
	}
}
