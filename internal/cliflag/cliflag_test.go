package cliflag

import (
	"flag"
	"io"
	"strings"
	"testing"
)

func TestKVar(t *testing.T) {
	var k uint = 10
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Var(KVar(&k), "k", "number of words")

	if err := fs.Parse([]string{"-k", "3"}); err != nil {
		t.Fatal(err)
	}
	if k != 3 {
		t.Fatalf("expected 3, got %d", k)
	}

	if err := fs.Parse([]string{"-k", "0"}); err != nil {
		t.Fatal(err)
	}
	if k != 0 {
		t.Fatalf("expected 0, got %d", k)
	}
}

func TestKVarInvalid(t *testing.T) {
	for _, s := range []string{"-1", "abc", "", "2.5", " 4"} {
		var k uint = 7
		if err := KVar(&k).Set(s); err == nil {
			t.Errorf("%q: expected error", s)
		}
		if k != 7 {
			t.Errorf("%q: value changed to %d", s, k)
		}
	}
}

func TestKVarString(t *testing.T) {
	var k uint = 5
	if s := KVar(&k).String(); s != "5" {
		t.Fatalf("bad string: %q", s)
	}
	if s := KVar(nil).String(); s != "" {
		t.Fatalf("bad nil string: %q", s)
	}
}

func TestPortVar(t *testing.T) {
	port := 8080
	v := PortVar(&port)
	if err := v.Set("9000"); err != nil {
		t.Fatal(err)
	}
	if port != 9000 {
		t.Fatalf("expected 9000, got %d", port)
	}

	for _, s := range []string{"0", "65536", "http"} {
		if err := v.Set(s); err == nil {
			t.Errorf("%q: expected error", s)
		}
	}
	if port != 9000 {
		t.Fatalf("port changed to %d", port)
	}
}

func TestParsePort(t *testing.T) {
	if p, err := ParsePort("65535"); err != nil || p != 65535 {
		t.Fatalf("expected 65535, got %d (%v)", p, err)
	}
	for _, s := range []string{"", "-1", "0", "65536", "80x"} {
		if _, err := ParsePort(s); err == nil {
			t.Errorf("%q: expected error", s)
		}
	}
}

func TestFromEnv(t *testing.T) {
	port := 8080
	t.Setenv("TEST_PORT", "9090")
	if err := FromEnv(PortVar(&port), "TEST_PORT"); err != nil {
		t.Fatal(err)
	}
	if port != 9090 {
		t.Fatalf("expected 9090, got %d", port)
	}

	var k uint = 10
	t.Setenv("TEST_K", "")
	if err := FromEnv(KVar(&k), "TEST_K"); err != nil {
		t.Fatal(err)
	}
	if err := FromEnv(KVar(&k), "TEST_UNSET_K"); err != nil {
		t.Fatal(err)
	}
	if k != 10 {
		t.Fatalf("default changed to %d", k)
	}
}

func TestFromEnvInvalid(t *testing.T) {
	port := 8080
	t.Setenv("TEST_PORT", "http")
	err := FromEnv(PortVar(&port), "TEST_PORT")
	if err == nil {
		t.Fatal("expected error for bad port")
	}
	if !strings.Contains(err.Error(), "TEST_PORT") {
		t.Fatalf("error doesn't name the variable: %s", err)
	}
	if port != 8080 {
		t.Fatalf("port changed to %d", port)
	}

	var k uint = 10
	t.Setenv("TEST_K", "-2")
	if err := FromEnv(KVar(&k), "TEST_K"); err == nil {
		t.Fatal("expected error for negative k")
	}
}
