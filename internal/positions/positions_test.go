package positions

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want []int
	}{
		{"150\n-5\n100", []int{150, 100}},
		{"150", []int{150}},
		{" 7 \r\n\n0\n+12\n", []int{7, 12}},
		{"", nil},
		{"-1\n0", nil},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.in, err)
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("Parse(%q) = %v; want %v", c.in, got, c.want)
		}
	}
}

func TestParseRejectsNonInteger(t *testing.T) {
	_, err := Parse("10\n1e3\n20")
	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("want *Error, got %v", err)
	}
	if pe.Line != 2 || pe.Text != "1e3" {
		t.Fatalf("bad error detail: %+v", pe)
	}
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Fatalf("cause lost: %v", err)
	}
}

func TestReadKeepsOrder(t *testing.T) {
	got, err := Read(strings.NewReader("3\n1\n2\n1\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []int{3, 1, 2, 1}) {
		t.Fatalf("got %v", got)
	}
}
